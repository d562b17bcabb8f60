package model

import (
	"safar/shared/model"
	"time"
)

const (
	TableName  = "groups"
	EntityName = "group"

	FieldID                = "id"
	FieldCode              = "code"
	FieldProgramType       = "program_type"
	FieldDepartureDate     = "departure_date"
	FieldTotalPax          = "total_pax"
	FieldStatus            = "status"
	FieldHandlingCompanyID = "handling_company_id"
	FieldNotes             = "notes"
)

const (
	StatusPreparation = "PREPARATION"
	StatusDeparture   = "DEPARTURE"
	StatusArrival     = "ARRIVAL"
)

// Group is one pilgrim cohort traveling under a single itinerary.
type Group struct {
	ID                string     `db:"id"`
	Code              string     `db:"code"`
	ProgramType       *string    `db:"program_type"`
	DepartureDate     *time.Time `db:"departure_date"`
	TotalPax          int        `db:"total_pax"`
	Status            string     `db:"status"`
	HandlingCompanyID *string    `db:"handling_company_id"`
	Notes             *string    `db:"notes"`
	model.Metadata
}

// ValidStatus reports whether the value is one of the closed status set.
func ValidStatus(status string) bool {
	switch status {
	case StatusPreparation, StatusDeparture, StatusArrival:
		return true
	default:
		return false
	}
}

package model

import (
	"safar/shared/model"
	"time"
)

const (
	TableName  = "flight_masters"
	EntityName = "flight_master"

	FieldID           = "id"
	FieldAirline      = "airline"
	FieldFlightNumber = "flight_number"
	FieldOrigin       = "origin"
	FieldDestination  = "destination"
	FieldETD          = "etd"
	FieldETA          = "eta"
)

// FlightMaster is a reusable flight template: airline, number, route and
// scheduled times of day. Segments reference it, never own it.
type FlightMaster struct {
	ID           string     `db:"id"`
	Airline      *string    `db:"airline"`
	FlightNumber *string    `db:"flight_number"`
	Origin       *string    `db:"origin"`
	Destination  *string    `db:"destination"`
	ETD          *time.Time `db:"etd"`
	ETA          *time.Time `db:"eta"`
	model.Metadata
}

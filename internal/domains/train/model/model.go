package model

import (
	"safar/shared/model"
	"time"
)

const (
	TableName  = "group_trains"
	EntityName = "train"

	FieldID            = "id"
	FieldGroupID       = "group_id"
	FieldTrainDate     = "train_date"
	FieldFromStation   = "from_station"
	FieldToStation     = "to_station"
	FieldDepartureTime = "departure_time"
	FieldPax           = "pax"
	FieldRemarks       = "remarks"
)

// Train is one rail journey of a group.
type Train struct {
	ID            string     `db:"id"`
	GroupID       string     `db:"group_id"`
	TrainDate     *time.Time `db:"train_date"`
	FromStation   *string    `db:"from_station"`
	ToStation     *string    `db:"to_station"`
	DepartureTime *string    `db:"departure_time"`
	Pax           int        `db:"pax"`
	Remarks       *string    `db:"remarks"`
	model.Metadata
}

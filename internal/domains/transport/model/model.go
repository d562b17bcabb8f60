package model

import (
	"safar/shared/model"
	"time"
)

const (
	TableName  = "group_transports"
	EntityName = "transport"

	FieldID             = "id"
	FieldGroupID        = "group_id"
	FieldProvider       = "provider"
	FieldVehicleType    = "vehicle_type"
	FieldRoute          = "route"
	FieldPickupLocation = "pickup_location"
	FieldDropLocation   = "drop_location"
	FieldTransportDate  = "transport_date"
	FieldTransportTime  = "transport_time"
	FieldPax            = "pax"
)

// Transport is one ground journey of a group.
type Transport struct {
	ID             string     `db:"id"`
	GroupID        string     `db:"group_id"`
	Provider       *string    `db:"provider"`
	VehicleType    *string    `db:"vehicle_type"`
	Route          *string    `db:"route"`
	PickupLocation *string    `db:"pickup_location"`
	DropLocation   *string    `db:"drop_location"`
	TransportDate  *time.Time `db:"transport_date"`
	TransportTime  *string    `db:"transport_time"`
	Pax            int        `db:"pax"`
	model.Metadata
}

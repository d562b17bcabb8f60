package model

import (
	"safar/shared/model"
	"time"
)

const (
	TableName  = "group_hotels"
	EntityName = "hotel"

	FieldID            = "id"
	FieldGroupID       = "group_id"
	FieldCity          = "city"
	FieldHotelName     = "hotel_name"
	FieldCheckinDate   = "checkin_date"
	FieldCheckoutDate  = "checkout_date"
	FieldRoomsDouble   = "rooms_double"
	FieldRoomsTriple   = "rooms_triple"
	FieldRoomsQuad     = "rooms_quad"
	FieldRoomsQuint    = "rooms_quint"
	FieldReservationNo = "reservation_no"
)

// Hotel is one hotel stay of a group, with room counts by type.
type Hotel struct {
	ID            string     `db:"id"`
	GroupID       string     `db:"group_id"`
	City          *string    `db:"city"`
	HotelName     *string    `db:"hotel_name"`
	CheckinDate   *time.Time `db:"checkin_date"`
	CheckoutDate  *time.Time `db:"checkout_date"`
	RoomsDouble   int        `db:"rooms_double"`
	RoomsTriple   int        `db:"rooms_triple"`
	RoomsQuad     int        `db:"rooms_quad"`
	RoomsQuint    int        `db:"rooms_quint"`
	ReservationNo *string    `db:"reservation_no"`
	model.Metadata
}

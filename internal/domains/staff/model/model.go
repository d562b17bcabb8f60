package model

import "safar/shared/model"

const (
	TourLeaderTableName  = "tour_leaders"
	TourLeaderEntityName = "tour_leader"

	MuthawifTableName  = "muthawifs"
	MuthawifEntityName = "muthawif"

	FieldID    = "id"
	FieldName  = "name"
	FieldPhone = "phone"
)

// TourLeader is an agency staff member escorting groups from departure.
type TourLeader struct {
	ID    string  `db:"id"`
	Name  string  `db:"name"`
	Phone *string `db:"phone"`
	model.Metadata
}

// Muthawif is a local religious guide assigned to groups in country.
type Muthawif struct {
	ID    string  `db:"id"`
	Name  string  `db:"name"`
	Phone *string `db:"phone"`
	model.Metadata
}

package model

import (
	"fmt"
	"safar/shared/model"
	"time"
)

const (
	TableName  = "group_flights"
	EntityName = "flight_segment"

	FieldID             = "id"
	FieldGroupID        = "group_id"
	FieldFlightMasterID = "flight_master_id"
	FieldFlightDate     = "flight_date"
	FieldSegmentOrder   = "segment_order"
	FieldETD            = "etd"
	FieldETA            = "eta"
	FieldRemarks        = "remarks"

	flightMasterTable = "flight_masters"
)

// Segment is one flight leg of a group's itinerary. segment_order is the
// 1-based ordering key, unique within the group.
type Segment struct {
	ID             string     `db:"id"`
	GroupID        string     `db:"group_id"`
	FlightMasterID string     `db:"flight_master_id"`
	FlightDate     *time.Time `db:"flight_date"`
	SegmentOrder   int        `db:"segment_order"`
	ETD            *time.Time `db:"etd"`
	ETA            *time.Time `db:"eta"`
	Remarks        *string    `db:"remarks"`
	model.Metadata
}

// SegmentFlight is a segment enriched with its flight master, as read by the
// itinerary join.
type SegmentFlight struct {
	Segment
	Airline      *string    `db:"airline" table:"flight_masters"`
	FlightNumber *string    `db:"flight_number" table:"flight_masters"`
	Origin       *string    `db:"origin" table:"flight_masters"`
	Destination  *string    `db:"destination" table:"flight_masters"`
	MasterETD    *time.Time `db:"master_etd" table:"flight_masters" column:"etd"`
	MasterETA    *time.Time `db:"master_eta" table:"flight_masters" column:"eta"`
}

// GetJoinQuery attaches the flight master row to each segment.
func (SegmentFlight) GetJoinQuery() string {
	return fmt.Sprintf("JOIN %s ON %s.%s = %s.%s", flightMasterTable, flightMasterTable, FieldID, TableName, FieldFlightMasterID)
}

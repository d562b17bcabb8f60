package model

import (
	"safar/shared/model"
	"time"
)

const (
	TableName  = "group_rawdah"
	EntityName = "rawdah_allocation"

	FieldID        = "id"
	FieldGroupID   = "group_id"
	FieldMenDate   = "men_date"
	FieldMenTime   = "men_time"
	FieldMenPax    = "men_pax"
	FieldWomenDate = "women_date"
	FieldWomenTime = "women_time"
	FieldWomenPax  = "women_pax"
)

// RawdahAllocation tracks a group's timed-entry permits for the Rawdah,
// split by gender. At most one row per group, backed by a unique constraint
// on group_id.
type RawdahAllocation struct {
	ID        string     `db:"id"`
	GroupID   string     `db:"group_id"`
	MenDate   *time.Time `db:"men_date"`
	MenTime   *string    `db:"men_time"`
	MenPax    int        `db:"men_pax"`
	WomenDate *time.Time `db:"women_date"`
	WomenTime *string    `db:"women_time"`
	WomenPax  int        `db:"women_pax"`
	model.Metadata
}

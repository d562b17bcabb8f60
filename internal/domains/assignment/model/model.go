package model

import "safar/shared/model"

const (
	TableName  = "group_assignments"
	EntityName = "assignment"

	FieldID           = "id"
	FieldGroupID      = "group_id"
	FieldRole         = "role"
	FieldTourLeaderID = "tour_leader_id"
	FieldMuthawifID   = "muthawif_id"
)

const (
	RoleTourLeader = "TOUR_LEADER"
	RoleMuthawif   = "MUTHAWIF"
)

// Assignment links a group to a staff member. The role discriminator says
// which of the two references is populated; exactly one is, per row.
type Assignment struct {
	ID           string  `db:"id"`
	GroupID      string  `db:"group_id"`
	Role         string  `db:"role"`
	TourLeaderID *string `db:"tour_leader_id"`
	MuthawifID   *string `db:"muthawif_id"`
	model.Metadata
}

// ValidRole reports whether the value is one of the closed role set.
func ValidRole(role string) bool {
	return role == RoleTourLeader || role == RoleMuthawif
}

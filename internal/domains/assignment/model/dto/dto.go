package dto

import (
	"safar/internal/domains/assignment/model"
	"safar/shared"
	gDto "safar/shared/dto"
	gModel "safar/shared/model"
	"safar/shared/timezone"

	"github.com/google/uuid"
)

type CreateAssignmentRequest struct {
	Role         string `json:"role" validate:"required,oneof=TOUR_LEADER MUTHAWIF"`
	TourLeaderID string `json:"tour_leader_id" validate:"omitempty,uuid"`
	MuthawifID   string `json:"muthawif_id" validate:"omitempty,uuid"`
}

func (c *CreateAssignmentRequest) ToModel(groupID, user string) model.Assignment {
	return model.Assignment{
		ID:           uuid.NewString(),
		GroupID:      groupID,
		Role:         c.Role,
		TourLeaderID: shared.NullableString(c.TourLeaderID),
		MuthawifID:   shared.NullableString(c.MuthawifID),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type AssignmentResponse struct {
	ID           string `json:"id"`
	GroupID      string `json:"group_id"`
	Role         string `json:"role"`
	TourLeaderID string `json:"tour_leader_id,omitempty"`
	MuthawifID   string `json:"muthawif_id,omitempty"`
	gDto.Metadata
}

func (r *AssignmentResponse) FromModel(mod model.Assignment) {
	r.ID = mod.ID
	r.GroupID = mod.GroupID
	r.Role = mod.Role

	if mod.TourLeaderID != nil {
		r.TourLeaderID = *mod.TourLeaderID
	}

	if mod.MuthawifID != nil {
		r.MuthawifID = *mod.MuthawifID
	}

	r.Metadata.FromModel(mod.Metadata)
}

type GetAssignmentsResponse struct {
	Assignments []AssignmentResponse `json:"assignments"`
	TotalPage   int                  `json:"total_page"`
	TotalData   int                  `json:"total_data"`
}

func (r *GetAssignmentsResponse) FromModels(models []model.Assignment, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Assignments = make([]AssignmentResponse, len(models))
	for i, mod := range models {
		r.Assignments[i].FromModel(mod)
	}
}

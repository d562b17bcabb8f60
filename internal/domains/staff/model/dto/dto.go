package dto

import (
	"safar/internal/domains/staff/model"
	"safar/shared"
	gDto "safar/shared/dto"
	gModel "safar/shared/model"
	"safar/shared/timezone"

	"github.com/google/uuid"
)

type CreateStaffRequest struct {
	Name  string `json:"name" validate:"required,max=150"`
	Phone string `json:"phone" validate:"omitempty,max=30"`
}

func (c *CreateStaffRequest) ToTourLeader(user string) model.TourLeader {
	return model.TourLeader{
		ID:       uuid.NewString(),
		Name:     c.Name,
		Phone:    shared.NullableString(c.Phone),
		Metadata: newMetadata(user),
	}
}

func (c *CreateStaffRequest) ToMuthawif(user string) model.Muthawif {
	return model.Muthawif{
		ID:       uuid.NewString(),
		Name:     c.Name,
		Phone:    shared.NullableString(c.Phone),
		Metadata: newMetadata(user),
	}
}

func newMetadata(user string) gModel.Metadata {
	return gModel.Metadata{
		CreatedAt:  timezone.Now(),
		ModifiedAt: timezone.Now(),
		CreatedBy:  user,
		ModifiedBy: user,
	}
}

type UpdateStaffRequest struct {
	Name  string `db:"name" json:"name" validate:"required,max=150"`
	Phone string `json:"phone" validate:"omitempty,max=30"`
}

func (u *UpdateStaffRequest) ToFields(user string) map[string]any {
	fields := shared.TransformAllFields(*u, user)
	fields[model.FieldPhone] = shared.NullableString(u.Phone)

	return fields
}

type StaffResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	gDto.Metadata
}

func (r *StaffResponse) FromTourLeader(mod model.TourLeader) {
	r.ID = mod.ID
	r.Name = mod.Name

	if mod.Phone != nil {
		r.Phone = *mod.Phone
	}

	r.Metadata.FromModel(mod.Metadata)
}

func (r *StaffResponse) FromMuthawif(mod model.Muthawif) {
	r.ID = mod.ID
	r.Name = mod.Name

	if mod.Phone != nil {
		r.Phone = *mod.Phone
	}

	r.Metadata.FromModel(mod.Metadata)
}

type GetStaffResponse struct {
	Staff     []StaffResponse `json:"staff"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetStaffResponse) FromTourLeaders(models []model.TourLeader, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Staff = make([]StaffResponse, len(models))
	for i, mod := range models {
		r.Staff[i].FromTourLeader(mod)
	}
}

func (r *GetStaffResponse) FromMuthawifs(models []model.Muthawif, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Staff = make([]StaffResponse, len(models))
	for i, mod := range models {
		r.Staff[i].FromMuthawif(mod)
	}
}

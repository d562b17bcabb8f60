package dto

import (
	"safar/internal/domains/handling/model"
	"safar/shared"
	gDto "safar/shared/dto"
	gModel "safar/shared/model"
	"safar/shared/timezone"

	"github.com/google/uuid"
)

type CreateHandlingCompanyRequest struct {
	Name    string `json:"name" validate:"required,max=150"`
	PICName string `json:"pic_name" validate:"omitempty,max=150"`
	Phone   string `json:"phone" validate:"omitempty,max=30"`
	Email   string `json:"email" validate:"omitempty,email,max=150"`
	Address string `json:"address" validate:"omitempty,max=500"`
}

func (c *CreateHandlingCompanyRequest) ToModel(user string) model.HandlingCompany {
	return model.HandlingCompany{
		ID:      uuid.NewString(),
		Name:    c.Name,
		PICName: shared.NullableString(c.PICName),
		Phone:   shared.NullableString(c.Phone),
		Email:   shared.NullableString(c.Email),
		Address: shared.NullableString(c.Address),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateHandlingCompanyRequest struct {
	Name    string `db:"name" json:"name" validate:"required,max=150"`
	PICName string `json:"pic_name" validate:"omitempty,max=150"`
	Phone   string `json:"phone" validate:"omitempty,max=30"`
	Email   string `json:"email" validate:"omitempty,email,max=150"`
	Address string `json:"address" validate:"omitempty,max=500"`
}

func (u *UpdateHandlingCompanyRequest) ToFields(user string) map[string]any {
	fields := shared.TransformAllFields(*u, user)
	fields[model.FieldPICName] = shared.NullableString(u.PICName)
	fields[model.FieldPhone] = shared.NullableString(u.Phone)
	fields[model.FieldEmail] = shared.NullableString(u.Email)
	fields[model.FieldAddress] = shared.NullableString(u.Address)

	return fields
}

type HandlingCompanyResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	PICName string `json:"pic_name,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
	gDto.Metadata
}

func (r *HandlingCompanyResponse) FromModel(mod model.HandlingCompany) {
	r.ID = mod.ID
	r.Name = mod.Name

	if mod.PICName != nil {
		r.PICName = *mod.PICName
	}

	if mod.Phone != nil {
		r.Phone = *mod.Phone
	}

	if mod.Email != nil {
		r.Email = *mod.Email
	}

	if mod.Address != nil {
		r.Address = *mod.Address
	}

	r.Metadata.FromModel(mod.Metadata)
}

type GetHandlingCompaniesResponse struct {
	Companies []HandlingCompanyResponse `json:"companies"`
	TotalPage int                       `json:"total_page"`
	TotalData int                       `json:"total_data"`
}

func (r *GetHandlingCompaniesResponse) FromModels(models []model.HandlingCompany, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Companies = make([]HandlingCompanyResponse, len(models))
	for i, mod := range models {
		r.Companies[i].FromModel(mod)
	}
}

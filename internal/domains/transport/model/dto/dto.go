package dto

import (
	"safar/internal/domains/transport/model"
	"safar/shared"
	"safar/shared/constant"
	gDto "safar/shared/dto"
	gModel "safar/shared/model"
	"safar/shared/timezone"

	"github.com/google/uuid"
)

type CreateTransportRequest struct {
	Provider       string `json:"provider" validate:"omitempty,max=150"`
	VehicleType    string `json:"vehicle_type" validate:"omitempty,max=100"`
	Route          string `json:"route" validate:"omitempty,max=250"`
	PickupLocation string `json:"pickup_location" validate:"omitempty,max=250"`
	DropLocation   string `json:"drop_location" validate:"omitempty,max=250"`
	TransportDate  string `json:"transport_date" validate:"omitempty,dateonly"`
	TransportTime  string `json:"transport_time" validate:"omitempty,timeonly"`
	Pax            int    `json:"pax" validate:"omitempty,gte=0"`
}

func (c *CreateTransportRequest) ToModel(groupID, user string) (model.Transport, error) {
	transportDate, err := shared.ParseDatePtr(c.TransportDate)
	if err != nil {
		return model.Transport{}, err
	}

	return model.Transport{
		ID:             uuid.NewString(),
		GroupID:        groupID,
		Provider:       shared.NullableString(c.Provider),
		VehicleType:    shared.NullableString(c.VehicleType),
		Route:          shared.NullableString(c.Route),
		PickupLocation: shared.NullableString(c.PickupLocation),
		DropLocation:   shared.NullableString(c.DropLocation),
		TransportDate:  transportDate,
		TransportTime:  shared.NullableString(c.TransportTime),
		Pax:            c.Pax,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateTransportRequest struct {
	Provider       string `json:"provider" validate:"omitempty,max=150"`
	VehicleType    string `json:"vehicle_type" validate:"omitempty,max=100"`
	Route          string `json:"route" validate:"omitempty,max=250"`
	PickupLocation string `json:"pickup_location" validate:"omitempty,max=250"`
	DropLocation   string `json:"drop_location" validate:"omitempty,max=250"`
	TransportDate  string `json:"transport_date" validate:"omitempty,dateonly"`
	TransportTime  string `json:"transport_time" validate:"omitempty,timeonly"`
	Pax            int    `db:"pax" json:"pax" validate:"omitempty,gte=0"`
}

func (u *UpdateTransportRequest) ToFields(user string) (map[string]any, error) {
	transportDate, err := shared.ParseDatePtr(u.TransportDate)
	if err != nil {
		return nil, err
	}

	fields := shared.TransformAllFields(*u, user)
	fields[model.FieldProvider] = shared.NullableString(u.Provider)
	fields[model.FieldVehicleType] = shared.NullableString(u.VehicleType)
	fields[model.FieldRoute] = shared.NullableString(u.Route)
	fields[model.FieldPickupLocation] = shared.NullableString(u.PickupLocation)
	fields[model.FieldDropLocation] = shared.NullableString(u.DropLocation)
	fields[model.FieldTransportDate] = transportDate
	fields[model.FieldTransportTime] = shared.NullableString(u.TransportTime)

	return fields, nil
}

type TransportResponse struct {
	ID             string `json:"id"`
	GroupID        string `json:"group_id"`
	Provider       string `json:"provider,omitempty"`
	VehicleType    string `json:"vehicle_type,omitempty"`
	Route          string `json:"route,omitempty"`
	PickupLocation string `json:"pickup_location,omitempty"`
	DropLocation   string `json:"drop_location,omitempty"`
	TransportDate  string `json:"transport_date,omitempty"`
	TransportTime  string `json:"transport_time,omitempty"`
	Pax            int    `json:"pax"`
	gDto.Metadata
}

func (r *TransportResponse) FromModel(mod model.Transport) {
	r.ID = mod.ID
	r.GroupID = mod.GroupID
	r.Pax = mod.Pax

	if mod.Provider != nil {
		r.Provider = *mod.Provider
	}

	if mod.VehicleType != nil {
		r.VehicleType = *mod.VehicleType
	}

	if mod.Route != nil {
		r.Route = *mod.Route
	}

	if mod.PickupLocation != nil {
		r.PickupLocation = *mod.PickupLocation
	}

	if mod.DropLocation != nil {
		r.DropLocation = *mod.DropLocation
	}

	if mod.TransportDate != nil {
		r.TransportDate = timezone.Format(*mod.TransportDate, constant.DateOnlyFormat)
	}

	if mod.TransportTime != nil {
		r.TransportTime = *mod.TransportTime
	}

	r.Metadata.FromModel(mod.Metadata)
}

type GetTransportsResponse struct {
	Transports []TransportResponse `json:"transports"`
	TotalPage  int                 `json:"total_page"`
	TotalData  int                 `json:"total_data"`
}

func (r *GetTransportsResponse) FromModels(models []model.Transport, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Transports = make([]TransportResponse, len(models))
	for i, mod := range models {
		r.Transports[i].FromModel(mod)
	}
}

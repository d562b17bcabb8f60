package dto

import (
	"safar/internal/domains/flight/model"
	"safar/shared"
	"safar/shared/constant"
	gDto "safar/shared/dto"
	gModel "safar/shared/model"
	"safar/shared/timezone"

	"github.com/google/uuid"
)

type CreateFlightMasterRequest struct {
	Airline      string `json:"airline" validate:"omitempty,max=100"`
	FlightNumber string `json:"flight_number" validate:"omitempty,max=20"`
	Origin       string `json:"origin" validate:"omitempty,max=100"`
	Destination  string `json:"destination" validate:"omitempty,max=100"`
	ETD          string `json:"etd" validate:"omitempty,timeonly"`
	ETA          string `json:"eta" validate:"omitempty,timeonly"`
}

func (c *CreateFlightMasterRequest) ToModel(user string) (model.FlightMaster, error) {
	etd, err := shared.ParseTimeOfDayPtr(c.ETD)
	if err != nil {
		return model.FlightMaster{}, err
	}

	eta, err := shared.ParseTimeOfDayPtr(c.ETA)
	if err != nil {
		return model.FlightMaster{}, err
	}

	return model.FlightMaster{
		ID:           uuid.NewString(),
		Airline:      shared.NullableString(c.Airline),
		FlightNumber: shared.NullableString(c.FlightNumber),
		Origin:       shared.NullableString(c.Origin),
		Destination:  shared.NullableString(c.Destination),
		ETD:          etd,
		ETA:          eta,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateFlightMasterRequest struct {
	Airline      string `json:"airline" validate:"omitempty,max=100"`
	FlightNumber string `json:"flight_number" validate:"omitempty,max=20"`
	Origin       string `json:"origin" validate:"omitempty,max=100"`
	Destination  string `json:"destination" validate:"omitempty,max=100"`
	ETD          string `json:"etd" validate:"omitempty,timeonly"`
	ETA          string `json:"eta" validate:"omitempty,timeonly"`
}

func (u *UpdateFlightMasterRequest) ToFields(user string) (map[string]any, error) {
	etd, err := shared.ParseTimeOfDayPtr(u.ETD)
	if err != nil {
		return nil, err
	}

	eta, err := shared.ParseTimeOfDayPtr(u.ETA)
	if err != nil {
		return nil, err
	}

	fields := shared.TransformAllFields(*u, user)
	fields[model.FieldAirline] = shared.NullableString(u.Airline)
	fields[model.FieldFlightNumber] = shared.NullableString(u.FlightNumber)
	fields[model.FieldOrigin] = shared.NullableString(u.Origin)
	fields[model.FieldDestination] = shared.NullableString(u.Destination)
	fields[model.FieldETD] = etd
	fields[model.FieldETA] = eta

	return fields, nil
}

type FlightMasterResponse struct {
	ID           string `json:"id"`
	Airline      string `json:"airline,omitempty"`
	FlightNumber string `json:"flight_number,omitempty"`
	Origin       string `json:"origin,omitempty"`
	Destination  string `json:"destination,omitempty"`
	ETD          string `json:"etd,omitempty"`
	ETA          string `json:"eta,omitempty"`
	gDto.Metadata
}

func (r *FlightMasterResponse) FromModel(mod model.FlightMaster) {
	r.ID = mod.ID

	if mod.Airline != nil {
		r.Airline = *mod.Airline
	}

	if mod.FlightNumber != nil {
		r.FlightNumber = *mod.FlightNumber
	}

	if mod.Origin != nil {
		r.Origin = *mod.Origin
	}

	if mod.Destination != nil {
		r.Destination = *mod.Destination
	}

	if mod.ETD != nil {
		r.ETD = mod.ETD.Format(constant.TimeOnlyFormat)
	}

	if mod.ETA != nil {
		r.ETA = mod.ETA.Format(constant.TimeOnlyFormat)
	}

	r.Metadata.FromModel(mod.Metadata)
}

type GetFlightMastersResponse struct {
	Flights   []FlightMasterResponse `json:"flights"`
	TotalPage int                    `json:"total_page"`
	TotalData int                    `json:"total_data"`
}

func (r *GetFlightMastersResponse) FromModels(models []model.FlightMaster, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Flights = make([]FlightMasterResponse, len(models))
	for i, mod := range models {
		r.Flights[i].FromModel(mod)
	}
}

package dto

import (
	"safar/internal/domains/train/model"
	"safar/shared"
	"safar/shared/constant"
	gDto "safar/shared/dto"
	gModel "safar/shared/model"
	"safar/shared/timezone"

	"github.com/google/uuid"
)

type CreateTrainRequest struct {
	TrainDate     string `json:"train_date" validate:"omitempty,dateonly"`
	FromStation   string `json:"from_station" validate:"omitempty,max=100"`
	ToStation     string `json:"to_station" validate:"omitempty,max=100"`
	DepartureTime string `json:"departure_time" validate:"omitempty,timeonly"`
	Pax           int    `json:"pax" validate:"omitempty,gte=0"`
	Remarks       string `json:"remarks" validate:"omitempty,max=500"`
}

func (c *CreateTrainRequest) ToModel(groupID, user string) (model.Train, error) {
	trainDate, err := shared.ParseDatePtr(c.TrainDate)
	if err != nil {
		return model.Train{}, err
	}

	return model.Train{
		ID:            uuid.NewString(),
		GroupID:       groupID,
		TrainDate:     trainDate,
		FromStation:   shared.NullableString(c.FromStation),
		ToStation:     shared.NullableString(c.ToStation),
		DepartureTime: shared.NullableString(c.DepartureTime),
		Pax:           c.Pax,
		Remarks:       shared.NullableString(c.Remarks),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateTrainRequest struct {
	TrainDate     string `json:"train_date" validate:"omitempty,dateonly"`
	FromStation   string `json:"from_station" validate:"omitempty,max=100"`
	ToStation     string `json:"to_station" validate:"omitempty,max=100"`
	DepartureTime string `json:"departure_time" validate:"omitempty,timeonly"`
	Pax           int    `db:"pax" json:"pax" validate:"omitempty,gte=0"`
	Remarks       string `json:"remarks" validate:"omitempty,max=500"`
}

func (u *UpdateTrainRequest) ToFields(user string) (map[string]any, error) {
	trainDate, err := shared.ParseDatePtr(u.TrainDate)
	if err != nil {
		return nil, err
	}

	fields := shared.TransformAllFields(*u, user)
	fields[model.FieldTrainDate] = trainDate
	fields[model.FieldFromStation] = shared.NullableString(u.FromStation)
	fields[model.FieldToStation] = shared.NullableString(u.ToStation)
	fields[model.FieldDepartureTime] = shared.NullableString(u.DepartureTime)
	fields[model.FieldRemarks] = shared.NullableString(u.Remarks)

	return fields, nil
}

type TrainResponse struct {
	ID            string `json:"id"`
	GroupID       string `json:"group_id"`
	TrainDate     string `json:"train_date,omitempty"`
	FromStation   string `json:"from_station,omitempty"`
	ToStation     string `json:"to_station,omitempty"`
	DepartureTime string `json:"departure_time,omitempty"`
	Pax           int    `json:"pax"`
	Remarks       string `json:"remarks,omitempty"`
	gDto.Metadata
}

func (r *TrainResponse) FromModel(mod model.Train) {
	r.ID = mod.ID
	r.GroupID = mod.GroupID
	r.Pax = mod.Pax

	if mod.TrainDate != nil {
		r.TrainDate = timezone.Format(*mod.TrainDate, constant.DateOnlyFormat)
	}

	if mod.FromStation != nil {
		r.FromStation = *mod.FromStation
	}

	if mod.ToStation != nil {
		r.ToStation = *mod.ToStation
	}

	if mod.DepartureTime != nil {
		r.DepartureTime = *mod.DepartureTime
	}

	if mod.Remarks != nil {
		r.Remarks = *mod.Remarks
	}

	r.Metadata.FromModel(mod.Metadata)
}

type GetTrainsResponse struct {
	Trains    []TrainResponse `json:"trains"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetTrainsResponse) FromModels(models []model.Train, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Trains = make([]TrainResponse, len(models))
	for i, mod := range models {
		r.Trains[i].FromModel(mod)
	}
}

package dto

import (
	"safar/internal/domains/segment/model"
	"safar/shared"
	"safar/shared/constant"
	gDto "safar/shared/dto"
	gModel "safar/shared/model"
	"safar/shared/timezone"

	"github.com/google/uuid"
)

type CreateSegmentRequest struct {
	FlightMasterID string `json:"flight_master_id" validate:"required,uuid"`
	FlightDate     string `json:"flight_date" validate:"omitempty,dateonly"`
	SegmentOrder   int    `json:"segment_order" validate:"required,gte=1"`
	ETD            string `json:"etd" validate:"omitempty,timeonly"`
	ETA            string `json:"eta" validate:"omitempty,timeonly"`
	Remarks        string `json:"remarks" validate:"omitempty,max=500"`
}

func (c *CreateSegmentRequest) ToModel(groupID, user string) (model.Segment, error) {
	flightDate, err := shared.ParseDatePtr(c.FlightDate)
	if err != nil {
		return model.Segment{}, err
	}

	etd, err := shared.ParseTimeOfDayPtr(c.ETD)
	if err != nil {
		return model.Segment{}, err
	}

	eta, err := shared.ParseTimeOfDayPtr(c.ETA)
	if err != nil {
		return model.Segment{}, err
	}

	return model.Segment{
		ID:             uuid.NewString(),
		GroupID:        groupID,
		FlightMasterID: c.FlightMasterID,
		FlightDate:     flightDate,
		SegmentOrder:   c.SegmentOrder,
		ETD:            etd,
		ETA:            eta,
		Remarks:        shared.NullableString(c.Remarks),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateSegmentRequest struct {
	FlightMasterID string `db:"flight_master_id" json:"flight_master_id" validate:"required,uuid"`
	FlightDate     string `json:"flight_date" validate:"omitempty,dateonly"`
	SegmentOrder   int    `db:"segment_order" json:"segment_order" validate:"required,gte=1"`
	ETD            string `json:"etd" validate:"omitempty,timeonly"`
	ETA            string `json:"eta" validate:"omitempty,timeonly"`
	Remarks        string `db:"remarks" json:"remarks" validate:"omitempty,max=500"`
}

func (u *UpdateSegmentRequest) ToFields(user string) (map[string]any, error) {
	flightDate, err := shared.ParseDatePtr(u.FlightDate)
	if err != nil {
		return nil, err
	}

	etd, err := shared.ParseTimeOfDayPtr(u.ETD)
	if err != nil {
		return nil, err
	}

	eta, err := shared.ParseTimeOfDayPtr(u.ETA)
	if err != nil {
		return nil, err
	}

	fields := shared.TransformAllFields(*u, user)
	fields[model.FieldFlightDate] = flightDate
	fields[model.FieldETD] = etd
	fields[model.FieldETA] = eta
	fields[model.FieldRemarks] = shared.NullableString(u.Remarks)

	return fields, nil
}

type SegmentResponse struct {
	ID             string `json:"id"`
	GroupID        string `json:"group_id"`
	FlightMasterID string `json:"flight_master_id"`
	FlightDate     string `json:"flight_date,omitempty"`
	SegmentOrder   int    `json:"segment_order"`
	ETD            string `json:"etd,omitempty"`
	ETA            string `json:"eta,omitempty"`
	Remarks        string `json:"remarks,omitempty"`
	gDto.Metadata
}

func (r *SegmentResponse) FromModel(mod model.Segment) {
	r.ID = mod.ID
	r.GroupID = mod.GroupID
	r.FlightMasterID = mod.FlightMasterID
	r.SegmentOrder = mod.SegmentOrder

	if mod.FlightDate != nil {
		r.FlightDate = timezone.Format(*mod.FlightDate, constant.DateOnlyFormat)
	}

	if mod.ETD != nil {
		r.ETD = mod.ETD.Format(constant.TimeOnlyFormat)
	}

	if mod.ETA != nil {
		r.ETA = mod.ETA.Format(constant.TimeOnlyFormat)
	}

	if mod.Remarks != nil {
		r.Remarks = *mod.Remarks
	}

	r.Metadata.FromModel(mod.Metadata)
}

type GetSegmentsResponse struct {
	Segments  []SegmentResponse `json:"segments"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetSegmentsResponse) FromModels(models []model.Segment, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Segments = make([]SegmentResponse, len(models))
	for i, mod := range models {
		r.Segments[i].FromModel(mod)
	}
}

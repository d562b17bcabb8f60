package dto

import (
	"safar/internal/domains/rawdah/model"
	"safar/shared"
	"safar/shared/constant"
	gDto "safar/shared/dto"
	gModel "safar/shared/model"
	"safar/shared/timezone"

	"github.com/google/uuid"
)

type SaveRawdahRequest struct {
	MenDate   string `json:"men_date" validate:"omitempty,dateonly"`
	MenTime   string `json:"men_time" validate:"omitempty,timeonly"`
	MenPax    int    `json:"men_pax" validate:"omitempty,gte=0"`
	WomenDate string `json:"women_date" validate:"omitempty,dateonly"`
	WomenTime string `json:"women_time" validate:"omitempty,timeonly"`
	WomenPax  int    `json:"women_pax" validate:"omitempty,gte=0"`
}

func (s *SaveRawdahRequest) ToModel(groupID, user string) (model.RawdahAllocation, error) {
	menDate, err := shared.ParseDatePtr(s.MenDate)
	if err != nil {
		return model.RawdahAllocation{}, err
	}

	womenDate, err := shared.ParseDatePtr(s.WomenDate)
	if err != nil {
		return model.RawdahAllocation{}, err
	}

	return model.RawdahAllocation{
		ID:        uuid.NewString(),
		GroupID:   groupID,
		MenDate:   menDate,
		MenTime:   shared.NullableString(s.MenTime),
		MenPax:    s.MenPax,
		WomenDate: womenDate,
		WomenTime: shared.NullableString(s.WomenTime),
		WomenPax:  s.WomenPax,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type RawdahResponse struct {
	ID        string `json:"id"`
	GroupID   string `json:"group_id"`
	MenDate   string `json:"men_date,omitempty"`
	MenTime   string `json:"men_time,omitempty"`
	MenPax    int    `json:"men_pax"`
	WomenDate string `json:"women_date,omitempty"`
	WomenTime string `json:"women_time,omitempty"`
	WomenPax  int    `json:"women_pax"`
	gDto.Metadata
}

func (r *RawdahResponse) FromModel(mod model.RawdahAllocation) {
	r.ID = mod.ID
	r.GroupID = mod.GroupID
	r.MenPax = mod.MenPax
	r.WomenPax = mod.WomenPax

	if mod.MenDate != nil {
		r.MenDate = timezone.Format(*mod.MenDate, constant.DateOnlyFormat)
	}

	if mod.MenTime != nil {
		r.MenTime = *mod.MenTime
	}

	if mod.WomenDate != nil {
		r.WomenDate = timezone.Format(*mod.WomenDate, constant.DateOnlyFormat)
	}

	if mod.WomenTime != nil {
		r.WomenTime = *mod.WomenTime
	}

	r.Metadata.FromModel(mod.Metadata)
}

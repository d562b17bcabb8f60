package dto

import (
	"safar/internal/domains/hotel/model"
	"safar/shared"
	"safar/shared/constant"
	gDto "safar/shared/dto"
	gModel "safar/shared/model"
	"safar/shared/timezone"

	"github.com/google/uuid"
)

type CreateHotelRequest struct {
	City          string `json:"city" validate:"omitempty,max=100"`
	HotelName     string `json:"hotel_name" validate:"omitempty,max=200"`
	CheckinDate   string `json:"checkin_date" validate:"omitempty,dateonly"`
	CheckoutDate  string `json:"checkout_date" validate:"omitempty,dateonly"`
	RoomsDouble   int    `json:"rooms_double" validate:"omitempty,gte=0"`
	RoomsTriple   int    `json:"rooms_triple" validate:"omitempty,gte=0"`
	RoomsQuad     int    `json:"rooms_quad" validate:"omitempty,gte=0"`
	RoomsQuint    int    `json:"rooms_quint" validate:"omitempty,gte=0"`
	ReservationNo string `json:"reservation_no" validate:"omitempty,max=100"`
}

func (c *CreateHotelRequest) ToModel(groupID, user string) (model.Hotel, error) {
	checkinDate, err := shared.ParseDatePtr(c.CheckinDate)
	if err != nil {
		return model.Hotel{}, err
	}

	checkoutDate, err := shared.ParseDatePtr(c.CheckoutDate)
	if err != nil {
		return model.Hotel{}, err
	}

	return model.Hotel{
		ID:            uuid.NewString(),
		GroupID:       groupID,
		City:          shared.NullableString(c.City),
		HotelName:     shared.NullableString(c.HotelName),
		CheckinDate:   checkinDate,
		CheckoutDate:  checkoutDate,
		RoomsDouble:   c.RoomsDouble,
		RoomsTriple:   c.RoomsTriple,
		RoomsQuad:     c.RoomsQuad,
		RoomsQuint:    c.RoomsQuint,
		ReservationNo: shared.NullableString(c.ReservationNo),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateHotelRequest struct {
	City          string `json:"city" validate:"omitempty,max=100"`
	HotelName     string `json:"hotel_name" validate:"omitempty,max=200"`
	CheckinDate   string `json:"checkin_date" validate:"omitempty,dateonly"`
	CheckoutDate  string `json:"checkout_date" validate:"omitempty,dateonly"`
	RoomsDouble   int    `db:"rooms_double" json:"rooms_double" validate:"omitempty,gte=0"`
	RoomsTriple   int    `db:"rooms_triple" json:"rooms_triple" validate:"omitempty,gte=0"`
	RoomsQuad     int    `db:"rooms_quad" json:"rooms_quad" validate:"omitempty,gte=0"`
	RoomsQuint    int    `db:"rooms_quint" json:"rooms_quint" validate:"omitempty,gte=0"`
	ReservationNo string `json:"reservation_no" validate:"omitempty,max=100"`
}

func (u *UpdateHotelRequest) ToFields(user string) (map[string]any, error) {
	checkinDate, err := shared.ParseDatePtr(u.CheckinDate)
	if err != nil {
		return nil, err
	}

	checkoutDate, err := shared.ParseDatePtr(u.CheckoutDate)
	if err != nil {
		return nil, err
	}

	fields := shared.TransformAllFields(*u, user)
	fields[model.FieldCity] = shared.NullableString(u.City)
	fields[model.FieldHotelName] = shared.NullableString(u.HotelName)
	fields[model.FieldCheckinDate] = checkinDate
	fields[model.FieldCheckoutDate] = checkoutDate
	fields[model.FieldReservationNo] = shared.NullableString(u.ReservationNo)

	return fields, nil
}

type HotelResponse struct {
	ID            string `json:"id"`
	GroupID       string `json:"group_id"`
	City          string `json:"city,omitempty"`
	HotelName     string `json:"hotel_name,omitempty"`
	CheckinDate   string `json:"checkin_date,omitempty"`
	CheckoutDate  string `json:"checkout_date,omitempty"`
	RoomsDouble   int    `json:"rooms_double"`
	RoomsTriple   int    `json:"rooms_triple"`
	RoomsQuad     int    `json:"rooms_quad"`
	RoomsQuint    int    `json:"rooms_quint"`
	ReservationNo string `json:"reservation_no,omitempty"`
	gDto.Metadata
}

func (r *HotelResponse) FromModel(mod model.Hotel) {
	r.ID = mod.ID
	r.GroupID = mod.GroupID
	r.RoomsDouble = mod.RoomsDouble
	r.RoomsTriple = mod.RoomsTriple
	r.RoomsQuad = mod.RoomsQuad
	r.RoomsQuint = mod.RoomsQuint

	if mod.City != nil {
		r.City = *mod.City
	}

	if mod.HotelName != nil {
		r.HotelName = *mod.HotelName
	}

	if mod.CheckinDate != nil {
		r.CheckinDate = timezone.Format(*mod.CheckinDate, constant.DateOnlyFormat)
	}

	if mod.CheckoutDate != nil {
		r.CheckoutDate = timezone.Format(*mod.CheckoutDate, constant.DateOnlyFormat)
	}

	if mod.ReservationNo != nil {
		r.ReservationNo = *mod.ReservationNo
	}

	r.Metadata.FromModel(mod.Metadata)
}

type GetHotelsResponse struct {
	Hotels    []HotelResponse `json:"hotels"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetHotelsResponse) FromModels(models []model.Hotel, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Hotels = make([]HotelResponse, len(models))
	for i, mod := range models {
		r.Hotels[i].FromModel(mod)
	}
}

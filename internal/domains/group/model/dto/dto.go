package dto

import (
	"safar/internal/domains/group/model"
	segmentModel "safar/internal/domains/segment/model"
	transportDto "safar/internal/domains/transport/model/dto"
	transportModel "safar/internal/domains/transport/model"
	"safar/shared"
	"safar/shared/constant"
	gDto "safar/shared/dto"
	gModel "safar/shared/model"
	"safar/shared/timezone"

	"github.com/google/uuid"
)

type CreateGroupRequest struct {
	Code              string `json:"code" validate:"required,max=50"`
	ProgramType       string `json:"program_type" validate:"omitempty,max=100"`
	DepartureDate     string `json:"departure_date" validate:"omitempty,dateonly"`
	TotalPax          int    `json:"total_pax" validate:"omitempty,gte=0"`
	HandlingCompanyID string `json:"handling_company_id" validate:"omitempty,uuid"`
	Notes             string `json:"notes" validate:"omitempty,max=1000"`
}

func (c *CreateGroupRequest) ToModel(user string) (model.Group, error) {
	departureDate, err := shared.ParseDatePtr(c.DepartureDate)
	if err != nil {
		return model.Group{}, err
	}

	return model.Group{
		ID:                uuid.NewString(),
		Code:              c.Code,
		ProgramType:       shared.NullableString(c.ProgramType),
		DepartureDate:     departureDate,
		TotalPax:          c.TotalPax,
		Status:            model.StatusPreparation,
		HandlingCompanyID: shared.NullableString(c.HandlingCompanyID),
		Notes:             shared.NullableString(c.Notes),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateGroupRequest struct {
	Code              string `db:"code" json:"code" validate:"required,max=50"`
	ProgramType       string `db:"program_type" json:"program_type" validate:"omitempty,max=100"`
	DepartureDate     string `json:"departure_date" validate:"omitempty,dateonly"`
	TotalPax          int    `db:"total_pax" json:"total_pax" validate:"omitempty,gte=0"`
	HandlingCompanyID string `json:"handling_company_id" validate:"omitempty,uuid"`
	Notes             string `db:"notes" json:"notes" validate:"omitempty,max=1000"`
}

// ToFields converts the request into the full column map of an update;
// omitted optional fields clear their columns.
func (u *UpdateGroupRequest) ToFields(user string) (map[string]any, error) {
	departureDate, err := shared.ParseDatePtr(u.DepartureDate)
	if err != nil {
		return nil, err
	}

	fields := shared.TransformAllFields(*u, user)
	fields[model.FieldDepartureDate] = departureDate
	fields[model.FieldProgramType] = shared.NullableString(u.ProgramType)
	fields[model.FieldHandlingCompanyID] = shared.NullableString(u.HandlingCompanyID)
	fields[model.FieldNotes] = shared.NullableString(u.Notes)

	return fields, nil
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PREPARATION DEPARTURE ARRIVAL"`
}

type GroupResponse struct {
	ID                string `json:"id"`
	Code              string `json:"code"`
	ProgramType       string `json:"program_type,omitempty"`
	DepartureDate     string `json:"departure_date,omitempty"`
	TotalPax          int    `json:"total_pax"`
	Status            string `json:"status"`
	HandlingCompanyID string `json:"handling_company_id,omitempty"`
	Notes             string `json:"notes,omitempty"`
	gDto.Metadata
}

func (r *GroupResponse) FromModel(mod model.Group) {
	r.ID = mod.ID
	r.Code = mod.Code
	r.TotalPax = mod.TotalPax
	r.Status = mod.Status

	if mod.ProgramType != nil {
		r.ProgramType = *mod.ProgramType
	}

	if mod.DepartureDate != nil {
		r.DepartureDate = timezone.Format(*mod.DepartureDate, constant.DateOnlyFormat)
	}

	if mod.HandlingCompanyID != nil {
		r.HandlingCompanyID = *mod.HandlingCompanyID
	}

	if mod.Notes != nil {
		r.Notes = *mod.Notes
	}

	r.Metadata.FromModel(mod.Metadata)
}

type GetGroupsResponse struct {
	Groups    []GroupResponse `json:"groups"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetGroupsResponse) FromModels(models []model.Group, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Groups = make([]GroupResponse, len(models))
	for i, mod := range models {
		r.Groups[i].FromModel(mod)
	}
}

// ItineraryFlightResponse is one flight leg of the printable itinerary,
// enriched with its flight master.
type ItineraryFlightResponse struct {
	ID           string `json:"id"`
	FlightDate   string `json:"flight_date,omitempty"`
	SegmentOrder int    `json:"segment_order"`
	Airline      string `json:"airline,omitempty"`
	FlightNumber string `json:"flight_number,omitempty"`
	Origin       string `json:"origin,omitempty"`
	Destination  string `json:"destination,omitempty"`
	ETD          string `json:"etd,omitempty"`
	ETA          string `json:"eta,omitempty"`
	Remarks      string `json:"remarks,omitempty"`
}

func (r *ItineraryFlightResponse) FromModel(mod segmentModel.SegmentFlight) {
	r.ID = mod.ID
	r.SegmentOrder = mod.SegmentOrder

	if mod.FlightDate != nil {
		r.FlightDate = timezone.Format(*mod.FlightDate, constant.DateOnlyFormat)
	}

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

	// Segment-level overrides win over the master schedule. Times of day sit
	// on a dummy date, so they format as-is without timezone conversion.
	switch {
	case mod.ETD != nil:
		r.ETD = mod.ETD.Format(constant.TimeOnlyFormat)
	case mod.MasterETD != nil:
		r.ETD = mod.MasterETD.Format(constant.TimeOnlyFormat)
	}

	switch {
	case mod.ETA != nil:
		r.ETA = mod.ETA.Format(constant.TimeOnlyFormat)
	case mod.MasterETA != nil:
		r.ETA = mod.MasterETA.Format(constant.TimeOnlyFormat)
	}

	if mod.Remarks != nil {
		r.Remarks = *mod.Remarks
	}
}

// ItineraryResponse is the full itinerary of one group: the group record,
// its flight legs in segment order, and its transports by journey date.
type ItineraryResponse struct {
	Group      GroupResponse                    `json:"group"`
	Flights    []ItineraryFlightResponse        `json:"flights"`
	Transports []transportDto.TransportResponse `json:"transports"`
}

func (r *ItineraryResponse) FromModels(group model.Group, flights []segmentModel.SegmentFlight, transports []transportModel.Transport) {
	r.Group.FromModel(group)

	r.Flights = make([]ItineraryFlightResponse, len(flights))
	for i, mod := range flights {
		r.Flights[i].FromModel(mod)
	}

	r.Transports = make([]transportDto.TransportResponse, len(transports))
	for i, mod := range transports {
		r.Transports[i].FromModel(mod)
	}
}

// SummaryResponse buckets all groups by departure-date distance from now.
type SummaryResponse struct {
	Total    int             `json:"total"`
	Recent   []GroupResponse `json:"recent"`
	Upcoming []GroupResponse `json:"upcoming"`
	InSaudi  []GroupResponse `json:"in_saudi"`
	Awaiting []GroupResponse `json:"awaiting"`
}

package group

import (
	"net/http"
	"safar/infras/otel"
	"safar/internal/domains/group/model"
	"safar/internal/domains/group/model/dto"
	"safar/internal/domains/group/service"
	"safar/shared/constant"
	gDto "safar/shared/dto"
	"safar/shared/validator"
	"safar/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Group
	otel    otel.Otel
}

func New(service service.Group, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router registers the group routes on the shared /groups subtree; the
// nested per-group resources hang off the same {id} parameter.
func (handler *Handler) Router(routerGroup chi.Router) {
	routerGroup.Post("/", handler.CreateGroup)
	routerGroup.Get("/", handler.GetGroups)
	routerGroup.Get("/summary", handler.GetSummary)
	routerGroup.Get("/{id}", handler.GetGroupByID)
	routerGroup.Put("/{id}", handler.UpdateGroup)
	routerGroup.Patch("/{id}/status", handler.UpdateGroupStatus)
	routerGroup.Delete("/{id}", handler.DeleteGroup)
	routerGroup.Get("/{id}/itinerary", handler.GetGroupItinerary)
}

func (handler *Handler) CreateGroup(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateGroup")
	defer scope.End()

	var req dto.CreateGroupRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	group, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create group")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Group created successfully")

	response.WithJSON(w, http.StatusCreated, group)
}

func (handler *Handler) GetGroups(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGroups")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldCode,
				Operator: gDto.FilterOperatorLike,
				Value:    r.URL.Query().Get(model.FieldCode),
				Table:    model.TableName,
			},
		},
	}

	// program_type is nullable; an empty LIKE would exclude NULL rows.
	if programType := r.URL.Query().Get(model.FieldProgramType); programType != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldProgramType,
			Operator: gDto.FilterOperatorLike,
			Value:    programType,
			Table:    model.TableName,
		})
	}

	if status := r.URL.Query().Get(model.FieldStatus); status != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	groups, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get groups")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Groups retrieved successfully")

	response.WithJSON(w, http.StatusOK, groups)
}

func (handler *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSummary")
	defer scope.End()

	summary, err := handler.service.Summary(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get operations summary")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Operations summary retrieved successfully")

	response.WithJSON(w, http.StatusOK, summary)
}

func (handler *Handler) GetGroupByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGroupByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	group, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get group by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Group retrieved successfully")

	response.WithJSON(w, http.StatusOK, group)
}

func (handler *Handler) UpdateGroup(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateGroup")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.UpdateGroupRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update group")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Group updated successfully")

	response.WithMessage(w, http.StatusOK, "Group updated successfully")
}

func (handler *Handler) UpdateGroupStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateGroupStatus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.UpdateStatusRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateStatus(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update group status")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Group status updated successfully")

	response.WithMessage(w, http.StatusOK, "Group status updated successfully")
}

func (handler *Handler) DeleteGroup(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteGroup")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete group")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Group deleted successfully")

	response.WithMessage(w, http.StatusOK, "Group deleted successfully")
}

func (handler *Handler) GetGroupItinerary(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGroupItinerary")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	itinerary, err := handler.service.Itinerary(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get group itinerary")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Group itinerary retrieved successfully")

	response.WithJSON(w, http.StatusOK, itinerary)
}

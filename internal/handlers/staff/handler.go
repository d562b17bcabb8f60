package staff

import (
	"net/http"
	"safar/infras/otel"
	"safar/internal/domains/staff/model"
	"safar/internal/domains/staff/model/dto"
	"safar/internal/domains/staff/service"
	"safar/shared/constant"
	gDto "safar/shared/dto"
	"safar/shared/validator"
	"safar/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

// Handler serves both staff registries. Tour leaders and muthawifs share the
// same shape but live in separate tables and route trees.
type Handler struct {
	tourLeaders service.TourLeader
	muthawifs   service.Muthawif
	otel        otel.Otel
}

func New(tourLeaders service.TourLeader, muthawifs service.Muthawif, otel otel.Otel) Handler {
	return Handler{
		tourLeaders: tourLeaders,
		muthawifs:   muthawifs,
		otel:        otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/tour-leaders", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateTourLeader)
		routerGroup.Get("/", handler.GetTourLeaders)
		routerGroup.Get("/{id}", handler.GetTourLeaderByID)
		routerGroup.Put("/{id}", handler.UpdateTourLeader)
		routerGroup.Delete("/{id}", handler.DeleteTourLeader)
	})

	router.Route("/muthawifs", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateMuthawif)
		routerGroup.Get("/", handler.GetMuthawifs)
		routerGroup.Get("/{id}", handler.GetMuthawifByID)
		routerGroup.Put("/{id}", handler.UpdateMuthawif)
		routerGroup.Delete("/{id}", handler.DeleteMuthawif)
	})
}

func (handler *Handler) CreateTourLeader(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTourLeader")
	defer scope.End()

	var req dto.CreateStaffRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	staff, err := handler.tourLeaders.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create tour leader")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Tour leader created successfully")

	response.WithJSON(w, http.StatusCreated, staff)
}

func (handler *Handler) GetTourLeaders(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTourLeaders")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	staff, err := handler.tourLeaders.GetAll(ctx, queryParams, nameFilter(r, model.TourLeaderTableName))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get tour leaders")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Tour leaders retrieved successfully")

	response.WithJSON(w, http.StatusOK, staff)
}

func (handler *Handler) GetTourLeaderByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTourLeaderByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	staff, err := handler.tourLeaders.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get tour leader by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Tour leader retrieved successfully")

	response.WithJSON(w, http.StatusOK, staff)
}

func (handler *Handler) UpdateTourLeader(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTourLeader")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.UpdateStaffRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.tourLeaders.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update tour leader")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Tour leader updated successfully")

	response.WithMessage(w, http.StatusOK, "Tour leader updated successfully")
}

func (handler *Handler) DeleteTourLeader(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTourLeader")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.tourLeaders.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete tour leader")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Tour leader deleted successfully")

	response.WithMessage(w, http.StatusOK, "Tour leader deleted successfully")
}

func (handler *Handler) CreateMuthawif(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateMuthawif")
	defer scope.End()

	var req dto.CreateStaffRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	staff, err := handler.muthawifs.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create muthawif")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Muthawif created successfully")

	response.WithJSON(w, http.StatusCreated, staff)
}

func (handler *Handler) GetMuthawifs(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMuthawifs")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	staff, err := handler.muthawifs.GetAll(ctx, queryParams, nameFilter(r, model.MuthawifTableName))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get muthawifs")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Muthawifs retrieved successfully")

	response.WithJSON(w, http.StatusOK, staff)
}

func (handler *Handler) GetMuthawifByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMuthawifByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	staff, err := handler.muthawifs.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get muthawif by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Muthawif retrieved successfully")

	response.WithJSON(w, http.StatusOK, staff)
}

func (handler *Handler) UpdateMuthawif(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateMuthawif")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.UpdateStaffRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.muthawifs.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update muthawif")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Muthawif updated successfully")

	response.WithMessage(w, http.StatusOK, "Muthawif updated successfully")
}

func (handler *Handler) DeleteMuthawif(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteMuthawif")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.muthawifs.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete muthawif")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Muthawif deleted successfully")

	response.WithMessage(w, http.StatusOK, "Muthawif deleted successfully")
}

func nameFilter(r *http.Request, table string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldName,
				Operator: gDto.FilterOperatorLike,
				Value:    r.URL.Query().Get(model.FieldName),
				Table:    table,
			},
		},
	}
}

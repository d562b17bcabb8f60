package flight

import (
	"net/http"
	"safar/infras/otel"
	"safar/internal/domains/flight/model"
	"safar/internal/domains/flight/model/dto"
	"safar/internal/domains/flight/service"
	"safar/shared/constant"
	gDto "safar/shared/dto"
	"safar/shared/validator"
	"safar/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Flight
	otel    otel.Otel
}

func New(service service.Flight, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/flights", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateFlightMaster)
		routerGroup.Get("/", handler.GetFlightMasters)
		routerGroup.Get("/{id}", handler.GetFlightMasterByID)
		routerGroup.Put("/{id}", handler.UpdateFlightMaster)
		routerGroup.Delete("/{id}", handler.DeleteFlightMaster)
	})
}

func (handler *Handler) CreateFlightMaster(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateFlightMaster")
	defer scope.End()

	var req dto.CreateFlightMasterRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	flight, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create flight master")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Flight master created successfully")

	response.WithJSON(w, http.StatusCreated, flight)
}

func (handler *Handler) GetFlightMasters(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFlightMasters")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	// Master columns are nullable; an empty LIKE would exclude NULL rows,
	// so filters only apply when the caller sends a value.
	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	for _, field := range []string{model.FieldAirline, model.FieldFlightNumber, model.FieldOrigin, model.FieldDestination} {
		if value := r.URL.Query().Get(field); value != constant.Empty {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorLike,
				Value:    value,
				Table:    model.TableName,
			})
		}
	}

	flights, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get flight masters")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Flight masters retrieved successfully")

	response.WithJSON(w, http.StatusOK, flights)
}

func (handler *Handler) GetFlightMasterByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFlightMasterByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	flight, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get flight master by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Flight master retrieved successfully")

	response.WithJSON(w, http.StatusOK, flight)
}

func (handler *Handler) UpdateFlightMaster(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateFlightMaster")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.UpdateFlightMasterRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update flight master")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Flight master updated successfully")

	response.WithMessage(w, http.StatusOK, "Flight master updated successfully")
}

func (handler *Handler) DeleteFlightMaster(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteFlightMaster")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete flight master")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Flight master deleted successfully")

	response.WithMessage(w, http.StatusOK, "Flight master deleted successfully")
}

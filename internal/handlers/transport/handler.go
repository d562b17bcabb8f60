package transport

import (
	"net/http"
	"safar/infras/otel"
	"safar/internal/domains/transport/model/dto"
	"safar/internal/domains/transport/service"
	"safar/shared/constant"
	gDto "safar/shared/dto"
	"safar/shared/validator"
	"safar/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Transport
	otel    otel.Otel
}

func New(service service.Transport, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// GroupRouter registers the per-group collection routes on the /groups
// subtree.
func (handler *Handler) GroupRouter(groups chi.Router) {
	groups.Post("/{id}/transports", handler.CreateTransport)
	groups.Get("/{id}/transports", handler.GetTransports)
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/transports", func(routerGroup chi.Router) {
		routerGroup.Get("/{id}", handler.GetTransportByID)
		routerGroup.Put("/{id}", handler.UpdateTransport)
		routerGroup.Delete("/{id}", handler.DeleteTransport)
	})
}

func (handler *Handler) CreateTransport(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTransport")
	defer scope.End()

	groupID := chi.URLParam(r, constant.RequestParamID)

	var req dto.CreateTransportRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	transport, err := handler.service.Create(ctx, req, groupID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create transport")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Transport created successfully")

	response.WithJSON(w, http.StatusCreated, transport)
}

func (handler *Handler) GetTransports(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTransports")
	defer scope.End()

	groupID := chi.URLParam(r, constant.RequestParamID)

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	transports, err := handler.service.GetAll(ctx, queryParams, groupID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get transports")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Transports retrieved successfully")

	response.WithJSON(w, http.StatusOK, transports)
}

func (handler *Handler) GetTransportByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTransportByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	transport, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get transport by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Transport retrieved successfully")

	response.WithJSON(w, http.StatusOK, transport)
}

func (handler *Handler) UpdateTransport(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTransport")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.UpdateTransportRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update transport")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Transport updated successfully")

	response.WithMessage(w, http.StatusOK, "Transport updated successfully")
}

func (handler *Handler) DeleteTransport(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTransport")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete transport")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Transport deleted successfully")

	response.WithMessage(w, http.StatusOK, "Transport deleted successfully")
}

package segment

import (
	"net/http"
	"safar/infras/otel"
	"safar/internal/domains/segment/model/dto"
	"safar/internal/domains/segment/service"
	"safar/shared/constant"
	gDto "safar/shared/dto"
	"safar/shared/validator"
	"safar/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Segment
	otel    otel.Otel
}

func New(service service.Segment, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// GroupRouter registers the per-group collection routes on the /groups
// subtree.
func (handler *Handler) GroupRouter(groups chi.Router) {
	groups.Post("/{id}/segments", handler.CreateSegment)
	groups.Get("/{id}/segments", handler.GetSegments)
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/segments", func(routerGroup chi.Router) {
		routerGroup.Get("/{id}", handler.GetSegmentByID)
		routerGroup.Put("/{id}", handler.UpdateSegment)
		routerGroup.Delete("/{id}", handler.DeleteSegment)
	})
}

func (handler *Handler) CreateSegment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateSegment")
	defer scope.End()

	groupID := chi.URLParam(r, constant.RequestParamID)

	var req dto.CreateSegmentRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	segment, err := handler.service.Create(ctx, req, groupID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create segment")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Flight segment created successfully")

	response.WithJSON(w, http.StatusCreated, segment)
}

func (handler *Handler) GetSegments(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSegments")
	defer scope.End()

	groupID := chi.URLParam(r, constant.RequestParamID)

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	segments, err := handler.service.GetAll(ctx, queryParams, groupID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get segments")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Flight segments retrieved successfully")

	response.WithJSON(w, http.StatusOK, segments)
}

func (handler *Handler) GetSegmentByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSegmentByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	segment, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get segment by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Flight segment retrieved successfully")

	response.WithJSON(w, http.StatusOK, segment)
}

func (handler *Handler) UpdateSegment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateSegment")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.UpdateSegmentRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update segment")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Flight segment updated successfully")

	response.WithMessage(w, http.StatusOK, "Flight segment updated successfully")
}

func (handler *Handler) DeleteSegment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteSegment")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete segment")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Flight segment deleted successfully")

	response.WithMessage(w, http.StatusOK, "Flight segment deleted successfully")
}

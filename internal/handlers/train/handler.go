package train

import (
	"net/http"
	"safar/infras/otel"
	"safar/internal/domains/train/model/dto"
	"safar/internal/domains/train/service"
	"safar/shared/constant"
	gDto "safar/shared/dto"
	"safar/shared/validator"
	"safar/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Train
	otel    otel.Otel
}

func New(service service.Train, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// GroupRouter registers the per-group collection routes on the /groups
// subtree.
func (handler *Handler) GroupRouter(groups chi.Router) {
	groups.Post("/{id}/trains", handler.CreateTrain)
	groups.Get("/{id}/trains", handler.GetTrains)
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/trains", func(routerGroup chi.Router) {
		routerGroup.Get("/{id}", handler.GetTrainByID)
		routerGroup.Put("/{id}", handler.UpdateTrain)
		routerGroup.Delete("/{id}", handler.DeleteTrain)
	})
}

func (handler *Handler) CreateTrain(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTrain")
	defer scope.End()

	groupID := chi.URLParam(r, constant.RequestParamID)

	var req dto.CreateTrainRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	train, err := handler.service.Create(ctx, req, groupID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create train")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Train created successfully")

	response.WithJSON(w, http.StatusCreated, train)
}

func (handler *Handler) GetTrains(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTrains")
	defer scope.End()

	groupID := chi.URLParam(r, constant.RequestParamID)

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	trains, err := handler.service.GetAll(ctx, queryParams, groupID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get trains")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Trains retrieved successfully")

	response.WithJSON(w, http.StatusOK, trains)
}

func (handler *Handler) GetTrainByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTrainByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	train, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get train by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Train retrieved successfully")

	response.WithJSON(w, http.StatusOK, train)
}

func (handler *Handler) UpdateTrain(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTrain")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.UpdateTrainRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update train")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Train updated successfully")

	response.WithMessage(w, http.StatusOK, "Train updated successfully")
}

func (handler *Handler) DeleteTrain(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTrain")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete train")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Train deleted successfully")

	response.WithMessage(w, http.StatusOK, "Train deleted successfully")
}

package rawdah

import (
	"net/http"
	"safar/infras/otel"
	"safar/internal/domains/rawdah/model/dto"
	"safar/internal/domains/rawdah/service"
	"safar/shared/constant"
	"safar/shared/validator"
	"safar/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Rawdah
	otel    otel.Otel
}

func New(service service.Rawdah, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// GroupRouter registers the allocation routes on the /groups subtree; a
// group carries at most one allocation, so the resource is singular.
func (handler *Handler) GroupRouter(groups chi.Router) {
	groups.Put("/{id}/rawdah", handler.SaveRawdah)
	groups.Get("/{id}/rawdah", handler.GetRawdah)
	groups.Delete("/{id}/rawdah", handler.DeleteRawdah)
}

// SaveRawdah creates or replaces the group's allocation in one call.
func (handler *Handler) SaveRawdah(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SaveRawdah")
	defer scope.End()

	groupID := chi.URLParam(r, constant.RequestParamID)

	var req dto.SaveRawdahRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	allocation, err := handler.service.Save(ctx, req, groupID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to save rawdah allocation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Rawdah allocation saved successfully")

	response.WithJSON(w, http.StatusOK, allocation)
}

func (handler *Handler) GetRawdah(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRawdah")
	defer scope.End()

	groupID := chi.URLParam(r, constant.RequestParamID)

	allocation, err := handler.service.Get(ctx, groupID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rawdah allocation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Rawdah allocation retrieved successfully")

	response.WithJSON(w, http.StatusOK, allocation)
}

func (handler *Handler) DeleteRawdah(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRawdah")
	defer scope.End()

	groupID := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, groupID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete rawdah allocation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Rawdah allocation deleted successfully")

	response.WithMessage(w, http.StatusOK, "Rawdah allocation deleted successfully")
}

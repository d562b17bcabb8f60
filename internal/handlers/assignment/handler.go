package assignment

import (
	"net/http"
	"safar/infras/otel"
	"safar/internal/domains/assignment/model/dto"
	"safar/internal/domains/assignment/service"
	"safar/shared/constant"
	gDto "safar/shared/dto"
	"safar/shared/validator"
	"safar/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Assignment
	otel    otel.Otel
}

func New(service service.Assignment, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// GroupRouter registers the per-group collection routes on the /groups
// subtree.
func (handler *Handler) GroupRouter(groups chi.Router) {
	groups.Post("/{id}/assignments", handler.CreateAssignment)
	groups.Get("/{id}/assignments", handler.GetAssignments)
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/assignments", func(routerGroup chi.Router) {
		routerGroup.Delete("/{id}", handler.DeleteAssignment)
	})
}

func (handler *Handler) CreateAssignment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateAssignment")
	defer scope.End()

	groupID := chi.URLParam(r, constant.RequestParamID)

	var req dto.CreateAssignmentRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	assignment, err := handler.service.Create(ctx, req, groupID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create assignment")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Assignment created successfully")

	response.WithJSON(w, http.StatusCreated, assignment)
}

func (handler *Handler) GetAssignments(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAssignments")
	defer scope.End()

	groupID := chi.URLParam(r, constant.RequestParamID)

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	assignments, err := handler.service.GetAll(ctx, queryParams, groupID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get assignments")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Assignments retrieved successfully")

	response.WithJSON(w, http.StatusOK, assignments)
}

func (handler *Handler) DeleteAssignment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteAssignment")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete assignment")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Assignment deleted successfully")

	response.WithMessage(w, http.StatusOK, "Assignment deleted successfully")
}

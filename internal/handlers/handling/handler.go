package handling

import (
	"net/http"
	"safar/infras/otel"
	"safar/internal/domains/handling/model"
	"safar/internal/domains/handling/model/dto"
	"safar/internal/domains/handling/service"
	"safar/shared/constant"
	gDto "safar/shared/dto"
	"safar/shared/validator"
	"safar/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Handling
	otel    otel.Otel
}

func New(service service.Handling, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/handling-companies", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateHandlingCompany)
		routerGroup.Get("/", handler.GetHandlingCompanies)
		routerGroup.Get("/{id}", handler.GetHandlingCompanyByID)
		routerGroup.Put("/{id}", handler.UpdateHandlingCompany)
		routerGroup.Delete("/{id}", handler.DeleteHandlingCompany)
	})
}

func (handler *Handler) CreateHandlingCompany(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateHandlingCompany")
	defer scope.End()

	var req dto.CreateHandlingCompanyRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	company, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create handling company")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Handling company created successfully")

	response.WithJSON(w, http.StatusCreated, company)
}

func (handler *Handler) GetHandlingCompanies(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHandlingCompanies")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldName,
				Operator: gDto.FilterOperatorLike,
				Value:    r.URL.Query().Get(model.FieldName),
				Table:    model.TableName,
			},
		},
	}

	companies, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get handling companies")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Handling companies retrieved successfully")

	response.WithJSON(w, http.StatusOK, companies)
}

func (handler *Handler) GetHandlingCompanyByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHandlingCompanyByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	company, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get handling company by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Handling company retrieved successfully")

	response.WithJSON(w, http.StatusOK, company)
}

func (handler *Handler) UpdateHandlingCompany(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateHandlingCompany")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.UpdateHandlingCompanyRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update handling company")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Handling company updated successfully")

	response.WithMessage(w, http.StatusOK, "Handling company updated successfully")
}

func (handler *Handler) DeleteHandlingCompany(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteHandlingCompany")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete handling company")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Handling company deleted successfully")

	response.WithMessage(w, http.StatusOK, "Handling company deleted successfully")
}

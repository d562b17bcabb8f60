package service

import (
	"context"
	"fmt"

	"safar/config"
	"safar/infras/otel"
	"safar/internal/domains/flight/model"
	"safar/internal/domains/flight/model/dto"
	"safar/internal/domains/flight/repository"
	"safar/shared"
	"safar/shared/cache"
	"safar/shared/constant"
	gDto "safar/shared/dto"
	"safar/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetFlight    = "flight:get"
	cacheGetAllFlight = "flight:gets"
	cacheCountFlight  = "flight:count"
)

type Flight interface {
	Create(ctx context.Context, req dto.CreateFlightMasterRequest) (dto.FlightMasterResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetFlightMastersResponse, error)
	Get(ctx context.Context, id string) (dto.FlightMasterResponse, error)
	Update(ctx context.Context, req dto.UpdateFlightMasterRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.FlightMaster
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.FlightMaster, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Flight {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateFlightMasterRequest) (res dto.FlightMasterResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	mod, err := req.ToModel(user)
	if err != nil {
		return res, failure.BadRequest(err)
	}

	if err = s.repo.Insert(ctx, mod); err != nil {
		return res, err
	}

	s.invalidateListCaches(ctx)

	res.FromModel(mod)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetFlightMastersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllFlight, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for flight masters")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count flight masters")

		return res, fmt.Errorf("failed to count flight masters: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get flight masters")

		return res, fmt.Errorf("failed to get flight masters: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	s.saveCache(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.FlightMasterResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetFlight, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	flight, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get flight master")

		return res, fmt.Errorf("failed to get flight master: %w", err)
	}

	if flight.ID == constant.Empty {
		return res, failure.NotFound("flight master not found") // nolint:wrapcheck
	}

	res.FromModel(flight)

	s.saveCache(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateFlightMasterRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if flight master exists")

		return fmt.Errorf("failed to check if flight master exists: %w", err)
	}

	if !exist {
		return failure.NotFound("flight master not found") // nolint:wrapcheck
	}

	updatedFields, err := req.ToFields(user)
	if err != nil {
		return failure.BadRequest(err)
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update flight master")

		return fmt.Errorf("failed to update flight master: %w", err)
	}

	s.invalidateFlightCaches(ctx, id)

	return nil
}

// Delete removes the template. Storage restricts the delete while any
// segment still references it, which surfaces here as a conflict.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		if shared.PqErrorCode(err) == constant.PqErrorCodeFkViolation {
			return failure.Conflict("flight master is still referenced by flight segments")
		}

		log.Error().Err(err).Msg("failed to delete flight master")

		return fmt.Errorf("failed to delete flight master: %w", err)
	}

	s.invalidateFlightCaches(ctx, id)

	return nil
}

func (s *serviceImpl) saveCache(ctx context.Context, key string, value any) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, key, value, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Str("cacheKey", key).Msg("failed to save cache")
		}
	}()
}

func (s *serviceImpl) invalidateListCaches(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllFlight)
		shared.InvalidateCaches(c, s.cache, cacheCountFlight)
	}()
}

func (s *serviceImpl) invalidateFlightCaches(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetFlight, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete flight master cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllFlight)
		shared.InvalidateCaches(c, s.cache, cacheCountFlight)
	}()
}

package service

import (
	"context"
	"fmt"

	"safar/config"
	"safar/infras/otel"
	"safar/internal/domains/handling/model"
	"safar/internal/domains/handling/model/dto"
	"safar/internal/domains/handling/repository"
	"safar/shared"
	"safar/shared/cache"
	"safar/shared/constant"
	gDto "safar/shared/dto"
	"safar/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetHandling    = "handling:get"
	cacheGetAllHandling = "handling:gets"
	cacheCountHandling  = "handling:count"
)

type Handling interface {
	Create(ctx context.Context, req dto.CreateHandlingCompanyRequest) (dto.HandlingCompanyResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetHandlingCompaniesResponse, error)
	Get(ctx context.Context, id string) (dto.HandlingCompanyResponse, error)
	Update(ctx context.Context, req dto.UpdateHandlingCompanyRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.HandlingCompany
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.HandlingCompany, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Handling {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateHandlingCompanyRequest) (res dto.HandlingCompanyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	mod := req.ToModel(user)

	if err = s.repo.Insert(ctx, mod); err != nil {
		return res, err
	}

	s.invalidateListCaches(ctx)

	res.FromModel(mod)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetHandlingCompaniesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllHandling, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for handling companies")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count handling companies")

		return res, fmt.Errorf("failed to count handling companies: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get handling companies")

		return res, fmt.Errorf("failed to get handling companies: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	s.saveCache(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.HandlingCompanyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetHandling, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	company, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get handling company")

		return res, fmt.Errorf("failed to get handling company: %w", err)
	}

	if company.ID == constant.Empty {
		return res, failure.NotFound("handling company not found") // nolint:wrapcheck
	}

	res.FromModel(company)

	s.saveCache(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateHandlingCompanyRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if handling company exists")

		return fmt.Errorf("failed to check if handling company exists: %w", err)
	}

	if !exist {
		return failure.NotFound("handling company not found") // nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, req.ToFields(user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update handling company")

		return fmt.Errorf("failed to update handling company: %w", err)
	}

	s.invalidateHandlingCaches(ctx, id)

	return nil
}

// Delete removes the company. Groups referencing it keep existing with the
// reference nulled out by storage.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete handling company")

		return fmt.Errorf("failed to delete handling company: %w", err)
	}

	s.invalidateHandlingCaches(ctx, id)

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

		shared.InvalidateCaches(c, s.cache, cacheGetAllHandling)
		shared.InvalidateCaches(c, s.cache, cacheCountHandling)
	}()
}

func (s *serviceImpl) invalidateHandlingCaches(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetHandling, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete handling company cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllHandling)
		shared.InvalidateCaches(c, s.cache, cacheCountHandling)
	}()
}

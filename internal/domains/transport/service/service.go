package service

import (
	"context"
	"fmt"

	"safar/config"
	"safar/infras/otel"
	groupModel "safar/internal/domains/group/model"
	groupRepo "safar/internal/domains/group/repository"
	"safar/internal/domains/transport/model"
	"safar/internal/domains/transport/model/dto"
	"safar/internal/domains/transport/repository"
	"safar/shared"
	"safar/shared/cache"
	"safar/shared/constant"
	gDto "safar/shared/dto"
	"safar/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetTransport    = "transport:get"
	cacheGetAllTransport = "transport:gets"
	cacheCountTransport  = "transport:count"

	cacheGroupItinerary = "group:itinerary"
)

type Transport interface {
	Create(ctx context.Context, req dto.CreateTransportRequest, groupID string) (dto.TransportResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, groupID string) (dto.GetTransportsResponse, error)
	Get(ctx context.Context, id string) (dto.TransportResponse, error)
	Update(ctx context.Context, req dto.UpdateTransportRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo      repository.Transport
	groupRepo groupRepo.Group
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(repo repository.Transport, groupRepo groupRepo.Group, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Transport {
	return &serviceImpl{
		repo:      repo,
		groupRepo: groupRepo,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTransportRequest, groupID string) (res dto.TransportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	exist, err := s.groupRepo.Exist(ctx, shared.FilterByID(groupID, groupModel.FieldID, groupModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if group exists")

		return res, fmt.Errorf("failed to check if group exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound("group not found") // nolint:wrapcheck
	}

	mod, err := req.ToModel(groupID, user)
	if err != nil {
		return res, failure.BadRequest(err)
	}

	if err = s.repo.Insert(ctx, mod); err != nil {
		return res, err
	}

	s.invalidateTransportCaches(ctx, mod.ID, groupID)

	res.FromModel(mod)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, groupID string) (res dto.GetTransportsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.SortBy == constant.Empty {
		req.SortBy = model.TableName + "." + model.FieldTransportDate
		req.SortDir = gDto.SortDirAsc
	}

	filter := shared.FilterByID(groupID, model.FieldGroupID, model.TableName)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllTransport, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for transports")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count transports")

		return res, fmt.Errorf("failed to count transports: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get transports")

		return res, fmt.Errorf("failed to get transports: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	s.saveCache(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.TransportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetTransport, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	transport, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get transport")

		return res, fmt.Errorf("failed to get transport: %w", err)
	}

	if transport.ID == constant.Empty {
		return res, failure.NotFound("transport not found") // nolint:wrapcheck
	}

	res.FromModel(transport)

	s.saveCache(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateTransportRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check transport existence")

		return fmt.Errorf("failed to check transport existence: %w", err)
	}

	if current.ID == constant.Empty {
		return failure.NotFound("transport not found") // nolint:wrapcheck
	}

	updatedFields, err := req.ToFields(user)
	if err != nil {
		return failure.BadRequest(err)
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update transport")

		return fmt.Errorf("failed to update transport: %w", err)
	}

	s.invalidateTransportCaches(ctx, id, current.GroupID)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	current, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get transport")

		return fmt.Errorf("failed to get transport: %w", err)
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete transport")

		return fmt.Errorf("failed to delete transport: %w", err)
	}

	s.invalidateTransportCaches(ctx, id, current.GroupID)

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

func (s *serviceImpl) invalidateTransportCaches(ctx context.Context, id, groupID string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetTransport, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete transport cache")
		}

		if groupID != constant.Empty {
			if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGroupItinerary, groupID)); err != nil {
				log.Error().Err(err).Msg("failed to delete itinerary cache")
			}
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllTransport)
		shared.InvalidateCaches(c, s.cache, cacheCountTransport)
	}()
}

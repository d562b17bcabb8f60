package service

import (
	"context"
	"fmt"

	"safar/config"
	"safar/infras/otel"
	groupModel "safar/internal/domains/group/model"
	groupRepo "safar/internal/domains/group/repository"
	"safar/internal/domains/train/model"
	"safar/internal/domains/train/model/dto"
	"safar/internal/domains/train/repository"
	"safar/shared"
	"safar/shared/cache"
	"safar/shared/constant"
	gDto "safar/shared/dto"
	"safar/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetTrain    = "train:get"
	cacheGetAllTrain = "train:gets"
	cacheCountTrain  = "train:count"
)

type Train interface {
	Create(ctx context.Context, req dto.CreateTrainRequest, groupID string) (dto.TrainResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, groupID string) (dto.GetTrainsResponse, error)
	Get(ctx context.Context, id string) (dto.TrainResponse, error)
	Update(ctx context.Context, req dto.UpdateTrainRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo      repository.Train
	groupRepo groupRepo.Group
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(repo repository.Train, groupRepo groupRepo.Group, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Train {
	return &serviceImpl{
		repo:      repo,
		groupRepo: groupRepo,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTrainRequest, groupID string) (res dto.TrainResponse, err error) {
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

	s.invalidateTrainCaches(ctx, mod.ID)

	res.FromModel(mod)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, groupID string) (res dto.GetTrainsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.SortBy == constant.Empty {
		req.SortBy = model.TableName + "." + model.FieldTrainDate
		req.SortDir = gDto.SortDirAsc
	}

	filter := shared.FilterByID(groupID, model.FieldGroupID, model.TableName)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllTrain, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for trains")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count trains")

		return res, fmt.Errorf("failed to count trains: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get trains")

		return res, fmt.Errorf("failed to get trains: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	s.saveCache(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.TrainResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetTrain, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	train, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get train")

		return res, fmt.Errorf("failed to get train: %w", err)
	}

	if train.ID == constant.Empty {
		return res, failure.NotFound("train not found") // nolint:wrapcheck
	}

	res.FromModel(train)

	s.saveCache(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateTrainRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check train existence")

		return fmt.Errorf("failed to check train existence: %w", err)
	}

	if current.ID == constant.Empty {
		return failure.NotFound("train not found") // nolint:wrapcheck
	}

	updatedFields, err := req.ToFields(user)
	if err != nil {
		return failure.BadRequest(err)
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update train")

		return fmt.Errorf("failed to update train: %w", err)
	}

	s.invalidateTrainCaches(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete train")

		return fmt.Errorf("failed to delete train: %w", err)
	}

	s.invalidateTrainCaches(ctx, id)

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

func (s *serviceImpl) invalidateTrainCaches(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetTrain, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete train cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllTrain)
		shared.InvalidateCaches(c, s.cache, cacheCountTrain)
	}()
}

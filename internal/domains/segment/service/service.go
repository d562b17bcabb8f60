package service

import (
	"context"
	"fmt"

	"safar/config"
	"safar/infras/otel"
	groupModel "safar/internal/domains/group/model"
	groupRepo "safar/internal/domains/group/repository"
	"safar/internal/domains/segment/model"
	"safar/internal/domains/segment/model/dto"
	"safar/internal/domains/segment/repository"
	"safar/shared"
	"safar/shared/cache"
	"safar/shared/constant"
	gDto "safar/shared/dto"
	"safar/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetSegment    = "segment:get"
	cacheGetAllSegment = "segment:gets"
	cacheCountSegment  = "segment:count"

	cacheGroupItinerary = "group:itinerary"
)

type Segment interface {
	Create(ctx context.Context, req dto.CreateSegmentRequest, groupID string) (dto.SegmentResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, groupID string) (dto.GetSegmentsResponse, error)
	Get(ctx context.Context, id string) (dto.SegmentResponse, error)
	Update(ctx context.Context, req dto.UpdateSegmentRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo      repository.Segment
	groupRepo groupRepo.Group
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(repo repository.Segment, groupRepo groupRepo.Group, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Segment {
	return &serviceImpl{
		repo:      repo,
		groupRepo: groupRepo,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

// Create adds one flight leg to a group. The unique constraint on
// (group_id, segment_order) keeps the itinerary ordering key unambiguous; a
// duplicate order surfaces as a conflict and nothing is persisted.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateSegmentRequest, groupID string) (res dto.SegmentResponse, err error) {
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
		switch shared.PqErrorCode(err) {
		case constant.PqErrorCodeUniqueViolation:
			return res, failure.Conflict("segment order already used within this group")
		case constant.PqErrorCodeFkViolation:
			return res, failure.BadRequestFromString("flight master does not exist")
		}

		return res, err
	}

	s.invalidateSegmentCaches(ctx, mod.ID, groupID)

	res.FromModel(mod)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, groupID string) (res dto.GetSegmentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.SortBy == constant.Empty {
		req.SortBy = model.TableName + "." + model.FieldSegmentOrder
		req.SortDir = gDto.SortDirAsc
	}

	filter := shared.FilterByID(groupID, model.FieldGroupID, model.TableName)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllSegment, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for segments")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count segments")

		return res, fmt.Errorf("failed to count segments: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get segments")

		return res, fmt.Errorf("failed to get segments: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	s.saveCache(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.SegmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetSegment, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	segment, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get segment")

		return res, fmt.Errorf("failed to get segment: %w", err)
	}

	if segment.ID == constant.Empty {
		return res, failure.NotFound("segment not found") // nolint:wrapcheck
	}

	res.FromModel(segment)

	s.saveCache(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateSegmentRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check segment existence")

		return fmt.Errorf("failed to check segment existence: %w", err)
	}

	if current.ID == constant.Empty {
		return failure.NotFound("segment not found") // nolint:wrapcheck
	}

	updatedFields, err := req.ToFields(user)
	if err != nil {
		return failure.BadRequest(err)
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		switch shared.PqErrorCode(err) {
		case constant.PqErrorCodeUniqueViolation:
			return failure.Conflict("segment order already used within this group")
		case constant.PqErrorCodeFkViolation:
			return failure.BadRequestFromString("flight master does not exist")
		}

		log.Error().Err(err).Msg("failed to update segment")

		return fmt.Errorf("failed to update segment: %w", err)
	}

	s.invalidateSegmentCaches(ctx, id, current.GroupID)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	current, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get segment")

		return fmt.Errorf("failed to get segment: %w", err)
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete segment")

		return fmt.Errorf("failed to delete segment: %w", err)
	}

	s.invalidateSegmentCaches(ctx, id, current.GroupID)

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

func (s *serviceImpl) invalidateSegmentCaches(ctx context.Context, id, groupID string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetSegment, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete segment cache")
		}

		if groupID != constant.Empty {
			if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGroupItinerary, groupID)); err != nil {
				log.Error().Err(err).Msg("failed to delete itinerary cache")
			}
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllSegment)
		shared.InvalidateCaches(c, s.cache, cacheCountSegment)
	}()
}

package service

import (
	"context"
	"fmt"

	"safar/config"
	"safar/infras/otel"
	groupModel "safar/internal/domains/group/model"
	groupRepo "safar/internal/domains/group/repository"
	"safar/internal/domains/rawdah/model"
	"safar/internal/domains/rawdah/model/dto"
	"safar/internal/domains/rawdah/repository"
	"safar/shared"
	"safar/shared/cache"
	"safar/shared/constant"
	"safar/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetRawdah = "rawdah:get"
)

type Rawdah interface {
	Save(ctx context.Context, req dto.SaveRawdahRequest, groupID string) (dto.RawdahResponse, error)
	Get(ctx context.Context, groupID string) (dto.RawdahResponse, error)
	Delete(ctx context.Context, groupID string) error
}

type serviceImpl struct {
	repo      repository.Rawdah
	groupRepo groupRepo.Group
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(repo repository.Rawdah, groupRepo groupRepo.Group, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Rawdah {
	return &serviceImpl{
		repo:      repo,
		groupRepo: groupRepo,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

// Save writes the group's allocation, inserting or replacing in one atomic
// statement so concurrent saves for the same group converge on a single row.
func (s *serviceImpl) Save(ctx context.Context, req dto.SaveRawdahRequest, groupID string) (res dto.RawdahResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Save")
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

	if err = s.repo.Upsert(ctx, mod); err != nil {
		return res, err
	}

	// Re-read so the response reflects the surviving row, not the candidate
	// insert (an earlier row keeps its id and creation metadata).
	saved, err := s.repo.Get(ctx, shared.FilterByID(groupID, model.FieldGroupID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get rawdah allocation")

		return res, fmt.Errorf("failed to get rawdah allocation: %w", err)
	}

	s.invalidateRawdahCaches(ctx, groupID)

	res.FromModel(saved)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, groupID string) (res dto.RawdahResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetRawdah, groupID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	allocation, err := s.repo.Get(ctx, shared.FilterByID(groupID, model.FieldGroupID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get rawdah allocation")

		return res, fmt.Errorf("failed to get rawdah allocation: %w", err)
	}

	if allocation.ID == constant.Empty {
		return res, failure.NotFound("rawdah allocation not found") // nolint:wrapcheck
	}

	res.FromModel(allocation)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Str("cacheKey", cacheKey).Msg("failed to save cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, groupID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.repo.Delete(ctx, shared.FilterByID(groupID, model.FieldGroupID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete rawdah allocation")

		return fmt.Errorf("failed to delete rawdah allocation: %w", err)
	}

	s.invalidateRawdahCaches(ctx, groupID)

	return nil
}

func (s *serviceImpl) invalidateRawdahCaches(ctx context.Context, groupID string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRawdah, groupID)); err != nil {
			log.Error().Err(err).Msg("failed to delete rawdah cache")
		}
	}()
}

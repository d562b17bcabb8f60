package service

import (
	"context"
	"fmt"

	"safar/config"
	"safar/infras/otel"
	"safar/internal/domains/staff/model"
	"safar/internal/domains/staff/model/dto"
	"safar/internal/domains/staff/repository"
	"safar/shared"
	"safar/shared/cache"
	"safar/shared/constant"
	gDto "safar/shared/dto"
	"safar/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetTourLeader    = "tourleader:get"
	cacheGetAllTourLeader = "tourleader:gets"

	cacheGetMuthawif    = "muthawif:get"
	cacheGetAllMuthawif = "muthawif:gets"
)

type TourLeader interface {
	Create(ctx context.Context, req dto.CreateStaffRequest) (dto.StaffResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetStaffResponse, error)
	Get(ctx context.Context, id string) (dto.StaffResponse, error)
	Update(ctx context.Context, req dto.UpdateStaffRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type Muthawif interface {
	Create(ctx context.Context, req dto.CreateStaffRequest) (dto.StaffResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetStaffResponse, error)
	Get(ctx context.Context, id string) (dto.StaffResponse, error)
	Update(ctx context.Context, req dto.UpdateStaffRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type tourLeaderImpl struct {
	repo  repository.TourLeader
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func NewTourLeader(repo repository.TourLeader, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) TourLeader {
	return &tourLeaderImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *tourLeaderImpl) Create(ctx context.Context, req dto.CreateStaffRequest) (res dto.StaffResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	mod := req.ToTourLeader(user)

	if err = s.repo.Insert(ctx, mod); err != nil {
		return res, err
	}

	go shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheGetAllTourLeader)

	res.FromTourLeader(mod)

	return res, nil
}

func (s *tourLeaderImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetStaffResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.SortBy == constant.Empty {
		req.SortBy = model.TourLeaderTableName + "." + model.FieldName
		req.SortDir = gDto.SortDirAsc
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllTourLeader, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count tour leaders")

		return res, fmt.Errorf("failed to count tour leaders: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get tour leaders")

		return res, fmt.Errorf("failed to get tour leaders: %w", err)
	}

	res.FromTourLeaders(models, total, req.Limit)

	s.saveCache(ctx, cacheKey, res)

	return res, nil
}

func (s *tourLeaderImpl) Get(ctx context.Context, id string) (res dto.StaffResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetTourLeader, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	staff, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TourLeaderTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get tour leader")

		return res, fmt.Errorf("failed to get tour leader: %w", err)
	}

	if staff.ID == constant.Empty {
		return res, failure.NotFound("tour leader not found") // nolint:wrapcheck
	}

	res.FromTourLeader(staff)

	s.saveCache(ctx, cacheKey, res)

	return res, nil
}

func (s *tourLeaderImpl) Update(ctx context.Context, req dto.UpdateStaffRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TourLeaderTableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if tour leader exists")

		return fmt.Errorf("failed to check if tour leader exists: %w", err)
	}

	if !exist {
		return failure.NotFound("tour leader not found") // nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, req.ToFields(user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update tour leader")

		return fmt.Errorf("failed to update tour leader: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *tourLeaderImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TourLeaderTableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete tour leader")

		return fmt.Errorf("failed to delete tour leader: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *tourLeaderImpl) saveCache(ctx context.Context, key string, value any) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, key, value, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Str("cacheKey", key).Msg("failed to save cache")
		}
	}()
}

func (s *tourLeaderImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetTourLeader, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete tour leader cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllTourLeader)
	}()
}

type muthawifImpl struct {
	repo  repository.Muthawif
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func NewMuthawif(repo repository.Muthawif, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Muthawif {
	return &muthawifImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *muthawifImpl) Create(ctx context.Context, req dto.CreateStaffRequest) (res dto.StaffResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	mod := req.ToMuthawif(user)

	if err = s.repo.Insert(ctx, mod); err != nil {
		return res, err
	}

	go shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheGetAllMuthawif)

	res.FromMuthawif(mod)

	return res, nil
}

func (s *muthawifImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetStaffResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.SortBy == constant.Empty {
		req.SortBy = model.MuthawifTableName + "." + model.FieldName
		req.SortDir = gDto.SortDirAsc
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllMuthawif, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count muthawifs")

		return res, fmt.Errorf("failed to count muthawifs: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get muthawifs")

		return res, fmt.Errorf("failed to get muthawifs: %w", err)
	}

	res.FromMuthawifs(models, total, req.Limit)

	s.saveCache(ctx, cacheKey, res)

	return res, nil
}

func (s *muthawifImpl) Get(ctx context.Context, id string) (res dto.StaffResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetMuthawif, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	staff, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.MuthawifTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get muthawif")

		return res, fmt.Errorf("failed to get muthawif: %w", err)
	}

	if staff.ID == constant.Empty {
		return res, failure.NotFound("muthawif not found") // nolint:wrapcheck
	}

	res.FromMuthawif(staff)

	s.saveCache(ctx, cacheKey, res)

	return res, nil
}

func (s *muthawifImpl) Update(ctx context.Context, req dto.UpdateStaffRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.MuthawifTableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if muthawif exists")

		return fmt.Errorf("failed to check if muthawif exists: %w", err)
	}

	if !exist {
		return failure.NotFound("muthawif not found") // nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, req.ToFields(user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update muthawif")

		return fmt.Errorf("failed to update muthawif: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *muthawifImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.MuthawifTableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete muthawif")

		return fmt.Errorf("failed to delete muthawif: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *muthawifImpl) saveCache(ctx context.Context, key string, value any) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, key, value, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Str("cacheKey", key).Msg("failed to save cache")
		}
	}()
}

func (s *muthawifImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetMuthawif, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete muthawif cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllMuthawif)
	}()
}

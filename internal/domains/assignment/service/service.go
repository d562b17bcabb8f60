package service

import (
	"context"
	"fmt"

	"safar/config"
	"safar/infras/otel"
	"safar/internal/domains/assignment/model"
	"safar/internal/domains/assignment/model/dto"
	"safar/internal/domains/assignment/repository"
	groupModel "safar/internal/domains/group/model"
	groupRepo "safar/internal/domains/group/repository"
	staffModel "safar/internal/domains/staff/model"
	staffRepo "safar/internal/domains/staff/repository"
	"safar/shared"
	"safar/shared/cache"
	"safar/shared/constant"
	gDto "safar/shared/dto"
	"safar/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllAssignment = "assignment:gets"
)

type Assignment interface {
	Create(ctx context.Context, req dto.CreateAssignmentRequest, groupID string) (dto.AssignmentResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, groupID string) (dto.GetAssignmentsResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo           repository.Assignment
	groupRepo      groupRepo.Group
	tourLeaderRepo staffRepo.TourLeader
	muthawifRepo   staffRepo.Muthawif
	cfg            *config.Config
	cache          cache.RedisCache
	otel           otel.Otel
}

func New(repo repository.Assignment, groupRepo groupRepo.Group, tourLeaderRepo staffRepo.TourLeader, muthawifRepo staffRepo.Muthawif, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Assignment {
	return &serviceImpl{
		repo:           repo,
		groupRepo:      groupRepo,
		tourLeaderRepo: tourLeaderRepo,
		muthawifRepo:   muthawifRepo,
		cfg:            cfg,
		cache:          cache,
		otel:           otel,
	}
}

// Create links a staff member to a group. The role discriminator decides
// which reference must be populated; the other must stay empty.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateAssignmentRequest, groupID string) (res dto.AssignmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !model.ValidRole(req.Role) {
		return res, failure.BadRequestFromString("invalid role: " + req.Role) // nolint:wrapcheck
	}

	if err = s.validateReference(ctx, req); err != nil {
		return res, err
	}

	exist, err := s.groupRepo.Exist(ctx, shared.FilterByID(groupID, groupModel.FieldID, groupModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if group exists")

		return res, fmt.Errorf("failed to check if group exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound("group not found") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	mod := req.ToModel(groupID, user)

	if err = s.repo.Insert(ctx, mod); err != nil {
		return res, err
	}

	go shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheGetAllAssignment)

	res.FromModel(mod)

	return res, nil
}

func (s *serviceImpl) validateReference(ctx context.Context, req dto.CreateAssignmentRequest) error {
	switch req.Role {
	case model.RoleTourLeader:
		if req.TourLeaderID == constant.Empty || req.MuthawifID != constant.Empty {
			return failure.BadRequestFromString("tour leader assignment must reference exactly one tour leader") // nolint:wrapcheck
		}

		exist, err := s.tourLeaderRepo.Exist(ctx, shared.FilterByID(req.TourLeaderID, staffModel.FieldID, staffModel.TourLeaderTableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to check if tour leader exists")

			return fmt.Errorf("failed to check if tour leader exists: %w", err)
		}

		if !exist {
			return failure.NotFound("tour leader not found") // nolint:wrapcheck
		}
	case model.RoleMuthawif:
		if req.MuthawifID == constant.Empty || req.TourLeaderID != constant.Empty {
			return failure.BadRequestFromString("muthawif assignment must reference exactly one muthawif") // nolint:wrapcheck
		}

		exist, err := s.muthawifRepo.Exist(ctx, shared.FilterByID(req.MuthawifID, staffModel.FieldID, staffModel.MuthawifTableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to check if muthawif exists")

			return fmt.Errorf("failed to check if muthawif exists: %w", err)
		}

		if !exist {
			return failure.NotFound("muthawif not found") // nolint:wrapcheck
		}
	}

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, groupID string) (res dto.GetAssignmentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(groupID, model.FieldGroupID, model.TableName)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllAssignment, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count assignments")

		return res, fmt.Errorf("failed to count assignments: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get assignments")

		return res, fmt.Errorf("failed to get assignments: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Str("cacheKey", cacheKey).Msg("failed to save cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete assignment")

		return fmt.Errorf("failed to delete assignment: %w", err)
	}

	go shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheGetAllAssignment)

	return nil
}

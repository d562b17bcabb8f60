package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"safar/config"
	"safar/infras/otel"
	"safar/internal/domains/group/model"
	"safar/internal/domains/group/model/dto"
	"safar/internal/domains/group/repository"
	segmentRepo "safar/internal/domains/segment/repository"
	transportModel "safar/internal/domains/transport/model"
	transportRepo "safar/internal/domains/transport/repository"
	"safar/shared"
	"safar/shared/cache"
	"safar/shared/constant"
	gDto "safar/shared/dto"
	"safar/shared/failure"
	"safar/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetGroup       = "group:get"
	cacheGetAllGroup    = "group:gets"
	cacheCountGroup     = "group:count"
	cacheGroupItinerary = "group:itinerary"
	cacheGroupSummary   = "group:summary"
)

const (
	// upcomingWindowDays bounds the "upcoming" bucket: departure 1..7 days out.
	upcomingWindowDays = 7
	// inCountryWindowDays bounds the "in_saudi" bucket: departure less than
	// 30 days in the past. Older groups are considered completed.
	inCountryWindowDays = 30
	// recentLimit caps the "recent" view at the newest groups by creation time.
	recentLimit = 8
)

type Group interface {
	Create(ctx context.Context, req dto.CreateGroupRequest) (dto.GroupResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetGroupsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.GroupResponse, error)
	Update(ctx context.Context, req dto.UpdateGroupRequest, id string) error
	UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest, id string) error
	Delete(ctx context.Context, id string) error
	Itinerary(ctx context.Context, id string) (dto.ItineraryResponse, error)
	Summary(ctx context.Context) (dto.SummaryResponse, error)
}

type serviceImpl struct {
	repo          repository.Group
	segmentRepo   segmentRepo.Segment
	transportRepo transportRepo.Transport
	cfg           *config.Config
	cache         cache.RedisCache
	otel          otel.Otel
}

func New(repo repository.Group, segmentRepo segmentRepo.Segment, transportRepo transportRepo.Transport, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Group {
	return &serviceImpl{
		repo:          repo,
		segmentRepo:   segmentRepo,
		transportRepo: transportRepo,
		cfg:           cfg,
		cache:         cache,
		otel:          otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateGroupRequest) (res dto.GroupResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	mod, err := req.ToModel(user)
	if err != nil {
		return res, failure.BadRequest(err)
	}

	if err = s.repo.Insert(ctx, mod); err != nil {
		if shared.PqErrorCode(err) == constant.PqErrorCodeUniqueViolation {
			return res, failure.Conflict("group code already in use")
		}

		return res, err
	}

	s.invalidateListCaches(ctx)

	res.FromModel(mod)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetGroupsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.SortBy == constant.Empty {
		req.SortBy = model.TableName + "." + constant.FieldCreatedAt
		req.SortDir = gDto.SortDirDesc
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllGroup, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for groups")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count groups")

		return res, fmt.Errorf("failed to count groups: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get groups")

		return res, fmt.Errorf("failed to get groups: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	s.saveCache(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountGroup, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count groups")

		return res, fmt.Errorf("failed to count groups: %w", err)
	}

	s.saveCache(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.GroupResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetGroup, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for group")

		return res, nil
	}

	group, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get group")

		return res, fmt.Errorf("failed to get group: %w", err)
	}

	if group.ID == constant.Empty {
		return res, failure.NotFound("group not found") // nolint:wrapcheck
	}

	res.FromModel(group)

	s.saveCache(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateGroupRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if group exists")

		return fmt.Errorf("failed to check if group exists: %w", err)
	}

	if !exist {
		return failure.NotFound("group not found") // nolint:wrapcheck
	}

	updatedFields, err := req.ToFields(user)
	if err != nil {
		return failure.BadRequest(err)
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		if shared.PqErrorCode(err) == constant.PqErrorCodeUniqueViolation {
			return failure.Conflict("group code already in use")
		}

		log.Error().Err(err).Msg("failed to update group")

		return fmt.Errorf("failed to update group: %w", err)
	}

	s.invalidateGroupCaches(ctx, id)

	return nil
}

// UpdateStatus sets the group status directly. Any of the three lifecycle
// values may be set at any time; values outside the closed set are rejected
// before touching storage.
func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !model.ValidStatus(req.Status) {
		return failure.BadRequestFromString("invalid status: " + req.Status) // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if group exists")

		return fmt.Errorf("failed to check if group exists: %w", err)
	}

	if !exist {
		return failure.NotFound("group not found") // nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldStatus:        req.Status,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update group status")

		return fmt.Errorf("failed to update group status: %w", err)
	}

	s.invalidateGroupCaches(ctx, id)

	return nil
}

// Delete removes the group and, through storage-level cascades, every child
// record it owns. Deleting an absent id is a no-op.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete group")

		return fmt.Errorf("failed to delete group: %w", err)
	}

	s.invalidateGroupCaches(ctx, id)

	return nil
}

// Itinerary composes the full travel document of one group: the group record,
// its flight segments in segment order joined with their flight masters, and
// its transports sorted by journey date.
func (s *serviceImpl) Itinerary(ctx context.Context, id string) (res dto.ItineraryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Itinerary")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGroupItinerary, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for itinerary")

		return res, nil
	}

	group, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get group")

		return res, fmt.Errorf("failed to get group: %w", err)
	}

	if group.ID == constant.Empty {
		return res, failure.NotFound("group not found") // nolint:wrapcheck
	}

	flights, err := s.segmentRepo.GetAllWithFlight(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get flight segments")

		return res, fmt.Errorf("failed to get flight segments: %w", err)
	}

	transportParams := gDto.QueryParams{
		SortBy:  transportModel.TableName + "." + transportModel.FieldTransportDate,
		SortDir: gDto.SortDirAsc,
	}

	transports, err := s.transportRepo.GetAll(ctx, transportParams, shared.FilterByID(id, transportModel.FieldGroupID, transportModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get transports")

		return res, fmt.Errorf("failed to get transports: %w", err)
	}

	res.FromModels(group, flights, transports)

	s.saveCache(ctx, cacheKey, res)

	return res, nil
}

// Summary buckets every group by how far its departure date sits from now.
func (s *serviceImpl) Summary(ctx context.Context) (res dto.SummaryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Summary")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheGroupSummary, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheGroupSummary).Msg("cache hit for summary")

		return res, nil
	}

	groups, err := s.repo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get groups")

		return res, fmt.Errorf("failed to get groups: %w", err)
	}

	res = BuildSummary(groups, timezone.Now())

	s.saveCache(ctx, cacheGroupSummary, res)

	return res, nil
}

// BuildSummary classifies groups against now. Departure dates are stored at
// midnight, so diffDays with ceiling division lands a same-day departure on 0
// and classifies it as in_saudi; the "departed or departing" check runs
// before the upcoming window on purpose.
func BuildSummary(groups []model.Group, now time.Time) dto.SummaryResponse {
	res := dto.SummaryResponse{
		Total:    len(groups),
		Recent:   []dto.GroupResponse{},
		Upcoming: []dto.GroupResponse{},
		InSaudi:  []dto.GroupResponse{},
		Awaiting: []dto.GroupResponse{},
	}

	byCreation := make([]model.Group, len(groups))
	copy(byCreation, groups)
	sort.SliceStable(byCreation, func(i, j int) bool {
		return byCreation[i].CreatedAt.After(byCreation[j].CreatedAt)
	})

	for i, mod := range byCreation {
		if i == recentLimit {
			break
		}

		var item dto.GroupResponse
		item.FromModel(mod)
		res.Recent = append(res.Recent, item)
	}

	for _, mod := range groups {
		if mod.DepartureDate == nil {
			continue
		}

		var item dto.GroupResponse
		item.FromModel(mod)

		diff := diffDays(*mod.DepartureDate, now)

		switch {
		case diff <= 0 && diff > -inCountryWindowDays:
			res.InSaudi = append(res.InSaudi, item)
		case diff > 0 && diff <= upcomingWindowDays:
			res.Upcoming = append(res.Upcoming, item)
		case diff > upcomingWindowDays:
			res.Awaiting = append(res.Awaiting, item)
		}
	}

	return res
}

// diffDays is the whole-day distance from now to departure, rounded up.
func diffDays(departure, now time.Time) int {
	return int(math.Ceil(float64(departure.Sub(now)) / float64(24*time.Hour)))
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

		shared.InvalidateCaches(c, s.cache, cacheGetAllGroup)
		shared.InvalidateCaches(c, s.cache, cacheCountGroup)
		shared.InvalidateCaches(c, s.cache, cacheGroupSummary)
	}()
}

func (s *serviceImpl) invalidateGroupCaches(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetGroup, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete group cache")
		}

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGroupItinerary, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete itinerary cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllGroup)
		shared.InvalidateCaches(c, s.cache, cacheCountGroup)
		shared.InvalidateCaches(c, s.cache, cacheGroupSummary)
	}()
}

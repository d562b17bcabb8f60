package service_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"safar/config"
	"safar/infras/otel/mocks"
	groupMocks "safar/internal/domains/group/mocks"
	"safar/internal/domains/group/model"
	"safar/internal/domains/group/model/dto"
	"safar/internal/domains/group/service"
	segmentMocks "safar/internal/domains/segment/mocks"
	segmentModel "safar/internal/domains/segment/model"
	transportMocks "safar/internal/domains/transport/mocks"
	transportModel "safar/internal/domains/transport/model"
	"safar/shared/cache"
	cacheMocks "safar/shared/cache/mocks"
	"safar/shared/constant"
	gDto "safar/shared/dto"
	"safar/shared/failure"
	gModel "safar/shared/model"
)

func strPtr(s string) *string {
	return &s
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func groupWithDeparture(code string, departure *time.Time, createdAt time.Time) model.Group {
	return model.Group{
		ID:            "id-" + code,
		Code:          code,
		DepartureDate: departure,
		Status:        model.StatusPreparation,
		Metadata: gModel.Metadata{
			CreatedAt:  createdAt,
			ModifiedAt: createdAt,
			CreatedBy:  "tester",
			ModifiedBy: "tester",
		},
	}
}

func codes(items []dto.GroupResponse) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Code
	}

	return out
}

func TestBuildSummary(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	createdAt := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	day := func(offset int) *time.Time {
		return timePtr(time.Date(2026, 3, 10+offset, 0, 0, 0, 0, time.UTC))
	}

	groups := []model.Group{
		groupWithDeparture("TODAY", day(0), createdAt),
		groupWithDeparture("PLUS5", day(5), createdAt),
		groupWithDeparture("PLUS7", day(7), createdAt),
		groupWithDeparture("PLUS8", day(8), createdAt),
		groupWithDeparture("MINUS10", day(-10), createdAt),
		groupWithDeparture("MINUS30", day(-30), createdAt),
		groupWithDeparture("NODATE", nil, createdAt),
	}

	res := service.BuildSummary(groups, now)

	assert.Equal(t, 7, res.Total)
	assert.Equal(t, []string{"TODAY", "MINUS10"}, codes(res.InSaudi))
	assert.Equal(t, []string{"PLUS5", "PLUS7"}, codes(res.Upcoming))
	assert.Equal(t, []string{"PLUS8"}, codes(res.Awaiting))
}

func TestBuildSummary_DepartingTodayCountsAsInSaudi(t *testing.T) {
	// Departure dates are stored as DATE, so a same-day departure sits at
	// midnight, before now.
	now := time.Date(2026, 3, 10, 6, 0, 0, 0, time.UTC)
	departure := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	groups := []model.Group{
		groupWithDeparture("TODAY", timePtr(departure), now),
	}

	res := service.BuildSummary(groups, now)

	assert.Empty(t, res.Upcoming)
	assert.Equal(t, []string{"TODAY"}, codes(res.InSaudi))
}

func TestBuildSummary_RecentCapsAtNewestEight(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	var groups []model.Group
	for i := 0; i < 10; i++ {
		createdAt := now.Add(-time.Duration(i) * time.Hour)
		groups = append(groups, groupWithDeparture(fmt.Sprintf("GRP-%d", i), nil, createdAt))
	}

	res := service.BuildSummary(groups, now)

	assert.Equal(t, 10, res.Total)
	assert.Len(t, res.Recent, 8)
	assert.Equal(t, "GRP-0", res.Recent[0].Code)
	assert.Equal(t, "GRP-7", res.Recent[7].Code)
}

func TestBuildSummary_EmptyInput(t *testing.T) {
	res := service.BuildSummary(nil, time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC))

	assert.Zero(t, res.Total)
	assert.NotNil(t, res.Recent)
	assert.NotNil(t, res.Upcoming)
	assert.NotNil(t, res.InSaudi)
	assert.NotNil(t, res.Awaiting)
}

func newGroupService(t *testing.T) (service.Group, *groupMocks.MockGroup, *segmentMocks.MockSegment, *transportMocks.MockTransport, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := groupMocks.NewMockGroup(ctrl)
	mockSegmentRepo := segmentMocks.NewMockSegment(ctrl)
	mockTransportRepo := transportMocks.NewMockTransport(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockSegmentRepo, mockTransportRepo, cfg, mockCache, mockOtel)

	return svc, mockRepo, mockSegmentRepo, mockTransportRepo, mockCache
}

func TestGroupService_UpdateStatus(t *testing.T) {
	t.Run("invalid status is rejected before storage", func(t *testing.T) {
		svc, _, _, _, _ := newGroupService(t)

		err := svc.UpdateStatus(context.Background(), dto.UpdateStatusRequest{Status: "FINISHED"}, "some-id")

		assert.True(t, failure.IsBadRequest(err))
	})

	t.Run("unknown group", func(t *testing.T) {
		svc, mockRepo, _, _, _ := newGroupService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.UpdateStatus(context.Background(), dto.UpdateStatusRequest{Status: model.StatusDeparture}, "missing-id")

		assert.True(t, failure.IsNotFound(err))
	})

	t.Run("successful update", func(t *testing.T) {
		svc, mockRepo, _, _, mockCache := newGroupService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, model.StatusArrival, fields[model.FieldStatus])

				return nil
			})
		mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		err := svc.UpdateStatus(context.Background(), dto.UpdateStatusRequest{Status: model.StatusArrival}, "some-id")

		assert.NoError(t, err)
	})
}

func TestGroupService_Get(t *testing.T) {
	t.Run("unknown group", func(t *testing.T) {
		svc, mockRepo, _, _, mockCache := newGroupService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cache.Nil)
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Group{}, nil)

		_, err := svc.Get(context.Background(), "missing-id")

		assert.True(t, failure.IsNotFound(err))
	})

	t.Run("successful get", func(t *testing.T) {
		svc, mockRepo, _, _, mockCache := newGroupService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cache.Nil)
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(groupWithDeparture("UMR-2026-001", nil, time.Now()), nil)
		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.Get(context.Background(), "id-UMR-2026-001")

		assert.NoError(t, err)
		assert.Equal(t, "UMR-2026-001", res.Code)
		assert.Equal(t, model.StatusPreparation, res.Status)
	})
}

func TestGroupService_Itinerary(t *testing.T) {
	t.Run("unknown group fails before fetching children", func(t *testing.T) {
		svc, mockRepo, _, _, mockCache := newGroupService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cache.Nil)
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Group{}, nil)

		_, err := svc.Itinerary(context.Background(), "missing-id")

		assert.True(t, failure.IsNotFound(err))
	})

	t.Run("segment times override the master schedule", func(t *testing.T) {
		svc, mockRepo, mockSegmentRepo, mockTransportRepo, mockCache := newGroupService(t)

		group := groupWithDeparture("UMR-2026-001", nil, time.Now())

		segmentETD := time.Date(1970, 1, 1, 9, 30, 0, 0, time.UTC)
		masterETD := time.Date(1970, 1, 1, 8, 0, 0, 0, time.UTC)
		masterETA := time.Date(1970, 1, 1, 13, 45, 0, 0, time.UTC)

		flights := []segmentModel.SegmentFlight{
			{
				Segment: segmentModel.Segment{
					ID:           "seg-1",
					GroupID:      group.ID,
					SegmentOrder: 1,
					ETD:          timePtr(segmentETD),
				},
				Airline:      strPtr("Saudia"),
				FlightNumber: strPtr("SV819"),
				Origin:       strPtr("CGK"),
				Destination:  strPtr("JED"),
				MasterETD:    timePtr(masterETD),
				MasterETA:    timePtr(masterETA),
			},
		}

		transports := []transportModel.Transport{
			{
				ID:      "trx-1",
				GroupID: group.ID,
				Route:   strPtr("JED Airport - Makkah"),
			},
		}

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cache.Nil)
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(group, nil)
		mockSegmentRepo.EXPECT().
			GetAllWithFlight(gomock.Any(), group.ID).
			Return(flights, nil)
		mockTransportRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(transports, nil)
		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.Itinerary(context.Background(), group.ID)

		assert.NoError(t, err)
		assert.Equal(t, "UMR-2026-001", res.Group.Code)
		assert.Len(t, res.Flights, 1)
		assert.Equal(t, "SV819", res.Flights[0].FlightNumber)
		assert.Equal(t, "CGK", res.Flights[0].Origin)
		assert.Equal(t, "JED", res.Flights[0].Destination)
		assert.Equal(t, "09:30", res.Flights[0].ETD)
		assert.Equal(t, "13:45", res.Flights[0].ETA)
		assert.Len(t, res.Transports, 1)
	})
}

func TestGroupService_GetAll(t *testing.T) {
	t.Run("defaults to newest first", func(t *testing.T) {
		svc, mockRepo, _, _, mockCache := newGroupService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cache.Nil).
			AnyTimes()
		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(0, nil)
		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Group, error) {
				assert.Equal(t, model.TableName+"."+constant.FieldCreatedAt, params.SortBy)
				assert.Equal(t, gDto.SortDirDesc, params.SortDir)

				return nil, nil
			})

		_, err := svc.GetAll(context.Background(), gDto.QueryParams{Limit: 10}, gDto.FilterGroup{})

		assert.NoError(t, err)
	})

	t.Run("caller sort is preserved", func(t *testing.T) {
		svc, mockRepo, _, _, mockCache := newGroupService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cache.Nil).
			AnyTimes()
		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(0, nil)
		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Group, error) {
				assert.Equal(t, model.TableName+"."+model.FieldCode, params.SortBy)
				assert.Equal(t, gDto.SortDirAsc, params.SortDir)

				return nil, nil
			})

		req := gDto.QueryParams{
			SortBy:  model.TableName + "." + model.FieldCode,
			SortDir: gDto.SortDirAsc,
			Limit:   10,
		}

		_, err := svc.GetAll(context.Background(), req, gDto.FilterGroup{})

		assert.NoError(t, err)
	})
}

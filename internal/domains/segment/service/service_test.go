package service_test

import (
	"context"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"safar/config"
	"safar/infras/otel/mocks"
	groupMocks "safar/internal/domains/group/mocks"
	segmentMocks "safar/internal/domains/segment/mocks"
	"safar/internal/domains/segment/model"
	"safar/internal/domains/segment/model/dto"
	"safar/internal/domains/segment/service"
	cacheMocks "safar/shared/cache/mocks"
	"safar/shared/constant"
	"safar/shared/failure"
)

func newSegmentService(t *testing.T) (service.Segment, *segmentMocks.MockSegment, *groupMocks.MockGroup, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := segmentMocks.NewMockSegment(ctrl)
	mockGroupRepo := groupMocks.NewMockGroup(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockGroupRepo, cfg, mockCache, mockOtel)

	return svc, mockRepo, mockGroupRepo, mockCache
}

func TestSegmentService_Create(t *testing.T) {
	req := dto.CreateSegmentRequest{
		FlightMasterID: "6f1d3c0a-54f5-4f0b-9a3c-0f2d3f7a1b2c",
		SegmentOrder:   1,
		ETD:            "09:30",
		ETA:            "13:45",
	}

	t.Run("unknown group", func(t *testing.T) {
		svc, _, mockGroupRepo, _ := newSegmentService(t)

		mockGroupRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		_, err := svc.Create(context.Background(), req, "missing-group")

		assert.True(t, failure.IsNotFound(err))
	})

	t.Run("duplicate segment order", func(t *testing.T) {
		svc, mockRepo, mockGroupRepo, _ := newSegmentService(t)

		mockGroupRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(&pq.Error{Code: pq.ErrorCode(constant.PqErrorCodeUniqueViolation)})

		_, err := svc.Create(context.Background(), req, "group-id")

		assert.True(t, failure.IsConflict(err))
	})

	t.Run("missing flight master", func(t *testing.T) {
		svc, mockRepo, mockGroupRepo, _ := newSegmentService(t)

		mockGroupRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(&pq.Error{Code: pq.ErrorCode(constant.PqErrorCodeFkViolation)})

		_, err := svc.Create(context.Background(), req, "group-id")

		assert.True(t, failure.IsBadRequest(err))
	})

	t.Run("successful creation", func(t *testing.T) {
		svc, mockRepo, mockGroupRepo, mockCache := newSegmentService(t)

		mockGroupRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, mod model.Segment) error {
				assert.Equal(t, "group-id", mod.GroupID)
				assert.Equal(t, 1, mod.SegmentOrder)
				assert.NotNil(t, mod.ETD)

				return nil
			})
		mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		res, err := svc.Create(context.Background(), req, "group-id")

		assert.NoError(t, err)
		assert.Equal(t, 1, res.SegmentOrder)
		assert.Equal(t, "09:30", res.ETD)
		assert.Equal(t, "13:45", res.ETA)
	})
}

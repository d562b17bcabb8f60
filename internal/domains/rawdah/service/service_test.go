package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"safar/config"
	"safar/infras/otel/mocks"
	groupMocks "safar/internal/domains/group/mocks"
	rawdahMocks "safar/internal/domains/rawdah/mocks"
	"safar/internal/domains/rawdah/model"
	"safar/internal/domains/rawdah/model/dto"
	"safar/internal/domains/rawdah/service"
	"safar/shared/cache"
	cacheMocks "safar/shared/cache/mocks"
	"safar/shared/failure"
	gModel "safar/shared/model"
)

func newRawdahService(t *testing.T) (service.Rawdah, *rawdahMocks.MockRawdah, *groupMocks.MockGroup, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := rawdahMocks.NewMockRawdah(ctrl)
	mockGroupRepo := groupMocks.NewMockGroup(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockGroupRepo, cfg, mockCache, mockOtel)

	return svc, mockRepo, mockGroupRepo, mockCache
}

func TestRawdahService_Save(t *testing.T) {
	req := dto.SaveRawdahRequest{
		MenDate: "2026-04-02",
		MenTime: "05:30",
		MenPax:  20,
	}

	t.Run("unknown group", func(t *testing.T) {
		svc, _, mockGroupRepo, _ := newRawdahService(t)

		mockGroupRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		_, err := svc.Save(context.Background(), req, "missing-group")

		assert.True(t, failure.IsNotFound(err))
	})

	t.Run("replacing keeps the surviving row's identity", func(t *testing.T) {
		svc, mockRepo, mockGroupRepo, mockCache := newRawdahService(t)

		createdAt := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
		menTime := "05:30"
		surviving := model.RawdahAllocation{
			ID:      "existing-row-id",
			GroupID: "group-id",
			MenTime: &menTime,
			MenPax:  20,
			Metadata: gModel.Metadata{
				CreatedAt:  createdAt,
				ModifiedAt: time.Now(),
				CreatedBy:  "first-writer",
				ModifiedBy: "tester",
			},
		}

		mockGroupRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		mockRepo.EXPECT().
			Upsert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, mod model.RawdahAllocation) error {
				assert.Equal(t, "group-id", mod.GroupID)
				assert.Equal(t, 20, mod.MenPax)

				return nil
			})
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(surviving, nil)
		mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		res, err := svc.Save(context.Background(), req, "group-id")

		assert.NoError(t, err)
		assert.Equal(t, "existing-row-id", res.ID)
		assert.Equal(t, "05:30", res.MenTime)
		assert.Equal(t, 20, res.MenPax)
	})
}

func TestRawdahService_Get(t *testing.T) {
	t.Run("no allocation", func(t *testing.T) {
		svc, mockRepo, _, mockCache := newRawdahService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cache.Nil)
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.RawdahAllocation{}, nil)

		_, err := svc.Get(context.Background(), "group-id")

		assert.True(t, failure.IsNotFound(err))
	})

	t.Run("successful get", func(t *testing.T) {
		svc, mockRepo, _, mockCache := newRawdahService(t)

		womenTime := "16:00"
		allocation := model.RawdahAllocation{
			ID:        "row-id",
			GroupID:   "group-id",
			WomenTime: &womenTime,
			WomenPax:  15,
		}

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cache.Nil)
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(allocation, nil)
		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.Get(context.Background(), "group-id")

		assert.NoError(t, err)
		assert.Equal(t, "row-id", res.ID)
		assert.Equal(t, "16:00", res.WomenTime)
		assert.Equal(t, 15, res.WomenPax)
	})
}

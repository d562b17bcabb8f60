package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"safar/config"
	"safar/infras/otel/mocks"
	staffMocks "safar/internal/domains/staff/mocks"
	"safar/internal/domains/staff/model"
	"safar/internal/domains/staff/service"
	"safar/shared/cache"
	cacheMocks "safar/shared/cache/mocks"
	gDto "safar/shared/dto"
)

func newStaffServices(t *testing.T) (service.TourLeader, service.Muthawif, *staffMocks.MockTourLeader, *staffMocks.MockMuthawif, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockTourLeaderRepo := staffMocks.NewMockTourLeader(ctrl)
	mockMuthawifRepo := staffMocks.NewMockMuthawif(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	tourLeaders := service.NewTourLeader(mockTourLeaderRepo, cfg, mockCache, mockOtel)
	muthawifs := service.NewMuthawif(mockMuthawifRepo, cfg, mockCache, mockOtel)

	return tourLeaders, muthawifs, mockTourLeaderRepo, mockMuthawifRepo, mockCache
}

func expectListCaches(mockCache *cacheMocks.MockRedisCache) {
	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(cache.Nil).
		AnyTimes()
	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()
}

func TestTourLeaderService_GetAll(t *testing.T) {
	t.Run("defaults to alphabetical by name", func(t *testing.T) {
		tourLeaders, _, mockRepo, _, mockCache := newStaffServices(t)
		expectListCaches(mockCache)

		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(0, nil)
		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.TourLeader, error) {
				assert.Equal(t, model.TourLeaderTableName+"."+model.FieldName, params.SortBy)
				assert.Equal(t, gDto.SortDirAsc, params.SortDir)

				return nil, nil
			})

		_, err := tourLeaders.GetAll(context.Background(), gDto.QueryParams{Limit: 10}, gDto.FilterGroup{})

		assert.NoError(t, err)
	})

	t.Run("caller sort is preserved", func(t *testing.T) {
		tourLeaders, _, mockRepo, _, mockCache := newStaffServices(t)
		expectListCaches(mockCache)

		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(0, nil)
		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.TourLeader, error) {
				assert.Equal(t, model.TourLeaderTableName+"."+model.FieldPhone, params.SortBy)
				assert.Equal(t, gDto.SortDirDesc, params.SortDir)

				return nil, nil
			})

		req := gDto.QueryParams{
			SortBy:  model.TourLeaderTableName + "." + model.FieldPhone,
			SortDir: gDto.SortDirDesc,
			Limit:   10,
		}

		_, err := tourLeaders.GetAll(context.Background(), req, gDto.FilterGroup{})

		assert.NoError(t, err)
	})
}

func TestMuthawifService_GetAll(t *testing.T) {
	t.Run("defaults to alphabetical by name", func(t *testing.T) {
		_, muthawifs, _, mockRepo, mockCache := newStaffServices(t)
		expectListCaches(mockCache)

		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(0, nil)
		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Muthawif, error) {
				assert.Equal(t, model.MuthawifTableName+"."+model.FieldName, params.SortBy)
				assert.Equal(t, gDto.SortDirAsc, params.SortDir)

				return nil, nil
			})

		_, err := muthawifs.GetAll(context.Background(), gDto.QueryParams{Limit: 10}, gDto.FilterGroup{})

		assert.NoError(t, err)
	})
}

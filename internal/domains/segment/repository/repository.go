package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"safar/infras/otel"
	"safar/infras/postgres"
	"safar/internal/domains/segment/model"
	"safar/shared"
	gDto "safar/shared/dto"
	gRepo "safar/shared/repository"
)

type Segment interface {
	Insert(ctx context.Context, model model.Segment) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Segment, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Segment, error)
	GetAllWithFlight(ctx context.Context, groupID string) ([]model.SegmentFlight, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Segment]
	joined gRepo.Repository[model.SegmentFlight]
	db     *postgres.Connection
	otel   otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Segment {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Segment](model.EntityName, model.TableName, model.FieldID, db, otel),
		joined:     gRepo.NewRepository[model.SegmentFlight](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// GetAllWithFlight returns the group's segments in itinerary order, each
// joined with its flight master.
func (repo *repositoryImpl) GetAllWithFlight(ctx context.Context, groupID string) ([]model.SegmentFlight, error) {
	params := gDto.QueryParams{
		SortBy:  model.TableName + "." + model.FieldSegmentOrder,
		SortDir: gDto.SortDirAsc,
	}

	return repo.joined.GetAll(ctx, params, shared.FilterByID(groupID, model.FieldGroupID, model.TableName))
}

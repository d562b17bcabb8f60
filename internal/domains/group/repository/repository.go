package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"safar/infras/otel"
	"safar/infras/postgres"
	"safar/internal/domains/group/model"
	gDto "safar/shared/dto"
	gRepo "safar/shared/repository"
)

type Group interface {
	Insert(ctx context.Context, model model.Group) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Group, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Group, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Group]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Group {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Group](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

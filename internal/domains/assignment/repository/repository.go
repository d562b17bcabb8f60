package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"safar/infras/otel"
	"safar/infras/postgres"
	"safar/internal/domains/assignment/model"
	gDto "safar/shared/dto"
	gRepo "safar/shared/repository"
)

type Assignment interface {
	Insert(ctx context.Context, model model.Assignment) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Assignment, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Assignment, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Assignment]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Assignment {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Assignment](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

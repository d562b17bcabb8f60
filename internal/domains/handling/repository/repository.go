package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"safar/infras/otel"
	"safar/infras/postgres"
	"safar/internal/domains/handling/model"
	gDto "safar/shared/dto"
	gRepo "safar/shared/repository"
)

type HandlingCompany interface {
	Insert(ctx context.Context, model model.HandlingCompany) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.HandlingCompany, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.HandlingCompany, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.HandlingCompany]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) HandlingCompany {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.HandlingCompany](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

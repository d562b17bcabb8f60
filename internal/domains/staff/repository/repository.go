package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"safar/infras/otel"
	"safar/infras/postgres"
	"safar/internal/domains/staff/model"
	gDto "safar/shared/dto"
	gRepo "safar/shared/repository"
)

type TourLeader interface {
	Insert(ctx context.Context, model model.TourLeader) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.TourLeader, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.TourLeader, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type Muthawif interface {
	Insert(ctx context.Context, model model.Muthawif) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Muthawif, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Muthawif, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type tourLeaderImpl struct {
	gRepo.Repository[model.TourLeader]
	db   *postgres.Connection
	otel otel.Otel
}

func NewTourLeader(db *postgres.Connection, otel otel.Otel) TourLeader {
	return &tourLeaderImpl{
		Repository: gRepo.NewRepository[model.TourLeader](model.TourLeaderEntityName, model.TourLeaderTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type muthawifImpl struct {
	gRepo.Repository[model.Muthawif]
	db   *postgres.Connection
	otel otel.Otel
}

func NewMuthawif(db *postgres.Connection, otel otel.Otel) Muthawif {
	return &muthawifImpl{
		Repository: gRepo.NewRepository[model.Muthawif](model.MuthawifEntityName, model.MuthawifTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

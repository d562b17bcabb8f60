package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"safar/infras/otel"
	"safar/infras/postgres"
	"safar/internal/domains/rawdah/model"
	"safar/shared/constant"
	gDto "safar/shared/dto"
	"safar/shared/logger"
	gRepo "safar/shared/repository"
)

type Rawdah interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.RawdahAllocation, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Upsert(ctx context.Context, model model.RawdahAllocation) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.RawdahAllocation]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Rawdah {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.RawdahAllocation](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Upsert writes the group's allocation in one atomic statement. The unique
// constraint on group_id makes concurrent saves converge on a single row.
func (repo *repositoryImpl) Upsert(ctx context.Context, mod model.RawdahAllocation) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".Upsert")
	defer scope.End()

	query := fmt.Sprintf(`INSERT INTO %s
		(id, group_id, men_date, men_time, men_pax, women_date, women_time, women_pax, created_at, modified_at, created_by, modified_by)
		VALUES (:id, :group_id, :men_date, :men_time, :men_pax, :women_date, :women_time, :women_pax, :created_at, :modified_at, :created_by, :modified_by)
		ON CONFLICT (group_id) DO UPDATE SET
		men_date = EXCLUDED.men_date,
		men_time = EXCLUDED.men_time,
		men_pax = EXCLUDED.men_pax,
		women_date = EXCLUDED.women_date,
		women_time = EXCLUDED.women_time,
		women_pax = EXCLUDED.women_pax,
		modified_at = EXCLUDED.modified_at,
		modified_by = EXCLUDED.modified_by`, model.TableName)

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	_, err := repo.db.Write.NamedExecContext(ctx, query, mod)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to upsert data (%s): %w", model.EntityName, err)
	}

	return nil
}

package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"hostel/infras/otel"
	"hostel/infras/postgres"
	"hostel/internal/domains/student/model"
	"hostel/shared"
	gDto "hostel/shared/dto"
	gRepo "hostel/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Student interface {
	Insert(ctx context.Context, model model.Student) error
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Student) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Student, error)
	GetByUserID(ctx context.Context, userID string) (model.Student, error)
	GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Student, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Student, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Student]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Student {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Student](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// GetByUserID returns the student record owned by an account, or the zero
// value when the account has none.
func (r *repositoryImpl) GetByUserID(ctx context.Context, userID string) (model.Student, error) {
	return r.Get(ctx, shared.FilterByField(model.FieldUserID, userID, model.TableName)) //nolint:wrapcheck
}

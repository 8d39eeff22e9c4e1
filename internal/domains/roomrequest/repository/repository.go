package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"hostel/infras/otel"
	"hostel/infras/postgres"
	"hostel/internal/domains/roomrequest/model"
	gDto "hostel/shared/dto"
	gRepo "hostel/shared/repository"

	"github.com/jmoiron/sqlx"
)

type RoomRequest interface {
	Insert(ctx context.Context, model model.RoomRequest) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.RoomRequest, error)
	GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.RoomRequest, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.RoomRequest, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.RoomRequest]
}

func New(db *postgres.Connection, otel otel.Otel) RoomRequest {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.RoomRequest](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

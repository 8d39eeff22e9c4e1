package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"hostel/infras/otel"
	"hostel/infras/postgres"
	"hostel/internal/domains/complaint/model"
	gDto "hostel/shared/dto"
	gRepo "hostel/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Complaint interface {
	Insert(ctx context.Context, model model.Complaint) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Complaint, error)
	GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Complaint, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Complaint, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
}

type Comment interface {
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Comment) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Comment, error)
}

type complaintImpl struct {
	gRepo.Repository[model.Complaint]
}

func New(db *postgres.Connection, otel otel.Otel) Complaint {
	return &complaintImpl{
		Repository: gRepo.NewRepository[model.Complaint](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

type commentImpl struct {
	gRepo.Repository[model.Comment]
}

func NewComment(db *postgres.Connection, otel otel.Otel) Comment {
	return &commentImpl{
		Repository: gRepo.NewRepository[model.Comment](model.CommentEntityName, model.CommentTableName, model.FieldCommentID, db, otel),
	}
}

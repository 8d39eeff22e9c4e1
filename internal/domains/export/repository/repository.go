package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hostel/infras/otel"
	"hostel/infras/postgres"
	"hostel/internal/domains/export/model"
	"hostel/shared/constant"
	"hostel/shared/logger"
)

const (
	queryStudents = `SELECT u.username, u.full_name, s.roll_no, s.contact, s.course, s.semester, COALESCE(r.number, '') AS room
FROM students s
JOIN users u ON u.id = s.user_id
LEFT JOIN rooms r ON r.id = s.room_id
ORDER BY s.roll_no ASC`

	queryRooms = `SELECT number, capacity, occupied FROM rooms ORDER BY number ASC`

	queryComplaints = `SELECT c.title, u.username AS student, c.category, c.status, c.created_at
FROM complaints c
JOIN students s ON s.id = c.student_id
JOIN users u ON u.id = s.user_id
ORDER BY c.created_at DESC`
)

type Export interface {
	Students(ctx context.Context) ([]model.StudentRow, error)
	Rooms(ctx context.Context) ([]model.RoomRow, error)
	Complaints(ctx context.Context) ([]model.ComplaintRow, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Export {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

func (r *repositoryImpl) Students(ctx context.Context) ([]model.StudentRow, error) {
	return selectAll[model.StudentRow](ctx, r, model.FeedStudents, queryStudents)
}

func (r *repositoryImpl) Rooms(ctx context.Context) ([]model.RoomRow, error) {
	return selectAll[model.RoomRow](ctx, r, model.FeedRooms, queryRooms)
}

func (r *repositoryImpl) Complaints(ctx context.Context) ([]model.ComplaintRow, error) {
	return selectAll[model.ComplaintRow](ctx, r, model.FeedComplaints, queryComplaints)
}

func selectAll[T any](ctx context.Context, r *repositoryImpl, feed, query string) (rows []T, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".export."+feed)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = r.db.Read.SelectContext(ctx, &rows, query); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to read %s export: %w", feed, err)
	}

	return rows, nil
}

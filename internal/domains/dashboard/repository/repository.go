package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hostel/infras/otel"
	"hostel/infras/postgres"
	"hostel/internal/domains/dashboard/model"
	"hostel/shared/constant"
	"hostel/shared/logger"
)

// One round trip; the planner runs each sub-select independently.
const querySummary = `SELECT
	(SELECT COUNT(*) FROM rooms) AS room_count,
	(SELECT COUNT(*) FROM rooms WHERE occupied < capacity) AS available_room_count,
	(SELECT COALESCE(SUM(capacity), 0) FROM rooms) AS bed_count,
	(SELECT COALESCE(SUM(occupied), 0) FROM rooms) AS occupied_bed_count,
	(SELECT COUNT(*) FROM students) AS student_count,
	(SELECT COUNT(*) FROM room_requests WHERE status = 'pending') AS pending_room_requests,
	(SELECT COUNT(*) FROM fees WHERE NOT (paid AND verified)) AS unpaid_fees,
	(SELECT COUNT(*) FROM complaints WHERE status <> 'resolved') AS open_complaints`

type Dashboard interface {
	Summary(ctx context.Context) (model.Summary, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Dashboard {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

func (r *repositoryImpl) Summary(ctx context.Context) (res model.Summary, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".dashboard.Summary")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, querySummary)

	if err = r.db.Read.GetContext(ctx, &res, querySummary); err != nil {
		logger.ErrorWithStack(err)

		return res, fmt.Errorf("failed to get dashboard summary: %w", err)
	}

	return res, nil
}

package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hostel/infras/otel"
	"hostel/infras/postgres"
	"hostel/internal/domains/messmenu/model"
	"hostel/shared/constant"
	"hostel/shared/logger"
	"time"
)

const (
	menuColumns = `id, date, breakfast, lunch, dinner, created_at, modified_at, created_by, modified_by`

	// The conflict target keeps one row per date; created_* survive an update.
	queryUpsert = `INSERT INTO mess_menus (` + menuColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (date) DO UPDATE SET breakfast = EXCLUDED.breakfast, lunch = EXCLUDED.lunch, dinner = EXCLUDED.dinner, modified_at = EXCLUDED.modified_at, modified_by = EXCLUDED.modified_by
RETURNING ` + menuColumns

	queryRange = `SELECT ` + menuColumns + ` FROM mess_menus WHERE date BETWEEN $1 AND $2 ORDER BY date ASC`
)

type MessMenu interface {
	Upsert(ctx context.Context, menu model.MessMenu) (model.MessMenu, error)
	GetRange(ctx context.Context, from, to time.Time) ([]model.MessMenu, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) MessMenu {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

// Upsert writes the menu for menu.Date and returns the stored row.
func (r *repositoryImpl) Upsert(ctx context.Context, menu model.MessMenu) (res model.MessMenu, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".messmenu.Upsert")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryUpsert)

	err = r.db.Write.QueryRowxContext(ctx, queryUpsert,
		menu.ID, menu.Date, menu.Breakfast, menu.Lunch, menu.Dinner,
		menu.CreatedAt, menu.ModifiedAt, menu.CreatedBy, menu.ModifiedBy,
	).StructScan(&res)
	if err != nil {
		logger.ErrorWithStack(err)

		return res, fmt.Errorf("failed to upsert mess menu: %w", err)
	}

	return res, nil
}

// GetRange returns the menus dated within [from, to] in date order.
func (r *repositoryImpl) GetRange(ctx context.Context, from, to time.Time) (res []model.MessMenu, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".messmenu.GetRange")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryRange)

	if err = r.db.Read.SelectContext(ctx, &res, queryRange, from, to); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to get mess menus: %w", err)
	}

	return res, nil
}

package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hostel/infras/otel"
	"hostel/infras/postgres"
	"hostel/internal/domains/room/model"
	"hostel/shared/constant"
	gDto "hostel/shared/dto"
	"hostel/shared/logger"
	gRepo "hostel/shared/repository"

	"github.com/jmoiron/sqlx"
)

const (
	// The guard makes the claim atomic: a full room matches no row.
	queryIncrementOccupied = `UPDATE rooms SET occupied = occupied + 1, modified_at = NOW() WHERE id = $1 AND occupied < capacity`
	queryDecrementOccupied = `UPDATE rooms SET occupied = occupied - 1, modified_at = NOW() WHERE id = $1 AND occupied > 0`
	queryAvailableRooms    = `SELECT id, number, capacity, occupied, created_at, modified_at, created_by, modified_by FROM rooms WHERE occupied < capacity ORDER BY number ASC`

	queryDrift = `SELECT r.id, r.number, r.occupied, COUNT(s.id) AS assigned
FROM rooms r
LEFT JOIN students s ON s.room_id = r.id
GROUP BY r.id, r.number, r.occupied
HAVING r.occupied <> COUNT(s.id)
ORDER BY r.number ASC`
	queryRecountOccupied = `UPDATE rooms r SET occupied = c.assigned, modified_at = NOW()
FROM (SELECT rooms.id, COUNT(students.id) AS assigned FROM rooms LEFT JOIN students ON students.room_id = rooms.id GROUP BY rooms.id) c
WHERE r.id = c.id AND r.occupied <> c.assigned`
)

type Room interface {
	Insert(ctx context.Context, model model.Room) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) error
	IncrementOccupiedTx(ctx context.Context, sqltx *sqlx.Tx, id string) (bool, error)
	DecrementOccupiedTx(ctx context.Context, sqltx *sqlx.Tx, id string) (bool, error)
	GetAvailableTx(ctx context.Context, sqltx *sqlx.Tx) ([]model.Room, error)
	GetDrift(ctx context.Context) ([]model.Drift, error)
	RecountOccupiedTx(ctx context.Context, sqltx *sqlx.Tx) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// IncrementOccupiedTx claims one seat. It returns false when the room is
// full or does not exist.
func (r *repositoryImpl) IncrementOccupiedTx(ctx context.Context, sqltx *sqlx.Tx, id string) (bool, error) {
	return r.adjustOccupied(ctx, sqltx, ".IncrementOccupiedTx", queryIncrementOccupied, id)
}

// DecrementOccupiedTx releases one seat. It returns false when the room is
// already empty or does not exist.
func (r *repositoryImpl) DecrementOccupiedTx(ctx context.Context, sqltx *sqlx.Tx, id string) (bool, error) {
	return r.adjustOccupied(ctx, sqltx, ".DecrementOccupiedTx", queryDecrementOccupied, id)
}

func (r *repositoryImpl) adjustOccupied(ctx context.Context, sqltx *sqlx.Tx, spanSuffix, query, id string) (bool, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+spanSuffix)
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := sqltx.ExecContext(ctx, query, id)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to adjust room occupancy: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		scope.TraceError(err)

		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected == 1, nil
}

// GetAvailableTx lists rooms with a free seat ordered by room number.
func (r *repositoryImpl) GetAvailableTx(ctx context.Context, sqltx *sqlx.Tx) ([]model.Room, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.GetAvailableTx")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryAvailableRooms)

	var rooms []model.Room

	if err := sqltx.SelectContext(ctx, &rooms, queryAvailableRooms); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get available rooms: %w", err)
	}

	return rooms, nil
}

// GetDrift lists rooms whose occupied counter differs from the number of
// students referencing them.
func (r *repositoryImpl) GetDrift(ctx context.Context) ([]model.Drift, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.GetDrift")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryDrift)

	var drift []model.Drift

	if err := r.db.Read.SelectContext(ctx, &drift, queryDrift); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get occupancy drift: %w", err)
	}

	return drift, nil
}

// RecountOccupiedTx rewrites every drifted counter from the student table.
func (r *repositoryImpl) RecountOccupiedTx(ctx context.Context, sqltx *sqlx.Tx) (int64, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.RecountOccupiedTx")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryRecountOccupied)

	result, err := sqltx.ExecContext(ctx, queryRecountOccupied)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to recount room occupancy: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected, nil
}

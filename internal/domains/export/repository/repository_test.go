package repository_test

import (
	"context"
	"errors"
	"hostel/infras/otel/mocks"
	"hostel/infras/postgres"
	"hostel/internal/domains/export/model"
	"hostel/internal/domains/export/repository"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExport(t *testing.T) (repository.Export, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "postgres")
	t.Cleanup(func() { sqlxDB.Close() })

	return repository.New(&postgres.Connection{Read: sqlxDB, Write: sqlxDB}, mocks.NewOtel()), mock
}

func TestExport_Rooms(t *testing.T) {
	repo, mock := newExport(t)

	mock.ExpectQuery(`SELECT number, capacity, occupied FROM rooms ORDER BY number ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"number", "capacity", "occupied"}).
			AddRow("A1", 1, 1).
			AddRow("A2", 3, 0))

	rows, err := repo.Rooms(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []model.RoomRow{
		{Number: "A1", Capacity: 1, Occupied: 1},
		{Number: "A2", Capacity: 3, Occupied: 0},
	}, rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExport_Students(t *testing.T) {
	repo, mock := newExport(t)

	mock.ExpectQuery(`LEFT JOIN rooms r ON r.id = s.room_id`).
		WillReturnRows(sqlmock.NewRows([]string{"username", "full_name", "roll_no", "contact", "course", "semester", "room"}).
			AddRow("asha", "Asha Rao", "CS-01", "98450", "CSE", 3, "A1").
			AddRow("ravi", "Ravi K", "CS-02", "", "CSE", 1, ""))

	rows, err := repo.Students(context.Background())

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "A1", rows[0].Room)
	assert.Empty(t, rows[1].Room)
}

func TestExport_Complaints(t *testing.T) {
	repo, mock := newExport(t)
	created := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`FROM complaints c`).
		WillReturnRows(sqlmock.NewRows([]string{"title", "student", "category", "status", "created_at"}).
			AddRow("Leaking tap", "asha", "water", "pending", created))

	rows, err := repo.Complaints(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []model.ComplaintRow{
		{Title: "Leaking tap", Student: "asha", Category: "water", Status: "pending", CreatedAt: created},
	}, rows)
}

func TestExport_QueryFailure(t *testing.T) {
	repo, mock := newExport(t)

	mock.ExpectQuery(`FROM rooms`).WillReturnError(errors.New("connection reset"))

	rows, err := repo.Rooms(context.Background())

	require.Error(t, err)
	assert.Nil(t, rows)
	assert.Contains(t, err.Error(), "failed to read rooms export")
}

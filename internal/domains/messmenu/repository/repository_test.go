package repository_test

import (
	"context"
	"errors"
	"hostel/infras/otel/mocks"
	"hostel/infras/postgres"
	"hostel/internal/domains/messmenu/model"
	"hostel/internal/domains/messmenu/repository"
	gModel "hostel/shared/model"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var columns = []string{"id", "date", "breakfast", "lunch", "dinner", "created_at", "modified_at", "created_by", "modified_by"}

func setup(t *testing.T) (repository.MessMenu, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "postgres")
	t.Cleanup(func() { sqlxDB.Close() })

	return repository.New(&postgres.Connection{Read: sqlxDB, Write: sqlxDB}, mocks.NewOtel()), mock
}

func TestUpsert(t *testing.T) {
	repo, mock := setup(t)

	day := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	created := day.Add(-48 * time.Hour)
	now := day.Add(7 * time.Hour)

	mock.ExpectQuery(`INSERT INTO mess_menus (.+) ON CONFLICT \(date\) DO UPDATE SET (.+) RETURNING`).
		WithArgs("menu-new", day, "Poha", "Dal rice", "Roti sabzi", now, now, "staff-1", "staff-1").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("menu-old", day, "Poha", "Dal rice", "Roti sabzi", created, now, "staff-0", "staff-1"))

	menu, err := repo.Upsert(context.Background(), model.MessMenu{
		ID:        "menu-new",
		Date:      day,
		Breakfast: "Poha",
		Lunch:     "Dal rice",
		Dinner:    "Roti sabzi",
		Metadata:  gModel.NewMetadata("staff-1", now),
	})

	require.NoError(t, err)
	assert.Equal(t, "menu-old", menu.ID)
	assert.Equal(t, "staff-0", menu.CreatedBy)
	assert.Equal(t, "staff-1", menu.ModifiedBy)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsert_Error(t *testing.T) {
	repo, mock := setup(t)

	mock.ExpectQuery(`INSERT INTO mess_menus`).WillReturnError(errors.New("connection reset"))

	_, err := repo.Upsert(context.Background(), model.MessMenu{ID: "m1"})

	assert.ErrorContains(t, err, "failed to upsert mess menu")
}

func TestGetRange(t *testing.T) {
	repo, mock := setup(t)

	from := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 6)

	mock.ExpectQuery(`SELECT (.+) FROM mess_menus WHERE date BETWEEN \$1 AND \$2 ORDER BY date ASC`).
		WithArgs(from, to).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("m1", from, "Idli", "Rajma", "Khichdi", from, from, "s", "s").
			AddRow("m2", from.AddDate(0, 0, 2), "Upma", "Chole", "Paneer", from, from, "s", "s"))

	menus, err := repo.GetRange(context.Background(), from, to)

	require.NoError(t, err)
	require.Len(t, menus, 2)
	assert.Equal(t, "Upma", menus[1].Breakfast)
	assert.NoError(t, mock.ExpectationsWereMet())
}

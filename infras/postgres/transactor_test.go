package postgres_test

import (
	"context"
	"errors"
	"hostel/infras/postgres"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTransactor(t *testing.T) (postgres.Transactor, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "postgres")
	t.Cleanup(func() { sqlxDB.Close() })

	return postgres.NewTransactor(&postgres.Connection{Read: sqlxDB, Write: sqlxDB}), mock
}

func TestWithinTx_Commit(t *testing.T) {
	transactor, mock := newTransactor(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE rooms SET occupied = occupied \+ 1`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := transactor.WithinTx(context.Background(), func(tx *sqlx.Tx) error {
		_, err := tx.Exec("UPDATE rooms SET occupied = occupied + 1")

		return err
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithinTx_RollbackKeepsCallbackError(t *testing.T) {
	transactor, mock := newTransactor(t)
	errRoomFull := errors.New("room is full")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := transactor.WithinTx(context.Background(), func(_ *sqlx.Tx) error {
		return errRoomFull
	})

	assert.ErrorIs(t, err, errRoomFull)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithinTx_BeginFails(t *testing.T) {
	transactor, mock := newTransactor(t)

	mock.ExpectBegin().WillReturnError(errors.New("too many connections"))

	called := false
	err := transactor.WithinTx(context.Background(), func(_ *sqlx.Tx) error {
		called = true

		return nil
	})

	require.Error(t, err)
	assert.False(t, called)
	assert.Contains(t, err.Error(), "failed to begin transaction")
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	transactor, mock := newTransactor(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.Panics(t, func() {
		_ = transactor.WithinTx(context.Background(), func(_ *sqlx.Tx) error {
			panic("boom")
		})
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

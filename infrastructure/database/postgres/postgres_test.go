package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunInTransaction(t *testing.T) {
	t.Run("commit", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM analysis_reports").WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectCommit()

		conn := &Connection{DB: db}
		err = conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
			_, err := tx.Exec("DELETE FROM analysis_reports")
			return err
		})

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rollback", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectRollback()

		boom := errors.New("boom")
		conn := &Connection{DB: db}
		err = conn.RunInTransaction(context.Background(), func(*sql.Tx) error { return boom })

		assert.ErrorIs(t, err, boom)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRunInTransaction_RollbackFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rbErr := errors.New("connection reset")
	mock.ExpectBegin()
	mock.ExpectRollback().WillReturnError(rbErr)

	conn := &Connection{DB: db}
	err = conn.RunInTransaction(context.Background(), func(*sql.Tx) error { return errors.New("insert failed") })

	assert.ErrorIs(t, err, rbErr)
	assert.Contains(t, err.Error(), "insert failed")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunInTransaction_PanicRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	conn := &Connection{DB: db}
	assert.PanicsWithValue(t, "boom", func() {
		_ = conn.RunInTransaction(context.Background(), func(*sql.Tx) error { panic("boom") })
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

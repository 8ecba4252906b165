package postgres

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func expectSchemaStatements(mock sqlmock.Sqlmock) {
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS volunteers`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS shifts`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS attendance`).
		WillReturnResult(sqlmock.NewResult(0, 0))
}

func TestEnsureSchema(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	expectSchemaStatements(mock)
	require.NoError(t, EnsureSchema(ctx, db))
	require.NoError(t, mock.ExpectationsWereMet())
}

// Every statement uses IF NOT EXISTS, so running EnsureSchema again on
// an initialized database issues the same no-op statements.
func TestEnsureSchema_Idempotent(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	expectSchemaStatements(mock)
	expectSchemaStatements(mock)
	require.NoError(t, EnsureSchema(ctx, db))
	require.NoError(t, EnsureSchema(ctx, db))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureSchema_Error(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS volunteers`).
		WillReturnError(sql.ErrConnDone)
	require.Error(t, EnsureSchema(ctx, db))
	require.NoError(t, mock.ExpectationsWereMet())
}

// internal/sink/postgres_test.go
package sink

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"synthgen/internal/common/database"
	"synthgen/internal/common/logger"
	"synthgen/internal/dataset"
)

// ==========================
// Test Helper Functions
// ==========================

func newTestPostgresSink(t *testing.T) (*PostgresSink, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	s := NewPostgresSink(&database.PostgresClient{DB: db}, logger.NewTestLogger(t))
	return s, mock
}

func expectDDL(mock sqlmock.Sqlmock) {
	for range warehouseDDL {
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS").WillReturnResult(sqlmock.NewResult(0, 0))
	}
}

// ==========================
// Warehouse Sink Tests
// ==========================

func TestPostgresSink_FullRefresh(t *testing.T) {
	s, mock := newTestPostgresSink(t)
	expectDDL(mock)
	mock.ExpectBegin()
	mock.ExpectExec("TRUNCATE synthgen_customers").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO synthgen_customers").
		WithArgs("CUST-001", "satisfied", "2025-01-15", 3, 4200).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO synthgen_interactions").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO synthgen_reviews").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO synthgen_tickets").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := s.Write(context.Background(), testBundle())

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSink_EmptyBundleStillRefreshes(t *testing.T) {
	s, mock := newTestPostgresSink(t)
	expectDDL(mock)
	mock.ExpectBegin()
	mock.ExpectExec("TRUNCATE synthgen_customers").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := s.Write(context.Background(), &dataset.Bundle{})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSink_DDLFailureAbortsLoad(t *testing.T) {
	s, mock := newTestPostgresSink(t)
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS").WillReturnError(errors.New("permission denied"))

	err := s.Write(context.Background(), testBundle())

	assert.Error(t, err)
}

func TestPostgresSink_InsertFailureRollsBack(t *testing.T) {
	s, mock := newTestPostgresSink(t)
	expectDDL(mock)
	mock.ExpectBegin()
	mock.ExpectExec("TRUNCATE synthgen_customers").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO synthgen_customers").WillReturnError(errors.New("constraint violation"))
	mock.ExpectRollback()

	err := s.Write(context.Background(), testBundle())

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

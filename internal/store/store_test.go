package store

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-policy-desk/internal/logger"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return &DB{
		DB:                 sqlx.NewDb(conn, "pgx"),
		logger:             logger.Nop(),
		errorClassificator: NewPostgresErrorClassifier(),
	}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

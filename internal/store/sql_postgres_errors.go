package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells whether a failed statement may succeed if sent
// again.
type ErrorClassification int

const (
	NonRetryable ErrorClassification = iota
	Retryable
)

func (c ErrorClassification) String() string {
	if c == Retryable {
		return "retryable"
	}
	return "non-retryable"
}

// PostgresErrorClassifier classifies pgx errors by SQLSTATE class. Lost
// connections, rolled back transactions (serialization failures and
// deadlocks among them) and a server that is starting up or shutting down
// are retryable. Everything else, constraint violations included, is not.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	code := postgresError(err)
	switch {
	case code == "":
		return NonRetryable
	case pgerrcode.IsConnectionException(code),
		pgerrcode.IsTransactionRollback(code),
		pgerrcode.IsOperatorIntervention(code) && code != pgerrcode.QueryCanceled:
		return Retryable
	default:
		return NonRetryable
	}
}

// isMalformedID reports a uuid column compared with a non-uuid value. Such
// ids can't exist, so callers treat them as not found.
func isMalformedID(err error) bool {
	return postgresError(err) == pgerrcode.InvalidTextRepresentation
}

func isUniqueViolation(err error) bool {
	return postgresError(err) == pgerrcode.UniqueViolation
}

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

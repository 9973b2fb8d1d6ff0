package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells the retry loop whether a failed statement may
// succeed on a later attempt.
type ErrorClassification int

const (
	// NonRetryable is the default for unknown errors.
	NonRetryable ErrorClassification = iota
	Retryable
)

// PostgresErrorClassifier implements [ErrorClassificator] on top of the
// SQLSTATE classes published by pgerrcode.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify reports [Retryable] for connection exceptions (class 08),
// transaction rollbacks such as deadlocks and serialization failures
// (class 40), resource exhaustion (class 53) and a server that is starting
// up or shutting down. Everything else, constraint violations included, is
// [NonRetryable].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return NonRetryable
	}

	code := pgErr.Code
	switch {
	case pgerrcode.IsConnectionException(code),
		pgerrcode.IsTransactionRollback(code),
		pgerrcode.IsInsufficientResources(code):
		return Retryable
	case code == pgerrcode.CannotConnectNow,
		code == pgerrcode.AdminShutdown,
		code == pgerrcode.CrashShutdown:
		return Retryable
	default:
		return NonRetryable
	}
}

// Package pgerrs classifies PostgreSQL failures by SQLSTATE into the error
// types of the application core.
package pgerrs

import (
	"context"
	"errors"

	"ordering/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes the adapters react to.
const (
	CodeUniqueViolation      = "23505"
	CodeCheckViolation       = "23514"
	CodeSerializationFailure = "40001"
	CodeDeadlockDetected     = "40P01"
	CodeLockNotAvailable     = "55P03"
	CodeQueryCanceled        = "57014"
)

// Translate maps err to ConcurrencyConflictError for lock timeouts,
// cancelled statements, serialization failures and deadlocks, and to
// DuplicateKeyError for unique violations. Other errors pass through.
func Translate(err error, resource string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return errs.NewConcurrencyConflictError(resource, err)
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case CodeLockNotAvailable, CodeQueryCanceled, CodeSerializationFailure, CodeDeadlockDetected:
		return errs.NewConcurrencyConflictError(resource, err)
	case CodeUniqueViolation:
		return errs.NewDuplicateKeyError(pgErr.ConstraintName, err)
	default:
		return err
	}
}

// IsCode reports whether err carries the given SQLSTATE.
func IsCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

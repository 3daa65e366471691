package errs

import (
	"errors"
	"fmt"
)

var (
	ErrConcurrencyConflict = errors.New("concurrency conflict")
	ErrDuplicateKey        = errors.New("duplicate key")
)

// ConcurrencyConflictError signals lock contention, a timeout while waiting
// for a lock, a serialization failure or a deadlock. Callers may retry.
type ConcurrencyConflictError struct {
	Resource string
	Cause    error
}

func NewConcurrencyConflictError(resource string, cause error) *ConcurrencyConflictError {
	return &ConcurrencyConflictError{Resource: resource, Cause: cause}
}

func (e *ConcurrencyConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrConcurrencyConflict, e.Resource, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrConcurrencyConflict, e.Resource)
}

func (e *ConcurrencyConflictError) Unwrap() error {
	return ErrConcurrencyConflict
}

// DuplicateKeyError wraps a unique constraint violation reported by storage.
type DuplicateKeyError struct {
	Constraint string
	Cause      error
}

func NewDuplicateKeyError(constraint string, cause error) *DuplicateKeyError {
	return &DuplicateKeyError{Constraint: constraint, Cause: cause}
}

func (e *DuplicateKeyError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrDuplicateKey, e.Constraint, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrDuplicateKey, e.Constraint)
}

func (e *DuplicateKeyError) Unwrap() error {
	return ErrDuplicateKey
}

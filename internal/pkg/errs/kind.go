package errs

import "errors"

// Kind is the stable, machine-readable classification of an error.
type Kind string

const (
	KindUnknown               Kind = "unknown"
	KindValidation            Kind = "validation"
	KindNotFound              Kind = "not_found"
	KindInvalidTransition     Kind = "invalid_transition"
	KindInsufficientInventory Kind = "insufficient_inventory"
	KindOperationNotAllowed   Kind = "operation_not_allowed"
	KindConcurrencyConflict   Kind = "concurrency_conflict"
)

// KindOf classifies err by walking its chain (including errors.Join trees).
// The first matching kind in precedence order wins.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrConcurrencyConflict), errors.Is(err, ErrDuplicateKey):
		return KindConcurrencyConflict
	case errors.Is(err, ErrInvalidTransition):
		return KindInvalidTransition
	case errors.Is(err, ErrInsufficientInventory):
		return KindInsufficientInventory
	case errors.Is(err, ErrOperationNotAllowed):
		return KindOperationNotAllowed
	case errors.Is(err, ErrObjectNotFound):
		return KindNotFound
	case errors.Is(err, ErrValueIsRequired),
		errors.Is(err, ErrValueIsInvalid),
		errors.Is(err, ErrValueIsOutOfRange):
		return KindValidation
	default:
		return KindUnknown
	}
}

// IsRetryable reports whether the same request may succeed when repeated.
func IsRetryable(err error) bool {
	return KindOf(err) == KindConcurrencyConflict
}

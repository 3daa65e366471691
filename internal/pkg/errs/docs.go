// Package errs holds the typed errors shared by every layer of the order engine.
//
// Every error type follows the same shape: a sentinel variable, a struct with
// the details, constructors with and without a cause, Error and Unwrap.
// Callers classify errors with KindOf, which walks the error chain with
// errors.Is and never looks at message text:
//
//   - validation: ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError
//   - not_found: ObjectNotFoundError
//   - invalid_transition: InvalidTransitionError
//   - insufficient_inventory: InsufficientInventoryError
//   - operation_not_allowed: OperationNotAllowedError
//   - concurrency_conflict: ConcurrencyConflictError, DuplicateKeyError (retryable)
package errs

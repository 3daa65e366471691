package errs

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTransition     = errors.New("invalid status transition")
	ErrInsufficientInventory = errors.New("insufficient inventory")
	ErrOperationNotAllowed   = errors.New("operation not allowed")
)

// InvalidTransitionError is returned when a requested status change is not an
// edge of the order status graph.
type InvalidTransitionError struct {
	From string
	To   string
}

func NewInvalidTransitionError(from, to fmt.Stringer) *InvalidTransitionError {
	return &InvalidTransitionError{From: from.String(), To: to.String()}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// InsufficientInventoryError is returned when a reservation line cannot be
// satisfied from the available quantity of a product.
type InsufficientInventoryError struct {
	ProductID string
	Requested int
	Available int
}

func NewInsufficientInventoryError(productID string, requested, available int) *InsufficientInventoryError {
	return &InsufficientInventoryError{
		ProductID: productID,
		Requested: requested,
		Available: available,
	}
}

func (e *InsufficientInventoryError) Error() string {
	return fmt.Sprintf("%s: product %s requested %d, available %d",
		ErrInsufficientInventory, e.ProductID, e.Requested, e.Available)
}

func (e *InsufficientInventoryError) Unwrap() error {
	return ErrInsufficientInventory
}

// OperationNotAllowedError is returned when an operation is forbidden in the
// current state of an aggregate.
type OperationNotAllowedError struct {
	Operation string
	Reason    string
}

func NewOperationNotAllowedError(operation, reason string) *OperationNotAllowedError {
	return &OperationNotAllowedError{Operation: operation, Reason: reason}
}

func (e *OperationNotAllowedError) Error() string {
	return fmt.Sprintf("%s: %s (%s)", ErrOperationNotAllowed, e.Operation, e.Reason)
}

func (e *OperationNotAllowedError) Unwrap() error {
	return ErrOperationNotAllowed
}

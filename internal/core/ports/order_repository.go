// Package ports defines the contracts between the application core and its
// adapters: persistence, event transport and idempotency storage.
package ports

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Items are stored and loaded together with the order.
type OrderRepository interface {
	// Add persists a new order and its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its items. Returns ObjectNotFoundError when
	// the order does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate is Get with a row lock held until the transaction ends.
	// Concurrent transitions of the same order are serialized by this lock.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// UpdateStatus writes the status, payment status and lifecycle timestamps
	// of aggregate only if the stored status still equals expected.
	// Returns InvalidTransitionError when the stored status moved on.
	UpdateStatus(ctx context.Context, aggregate *order.Order, expected order.Status) error

	// UpdateDetails writes the patchable attributes of aggregate.
	UpdateDetails(ctx context.Context, aggregate *order.Order) error

	// Delete removes the order with its items and status history.
	Delete(ctx context.Context, id kernel.UUID) error

	// ListIDsInStatusOlderThan returns up to limit ids of orders in status with
	// the given payment status created before the cutoff, oldest first.
	ListIDsInStatusOlderThan(
		ctx context.Context,
		status order.Status,
		payment order.PaymentStatus,
		before time.Time,
		limit int,
	) ([]kernel.UUID, error)
}

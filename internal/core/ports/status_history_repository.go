package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// StatusHistoryRepository is the append-only ledger of status changes.
// Entries are never updated or deleted one by one.
type StatusHistoryRepository interface {
	Append(ctx context.Context, change order.StatusChange) error

	// ListByOrder returns the entries of one order in insertion order.
	ListByOrder(ctx context.Context, orderID kernel.UUID) ([]order.StatusChange, error)
}

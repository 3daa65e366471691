package ports

import (
	"context"

	"ordering/internal/core/domain/model/inventory"
)

// InventoryRepository guards stock levels. Reserve and Release are single
// conditional updates, so the reserved quantity never leaves [0, total] even
// under concurrent callers.
type InventoryRepository interface {
	// Reserve increments the reserved quantity by line.Quantity() only if
	// enough stock is available, and records the reservation id.
	// applied is false when the same reservation id already reserved exactly
	// this quantity of the product; the stored record is returned unchanged
	// in that case. A resubmitted line with another quantity is a
	// ValueIsInvalidError, and one whose reservation was (partly) released is
	// an OperationNotAllowedError.
	// Returns InsufficientInventoryError or ObjectNotFoundError.
	Reserve(ctx context.Context, line inventory.Line) (record *inventory.Record, applied bool, err error)

	// Release returns up to line.Quantity() of a reservation to stock.
	// released is 0 when the reservation was already fully released.
	// Returns ObjectNotFoundError for an unknown reservation and
	// OperationNotAllowedError if stock would drop below zero.
	Release(ctx context.Context, line inventory.Line) (record *inventory.Record, released int, err error)

	Get(ctx context.Context, productID string) (*inventory.Record, error)

	// GetForUpdate locks the row of productID until the transaction ends.
	GetForUpdate(ctx context.Context, productID string) (*inventory.Record, error)

	// Save inserts the record or updates its total quantity, threshold and
	// alert flag. The reserved quantity is never written by Save.
	Save(ctx context.Context, record *inventory.Record) error
}

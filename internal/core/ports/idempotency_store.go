package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
)

// IdempotencyStore remembers which order a client-supplied key produced.
type IdempotencyStore interface {
	// Reserve claims key for a new request. When the key already completed,
	// fresh is false and orderID holds the order it produced. A key claimed
	// by a request still in flight yields ConcurrencyConflictError.
	Reserve(ctx context.Context, key string) (orderID kernel.UUID, fresh bool, err error)

	// Complete binds key to the order that was created.
	Complete(ctx context.Context, key string, orderID kernel.UUID) error

	// Release drops a claim whose request failed so the client can retry.
	Release(ctx context.Context, key string) error
}

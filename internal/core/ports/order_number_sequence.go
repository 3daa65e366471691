package ports

import (
	"context"
	"time"
)

// OrderNumberSequence hands out the per-day order counter.
type OrderNumberSequence interface {
	// Next atomically increments and returns the counter of day (UTC).
	Next(ctx context.Context, day time.Time) (int64, error)
}

package ports

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/kernel"
)

// OutboxMessage is a serialized domain event waiting to be published.
type OutboxMessage struct {
	ID          kernel.UUID
	Name        string
	AggregateID string
	Payload     []byte
	OccurredAt  time.Time
}

// OutboxRepository stores events in the transaction that produced them.
type OutboxRepository interface {
	Add(ctx context.Context, messages ...OutboxMessage) error

	// FetchUnpublished locks up to limit unpublished messages, oldest first.
	// Rows locked by another relay are skipped.
	FetchUnpublished(ctx context.Context, limit int) ([]OutboxMessage, error)

	MarkPublished(ctx context.Context, ids []kernel.UUID, at time.Time) error
}

// EventPublisher hands a message to the event transport.
type EventPublisher interface {
	Publish(ctx context.Context, message OutboxMessage) error
}

package commands

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/ports"

	"go.uber.org/zap"
)

// PublishOutboxEventsCommandHandler moves committed events to the publisher.
//
// Delivery is at least once: a message is marked published only after the
// publisher accepted it, and a failure stops the batch so that the
// remaining messages keep their order for the next run.
type PublishOutboxEventsCommandHandler struct {
	uowFactory OutboxUoWFactory
	publisher  ports.EventPublisher
	logger     *zap.Logger
	now        func() time.Time
}

func NewPublishOutboxEventsCommandHandler(
	uowFactory OutboxUoWFactory,
	publisher ports.EventPublisher,
	logger *zap.Logger,
) PublishOutboxEventsCommandHandler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return PublishOutboxEventsCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With(zap.String("handler", "publish_outbox_events")),
		now:        time.Now,
	}
}

// Handle returns how many messages were published.
func (h *PublishOutboxEventsCommandHandler) Handle(ctx context.Context, cmd PublishOutboxEventsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	var published []kernel.UUID
	uow := h.uowFactory.Create()

	err := withinUnitOfWork(ctx, uow, func() error {
		outbox := uow.OutboxRepository()

		messages, err := outbox.FetchUnpublished(ctx, cmd.BatchSize())
		if err != nil {
			return err
		}

		for _, msg := range messages {
			if err = h.publisher.Publish(ctx, msg); err != nil {
				h.logger.Warn("failed to publish event",
					zap.String("event_id", msg.ID.String()),
					zap.String("event", msg.Name),
					zap.Error(err))
				break
			}
			published = append(published, msg.ID)
		}

		return outbox.MarkPublished(ctx, published, h.now())
	})
	if err != nil {
		return 0, err
	}

	return len(published), nil
}

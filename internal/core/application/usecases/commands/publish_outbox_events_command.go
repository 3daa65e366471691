package commands

import (
	"errors"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrPublishOutboxEventsCommandIsNotConstructed = errors.New(
	"PublishOutboxEventsCommand must be created via NewPublishOutboxEventsCommand constructor",
)

// PublishOutboxEventsCommand relays up to batchSize committed events.
type PublishOutboxEventsCommand struct { //nolint:recvcheck //using for validation
	batchSize int

	guard guard.ConstructorGuard
}

func NewPublishOutboxEventsCommand(batchSize int) (PublishOutboxEventsCommand, error) {
	if batchSize <= 0 {
		return PublishOutboxEventsCommand{}, errs.NewValueIsOutOfRangeError("batch_size", batchSize, 1, "unbounded")
	}

	return PublishOutboxEventsCommand{
		batchSize: batchSize,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c PublishOutboxEventsCommand) Validate() error {
	return c.guard.Validate(ErrPublishOutboxEventsCommandIsNotConstructed)
}

func (c PublishOutboxEventsCommand) BatchSize() int {
	return c.batchSize
}

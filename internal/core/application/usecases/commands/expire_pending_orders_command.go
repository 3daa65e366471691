package commands

import (
	"errors"
	"time"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrExpirePendingOrdersCommandIsNotConstructed = errors.New(
	"ExpirePendingOrdersCommand must be created via NewExpirePendingOrdersCommand constructor",
)

// ExpiryActor is recorded as changed_by on orders cancelled for non-payment.
const ExpiryActor = "system:expiry"

// ExpirePendingOrdersCommand cancels unpaid PENDING orders older than ttl,
// at most batchSize per run.
type ExpirePendingOrdersCommand struct { //nolint:recvcheck //using for validation
	ttl       time.Duration
	batchSize int

	guard guard.ConstructorGuard
}

func NewExpirePendingOrdersCommand(ttl time.Duration, batchSize int) (ExpirePendingOrdersCommand, error) {
	if ttl <= 0 {
		return ExpirePendingOrdersCommand{}, errs.NewValueIsOutOfRangeError("ttl", ttl, "1ns", "unbounded")
	}
	if batchSize <= 0 {
		return ExpirePendingOrdersCommand{}, errs.NewValueIsOutOfRangeError("batch_size", batchSize, 1, "unbounded")
	}

	return ExpirePendingOrdersCommand{
		ttl:       ttl,
		batchSize: batchSize,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c ExpirePendingOrdersCommand) Validate() error {
	return c.guard.Validate(ErrExpirePendingOrdersCommandIsNotConstructed)
}

func (c ExpirePendingOrdersCommand) TTL() time.Duration { return c.ttl }
func (c ExpirePendingOrdersCommand) BatchSize() int     { return c.batchSize }

package commands

import (
	"errors"

	"ordering/internal/core/domain/model/inventory"
	"ordering/internal/pkg/guard"
)

var ErrReserveInventoryCommandIsNotConstructed = errors.New(
	"ReserveInventoryCommand must be created via NewReserveInventoryCommand constructor",
)

// ReserveInventoryCommand reserves every line of a batch or none of them.
type ReserveInventoryCommand struct { //nolint:recvcheck //using for validation
	batch inventory.Batch

	guard guard.ConstructorGuard
}

func NewReserveInventoryCommand(lines []inventory.Line) (ReserveInventoryCommand, error) {
	batch, err := inventory.NewBatch(lines)
	if err != nil {
		return ReserveInventoryCommand{}, err
	}

	return ReserveInventoryCommand{
		batch: batch,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c ReserveInventoryCommand) Validate() error {
	return c.guard.Validate(ErrReserveInventoryCommandIsNotConstructed)
}

func (c ReserveInventoryCommand) Batch() inventory.Batch {
	return c.batch
}

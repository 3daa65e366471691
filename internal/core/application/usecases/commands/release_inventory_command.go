package commands

import (
	"errors"

	"ordering/internal/core/domain/model/inventory"
	"ordering/internal/pkg/guard"
)

var ErrReleaseInventoryCommandIsNotConstructed = errors.New(
	"ReleaseInventoryCommand must be created via NewReleaseInventoryCommand constructor",
)

// ReleaseInventoryCommand returns reserved stock, all lines or none.
type ReleaseInventoryCommand struct { //nolint:recvcheck //using for validation
	batch inventory.Batch

	guard guard.ConstructorGuard
}

func NewReleaseInventoryCommand(lines []inventory.Line) (ReleaseInventoryCommand, error) {
	batch, err := inventory.NewBatch(lines)
	if err != nil {
		return ReleaseInventoryCommand{}, err
	}

	return ReleaseInventoryCommand{
		batch: batch,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c ReleaseInventoryCommand) Validate() error {
	return c.guard.Validate(ErrReleaseInventoryCommandIsNotConstructed)
}

func (c ReleaseInventoryCommand) Batch() inventory.Batch {
	return c.batch
}

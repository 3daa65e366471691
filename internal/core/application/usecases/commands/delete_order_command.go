package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

// DeleteOrderCommand removes a PENDING or CANCELLED order.
type DeleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteOrderCommand(orderID kernel.UUID) (DeleteOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return DeleteOrderCommand{}, err
	}

	return DeleteOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

func (c DeleteOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrUpdateOrderDetailsCommandIsNotConstructed = errors.New(
	"UpdateOrderDetailsCommand must be created via NewUpdateOrderDetailsCommand constructor",
)

// UpdateOrderDetailsCommand edits the attributes listed in order.Patch.
// The status can not be changed this way.
type UpdateOrderDetailsCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	patch   order.Patch

	guard guard.ConstructorGuard
}

func NewUpdateOrderDetailsCommand(orderID kernel.UUID, patch order.Patch) (UpdateOrderDetailsCommand, error) {
	var patchErr error
	if patch.IsEmpty() {
		patchErr = errs.NewValueIsRequiredError("patch")
	}

	if err := errors.Join(orderID.Validate(), patchErr); err != nil {
		return UpdateOrderDetailsCommand{}, err
	}

	return UpdateOrderDetailsCommand{
		orderID: orderID,
		patch:   patch,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateOrderDetailsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderDetailsCommandIsNotConstructed)
}

func (c UpdateOrderDetailsCommand) OrderID() kernel.UUID { return c.orderID }
func (c UpdateOrderDetailsCommand) Patch() order.Patch   { return c.patch }

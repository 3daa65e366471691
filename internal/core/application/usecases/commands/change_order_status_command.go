package commands

import (
	"errors"
	"strings"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand moves an order along the status graph.
//
// expectedFrom is optional. When set, a request whose expected status no
// longer holds but whose target is already reached is answered as a no-op,
// which makes client retries safe.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	target       order.Status
	actor        string
	reason       string
	expectedFrom *order.Status

	guard guard.ConstructorGuard
}

func NewChangeOrderStatusCommand(
	orderID kernel.UUID,
	target order.Status,
	actor, reason string,
	expectedFrom *order.Status,
) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{
		reason: strings.TrimSpace(reason),
		guard:  guard.NewConstructorGuard(),
	}

	var expectedErr error
	if expectedFrom != nil {
		expectedErr = expectedFrom.Validate()
		from := *expectedFrom
		cmd.expectedFrom = &from
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTarget(target),
		cmd.setActor(actor),
		expectedErr,
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return cmd, nil
}

func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

func (c ChangeOrderStatusCommand) OrderID() kernel.UUID { return c.orderID }
func (c ChangeOrderStatusCommand) Target() order.Status { return c.target }
func (c ChangeOrderStatusCommand) Actor() string        { return c.actor }
func (c ChangeOrderStatusCommand) Reason() string       { return c.reason }

// ExpectedFrom returns the status the caller believes the order is in, or nil.
func (c ChangeOrderStatusCommand) ExpectedFrom() *order.Status { return c.expectedFrom }

func (c *ChangeOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ChangeOrderStatusCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}

func (c *ChangeOrderStatusCommand) setActor(actor string) error {
	actor = strings.TrimSpace(actor)
	if actor == "" {
		return errs.NewValueIsRequiredError("changed_by")
	}

	c.actor = actor
	return nil
}

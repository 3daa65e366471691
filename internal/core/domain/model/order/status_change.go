package order

import (
	"fmt"
	"strings"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

// InitialReason is recorded on the first ledger entry of every order.
const InitialReason = "Order created"

// StatusChange is one immutable entry of the status history ledger.
// previous is nil only on the first entry of an order.
type StatusChange struct {
	id        kernel.UUID
	orderID   kernel.UUID
	previous  *Status
	next      Status
	changedBy string
	reason    string
	createdAt time.Time
}

func newStatusChange(orderID kernel.UUID, previous *Status, next Status, changedBy, reason string, at time.Time) StatusChange {
	return StatusChange{
		id:        kernel.NewUUID(),
		orderID:   orderID,
		previous:  previous,
		next:      next,
		changedBy: changedBy,
		reason:    reason,
		createdAt: at.UTC(),
	}
}

// RestoreStatusChange rebuilds a persisted ledger entry.
func RestoreStatusChange(
	id, orderID kernel.UUID,
	previous *Status,
	next Status,
	changedBy, reason string,
	createdAt time.Time,
) (StatusChange, error) {
	if err := id.Validate(); err != nil {
		return StatusChange{}, err
	}
	if err := orderID.Validate(); err != nil {
		return StatusChange{}, err
	}
	if previous != nil {
		if err := previous.Validate(); err != nil {
			return StatusChange{}, err
		}
	}
	if err := next.Validate(); err != nil {
		return StatusChange{}, err
	}

	return StatusChange{
		id:        id,
		orderID:   orderID,
		previous:  previous,
		next:      next,
		changedBy: changedBy,
		reason:    reason,
		createdAt: createdAt.UTC(),
	}, nil
}

func (c StatusChange) ID() kernel.UUID      { return c.id }
func (c StatusChange) OrderID() kernel.UUID { return c.orderID }
func (c StatusChange) Previous() *Status    { return c.previous }
func (c StatusChange) Next() Status         { return c.next }
func (c StatusChange) ChangedBy() string    { return c.changedBy }
func (c StatusChange) Reason() string       { return c.reason }
func (c StatusChange) CreatedAt() time.Time { return c.createdAt }

// ReplayStatus folds the ledger of one order, oldest first, into the status
// it describes. Any gap, fork or illegal edge is reported as an error.
func ReplayStatus(entries []StatusChange) (Status, error) {
	if len(entries) == 0 {
		return "", errs.NewValueIsRequiredError("status_history")
	}

	first := entries[0]
	if first.previous != nil || first.next != Pending {
		return "", errs.NewValueIsInvalidErrorWithCause("status_history",
			fmt.Errorf("first entry must be null -> %s", Pending))
	}

	current := first.next
	for i, entry := range entries[1:] {
		if !entry.orderID.IsEqual(first.orderID) {
			return "", errs.NewValueIsInvalidErrorWithCause("status_history",
				fmt.Errorf("entry %d belongs to order %s", i+1, entry.orderID))
		}
		if entry.previous == nil || *entry.previous != current {
			return "", errs.NewValueIsInvalidErrorWithCause("status_history",
				fmt.Errorf("entry %d does not continue from %s", i+1, current))
		}
		if !IsValidTransition(current, entry.next) {
			return "", errs.NewInvalidTransitionError(current, entry.next)
		}
		current = entry.next
	}

	return current, nil
}

func normalizeActor(actor string) (string, error) {
	actor = strings.TrimSpace(actor)
	if actor == "" {
		return "", errs.NewValueIsRequiredError("changed_by")
	}
	return actor, nil
}

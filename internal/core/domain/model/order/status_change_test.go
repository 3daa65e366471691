package order_test

import (
	"testing"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplayStatus_MatchesAggregate(t *testing.T) {
	id := kernel.NewUUID()
	o, first, err := order.NewOrder(id, draft(t, order.Pickup, item(t, "p-1", "10", 1)), "customer", createdAt)
	require.NoError(t, err)

	ledger := []order.StatusChange{first}
	for _, next := range []order.Status{order.Confirmed, order.Preparing, order.Cancelled, order.Refunded} {
		change, transitionErr := o.TransitionTo(next, "admin", "", createdAt)
		require.NoError(t, transitionErr)
		ledger = append(ledger, change)
	}

	replayed, err := order.ReplayStatus(ledger)

	require.NoError(t, err)
	assert.Equal(t, o.Status(), replayed)
}

func TestReplayStatus_RejectsBrokenChains(t *testing.T) {
	orderID := kernel.NewUUID()
	pending := order.Pending
	confirmed := order.Confirmed

	entry := func(previous *order.Status, next order.Status) order.StatusChange {
		c, err := order.RestoreStatusChange(kernel.NewUUID(), orderID, previous, next, "admin", "", createdAt)
		require.NoError(t, err)
		return c
	}

	testCases := []struct {
		name    string
		entries []order.StatusChange
		target  error
	}{
		{"empty", nil, errs.ErrValueIsRequired},
		{"first_not_pending", []order.StatusChange{entry(nil, order.Confirmed)}, errs.ErrValueIsInvalid},
		{"first_has_previous", []order.StatusChange{entry(&pending, order.Confirmed)}, errs.ErrValueIsInvalid},
		{"gap", []order.StatusChange{entry(nil, order.Pending), entry(&confirmed, order.Preparing)}, errs.ErrValueIsInvalid},
		{"illegal_edge", []order.StatusChange{entry(nil, order.Pending), entry(&pending, order.Delivered)}, errs.ErrInvalidTransition},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := order.ReplayStatus(tc.entries)
			require.ErrorIs(t, err, tc.target)
		})
	}
}

func TestRestoreStatusChange_Validation(t *testing.T) {
	bogus := order.Status("LOST")
	_, err := order.RestoreStatusChange(kernel.NewUUID(), kernel.NewUUID(), &bogus, order.Pending, "a", "", createdAt)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = order.RestoreStatusChange(kernel.UUID{}, kernel.NewUUID(), nil, order.Pending, "a", "", createdAt)
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

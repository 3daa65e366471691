package order

import (
	"fmt"

	"ordering/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
// State transitions:
//
//	PENDING          -> CONFIRMED | CANCELLED
//	CONFIRMED        -> PREPARING | CANCELLED
//	PREPARING        -> READY | CANCELLED
//	READY            -> OUT_FOR_DELIVERY | DELIVERED | CANCELLED
//	OUT_FOR_DELIVERY -> DELIVERED | CANCELLED
//	DELIVERED        -> REFUNDED
//	CANCELLED        -> REFUNDED
//	REFUNDED         (none)
//
// There are no self transitions.
type Status string

const (
	Pending        Status = "PENDING"
	Confirmed      Status = "CONFIRMED"
	Preparing      Status = "PREPARING"
	Ready          Status = "READY"
	OutForDelivery Status = "OUT_FOR_DELIVERY"
	Delivered      Status = "DELIVERED"
	Cancelled      Status = "CANCELLED"
	Refunded       Status = "REFUNDED"
)

// transitions is the fixed status graph. A status missing from the map is not
// a valid status at all.
var transitions = map[Status]map[Status]struct{}{
	Pending:        {Confirmed: {}, Cancelled: {}},
	Confirmed:      {Preparing: {}, Cancelled: {}},
	Preparing:      {Ready: {}, Cancelled: {}},
	Ready:          {OutForDelivery: {}, Delivered: {}, Cancelled: {}},
	OutForDelivery: {Delivered: {}, Cancelled: {}},
	Delivered:      {Refunded: {}},
	Cancelled:      {Refunded: {}},
	Refunded:       {},
}

// AllStatuses lists every status in lifecycle order.
func AllStatuses() []Status {
	return []Status{Pending, Confirmed, Preparing, Ready, OutForDelivery, Delivered, Cancelled, Refunded}
}

// IsValidTransition reports whether next is a direct successor of current in
// the status graph. It is a pure lookup.
func IsValidTransition(current, next Status) bool {
	_, ok := transitions[current][next]
	return ok
}

// ParseStatus converts external input into a Status.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

func (s Status) Validate() error {
	if _, ok := transitions[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", string(s)))
	}
	return nil
}

func (s Status) String() string {
	return string(s)
}

// CanTransitionTo returns an InvalidTransitionError when next is not reachable
// from s in one step.
func (s Status) CanTransitionTo(next Status) error {
	if err := next.Validate(); err != nil {
		return err
	}
	if !IsValidTransition(s, next) {
		return errs.NewInvalidTransitionError(s, next)
	}
	return nil
}

// IsTerminal reports whether the order reached the end of fulfilment.
// DELIVERED and CANCELLED may still be refunded.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled || s == Refunded
}

// IsDeletable reports whether an order in this status may be removed.
func (s Status) IsDeletable() bool {
	return s == Pending || s == Cancelled
}

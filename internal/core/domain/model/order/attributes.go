package order

import (
	"fmt"

	"ordering/internal/pkg/errs"
)

// PaymentStatus tracks settlement of the order total. It is independent from
// the fulfilment Status.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "PENDING"
	PaymentPaid     PaymentStatus = "PAID"
	PaymentFailed   PaymentStatus = "FAILED"
	PaymentRefunded PaymentStatus = "REFUNDED"
)

func (p PaymentStatus) Validate() error {
	switch p {
	case PaymentPending, PaymentPaid, PaymentFailed, PaymentRefunded:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("payment_status", fmt.Errorf("%q is not a valid payment status", string(p)))
	}
}

func (p PaymentStatus) String() string { return string(p) }

// DeliveryType decides whether a delivery address and fee apply.
type DeliveryType string

const (
	Delivery DeliveryType = "DELIVERY"
	Pickup   DeliveryType = "PICKUP"
	DineIn   DeliveryType = "DINE_IN"
)

func (d DeliveryType) Validate() error {
	switch d {
	case Delivery, Pickup, DineIn:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("delivery_type", fmt.Errorf("%q is not a valid delivery type", string(d)))
	}
}

func (d DeliveryType) String() string { return string(d) }

// Priority orders the kitchen queue. Orders default to NORMAL.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityNormal Priority = "NORMAL"
	PriorityHigh   Priority = "HIGH"
	PriorityUrgent Priority = "URGENT"
)

func (p Priority) Validate() error {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("priority", fmt.Errorf("%q is not a valid priority", string(p)))
	}
}

func (p Priority) String() string { return string(p) }

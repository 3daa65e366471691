package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"ordering/internal/core/domain/model/events"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned for an Order that bypassed NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Details groups the caller-supplied attributes of a new order.
type Details struct {
	Number               Number
	Customer             Customer
	Fulfilment           Fulfilment
	Items                []Item
	Totals               Totals
	Priority             Priority
	SpecialInstructions  string
	EstimatedPrepMinutes int
}

// Order is the aggregate root of the order lifecycle.
//
// Invariants:
//   - at least one item, and the subtotal equals the sum of item totals
//   - totals satisfy total = subtotal + tax + fee - discount
//   - status only changes along the status graph, through TransitionTo
//   - confirmedAt, cancelledAt and deliveredAt are set when the matching status is reached
type Order struct {
	events.Recorder

	id                   kernel.UUID
	number               Number
	status               Status
	paymentStatus        PaymentStatus
	priority             Priority
	customer             Customer
	fulfilment           Fulfilment
	items                []Item
	totals               Totals
	specialInstructions  string
	estimatedPrepMinutes int

	createdAt   time.Time
	updatedAt   time.Time
	confirmedAt *time.Time
	cancelledAt *time.Time
	deliveredAt *time.Time

	isConstructed bool
}

// NewOrder creates a PENDING order and returns the first ledger entry
// (null -> PENDING). An order.created event is recorded.
func NewOrder(id kernel.UUID, details Details, actor string, at time.Time) (*Order, StatusChange, error) {
	at = at.UTC()
	o := &Order{
		id:                  id,
		number:              details.Number,
		status:              Pending,
		paymentStatus:       PaymentPending,
		priority:            details.Priority,
		customer:            details.Customer,
		fulfilment:          details.Fulfilment,
		totals:              details.Totals,
		specialInstructions: strings.TrimSpace(details.SpecialInstructions),
		createdAt:           at,
		updatedAt:           at,
		isConstructed:       true,
	}
	if o.priority == "" {
		o.priority = PriorityNormal
	}

	actor, actorErr := normalizeActor(actor)
	if err := errors.Join(
		id.Validate(),
		actorErr,
		o.setNumber(details.Number),
		o.priority.Validate(),
		o.setEstimatedPrepMinutes(details.EstimatedPrepMinutes),
		o.setItems(details.Items),
	); err != nil {
		return nil, StatusChange{}, err
	}

	change := newStatusChange(id, nil, Pending, actor, InitialReason, at)
	o.Record(newCreatedEvent(o))
	return o, change, nil
}

// Snapshot is the persisted form of an order used by RestoreOrder.
type Snapshot struct {
	ID                   kernel.UUID
	Number               Number
	Status               Status
	PaymentStatus        PaymentStatus
	Priority             Priority
	Customer             Customer
	Fulfilment           Fulfilment
	Items                []Item
	Totals               Totals
	SpecialInstructions  string
	EstimatedPrepMinutes int
	CreatedAt            time.Time
	UpdatedAt            time.Time
	ConfirmedAt          *time.Time
	CancelledAt          *time.Time
	DeliveredAt          *time.Time
}

// RestoreOrder rebuilds an order from storage. No events are recorded.
func RestoreOrder(s Snapshot) (*Order, error) {
	o := &Order{
		id:                   s.ID,
		status:               s.Status,
		paymentStatus:        s.PaymentStatus,
		priority:             s.Priority,
		customer:             s.Customer,
		fulfilment:           s.Fulfilment,
		totals:               s.Totals,
		specialInstructions:  s.SpecialInstructions,
		estimatedPrepMinutes: s.EstimatedPrepMinutes,
		createdAt:            s.CreatedAt.UTC(),
		updatedAt:            s.UpdatedAt.UTC(),
		confirmedAt:          utcPtr(s.ConfirmedAt),
		cancelledAt:          utcPtr(s.CancelledAt),
		deliveredAt:          utcPtr(s.DeliveredAt),
		isConstructed:        true,
	}

	if err := errors.Join(
		s.ID.Validate(),
		o.setNumber(s.Number),
		s.Status.Validate(),
		s.PaymentStatus.Validate(),
		s.Priority.Validate(),
		o.setItems(s.Items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// TransitionTo moves the order to next, stamps the matching timestamp and
// returns the ledger entry describing the move. The order is unchanged when
// the move is not an edge of the status graph.
func (o *Order) TransitionTo(next Status, actor, reason string, at time.Time) (StatusChange, error) {
	if err := o.Validate(); err != nil {
		return StatusChange{}, err
	}

	actor, err := normalizeActor(actor)
	if err != nil {
		return StatusChange{}, err
	}

	if err = o.status.CanTransitionTo(next); err != nil {
		return StatusChange{}, err
	}

	at = at.UTC()
	previous := o.status
	o.status = next
	o.updatedAt = at

	switch next {
	case Confirmed:
		o.confirmedAt = &at
	case Cancelled:
		o.cancelledAt = &at
	case Delivered:
		o.deliveredAt = &at
	case Refunded:
		if o.paymentStatus == PaymentPaid {
			o.paymentStatus = PaymentRefunded
		}
	case Pending, Preparing, Ready, OutForDelivery:
	}

	change := newStatusChange(o.id, &previous, next, actor, strings.TrimSpace(reason), at)
	o.Record(newStatusChangedEvent(change))
	return change, nil
}

// EnsureDeletable fails with OperationNotAllowedError unless the order is
// PENDING or CANCELLED.
func (o *Order) EnsureDeletable() error {
	if err := o.Validate(); err != nil {
		return err
	}
	if !o.status.IsDeletable() {
		return errs.NewOperationNotAllowedError("delete order", fmt.Sprintf("status is %s", o.status))
	}
	return nil
}

// ApplyPatch updates the legally editable attributes. Once fulfilment has
// ended only the payment status may change.
func (o *Order) ApplyPatch(p Patch, at time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if p.IsEmpty() {
		return errs.NewValueIsRequiredError("patch")
	}
	if o.status.IsTerminal() && !p.onlyPayment() {
		return errs.NewOperationNotAllowedError("update order", fmt.Sprintf("status is %s", o.status))
	}

	updated := *o

	if p.PaymentStatus != nil {
		if err := p.PaymentStatus.Validate(); err != nil {
			return err
		}
		updated.paymentStatus = *p.PaymentStatus
	}

	if p.Priority != nil {
		if err := p.Priority.Validate(); err != nil {
			return err
		}
		updated.priority = *p.Priority
	}

	if p.CustomerName != nil || p.CustomerPhone != nil || p.CustomerEmail != nil {
		customer, err := NewCustomer(
			o.customer.ID(),
			valueOr(p.CustomerName, o.customer.Name()),
			valueOr(p.CustomerPhone, o.customer.Phone()),
			valueOr(p.CustomerEmail, o.customer.Email()),
		)
		if err != nil {
			return err
		}
		updated.customer = customer
	}

	if p.DeliveryAddress != nil || p.DeliveryNotes != nil {
		fulfilment, err := NewFulfilment(
			o.fulfilment.Type(),
			valueOr(p.DeliveryAddress, o.fulfilment.Address()),
			valueOr(p.DeliveryNotes, o.fulfilment.Notes()),
			o.fulfilment.RequestedAt(),
		)
		if err != nil {
			return err
		}
		updated.fulfilment = fulfilment
	}

	if p.SpecialInstructions != nil {
		updated.specialInstructions = strings.TrimSpace(*p.SpecialInstructions)
	}

	if p.EstimatedPrepMinutes != nil {
		if err := updated.setEstimatedPrepMinutes(*p.EstimatedPrepMinutes); err != nil {
			return err
		}
	}

	updated.updatedAt = at.UTC()
	*o = updated
	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID              { return o.id }
func (o *Order) Number() Number               { return o.number }
func (o *Order) Status() Status               { return o.status }
func (o *Order) PaymentStatus() PaymentStatus { return o.paymentStatus }
func (o *Order) Priority() Priority           { return o.priority }
func (o *Order) Customer() Customer           { return o.customer }
func (o *Order) Fulfilment() Fulfilment       { return o.fulfilment }
func (o *Order) Totals() Totals               { return o.totals }
func (o *Order) SpecialInstructions() string  { return o.specialInstructions }
func (o *Order) EstimatedPrepMinutes() int    { return o.estimatedPrepMinutes }
func (o *Order) CreatedAt() time.Time         { return o.createdAt }
func (o *Order) UpdatedAt() time.Time         { return o.updatedAt }
func (o *Order) ConfirmedAt() *time.Time      { return o.confirmedAt }
func (o *Order) CancelledAt() *time.Time      { return o.cancelledAt }
func (o *Order) DeliveredAt() *time.Time      { return o.deliveredAt }

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	out := make([]Item, len(o.items))
	copy(out, o.items)
	return out
}

func (o *Order) setNumber(n Number) error {
	if n == "" {
		return errs.NewValueIsRequiredError("order_number")
	}
	o.number = n
	return nil
}

func (o *Order) setEstimatedPrepMinutes(minutes int) error {
	if minutes < 0 {
		return errs.NewValueIsOutOfRangeError("estimated_prep_time", minutes, 0, "unbounded")
	}
	o.estimatedPrepMinutes = minutes
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	subtotal := kernel.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.TotalPrice())
	}
	if !subtotal.Equal(o.totals.Subtotal()) {
		return errs.NewValueIsInvalidErrorWithCause("subtotal",
			fmt.Errorf("subtotal %s does not match item totals %s", o.totals.Subtotal(), subtotal))
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

func valueOr(p *string, fallback string) string {
	if p == nil {
		return fallback
	}
	return *p
}

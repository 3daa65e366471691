package order

import (
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

// Totals is the price breakdown of an order.
// Invariant: total = subtotal + tax + deliveryFee - discount, and total >= 0.
type Totals struct {
	subtotal    kernel.Money
	tax         kernel.Money
	deliveryFee kernel.Money
	discount    kernel.Money
	total       kernel.Money
}

func NewTotals(subtotal, tax, deliveryFee, discount kernel.Money) (Totals, error) {
	total := subtotal.Add(tax).Add(deliveryFee).Sub(discount)
	if total.IsNegative() {
		gross := subtotal.Add(tax).Add(deliveryFee)
		return Totals{}, errs.NewValueIsOutOfRangeError("discount_amount", discount.String(), 0, gross.String())
	}

	return Totals{
		subtotal:    subtotal,
		tax:         tax,
		deliveryFee: deliveryFee,
		discount:    discount,
		total:       total,
	}, nil
}

// RestoreTotals rebuilds persisted totals and verifies the stored total.
func RestoreTotals(subtotal, tax, deliveryFee, discount, total kernel.Money) (Totals, error) {
	t, err := NewTotals(subtotal, tax, deliveryFee, discount)
	if err != nil {
		return Totals{}, err
	}
	if !t.total.Equal(total) {
		return Totals{}, errs.NewValueIsInvalidErrorWithCause("total_amount",
			fmt.Errorf("stored total %s does not match computed %s", total, t.total))
	}
	return t, nil
}

func (t Totals) Subtotal() kernel.Money    { return t.subtotal }
func (t Totals) Tax() kernel.Money         { return t.tax }
func (t Totals) DeliveryFee() kernel.Money { return t.deliveryFee }
func (t Totals) Discount() kernel.Money    { return t.discount }
func (t Totals) Total() kernel.Money       { return t.total }

package services

import (
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// PricingCalculator derives the price breakdown of an order from its lines.
//
// Business rules:
//   - subtotal is the sum of item totals
//   - tax is subtotal × tax rate, rounded to cents
//   - the flat delivery fee applies to DELIVERY orders only
//   - the discount may not push the total below zero
type PricingCalculator struct {
	taxRate     decimal.Decimal
	deliveryFee kernel.Money
}

// NewPricingCalculator validates the tax rate (0..1) and the delivery fee.
func NewPricingCalculator(taxRate decimal.Decimal, deliveryFee kernel.Money) (PricingCalculator, error) {
	if taxRate.IsNegative() || taxRate.GreaterThan(decimal.NewFromInt(1)) {
		return PricingCalculator{}, errs.NewValueIsOutOfRangeError("tax_rate", taxRate.String(), 0, 1)
	}
	if deliveryFee.IsNegative() {
		return PricingCalculator{}, errs.NewValueIsOutOfRangeError("delivery_fee", deliveryFee.String(), 0, "unbounded")
	}

	return PricingCalculator{taxRate: taxRate, deliveryFee: deliveryFee}, nil
}

// Calculate returns the totals for items. An empty item list is rejected.
func (p PricingCalculator) Calculate(items []order.Item, deliveryType order.DeliveryType, discount kernel.Money) (order.Totals, error) {
	if len(items) == 0 {
		return order.Totals{}, errs.NewValueIsRequiredError("items")
	}
	if err := deliveryType.Validate(); err != nil {
		return order.Totals{}, err
	}
	if discount.IsNegative() {
		return order.Totals{}, errs.NewValueIsOutOfRangeError("discount_amount", discount.String(), 0, "unbounded")
	}

	subtotal := kernel.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.TotalPrice())
	}

	fee := kernel.Zero
	if deliveryType == order.Delivery {
		fee = p.deliveryFee
	}

	return order.NewTotals(subtotal, subtotal.MulRate(p.taxRate), fee, discount)
}

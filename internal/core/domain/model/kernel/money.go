package kernel

import (
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const moneyScale = 2

// Money is an immutable decimal amount in the shop currency, rounded to two
// places after every operation.
type Money struct {
	amount decimal.Decimal
}

// Zero is the additive identity.
var Zero = Money{amount: decimal.Zero}

// NewMoney builds Money from a decimal value. Negative amounts are rejected.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", amount.String(), 0, "unbounded")
	}
	return Money{amount: amount.Round(moneyScale)}, nil
}

// MoneyFromString parses a decimal literal such as "10000" or "12.50".
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(d)
}

// MoneyFromInt builds Money from a whole amount.
func MoneyFromInt(amount int64) (Money, error) {
	return NewMoney(decimal.NewFromInt(amount))
}

// RestoreMoney rebuilds a persisted amount without the sign check.
// Only storage adapters call it.
func RestoreMoney(amount decimal.Decimal) Money {
	return Money{amount: amount.Round(moneyScale)}
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount).Round(moneyScale)}
}

// Sub may produce a negative amount; callers check IsNegative.
func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount).Round(moneyScale)}
}

func (m Money) MulQuantity(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity))).Round(moneyScale)}
}

// MulRate multiplies by a fractional rate such as 0.10 for ten percent.
func (m Money) MulRate(rate decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(rate).Round(moneyScale)}
}

func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

func (m Money) Cmp(other Money) int {
	return m.amount.Cmp(other.amount)
}

func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

func (m Money) String() string {
	return m.amount.StringFixed(moneyScale)
}

package kernel_test

import (
	"testing"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func TestMoney_Arithmetic(t *testing.T) {
	price := mustMoney(t, "10000")

	subtotal := price.MulQuantity(2)
	tax := subtotal.MulRate(decimal.RequireFromString("0.10"))
	total := subtotal.Add(tax).Add(mustMoney(t, "25000"))

	assert.Equal(t, "20000.00", subtotal.String())
	assert.Equal(t, "2000.00", tax.String())
	assert.Equal(t, "47000.00", total.String())
	assert.True(t, total.Sub(mustMoney(t, "47000")).IsZero())
}

func TestMoney_RoundsToCents(t *testing.T) {
	m := mustMoney(t, "3.335")

	assert.Equal(t, "3.34", m.String())
	assert.Equal(t, "0.99", mustMoney(t, "0.333").MulQuantity(3).String())
}

func TestMoney_Validation(t *testing.T) {
	_, err := kernel.MoneyFromString("-1")
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = kernel.MoneyFromString("ten")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestMoney_Compare(t *testing.T) {
	a := mustMoney(t, "5")
	b := mustMoney(t, "7.5")

	assert.Equal(t, -1, a.Cmp(b))
	assert.True(t, a.Sub(b).IsNegative())
	assert.True(t, a.Equal(mustMoney(t, "5.00")))
	assert.True(t, kernel.Zero.IsZero())
}

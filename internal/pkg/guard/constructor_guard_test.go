package guard_test

import (
	"errors"
	"testing"

	"ordering/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_given_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expected := errors.New("ReserveInventoryCommand must be created via its constructor")

		err := g.Validate(expected)

		require.Error(t, err)
		assert.Equal(t, expected, err)
	})

	t.Run("zero_value_guard_falls_back_to_default", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

func TestConstructorGuard_EmbeddedInCommand(t *testing.T) {
	type releaseLine struct {
		productID string
		quantity  int
		guard     guard.ConstructorGuard
	}
	errNotConstructed := errors.New("releaseLine must be created via newReleaseLine")

	newReleaseLine := func(productID string, quantity int) (releaseLine, error) {
		if quantity <= 0 {
			return releaseLine{}, errors.New("quantity must be positive")
		}
		return releaseLine{productID: productID, quantity: quantity, guard: guard.NewConstructorGuard()}, nil
	}

	line, err := newReleaseLine("sku-1", 2)
	require.NoError(t, err)
	require.NoError(t, line.guard.Validate(errNotConstructed))

	var zero releaseLine
	assert.Equal(t, errNotConstructed, zero.guard.Validate(errNotConstructed))

	_, err = newReleaseLine("sku-1", 0)
	require.Error(t, err)
}

func TestConstructorGuard_ConcurrentValidate(t *testing.T) {
	g := guard.NewConstructorGuard()
	done := make(chan struct{})
	for range 16 {
		go func() {
			defer func() { done <- struct{}{} }()
			for range 100 {
				assert.NoError(t, g.Validate(nil))
			}
		}()
	}
	for range 16 {
		<-done
	}
}

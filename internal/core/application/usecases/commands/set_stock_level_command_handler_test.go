package commands_test

import (
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/inventory"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewSetStockLevelCommand(t *testing.T) {
	negative := -1

	_, err := commands.NewSetStockLevelCommand(" ", -5, &negative)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "product_id")
	assert.Contains(t, err.Error(), "total_quantity")
	assert.Contains(t, err.Error(), "low_stock_threshold")
}

func TestSetStockLevelCommandHandler(t *testing.T) {
	t.Run("creates missing record with default threshold", func(t *testing.T) {
		ctx := t.Context()
		repo := &MockInventoryRepository{}
		factory, uow := inventoryUoW(repo)
		expectCommit(uow)

		repo.On("GetForUpdate", ctx, "p1").Return(nil, errs.NewObjectNotFoundError("product", "p1")).Once()
		repo.On("Save", ctx, mock.AnythingOfType("*inventory.Record")).Return(nil).Once()

		cmd, err := commands.NewSetStockLevelCommand("p1", 100, nil)
		require.NoError(t, err)
		handler := commands.NewSetStockLevelCommandHandler(factory)

		rec, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, 100, rec.TotalQuantity())
		assert.Equal(t, 0, rec.ReservedQuantity())
		assert.Equal(t, inventory.DefaultLowStockThreshold, rec.LowStockThreshold())
		assert.False(t, rec.LowStockAlerted())
	})

	t.Run("restock keeps reservations", func(t *testing.T) {
		ctx := t.Context()
		repo := &MockInventoryRepository{}
		factory, uow := inventoryUoW(repo)
		expectCommit(uow)

		existing := record(t, "p1", 10, 8, 5, true)
		repo.On("GetForUpdate", ctx, "p1").Return(existing, nil).Once()
		repo.On("Save", ctx, existing).Return(nil).Once()

		cmd, err := commands.NewSetStockLevelCommand("p1", 50, nil)
		require.NoError(t, err)
		handler := commands.NewSetStockLevelCommandHandler(factory)

		rec, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, 8, rec.ReservedQuantity())
		assert.Equal(t, 42, rec.Available())
		assert.Equal(t, 5, rec.LowStockThreshold())
		assert.False(t, rec.LowStockAlerted())
	})

	t.Run("total below reserved", func(t *testing.T) {
		ctx := t.Context()
		repo := &MockInventoryRepository{}
		factory, uow := inventoryUoW(repo)
		expectRollback(uow)

		repo.On("GetForUpdate", ctx, "p1").Return(record(t, "p1", 10, 8, 5, false), nil).Once()

		cmd, err := commands.NewSetStockLevelCommand("p1", 3, nil)
		require.NoError(t, err)
		handler := commands.NewSetStockLevelCommandHandler(factory)

		_, err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrOperationNotAllowed)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

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

func TestReleaseInventoryCommandHandler(t *testing.T) {
	t.Run("releases and re-arms the alert", func(t *testing.T) {
		ctx := t.Context()
		repo := &MockInventoryRepository{}
		factory, uow := inventoryUoW(repo)
		expectCommit(uow)

		l := line(t, "a", 5, "r1")
		rec := record(t, "a", 20, 0, 10, true)
		repo.On("Release", ctx, l).Return(rec, 5, nil).Once()
		repo.On("Save", ctx, rec).Return(nil).Once()

		cmd, err := commands.NewReleaseInventoryCommand([]inventory.Line{l})
		require.NoError(t, err)
		handler := commands.NewReleaseInventoryCommandHandler(factory)

		outcomes, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		require.Len(t, outcomes, 1)
		assert.Equal(t, 5, outcomes[0].Quantity)
		assert.Equal(t, 20, outcomes[0].Available)
		assert.False(t, outcomes[0].Replayed)
		assert.False(t, rec.LowStockAlerted())
		require.Len(t, rec.DomainEvents(), 1)
		assert.Equal(t, inventory.EventReleased, rec.DomainEvents()[0].EventName())
		repo.AssertExpectations(t)
	})

	t.Run("already released reservation", func(t *testing.T) {
		ctx := t.Context()
		repo := &MockInventoryRepository{}
		factory, uow := inventoryUoW(repo)
		expectCommit(uow)

		l := line(t, "a", 5, "r1")
		rec := record(t, "a", 20, 0, 10, false)
		repo.On("Release", ctx, l).Return(rec, 0, nil).Once()

		cmd, err := commands.NewReleaseInventoryCommand([]inventory.Line{l})
		require.NoError(t, err)
		handler := commands.NewReleaseInventoryCommandHandler(factory)

		outcomes, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.True(t, outcomes[0].Replayed)
		assert.Empty(t, rec.DomainEvents())
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("unknown reservation rolls back", func(t *testing.T) {
		ctx := t.Context()
		repo := &MockInventoryRepository{}
		factory, uow := inventoryUoW(repo)
		expectRollback(uow)

		l := line(t, "a", 5, "nope")
		repo.On("Release", ctx, l).Return(nil, 0, errs.NewObjectNotFoundError("reservation", "nope")).Once()

		cmd, err := commands.NewReleaseInventoryCommand([]inventory.Line{l})
		require.NoError(t, err)
		handler := commands.NewReleaseInventoryCommandHandler(factory)

		_, err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		uow.AssertExpectations(t)
	})
}

package commands_test

import (
	"errors"
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type CreateOrderHandlerSuite struct {
	suite.Suite

	orders      *MockOrderRepository
	history     *MockStatusHistoryRepository
	seq         *MockOrderNumberSequence
	idempotency *MockIdempotencyStore
	factory     *MockOrderUoWFactory
	uow         *MockUoW
	handler     commands.CreateOrderCommandHandler
}

func TestCreateOrderHandlerSuite(t *testing.T) {
	suite.Run(t, new(CreateOrderHandlerSuite))
}

func (s *CreateOrderHandlerSuite) SetupTest() {
	s.orders = &MockOrderRepository{}
	s.history = &MockStatusHistoryRepository{}
	s.seq = &MockOrderNumberSequence{}
	s.idempotency = &MockIdempotencyStore{}
	s.factory, s.uow = orderUoW(s.orders, s.history, s.seq)

	fee, err := kernel.MoneyFromString("5.00")
	s.Require().NoError(err)
	pricing, err := services.NewPricingCalculator(decimal.RequireFromString("0.10"), fee)
	s.Require().NoError(err)

	s.handler = commands.NewCreateOrderCommandHandler(s.factory, pricing, s.idempotency, 3, nil)
}

func (s *CreateOrderHandlerSuite) command(key string) commands.CreateOrderCommand {
	p := validCreateParams(s.T())
	p.IdempotencyKey = key
	cmd, err := commands.NewCreateOrderCommand(p)
	s.Require().NoError(err)
	return cmd
}

func (s *CreateOrderHandlerSuite) TestCreatesPendingOrderWithInitialLedgerEntry() {
	ctx := s.T().Context()
	expectCommit(s.uow)
	s.seq.On("Next", ctx, mock.AnythingOfType("time.Time")).Return(int64(7), nil).Once()
	s.orders.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	s.history.On("Append", ctx, mock.MatchedBy(func(c order.StatusChange) bool {
		return c.Previous() == nil && c.Next() == order.Pending && c.ChangedBy() == "user-1"
	})).Return(nil).Once()

	created, err := s.handler.Handle(ctx, s.command(""))

	s.Require().NoError(err)
	s.Equal(order.Pending, created.Status())
	s.Equal(order.PaymentPending, created.PaymentStatus())
	s.Regexp(`^ORD\d{8}0007$`, created.Number().String())

	totals := created.Totals()
	s.Equal("23.50", totals.Subtotal().String())
	s.Equal("2.35", totals.Tax().String())
	s.Equal("5.00", totals.DeliveryFee().String())
	s.Equal("30.85", totals.Total().String())

	s.Require().Len(created.DomainEvents(), 1)
	s.uow.AssertExpectations(s.T())
	s.orders.AssertExpectations(s.T())
	s.history.AssertExpectations(s.T())
}

func (s *CreateOrderHandlerSuite) TestRetriesOnOrderNumberCollision() {
	ctx := s.T().Context()
	collision := errs.NewDuplicateKeyError("uq_orders_number", nil)

	s.uow.On("Begin", ctx).Return(nil).Twice()
	s.uow.On("Rollback", ctx).Return(nil).Twice()
	s.uow.On("Commit", ctx).Return(nil).Once()
	s.seq.On("Next", ctx, mock.Anything).Return(int64(1), nil).Once()
	s.seq.On("Next", ctx, mock.Anything).Return(int64(2), nil).Once()
	s.orders.On("Add", ctx, mock.Anything).Return(collision).Once()
	s.orders.On("Add", ctx, mock.Anything).Return(nil).Once()
	s.history.On("Append", ctx, mock.Anything).Return(nil).Once()

	created, err := s.handler.Handle(ctx, s.command(""))

	s.Require().NoError(err)
	s.Regexp(`0002$`, created.Number().String())
	s.factory.AssertNumberOfCalls(s.T(), "Create", 2)
	s.uow.AssertExpectations(s.T())
}

func (s *CreateOrderHandlerSuite) TestGivesUpAfterMaxAttempts() {
	ctx := s.T().Context()
	collision := errs.NewDuplicateKeyError("uq_orders_number", nil)

	s.uow.On("Begin", ctx).Return(nil).Times(3)
	s.uow.On("Rollback", ctx).Return(nil).Times(3)
	s.seq.On("Next", ctx, mock.Anything).Return(int64(1), nil).Times(3)
	s.orders.On("Add", ctx, mock.Anything).Return(collision).Times(3)

	_, err := s.handler.Handle(ctx, s.command(""))

	s.Require().ErrorIs(err, errs.ErrDuplicateKey)
	s.Equal(errs.KindConcurrencyConflict, errs.KindOf(err))
	s.uow.AssertNotCalled(s.T(), "Commit", ctx)
}

func (s *CreateOrderHandlerSuite) TestDoesNotRetryOtherErrors() {
	ctx := s.T().Context()
	expectRollback(s.uow)
	boom := errors.New("boom")
	s.seq.On("Next", ctx, mock.Anything).Return(int64(0), boom).Once()

	_, err := s.handler.Handle(ctx, s.command(""))

	s.Require().ErrorIs(err, boom)
	s.factory.AssertNumberOfCalls(s.T(), "Create", 1)
	s.orders.AssertNotCalled(s.T(), "Add", mock.Anything, mock.Anything)
}

func (s *CreateOrderHandlerSuite) TestBeginError() {
	ctx := s.T().Context()
	s.uow.On("Begin", ctx).Return(errors.New("no connection")).Once()

	_, err := s.handler.Handle(ctx, s.command(""))

	s.Require().EqualError(err, "no connection")
	s.seq.AssertNotCalled(s.T(), "Next", mock.Anything, mock.Anything)
}

func (s *CreateOrderHandlerSuite) TestCommitError() {
	ctx := s.T().Context()
	s.uow.On("Begin", ctx).Return(nil).Once()
	s.uow.On("Commit", ctx).Return(errors.New("commit failed")).Once()
	s.uow.On("Rollback", ctx).Return(nil).Once()
	s.seq.On("Next", ctx, mock.Anything).Return(int64(1), nil).Once()
	s.orders.On("Add", ctx, mock.Anything).Return(nil).Once()
	s.history.On("Append", ctx, mock.Anything).Return(nil).Once()

	_, err := s.handler.Handle(ctx, s.command(""))

	s.Require().EqualError(err, "commit failed")
}

func (s *CreateOrderHandlerSuite) TestIdempotentReplayReturnsExistingOrder() {
	ctx := s.T().Context()
	existing := pendingOrder(s.T())
	s.idempotency.On("Reserve", ctx, "key-1").Return(existing.ID(), false, nil).Once()
	s.orders.On("Get", ctx, existing.ID()).Return(existing, nil).Once()

	got, err := s.handler.Handle(ctx, s.command("key-1"))

	s.Require().NoError(err)
	s.Same(existing, got)
	s.uow.AssertNotCalled(s.T(), "Begin", mock.Anything)
	s.idempotency.AssertNotCalled(s.T(), "Complete", mock.Anything, mock.Anything, mock.Anything)
}

func (s *CreateOrderHandlerSuite) TestCompletesKeyAfterCreate() {
	ctx := s.T().Context()
	expectCommit(s.uow)
	s.idempotency.On("Reserve", ctx, "key-2").Return(kernel.UUID{}, true, nil).Once()
	s.seq.On("Next", ctx, mock.Anything).Return(int64(1), nil).Once()
	s.orders.On("Add", ctx, mock.Anything).Return(nil).Once()
	s.history.On("Append", ctx, mock.Anything).Return(nil).Once()
	s.idempotency.On("Complete", ctx, "key-2", mock.AnythingOfType("kernel.UUID")).Return(nil).Once()

	created, err := s.handler.Handle(ctx, s.command("key-2"))

	s.Require().NoError(err)
	s.idempotency.AssertCalled(s.T(), "Complete", ctx, "key-2", created.ID())
	s.idempotency.AssertNotCalled(s.T(), "Release", mock.Anything, mock.Anything)
}

func (s *CreateOrderHandlerSuite) TestRetriesCompletingKey() {
	ctx := s.T().Context()
	expectCommit(s.uow)
	s.idempotency.On("Reserve", ctx, "key-4").Return(kernel.UUID{}, true, nil).Once()
	s.seq.On("Next", ctx, mock.Anything).Return(int64(1), nil).Once()
	s.orders.On("Add", ctx, mock.Anything).Return(nil).Once()
	s.history.On("Append", ctx, mock.Anything).Return(nil).Once()
	s.idempotency.On("Complete", ctx, "key-4", mock.AnythingOfType("kernel.UUID")).
		Return(errors.New("connection reset")).Twice()
	s.idempotency.On("Complete", ctx, "key-4", mock.AnythingOfType("kernel.UUID")).Return(nil).Once()

	created, err := s.handler.Handle(ctx, s.command("key-4"))

	s.Require().NoError(err)
	s.NotNil(created)
	s.idempotency.AssertNumberOfCalls(s.T(), "Complete", 3)
	s.idempotency.AssertNotCalled(s.T(), "Release", mock.Anything, mock.Anything)
}

func (s *CreateOrderHandlerSuite) TestKeepsOrderWhenKeyCannotBeCompleted() {
	ctx := s.T().Context()
	expectCommit(s.uow)
	s.idempotency.On("Reserve", ctx, "key-5").Return(kernel.UUID{}, true, nil).Once()
	s.seq.On("Next", ctx, mock.Anything).Return(int64(1), nil).Once()
	s.orders.On("Add", ctx, mock.Anything).Return(nil).Once()
	s.history.On("Append", ctx, mock.Anything).Return(nil).Once()
	s.idempotency.On("Complete", ctx, "key-5", mock.AnythingOfType("kernel.UUID")).
		Return(errors.New("connection reset")).Times(3)

	created, err := s.handler.Handle(ctx, s.command("key-5"))

	s.Require().NoError(err)
	s.NotNil(created)
	s.idempotency.AssertNumberOfCalls(s.T(), "Complete", 3)
	s.idempotency.AssertNotCalled(s.T(), "Release", mock.Anything, mock.Anything)
}

func (s *CreateOrderHandlerSuite) TestReleasesKeyWhenCreateFails() {
	ctx := s.T().Context()
	expectRollback(s.uow)
	s.idempotency.On("Reserve", ctx, "key-3").Return(kernel.UUID{}, true, nil).Once()
	s.seq.On("Next", ctx, mock.Anything).Return(int64(1), nil).Once()
	s.orders.On("Add", ctx, mock.Anything).Return(errors.New("disk full")).Once()
	s.idempotency.On("Release", ctx, "key-3").Return(nil).Once()

	_, err := s.handler.Handle(ctx, s.command("key-3"))

	s.Require().EqualError(err, "disk full")
	s.idempotency.AssertExpectations(s.T())
}

func (s *CreateOrderHandlerSuite) TestRejectsDiscountAboveGross() {
	p := validCreateParams(s.T())
	p.Discount = money(s.T(), "1000.00")
	cmd, err := commands.NewCreateOrderCommand(p)
	s.Require().NoError(err)

	_, err = s.handler.Handle(s.T().Context(), cmd)

	s.Require().ErrorIs(err, errs.ErrValueIsOutOfRange)
	s.factory.AssertNotCalled(s.T(), "Create")
}

func TestCreateOrderCommandHandler_RejectsUnconstructedCommand(t *testing.T) {
	handler := commands.NewCreateOrderCommandHandler(&MockOrderUoWFactory{}, services.PricingCalculator{}, nil, 0, nil)

	_, err := handler.Handle(t.Context(), commands.CreateOrderCommand{})

	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}

package commands_test

import (
	"context"
	"testing"

	"ordering/internal/adapters/out/postgres"
	"ordering/internal/adapters/out/postgres/pgtest"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/inventory"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type gormOrderUoWFactory struct {
	f *postgres.GormUnitOfWorkFactory
}

func (g gormOrderUoWFactory) Create() commands.OrderUoW { return g.f.Create() }

type gormInventoryUoWFactory struct {
	f *postgres.GormUnitOfWorkFactory
}

func (g gormInventoryUoWFactory) Create() commands.InventoryUoW { return g.f.Create() }

// LifecycleSuite runs the handlers against a real database.
type LifecycleSuite struct {
	suite.Suite
	pg *pgtest.Database

	create   commands.CreateOrderCommandHandler
	change   commands.ChangeOrderStatusCommandHandler
	remove   commands.DeleteOrderCommandHandler
	reserve  commands.ReserveInventoryCommandHandler
	setStock commands.SetStockLevelCommandHandler
}

func TestLifecycleIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(LifecycleSuite))
}

func (s *LifecycleSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	s.Require().NoError(err)
	s.pg = pg

	factory := postgres.NewGormUnitOfWorkFactory(pg.DB, postgres.TxOptions{})
	orders := gormOrderUoWFactory{f: factory}
	stock := gormInventoryUoWFactory{f: factory}

	pricing, err := services.NewPricingCalculator(decimal.RequireFromString("0.10"), kernel.Zero)
	s.Require().NoError(err)

	s.create = commands.NewCreateOrderCommandHandler(orders, pricing, nil, 3, nil)
	s.change = commands.NewChangeOrderStatusCommandHandler(orders)
	s.remove = commands.NewDeleteOrderCommandHandler(orders)
	s.reserve = commands.NewReserveInventoryCommandHandler(stock)
	s.setStock = commands.NewSetStockLevelCommandHandler(stock)
}

func (s *LifecycleSuite) SetupTest() {
	s.Require().NoError(s.pg.Truncate())
}

func (s *LifecycleSuite) TearDownSuite() {
	s.Require().NoError(s.pg.Terminate(context.Background()))
}

func (s *LifecycleSuite) count(table string, where string, args ...any) int64 {
	var n int64
	s.Require().NoError(s.pg.DB.Table(table).Where(where, args...).Count(&n).Error)
	return n
}

func (s *LifecycleSuite) pickupOrder() *order.Order {
	cmd, err := commands.NewCreateOrderCommand(commands.CreateOrderParams{
		CustomerName:  "Ann",
		CustomerPhone: "+100",
		DeliveryType:  order.Pickup,
		Items: []commands.CreateOrderItem{
			{ProductID: "x", ProductName: "X", UnitPrice: money(s.T(), "10000"), Quantity: 3},
			{ProductID: "y", ProductName: "Y", UnitPrice: money(s.T(), "5000"), Quantity: 1},
		},
		Actor: "user-1",
	})
	s.Require().NoError(err)

	created, err := s.create.Handle(s.T().Context(), cmd)
	s.Require().NoError(err)
	return created
}

func (s *LifecycleSuite) transition(o *order.Order, target order.Status) error {
	cmd, err := commands.NewChangeOrderStatusCommand(o.ID(), target, "staff", "", nil)
	s.Require().NoError(err)
	_, err = s.change.Handle(s.T().Context(), cmd)
	return err
}

func (s *LifecycleSuite) TestCreatePickupOrder_ComputesTotals() {
	o := s.pickupOrder()

	s.Equal("35000.00", o.Totals().Subtotal().String())
	s.Equal("3500.00", o.Totals().Tax().String())
	s.True(o.Totals().DeliveryFee().IsZero())
	s.Equal("38500.00", o.Totals().Total().String())
	s.Equal(order.Pending, o.Status())

	s.EqualValues(1, s.count("order_status_history", "order_id = ?", o.ID().Bytes()))
	s.EqualValues(2, s.count("order_items", "order_id = ?", o.ID().Bytes()))
	s.EqualValues(1, s.count("outbox_events", "name = ?", order.EventCreated))
}

func (s *LifecycleSuite) TestCreate_SkipsNumbersAlreadyTakenWhenCounterIsMissing() {
	first := s.pickupOrder()
	s.Require().NoError(s.pg.DB.Exec("DELETE FROM order_number_sequences").Error)

	second := s.pickupOrder()

	prefix := order.NumberPrefix(second.CreatedAt())
	s.Equal(prefix+"0001", first.Number().String())
	s.Equal(prefix+"0002", second.Number().String())
	s.EqualValues(2, s.count("orders", "order_number LIKE ?", prefix+"%"))
}

func (s *LifecycleSuite) TestReserveBatch_RollsBackOnInsufficientStock() {
	ctx := s.T().Context()
	for product, total := range map[string]int{"X": 4, "Y": 10} {
		cmd, err := commands.NewSetStockLevelCommand(product, total, nil)
		s.Require().NoError(err)
		_, err = s.setStock.Handle(ctx, cmd)
		s.Require().NoError(err)
	}

	cmd, err := commands.NewReserveInventoryCommand([]inventory.Line{
		line(s.T(), "X", 5, "res-1"),
		line(s.T(), "Y", 3, "res-1"),
	})
	s.Require().NoError(err)

	_, err = s.reserve.Handle(ctx, cmd)

	s.Require().ErrorIs(err, errs.ErrInsufficientInventory)
	var reserved []int
	s.Require().NoError(s.pg.DB.Table("inventory").Order("product_id").Pluck("reserved_quantity", &reserved).Error)
	s.Equal([]int{0, 0}, reserved)
	s.EqualValues(0, s.count("inventory_reservations", "reservation_id = ?", "res-1"))
}

func (s *LifecycleSuite) TestReserveBatch_LastLineFailureUndoesEarlierLines() {
	ctx := s.T().Context()
	for _, product := range []string{"a", "b", "c"} {
		total := 10
		if product == "c" {
			total = 1
		}
		cmd, err := commands.NewSetStockLevelCommand(product, total, nil)
		s.Require().NoError(err)
		_, err = s.setStock.Handle(ctx, cmd)
		s.Require().NoError(err)
	}

	cmd, err := commands.NewReserveInventoryCommand([]inventory.Line{
		line(s.T(), "a", 2, "res-9"),
		line(s.T(), "b", 2, "res-9"),
		line(s.T(), "c", 2, "res-9"),
	})
	s.Require().NoError(err)

	_, err = s.reserve.Handle(ctx, cmd)

	s.Require().ErrorIs(err, errs.ErrInsufficientInventory)
	s.EqualValues(0, s.count("inventory", "reserved_quantity > 0"))
}

func (s *LifecycleSuite) TestTransition_SkippingStatusesFails() {
	o := s.pickupOrder()

	s.Require().NoError(s.transition(o, order.Confirmed))
	err := s.transition(o, order.Delivered)

	s.Require().ErrorIs(err, errs.ErrInvalidTransition)
	s.EqualValues(2, s.count("order_status_history", "order_id = ?", o.ID().Bytes()))
}

func (s *LifecycleSuite) TestDelete_PreparingOrderIsRefused() {
	o := s.pickupOrder()
	s.Require().NoError(s.transition(o, order.Confirmed))
	s.Require().NoError(s.transition(o, order.Preparing))

	cmd, err := commands.NewDeleteOrderCommand(o.ID())
	s.Require().NoError(err)
	err = s.remove.Handle(s.T().Context(), cmd)

	s.Require().ErrorIs(err, errs.ErrOperationNotAllowed)
	s.EqualValues(1, s.count("orders", "id = ?", o.ID().Bytes()))
	s.EqualValues(2, s.count("order_items", "order_id = ?", o.ID().Bytes()))
	s.EqualValues(3, s.count("order_status_history", "order_id = ?", o.ID().Bytes()))
}

func (s *LifecycleSuite) TestDeleteCancelledOrderRemovesEverything() {
	o := s.pickupOrder()
	s.Require().NoError(s.transition(o, order.Cancelled))

	cmd, err := commands.NewDeleteOrderCommand(o.ID())
	s.Require().NoError(err)
	s.Require().NoError(s.remove.Handle(s.T().Context(), cmd))

	s.EqualValues(0, s.count("orders", "id = ?", o.ID().Bytes()))
	s.EqualValues(0, s.count("order_items", "order_id = ?", o.ID().Bytes()))
	s.EqualValues(0, s.count("order_status_history", "order_id = ?", o.ID().Bytes()))
}

func (s *LifecycleSuite) TestConcurrentTransitionsAppendOneEntry() {
	o := s.pickupOrder()

	const workers = 8
	results := make(chan error, workers)
	for range workers {
		go func() {
			cmd, err := commands.NewChangeOrderStatusCommand(o.ID(), order.Confirmed, "staff", "", nil)
			if err != nil {
				results <- err
				return
			}
			_, err = s.change.Handle(context.Background(), cmd)
			results <- err
		}()
	}

	succeeded := 0
	for range workers {
		err := <-results
		if err == nil {
			succeeded++
			continue
		}
		s.ErrorIs(err, errs.ErrInvalidTransition)
	}

	s.Equal(1, succeeded)
	s.EqualValues(2, s.count("order_status_history", "order_id = ?", o.ID().Bytes()))
}

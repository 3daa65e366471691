package cmd

import (
	"ordering/internal/adapters/in/http"
	"ordering/internal/adapters/out/postgres"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/services"
	"ordering/internal/core/ports"
	"ordering/internal/jobs"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg         Config
	gormDB      *gorm.DB
	uowFactory  *postgres.GormUnitOfWorkFactory
	pricing     services.PricingCalculator
	publisher   ports.EventPublisher
	idempotency ports.IdempotencyStore
	logger      *zap.Logger
}

// NewCompositionRoot wires the use cases. idempotency may be nil.
func NewCompositionRoot(
	cfg Config,
	gormDB *gorm.DB,
	publisher ports.EventPublisher,
	idempotency ports.IdempotencyStore,
	logger *zap.Logger,
) (CompositionRoot, error) {
	pricing, err := services.NewPricingCalculator(cfg.TaxRate, cfg.DeliveryFee)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		cfg:    cfg,
		gormDB: gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, postgres.TxOptions{
			LockTimeout:      cfg.DBLockTimeout,
			StatementTimeout: cfg.DBStatementTimeout,
		}),
		pricing:     pricing,
		publisher:   publisher,
		idempotency: idempotency,
		logger:      logger,
	}, nil
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) inventoryUoWFactory() commands.InventoryUoWFactory {
	return FuncInventoryUoWFactory(func() commands.InventoryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) outboxUoWFactory() commands.OutboxUoWFactory {
	return FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() *commands.CreateOrderCommandHandler {
	h := commands.NewCreateOrderCommandHandler(
		c.orderUoWFactory(),
		c.pricing,
		c.idempotency,
		c.cfg.OrderNumberMaxAttempts,
		c.logger,
	)
	return &h
}

func (c *CompositionRoot) CreateUpdateOrderDetailsCommandHandler() *commands.UpdateOrderDetailsCommandHandler {
	h := commands.NewUpdateOrderDetailsCommandHandler(c.orderUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() *commands.ChangeOrderStatusCommandHandler {
	h := commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() *commands.DeleteOrderCommandHandler {
	h := commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateReserveInventoryCommandHandler() *commands.ReserveInventoryCommandHandler {
	h := commands.NewReserveInventoryCommandHandler(c.inventoryUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateReleaseInventoryCommandHandler() *commands.ReleaseInventoryCommandHandler {
	h := commands.NewReleaseInventoryCommandHandler(c.inventoryUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateSetStockLevelCommandHandler() *commands.SetStockLevelCommandHandler {
	h := commands.NewSetStockLevelCommandHandler(c.inventoryUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateExpirePendingOrdersCommandHandler() *commands.ExpirePendingOrdersCommandHandler {
	h := commands.NewExpirePendingOrdersCommandHandler(
		c.orderUoWFactory(),
		c.CreateChangeOrderStatusCommandHandler(),
		c.logger,
	)
	return &h
}

func (c *CompositionRoot) CreatePublishOutboxEventsCommandHandler() *commands.PublishOutboxEventsCommandHandler {
	h := commands.NewPublishOutboxEventsCommandHandler(c.outboxUoWFactory(), c.publisher, c.logger)
	return &h
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderStatsQueryHandler() queries.GetOrderStatsQueryHandler {
	return queries.NewGetOrderStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderStatusHistoryQueryHandler() queries.GetOrderStatusHistoryQueryHandler {
	return queries.NewGetOrderStatusHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetInventoryQueryHandler() queries.GetInventoryQueryHandler {
	return queries.NewGetInventoryQueryHandler(c.gormDB)
}

// CreateHTTPServer builds the handler set behind the REST API.
func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(http.Handlers{
		CreateOrder:       c.CreateCreateOrderCommandHandler(),
		UpdateOrder:       c.CreateUpdateOrderDetailsCommandHandler(),
		ChangeOrderStatus: c.CreateChangeOrderStatusCommandHandler(),
		DeleteOrder:       c.CreateDeleteOrderCommandHandler(),
		ReserveInventory:  c.CreateReserveInventoryCommandHandler(),
		ReleaseInventory:  c.CreateReleaseInventoryCommandHandler(),
		SetStockLevel:     c.CreateSetStockLevelCommandHandler(),
		GetOrder:          c.CreateGetOrderQueryHandler(),
		ListOrders:        c.CreateListOrdersQueryHandler(),
		GetOrderStats:     c.CreateGetOrderStatsQueryHandler(),
		GetStatusHistory:  c.CreateGetOrderStatusHistoryQueryHandler(),
		GetInventory:      c.CreateGetInventoryQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreatePublishOutboxEventsCommandHandler(),
		c.CreateExpirePendingOrdersCommandHandler(),
		c.cfg.PendingOrderTTL,
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncInventoryUoWFactory func() commands.InventoryUoW

func (f FuncInventoryUoWFactory) Create() commands.InventoryUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}

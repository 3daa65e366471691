package http

import (
	"context"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/inventory"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/generated/servers"

	"go.uber.org/zap"
)

// Handler is the shape shared by every command and query handler.
type Handler[In, Out any] interface {
	Handle(ctx context.Context, in In) (Out, error)
}

// DeleteHandler is the one command without a result.
type DeleteHandler interface {
	Handle(ctx context.Context, cmd commands.DeleteOrderCommand) error
}

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	// Command handlers
	CreateOrder       Handler[commands.CreateOrderCommand, *order.Order]
	UpdateOrder       Handler[commands.UpdateOrderDetailsCommand, *order.Order]
	ChangeOrderStatus Handler[commands.ChangeOrderStatusCommand, *order.Order]
	DeleteOrder       DeleteHandler
	ReserveInventory  Handler[commands.ReserveInventoryCommand, []commands.LineOutcome]
	ReleaseInventory  Handler[commands.ReleaseInventoryCommand, []commands.LineOutcome]
	SetStockLevel     Handler[commands.SetStockLevelCommand, *inventory.Record]

	// Query handlers
	GetOrder         Handler[queries.GetOrderQuery, queries.OrderView]
	ListOrders       Handler[queries.ListOrdersQuery, queries.OrderPage]
	GetOrderStats    Handler[queries.GetOrderStatsQuery, queries.OrderStats]
	GetStatusHistory Handler[queries.GetOrderStatusHistoryQuery, queries.StatusHistoryView]
	GetInventory     Handler[queries.GetInventoryQuery, queries.InventoryView]
}

var _ servers.ServerInterface = (*Server)(nil)

// Server implements the ServerInterface for handling HTTP requests.
// It translates between the API models and the application use cases.
type Server struct {
	h      Handlers
	logger *zap.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(h Handlers, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{h: h, logger: logger.With(zap.String("component", "http"))}
}

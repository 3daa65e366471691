package http

import (
	"errors"
	"net/http"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context, params servers.CreateOrderParams) error {
	var body servers.NewOrder
	if err := bindBody(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}

	p, err := createOrderParams(body)
	if err != nil {
		return s.fail(ctx, err)
	}
	p.Actor = ActorFrom(ctx)
	p.IdempotencyKey = deref(params.IdempotencyKey)

	cmd, err := commands.NewCreateOrderCommand(p)
	if err != nil {
		return s.fail(ctx, err)
	}

	created, err := s.h.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrderResponse(created))
}

// ListOrders handles GET /api/v1/orders - one page of orders, newest first.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	filter := queries.ListOrdersFilter{
		OrderNumber: deref(params.OrderNumber),
		CustomerID:  deref(params.CustomerId),
		From:        derefTime(params.StartDate),
		To:          derefTime(params.EndDate),
	}
	if params.Status != nil {
		filter.Status = order.Status(*params.Status)
	}
	if params.PaymentStatus != nil {
		filter.PaymentStatus = order.PaymentStatus(*params.PaymentStatus)
	}
	if params.DeliveryType != nil {
		filter.DeliveryType = order.DeliveryType(*params.DeliveryType)
	}
	if params.Limit != nil {
		filter.Limit = *params.Limit
	}
	if params.Offset != nil {
		filter.Offset = *params.Offset
	}

	query, err := queries.NewListOrdersQuery(filter)
	if err != nil {
		return s.fail(ctx, err)
	}

	page, err := s.h.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderList(page))
}

// GetOrderStats handles GET /api/v1/orders/stats.
func (s *Server) GetOrderStats(ctx echo.Context, params servers.GetOrderStatsParams) error {
	query, err := queries.NewGetOrderStatsQuery(queries.OrderStatsFilter{
		CustomerID: deref(params.CustomerId),
		From:       derefTime(params.StartDate),
		To:         derefTime(params.EndDate),
	})
	if err != nil {
		return s.fail(ctx, err)
	}

	stats, err := s.h.GetOrderStats.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderStats(stats))
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderID servers.OrderId) error {
	id, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	view, err := s.h.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderView(view))
}

// UpdateOrder handles PATCH /api/v1/orders/{orderId}.
func (s *Server) UpdateOrder(ctx echo.Context, orderID servers.OrderId) error {
	id, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.OrderPatch
	if err = bindBody(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderDetailsCommand(id, orderPatch(body))
	if err != nil {
		return s.fail(ctx, err)
	}

	updated, err := s.h.UpdateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(updated))
}

// DeleteOrder handles DELETE /api/v1/orders/{orderId}.
func (s *Server) DeleteOrder(ctx echo.Context, orderID servers.OrderId) error {
	id, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// TransitionOrderStatus handles POST /api/v1/orders/{orderId}/status.
func (s *Server) TransitionOrderStatus(ctx echo.Context, orderID servers.OrderId) error {
	id, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.StatusTransition
	if err = bindBody(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}

	var expectedFrom *order.Status
	if body.ExpectedFrom != nil {
		from := order.Status(*body.ExpectedFrom)
		expectedFrom = &from
	}

	cmd, err := commands.NewChangeOrderStatusCommand(
		id,
		order.Status(body.Status),
		ActorFrom(ctx),
		deref(body.Reason),
		expectedFrom,
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	changed, err := s.h.ChangeOrderStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(changed))
}

// GetOrderStatusHistory handles GET /api/v1/orders/{orderId}/history.
func (s *Server) GetOrderStatusHistory(ctx echo.Context, orderID servers.OrderId) error {
	id, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetOrderStatusHistoryQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	view, err := s.h.GetStatusHistory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toStatusHistory(view))
}

func createOrderParams(body servers.NewOrder) (commands.CreateOrderParams, error) {
	var errList []error

	items := make([]commands.CreateOrderItem, len(body.Items))
	for i, it := range body.Items {
		price, err := kernel.MoneyFromString(it.UnitPrice)
		errList = append(errList, err)
		items[i] = commands.CreateOrderItem{
			ProductID:       it.ProductId,
			ProductName:     it.ProductName,
			UnitPrice:       price,
			Quantity:        it.Quantity,
			SpecialRequests: deref(it.SpecialRequests),
		}
	}

	discount := kernel.Zero
	if body.DiscountAmount != nil {
		var err error
		discount, err = kernel.MoneyFromString(*body.DiscountAmount)
		errList = append(errList, err)
	}

	if err := errors.Join(errList...); err != nil {
		return commands.CreateOrderParams{}, err
	}

	p := commands.CreateOrderParams{
		CustomerID:            deref(body.CustomerId),
		CustomerName:          body.CustomerName,
		CustomerPhone:         body.CustomerPhone,
		CustomerEmail:         deref(body.CustomerEmail),
		DeliveryType:          order.DeliveryType(body.DeliveryType),
		DeliveryAddress:       deref(body.DeliveryAddress),
		DeliveryNotes:         deref(body.DeliveryNotes),
		RequestedDeliveryTime: body.RequestedDeliveryTime,
		Items:                 items,
		Discount:              discount,
		SpecialInstructions:   deref(body.SpecialInstructions),
	}
	if body.Priority != nil {
		p.Priority = order.Priority(*body.Priority)
	}
	if body.EstimatedPrepTime != nil {
		p.EstimatedPrepMinutes = *body.EstimatedPrepTime
	}
	return p, nil
}

func orderPatch(body servers.OrderPatch) order.Patch {
	p := order.Patch{
		CustomerName:         body.CustomerName,
		CustomerPhone:        body.CustomerPhone,
		CustomerEmail:        body.CustomerEmail,
		DeliveryAddress:      body.DeliveryAddress,
		DeliveryNotes:        body.DeliveryNotes,
		SpecialInstructions:  body.SpecialInstructions,
		EstimatedPrepMinutes: body.EstimatedPrepTime,
	}
	if body.PaymentStatus != nil {
		ps := order.PaymentStatus(*body.PaymentStatus)
		p.PaymentStatus = &ps
	}
	if body.Priority != nil {
		pr := order.Priority(*body.Priority)
		p.Priority = &pr
	}
	return p
}

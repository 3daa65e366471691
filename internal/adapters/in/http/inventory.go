package http

import (
	"errors"
	"net/http"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/inventory"
	"ordering/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// ReserveInventory handles POST /api/v1/inventory/reserve.
func (s *Server) ReserveInventory(ctx echo.Context) error {
	lines, err := bindLines(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewReserveInventoryCommand(lines)
	if err != nil {
		return s.fail(ctx, err)
	}

	outcomes, err := s.h.ReserveInventory.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toReservationResult(outcomes))
}

// ReleaseInventory handles POST /api/v1/inventory/release.
func (s *Server) ReleaseInventory(ctx echo.Context) error {
	lines, err := bindLines(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewReleaseInventoryCommand(lines)
	if err != nil {
		return s.fail(ctx, err)
	}

	outcomes, err := s.h.ReleaseInventory.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toReservationResult(outcomes))
}

// GetInventory handles GET /api/v1/inventory/{productId}.
func (s *Server) GetInventory(ctx echo.Context, productID string) error {
	query, err := queries.NewGetInventoryQuery(productID)
	if err != nil {
		return s.fail(ctx, err)
	}

	view, err := s.h.GetInventory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toInventoryLevel(view))
}

// SetStockLevel handles PUT /api/v1/inventory/{productId}.
func (s *Server) SetStockLevel(ctx echo.Context, productID string) error {
	var body servers.StockLevel
	if err := bindBody(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewSetStockLevelCommand(productID, body.TotalQuantity, body.LowStockThreshold)
	if err != nil {
		return s.fail(ctx, err)
	}

	record, err := s.h.SetStockLevel.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toInventoryRecord(record))
}

func bindLines(ctx echo.Context) ([]inventory.Line, error) {
	var body servers.ReservationRequest
	if err := bindBody(ctx, &body); err != nil {
		return nil, err
	}

	lines := make([]inventory.Line, 0, len(body.Reservations))
	var errList []error
	for _, r := range body.Reservations {
		line, err := inventory.NewLine(r.ProductId, r.Quantity, r.ReservationId)
		if err != nil {
			errList = append(errList, err)
			continue
		}
		lines = append(lines, line)
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}
	return lines, nil
}

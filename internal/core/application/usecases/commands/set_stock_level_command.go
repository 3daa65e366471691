package commands

import (
	"errors"
	"strings"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrSetStockLevelCommandIsNotConstructed = errors.New(
	"SetStockLevelCommand must be created via NewSetStockLevelCommand constructor",
)

// SetStockLevelCommand records a physical stock count for a product.
// A nil threshold keeps the current one (or the default for new products).
type SetStockLevelCommand struct { //nolint:recvcheck //using for validation
	productID         string
	totalQuantity     int
	lowStockThreshold *int

	guard guard.ConstructorGuard
}

func NewSetStockLevelCommand(productID string, totalQuantity int, lowStockThreshold *int) (SetStockLevelCommand, error) {
	productID = strings.TrimSpace(productID)

	var errList []error
	if productID == "" {
		errList = append(errList, errs.NewValueIsRequiredError("product_id"))
	}
	if totalQuantity < 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("total_quantity", totalQuantity, 0, "unbounded"))
	}
	if lowStockThreshold != nil && *lowStockThreshold < 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("low_stock_threshold", *lowStockThreshold, 0, "unbounded"))
	}
	if err := errors.Join(errList...); err != nil {
		return SetStockLevelCommand{}, err
	}

	cmd := SetStockLevelCommand{
		productID:     productID,
		totalQuantity: totalQuantity,
		guard:         guard.NewConstructorGuard(),
	}
	if lowStockThreshold != nil {
		threshold := *lowStockThreshold
		cmd.lowStockThreshold = &threshold
	}
	return cmd, nil
}

func (c SetStockLevelCommand) Validate() error {
	return c.guard.Validate(ErrSetStockLevelCommandIsNotConstructed)
}

func (c SetStockLevelCommand) ProductID() string       { return c.productID }
func (c SetStockLevelCommand) TotalQuantity() int      { return c.totalQuantity }
func (c SetStockLevelCommand) LowStockThreshold() *int { return c.lowStockThreshold }

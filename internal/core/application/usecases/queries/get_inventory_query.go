package queries

import (
	"errors"
	"strings"
	"time"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrGetInventoryQueryIsNotConstructed = errors.New(
	"GetInventoryQuery must be created via NewGetInventoryQuery constructor",
)

// GetInventoryQuery reads the stock level of one product.
type GetInventoryQuery struct {
	productID string

	guard guard.ConstructorGuard
}

func NewGetInventoryQuery(productID string) (GetInventoryQuery, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return GetInventoryQuery{}, errs.NewValueIsRequiredError("product_id")
	}
	return GetInventoryQuery{productID: productID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetInventoryQuery) Validate() error {
	return q.guard.Validate(ErrGetInventoryQueryIsNotConstructed)
}

func (q GetInventoryQuery) ProductID() string {
	return q.productID
}

type InventoryView struct {
	ProductID         string
	TotalQuantity     int
	ReservedQuantity  int
	Available         int
	LowStockThreshold int
	LowStockAlerted   bool
	UpdatedAt         time.Time
}

package queries

import (
	"errors"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/stock"
	"warehouse/internal/pkg/guard"
)

var (
	ErrGetStockQueryIsNotConstructed = errors.New(
		"GetStockQuery must be created via NewGetStockQuery constructor",
	)
)

// GetStockQuery retrieves the stock ledger, optionally narrowed to one
// product.
type GetStockQuery struct {
	productID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetStockQuery creates a query for ledger entries. A nil productID
// matches every product.
func NewGetStockQuery(productID *kernel.UUID) (GetStockQuery, error) {
	if productID != nil {
		if err := productID.Validate(); err != nil {
			return GetStockQuery{}, err
		}
	}

	return GetStockQuery{
		productID: productID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStockQuery) Validate() error {
	return q.guard.Validate(ErrGetStockQueryIsNotConstructed)
}

// ProductID returns the product filter, nil for all.
func (q GetStockQuery) ProductID() *kernel.UUID { return q.productID }

// GetStockQueryResponse represents one batch-keyed ledger line.
type GetStockQueryResponse struct {
	ProductID         kernel.UUID
	BatchNumber       string
	AreaID            kernel.UUID
	Quantity          int
	AvailableQuantity int
	AlertStatus       stock.AlertStatus
	UpdatedAt         time.Time
}

package queries

import (
	"errors"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves a single order with its item lines for detail
// screens.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order's details.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order's identifier.
func (q GetOrderQuery) OrderID() kernel.UUID { return q.orderID }

// GetOrderQueryResponse represents one order with its item lines.
type GetOrderQueryResponse struct {
	ID            kernel.UUID
	OrderNo       string
	Direction     order.Direction
	OrderType     string
	Status        order.Status
	QualityStatus order.QualityStatus
	TotalAmount   int64
	TotalQuantity int
	Remark        string
	Reason        string
	CreatedAt     time.Time
	Items         []GetOrderItemResponse
}

// GetOrderItemResponse represents one item line of an order detail.
type GetOrderItemResponse struct {
	ID               kernel.UUID
	ProductID        kernel.UUID
	BatchNumber      string
	ExpectedQuantity int
	ActualQuantity   *int
	Price            int64
	Amount           int64
	QualityStatus    order.QualityStatus
}

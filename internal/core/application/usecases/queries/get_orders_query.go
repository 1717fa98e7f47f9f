// Package queries contains read-only operations for retrieving system state.
// Implements the query side of the CQRS architecture: handlers read the
// database directly and return plain response structs, bypassing the domain
// aggregates.
package queries

import (
	"errors"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/pkg/guard"
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
	)
)

// GetOrdersQuery retrieves orders for listing screens, optionally narrowed
// by direction and lifecycle status.
//
// Example:
//
//	status := order.InProgress
//	query, _ := queries.NewGetOrdersQuery(order.Inbound, &status)
//	orders, err := handler.Handle(ctx, query)
type GetOrdersQuery struct {
	direction order.Direction
	status    *order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query for order listings. DirectionUnknown
// matches both directions; a nil status matches every status.
func NewGetOrdersQuery(direction order.Direction, status *order.Status) (GetOrdersQuery, error) {
	if direction != order.DirectionUnknown {
		if err := direction.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}

	return GetOrdersQuery{
		direction: direction,
		status:    status,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Direction returns the direction filter, DirectionUnknown for all.
func (q GetOrdersQuery) Direction() order.Direction { return q.direction }

// Status returns the status filter, nil for all.
func (q GetOrdersQuery) Status() *order.Status { return q.status }

// GetOrdersQueryResponse represents one order row of a listing.
type GetOrdersQueryResponse struct {
	ID            kernel.UUID
	OrderNo       string
	Direction     order.Direction
	OrderType     string
	Status        order.Status
	QualityStatus order.QualityStatus
	TotalAmount   int64
	TotalQuantity int
	CreatedAt     time.Time
}

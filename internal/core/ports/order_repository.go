// Package ports defines repository and publisher interfaces for the
// warehouse domain. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
)

// OrderFilter narrows order listings. Zero-valued fields are ignored.
type OrderFilter struct {
	Direction order.Direction
	Status    *order.Status
	OrderNo   string
}

// OrderRepository defines the persistence contract for order aggregates,
// including their item lines.
type OrderRepository interface {
	// Add persists a new order aggregate with its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate. The update is
	// guarded by the stored status: a lifecycle transition only commits when
	// the persisted row still carries the status the transition started
	// from, which serializes racing transitions first-committer-wins.
	Update(ctx context.Context, aggregate *order.Order, expectedStatus order.Status) error

	// Get retrieves a complete order aggregate by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// List retrieves orders matching the filter, newest first.
	List(ctx context.Context, filter OrderFilter) ([]*order.Order, error)

	// GetAllInProgress retrieves all orders currently in progress. Used by
	// the completion job to evaluate the completion policy.
	GetAllInProgress(ctx context.Context) ([]*order.Order, error)
}

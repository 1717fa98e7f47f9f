package ports

import (
	"context"

	"warehouse/internal/core/domain/model/inspection"
	"warehouse/internal/core/domain/model/kernel"
)

// InspectionRepository defines the persistence contract for inspection
// records, including their worksheets and finalized result lines.
type InspectionRepository interface {
	// Add persists a new open inspection record.
	Add(ctx context.Context, rec *inspection.Record) error

	// Update persists worksheet edits, finalize results and putaway
	// progress of an existing record.
	Update(ctx context.Context, rec *inspection.Record) error

	// Get retrieves an inspection record by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*inspection.Record, error)

	// GetByOrder retrieves the inspection record attached to an order.
	GetByOrder(ctx context.Context, orderID kernel.UUID) (*inspection.Record, error)
}

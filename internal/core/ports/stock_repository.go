package ports

import (
	"context"

	"warehouse/internal/core/domain/model/stock"
)

// StockRepository defines the persistence contract for the batch-keyed
// stock ledger.
type StockRepository interface {
	// GetBatch retrieves the ledger entry for a (productID, batchNumber)
	// pair. Returns an ObjectNotFoundError for an unknown batch.
	GetBatch(ctx context.Context, key stock.BatchKey) (*stock.Entry, error)

	// Upsert creates the entry on first putaway of a batch or persists
	// mutations of an existing one.
	Upsert(ctx context.Context, entry *stock.Entry) error

	// GetAll retrieves every ledger entry. Used by the alert job.
	GetAll(ctx context.Context) ([]*stock.Entry, error)
}

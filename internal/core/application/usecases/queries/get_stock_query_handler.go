package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"warehouse/internal/core/domain/model/kernel"
)

// GetStockQueryHandler retrieves ledger lines from the database.
type GetStockQueryHandler struct {
	db *gorm.DB
}

// NewGetStockQueryHandler creates a handler for stock ledger queries.
func NewGetStockQueryHandler(db *gorm.DB) GetStockQueryHandler {
	return GetStockQueryHandler{db: db}
}

// Handle executes the ledger query, sorted by product and batch.
func (h GetStockQueryHandler) Handle(
	ctx context.Context,
	query GetStockQuery,
) ([]GetStockQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	productFilter := ""
	if query.ProductID() != nil {
		productFilter = query.ProductID().String()
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			batch_number,
			area_id,
			quantity,
			available_quantity,
			alert_status,
			updated_at
		FROM stock_entries
		WHERE (? = '' OR product_id::text = ?)
		ORDER BY product_id, batch_number
	`, productFilter, productFilter).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]GetStockQueryResponse, 0)
	for rows.Next() {
		var resp GetStockQueryResponse
		var productID, areaID uuid.UUID

		err = rows.Scan(
			&productID,
			&resp.BatchNumber,
			&areaID,
			&resp.Quantity,
			&resp.AvailableQuantity,
			&resp.AlertStatus,
			&resp.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return nil, err
		}
		if resp.AreaID, err = kernel.UUIDFromBytes(areaID[:]); err != nil {
			return nil, err
		}
		entries = append(entries, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
)

// GetOrdersQueryHandler retrieves order listings from the database.
// Reads the orders table directly; item lines are not loaded.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the listing query. Results are sorted newest first.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var status order.Status
	statusSet := 0
	if query.Status() != nil {
		status = *query.Status()
		statusSet = 1
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_no,
			direction,
			order_type,
			status,
			quality_status,
			total_amount,
			total_quantity,
			created_at
		FROM orders
		WHERE (? = 0 OR direction = ?)
		  AND (? = 0 OR status = ?)
		ORDER BY created_at DESC
	`, query.Direction(), query.Direction(), statusSet, status).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetOrdersQueryResponse, 0)
	for rows.Next() {
		var resp GetOrdersQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.OrderNo,
			&resp.Direction,
			&resp.OrderType,
			&resp.Status,
			&resp.QualityStatus,
			&resp.TotalAmount,
			&resp.TotalQuantity,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

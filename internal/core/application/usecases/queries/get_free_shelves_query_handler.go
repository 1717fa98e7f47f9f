package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/location"
)

// GetFreeShelvesQueryHandler retrieves shelves with free capacity from the
// database. A shelf with every slot occupied or disabled is not offered.
type GetFreeShelvesQueryHandler struct {
	db *gorm.DB
}

// NewGetFreeShelvesQueryHandler creates a handler for free shelf queries.
func NewGetFreeShelvesQueryHandler(db *gorm.DB) GetFreeShelvesQueryHandler {
	return GetFreeShelvesQueryHandler{db: db}
}

// Handle executes the query, counting free slots per shelf in the area.
func (h GetFreeShelvesQueryHandler) Handle(
	ctx context.Context,
	query GetFreeShelvesQuery,
) ([]GetFreeShelvesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.id,
			s.code,
			COUNT(st.id) AS free_slots
		FROM shelves s
		JOIN storages st ON st.shelf_id = s.id AND st.status = ?
		WHERE s.area_id = ?
		GROUP BY s.id, s.code
		ORDER BY s.code
	`, location.SlotFree, query.AreaID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shelves := make([]GetFreeShelvesQueryResponse, 0)
	for rows.Next() {
		var resp GetFreeShelvesQueryResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &resp.ShelfCode, &resp.FreeSlots); err != nil {
			return nil, err
		}

		shelfID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ShelfID = shelfID
		shelves = append(shelves, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shelves, nil
}

package queries

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var (
	ErrGetFreeShelvesQueryIsNotConstructed = errors.New(
		"GetFreeShelvesQuery must be created via NewGetFreeShelvesQuery constructor",
	)
)

// GetFreeShelvesQuery retrieves the shelves of an area that still have at
// least one free storage slot. This is the advisory snapshot an allocation
// draft is built against; slot exclusivity is only guaranteed later, at the
// reservation.
type GetFreeShelvesQuery struct {
	areaID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetFreeShelvesQuery creates a query for the free shelves of an area.
func NewGetFreeShelvesQuery(areaID kernel.UUID) (GetFreeShelvesQuery, error) {
	if err := areaID.Validate(); err != nil {
		return GetFreeShelvesQuery{}, err
	}

	return GetFreeShelvesQuery{
		areaID: areaID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetFreeShelvesQuery) Validate() error {
	return q.guard.Validate(ErrGetFreeShelvesQueryIsNotConstructed)
}

// AreaID returns the area to list shelves for.
func (q GetFreeShelvesQuery) AreaID() kernel.UUID { return q.areaID }

// GetFreeShelvesQueryResponse represents one shelf with free capacity.
type GetFreeShelvesQueryResponse struct {
	ShelfID   kernel.UUID
	ShelfCode string
	FreeSlots int
}

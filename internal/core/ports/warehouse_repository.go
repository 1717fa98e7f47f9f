package ports

import (
	"context"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/location"
)

// WarehouseRepository is the master-data contract for the storage hierarchy
// plus the authoritative slot reservation.
//
// The list methods serve phase 1 of the allocation protocol: advisory
// snapshots for building drafts. ReserveStorages is phase 2: the only
// operation with transactional guarantees over slot exclusivity.
type WarehouseRepository interface {
	// ListAreas retrieves all warehouse areas.
	ListAreas(ctx context.Context) ([]location.Area, error)

	// ListShelves retrieves the shelves of an area.
	ListShelves(ctx context.Context, areaID kernel.UUID) ([]location.Shelf, error)

	// ListStorages retrieves the storage slots of a shelf with their live
	// status.
	ListStorages(ctx context.Context, shelfID kernel.UUID) ([]location.Storage, error)

	// ReserveStorages atomically checks that every slot is still free and
	// flips it to occupied. Two drafts built concurrently against stale
	// snapshots can both believe a slot is free; this check-and-reserve is
	// what decides. A slot consumed in the meantime fails the whole call
	// with a ConflictError naming the slot, and no slot is reserved.
	ReserveStorages(ctx context.Context, storageIDs []kernel.UUID) error
}

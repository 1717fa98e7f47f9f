package services

import (
	"fmt"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/location"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/pkg/errs"
)

// LocationAllocator is a domain service that builds location drafts against
// master-data snapshots of the Area -> Shelf -> Storage hierarchy.
//
// It implements phase 1 of the two-phase allocation protocol: fast, local,
// advisory checks over a snapshot. Phase 2 — the transactional
// check-and-reserve — happens in the warehouse repository at commit time and
// is the only phase with authoritative guarantees. A selection accepted here
// can still fail at commit with a ConflictError when a concurrent session
// consumed the slot.
//
// All derivations are pure functions of their inputs; the allocator keeps no
// state of its own, which removes order-of-mutation bugs between the
// cascading area -> shelf -> storage selections.
type LocationAllocator struct{}

// NewLocationAllocator creates a new LocationAllocator instance.
func NewLocationAllocator() LocationAllocator {
	return LocationAllocator{}
}

// FreeShelves derives the shelves of an area that can still be offered for
// selection: a shelf is offered only if at least one of its storage slots is
// currently free.
func (LocationAllocator) FreeShelves(
	areaID kernel.UUID,
	shelves []location.Shelf,
	storages []location.Storage,
) []location.Shelf {
	freeByShelf := make(map[kernel.UUID]bool, len(shelves))
	for _, s := range storages {
		if s.IsFree() {
			freeByShelf[s.ShelfID()] = true
		}
	}

	offered := make([]location.Shelf, 0, len(shelves))
	for _, shelf := range shelves {
		if shelf.AreaID().IsEqual(areaID) && freeByShelf[shelf.ID()] {
			offered = append(offered, shelf)
		}
	}
	return offered
}

// AssignShelf sets the shelf of a draft row after checking that the shelf
// belongs to the draft's area. The duplicate-shelf invariant is enforced by
// the draft itself: a shelf already used by another row is rejected and the
// row's shelf field stays empty.
func (LocationAllocator) AssignShelf(draft *location.Draft, row int, shelf location.Shelf) error {
	if err := draft.Validate(); err != nil {
		return err
	}

	if !shelf.AreaID().IsEqual(draft.AreaID()) {
		return errs.NewValueIsInvalidErrorWithCause("shelfId",
			fmt.Errorf("shelf %s does not belong to area %s", shelf.ID(), draft.AreaID()))
	}

	return draft.AssignShelf(row, shelf.ID())
}

// AssignStorages sets the storage selection of a draft row. Every id must
// identify a slot of the row's shelf whose live status is free; any other id
// rejects the whole selection and leaves the row unchanged.
func (LocationAllocator) AssignStorages(
	draft *location.Draft,
	row int,
	storageIDs []kernel.UUID,
	live []location.Storage,
) error {
	if err := draft.Validate(); err != nil {
		return err
	}

	rows := draft.Rows()
	if row < 0 || row >= len(rows) {
		return location.ErrRowOutOfRange
	}
	shelfID := rows[row].ShelfID()
	if shelfID == nil {
		return location.ErrShelfNotAssigned
	}

	byID := make(map[kernel.UUID]location.Storage, len(live))
	for _, s := range live {
		byID[s.ID()] = s
	}

	for _, id := range storageIDs {
		storage, ok := byID[id]
		if !ok {
			return errs.NewObjectNotFoundError("storage", id.String())
		}
		if !storage.ShelfID().IsEqual(*shelfID) {
			return errs.NewValueIsInvalidErrorWithCause("storageIds",
				fmt.Errorf("storage %s does not belong to shelf %s", id, shelfID))
		}
		if !storage.IsFree() {
			return errs.NewValueIsInvalidErrorWithCause("storageIds",
				fmt.Errorf("storage %s is %s", id, storage.Status()))
		}
	}

	return draft.ReplaceStorages(row, storageIDs)
}

// Placements converts a fully built draft into committed placement rows.
// Every row must be complete; an incomplete draft fails with an
// IncompleteError carrying the progress counters.
func (LocationAllocator) Placements(draft *location.Draft) ([]order.Placement, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	rows := draft.Rows()
	complete := 0
	for _, r := range rows {
		if r.IsComplete() {
			complete++
		}
	}
	if len(rows) == 0 || complete < len(rows) {
		return nil, errs.NewIncompleteError("allocation draft", complete, len(rows))
	}

	placements := make([]order.Placement, 0, len(rows))
	for _, r := range rows {
		placements = append(placements, order.Placement{
			ShelfID:    *r.ShelfID(),
			StorageIDs: r.StorageIDs(),
		})
	}
	return placements, nil
}

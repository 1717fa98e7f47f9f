package location

import (
	"errors"
	"fmt"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
)

var (
	// ErrDraftIsNotConstructed is returned when a Draft instance was not
	// created through the NewDraft factory method.
	ErrDraftIsNotConstructed = errors.New("Draft must be created via NewDraft constructor")

	// ErrRowOutOfRange is returned when a row index does not address an
	// existing draft row.
	ErrRowOutOfRange = errors.New("draft row index out of range")

	// ErrShelfNotAssigned is returned when storages are assigned to a row
	// that has no shelf yet.
	ErrShelfNotAssigned = errors.New("row has no shelf assigned")
)

// Row is one in-progress location selection: a shelf and the storage slots
// chosen on it. The shelf is nil until assigned; assigning a shelf clears
// any previously chosen storages.
type Row struct {
	shelfID    *kernel.UUID
	storageIDs []kernel.UUID
}

// ShelfID returns the row's shelf, nil when unassigned.
func (r *Row) ShelfID() *kernel.UUID { return r.shelfID }

// StorageIDs returns the storage slots chosen on the row's shelf.
func (r *Row) StorageIDs() []kernel.UUID { return r.storageIDs }

// IsComplete reports whether the row has a shelf and at least one storage.
func (r *Row) IsComplete() bool {
	return r.shelfID != nil && len(r.storageIDs) > 0
}

// Draft is the in-progress, not-yet-committed set of location selections for
// one order item within one area. It is phase-1 advisory state: selections
// are validated optimistically against master-data snapshots, and verified
// again transactionally at commit.
//
// Invariants:
//   - no two rows carry the same shelf (one shelf per draft row)
//   - assigning a shelf clears the row's storage selection
type Draft struct {
	areaID kernel.UUID
	rows   []*Row

	guard kernel.ConstructorGuard
}

// NewDraft creates an empty allocation draft scoped to one area.
func NewDraft(areaID kernel.UUID) (*Draft, error) {
	if err := areaID.Validate(); err != nil {
		return nil, err
	}
	return &Draft{
		areaID: areaID,
		guard:  kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Draft instance was properly constructed through NewDraft.
func (d *Draft) Validate() error {
	if d == nil {
		return ErrDraftIsNotConstructed
	}
	return d.guard.Validate(ErrDraftIsNotConstructed)
}

// AreaID returns the area the draft allocates within.
func (d *Draft) AreaID() kernel.UUID { return d.areaID }

// Rows returns the ordered draft rows.
func (d *Draft) Rows() []*Row { return d.rows }

// AddRow appends an empty row and returns its index.
func (d *Draft) AddRow() int {
	d.rows = append(d.rows, &Row{})
	return len(d.rows) - 1
}

// RemoveRow deletes the row at the given index, preserving row order.
func (d *Draft) RemoveRow(row int) error {
	if row < 0 || row >= len(d.rows) {
		return ErrRowOutOfRange
	}
	d.rows = append(d.rows[:row], d.rows[row+1:]...)
	return nil
}

// AssignShelf sets the shelf of a row and clears the row's storage
// selection. The duplicate-shelf invariant is enforced here: if the shelf
// already appears in another row of the same draft, the assignment is
// rejected with a ValueIsInvalidError and the row's shelf field stays empty.
func (d *Draft) AssignShelf(row int, shelfID kernel.UUID) error {
	if row < 0 || row >= len(d.rows) {
		return ErrRowOutOfRange
	}
	if err := shelfID.Validate(); err != nil {
		return err
	}

	for i, r := range d.rows {
		if i != row && r.shelfID != nil && r.shelfID.IsEqual(shelfID) {
			return errs.NewValueIsInvalidErrorWithCause("shelfId",
				fmt.Errorf("shelf %s already assigned to row %d", shelfID, i))
		}
	}

	d.rows[row].shelfID = &shelfID
	d.rows[row].storageIDs = nil
	return nil
}

// ClearRow empties a row's shelf and storage selection. Used after a commit
// conflict to force re-selection of the affected row.
func (d *Draft) ClearRow(row int) error {
	if row < 0 || row >= len(d.rows) {
		return ErrRowOutOfRange
	}
	d.rows[row].shelfID = nil
	d.rows[row].storageIDs = nil
	return nil
}

// ReplaceStorages overwrites the storage selection of a row. The ids must be
// unique and the row must have a shelf. Ownership and liveness of the slots
// are checked by the LocationAllocator service, which is the intended caller.
func (d *Draft) ReplaceStorages(row int, storageIDs []kernel.UUID) error {
	if row < 0 || row >= len(d.rows) {
		return ErrRowOutOfRange
	}
	if d.rows[row].shelfID == nil {
		return ErrShelfNotAssigned
	}
	if len(storageIDs) == 0 {
		return errs.NewValueIsRequiredError("storageIds")
	}

	seen := make(map[kernel.UUID]struct{}, len(storageIDs))
	for _, id := range storageIDs {
		if err := id.Validate(); err != nil {
			return err
		}
		if _, ok := seen[id]; ok {
			return errs.NewValueIsInvalidErrorWithCause("storageIds",
				fmt.Errorf("storage %s listed twice", id))
		}
		seen[id] = struct{}{}
	}

	d.rows[row].storageIDs = storageIDs
	return nil
}

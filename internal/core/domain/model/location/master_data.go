package location

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
)

// Master-data snapshots of the warehouse hierarchy Area -> Shelf -> Storage.
// These are read models served by the master-data collaborator: the workflow
// selects against them (phase 1, advisory) and the repository re-checks them
// transactionally at commit (phase 2, authoritative).

// Area is a warehouse zone containing shelves.
type Area struct {
	id   kernel.UUID
	code string
}

// NewArea creates an area snapshot.
func NewArea(id kernel.UUID, code string) (Area, error) {
	if err := id.Validate(); err != nil {
		return Area{}, err
	}
	if code == "" {
		return Area{}, errs.NewValueIsRequiredError("code")
	}
	return Area{id: id, code: code}, nil
}

// ID returns the area identifier.
func (a Area) ID() kernel.UUID { return a.id }

// Code returns the human-facing area code, e.g. "A101".
func (a Area) Code() string { return a.code }

// Shelf is a rack inside an area, containing storage slots.
type Shelf struct {
	id     kernel.UUID
	areaID kernel.UUID
	code   string
}

// NewShelf creates a shelf snapshot.
func NewShelf(id, areaID kernel.UUID, code string) (Shelf, error) {
	if err := errors.Join(id.Validate(), areaID.Validate()); err != nil {
		return Shelf{}, err
	}
	if code == "" {
		return Shelf{}, errs.NewValueIsRequiredError("code")
	}
	return Shelf{id: id, areaID: areaID, code: code}, nil
}

// ID returns the shelf identifier.
func (s Shelf) ID() kernel.UUID { return s.id }

// AreaID returns the identifier of the area the shelf belongs to.
func (s Shelf) AreaID() kernel.UUID { return s.areaID }

// Code returns the human-facing shelf code, e.g. "S1".
func (s Shelf) Code() string { return s.code }

// Storage is the smallest addressable slot, nested under a shelf.
type Storage struct {
	id      kernel.UUID
	shelfID kernel.UUID
	code    string
	status  SlotStatus
}

// NewStorage creates a storage slot snapshot with its live status.
func NewStorage(id, shelfID kernel.UUID, code string, status SlotStatus) (Storage, error) {
	if err := errors.Join(id.Validate(), shelfID.Validate(), status.Validate()); err != nil {
		return Storage{}, err
	}
	if code == "" {
		return Storage{}, errs.NewValueIsRequiredError("code")
	}
	return Storage{id: id, shelfID: shelfID, code: code, status: status}, nil
}

// ID returns the storage slot identifier.
func (s Storage) ID() kernel.UUID { return s.id }

// ShelfID returns the identifier of the owning shelf.
func (s Storage) ShelfID() kernel.UUID { return s.shelfID }

// Code returns the human-facing slot code, e.g. "L1".
func (s Storage) Code() string { return s.code }

// Status returns the live availability of the slot at snapshot time.
func (s Storage) Status() SlotStatus { return s.status }

// IsFree reports whether the slot was free at snapshot time.
func (s Storage) IsFree() bool { return s.status == SlotFree }

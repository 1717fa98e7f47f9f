package order

import (
	"errors"
	"fmt"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
)

var (
	// ErrItemIsNotConstructed is returned when an Item instance was not
	// created through the NewItem factory method.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")
)

// Placement is an ordered row of the item's location assignment: one shelf
// and the set of storage slots taken on it. Rows are built incrementally by
// the allocation draft and become part of the item at putaway commit.
type Placement struct {
	ShelfID    kernel.UUID
	StorageIDs []kernel.UUID
}

// Validate checks that the placement has a shelf and at least one storage
// slot, and that the storage ids form a set (no duplicates).
func (p Placement) Validate() error {
	if err := p.ShelfID.Validate(); err != nil {
		return err
	}
	if len(p.StorageIDs) == 0 {
		return errs.NewValueIsRequiredError("storageIDs")
	}

	seen := make(map[kernel.UUID]struct{}, len(p.StorageIDs))
	for _, id := range p.StorageIDs {
		if err := id.Validate(); err != nil {
			return err
		}
		if _, ok := seen[id]; ok {
			return errs.NewValueIsInvalidErrorWithCause("storageIDs",
				fmt.Errorf("storage %s listed twice", id))
		}
		seen[id] = struct{}{}
	}
	return nil
}

// Item represents a single product line of an order. It is an entity owned
// by the Order aggregate and is mutated only through the order's lifecycle
// operations.
//
// Invariants:
//   - expectedQuantity > 0
//   - once recorded, 0 <= actualQuantity <= expectedQuantity
//   - amount = price * expectedQuantity
type Item struct {
	id               kernel.UUID
	productID        kernel.UUID
	batchNumber      string
	expectedQuantity int
	actualQuantity   int
	actualRecorded   bool
	price            int64
	amount           int64
	areaID           kernel.UUID
	placements       []Placement
	qualityStatus    QualityStatus

	guard kernel.ConstructorGuard
}

// NewItem creates an order item line. Price and amount are in minor currency
// units. The actual quantity starts unrecorded; it is set by the inspection
// reconciliation.
func NewItem(
	id kernel.UUID,
	productID kernel.UUID,
	batchNumber string,
	expectedQuantity int,
	price int64,
	areaID kernel.UUID,
) (*Item, error) {
	item := &Item{
		qualityStatus: NotInspected,
		guard:         kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setProductID(productID),
		item.setBatchNumber(batchNumber),
		item.setExpectedQuantity(expectedQuantity),
		item.setPrice(price),
		item.setAreaID(areaID),
	); err != nil {
		return nil, err
	}

	item.amount = price * int64(expectedQuantity)
	return item, nil
}

// RestoreItem reconstructs an item from persistence, including the recorded
// actual quantity, quality status and committed placements.
func RestoreItem(
	id kernel.UUID,
	productID kernel.UUID,
	batchNumber string,
	expectedQuantity int,
	actualQuantity *int,
	price int64,
	areaID kernel.UUID,
	placements []Placement,
	qualityStatus QualityStatus,
) (*Item, error) {
	item, err := NewItem(id, productID, batchNumber, expectedQuantity, price, areaID)
	if err != nil {
		return nil, err
	}

	if err = qualityStatus.Validate(); err != nil {
		return nil, err
	}
	item.qualityStatus = qualityStatus

	if actualQuantity != nil {
		if err = item.RecordActualQuantity(*actualQuantity); err != nil {
			return nil, err
		}
	}

	if len(placements) > 0 {
		if err = item.AssignPlacements(placements); err != nil {
			return nil, err
		}
	}

	return item, nil
}

// IsEqual compares two items by identity.
func (i *Item) IsEqual(other *Item) bool {
	return other != nil && i.id.IsEqual(other.id)
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// ProductID returns the product this line refers to.
func (i *Item) ProductID() kernel.UUID {
	return i.productID
}

// BatchNumber returns the batch the line belongs to. Together with the
// product id it forms the composite key used by inspection and the stock
// ledger.
func (i *Item) BatchNumber() string {
	return i.batchNumber
}

// ExpectedQuantity returns the ordered quantity.
func (i *Item) ExpectedQuantity() int {
	return i.expectedQuantity
}

// ActualQuantity returns the received/shipped quantity and whether it has
// been recorded yet.
func (i *Item) ActualQuantity() (int, bool) {
	return i.actualQuantity, i.actualRecorded
}

// Price returns the unit price in minor currency units.
func (i *Item) Price() int64 {
	return i.price
}

// Amount returns the line amount in minor currency units.
func (i *Item) Amount() int64 {
	return i.amount
}

// AreaID returns the warehouse area assigned to this line.
func (i *Item) AreaID() kernel.UUID {
	return i.areaID
}

// Placements returns the committed location rows of the item.
func (i *Item) Placements() []Placement {
	return i.placements
}

// QualityStatus returns the per-item inspection outcome.
func (i *Item) QualityStatus() QualityStatus {
	return i.qualityStatus
}

// RecordActualQuantity records the quantity actually received or shipped.
// Enforces 0 <= quantity <= expectedQuantity; violating inputs are rejected
// without mutation.
func (i *Item) RecordActualQuantity(quantity int) error {
	if quantity < 0 || quantity > i.expectedQuantity {
		return errs.NewValueIsOutOfRangeError("actualQuantity", quantity, 0, i.expectedQuantity)
	}

	i.actualQuantity = quantity
	i.actualRecorded = true
	return nil
}

// ApplyQuality sets the per-item inspection outcome.
func (i *Item) ApplyQuality(status QualityStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}

	i.qualityStatus = status
	return nil
}

// AssignPlacements replaces the item's location rows. Every row must be
// valid and no shelf may appear in more than one row.
func (i *Item) AssignPlacements(placements []Placement) error {
	if len(placements) == 0 {
		return errs.NewValueIsRequiredError("placements")
	}

	shelves := make(map[kernel.UUID]struct{}, len(placements))
	for _, p := range placements {
		if err := p.Validate(); err != nil {
			return err
		}
		if _, ok := shelves[p.ShelfID]; ok {
			return errs.NewValueIsInvalidErrorWithCause("placements",
				fmt.Errorf("shelf %s assigned to more than one row", p.ShelfID))
		}
		shelves[p.ShelfID] = struct{}{}
	}

	i.placements = placements
	return nil
}

// Validate ensures the Item instance was properly constructed through NewItem.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.productID = id
	return nil
}

func (i *Item) setBatchNumber(batchNumber string) error {
	if batchNumber == "" {
		return errs.NewValueIsRequiredError("batchNumber")
	}
	i.batchNumber = batchNumber
	return nil
}

func (i *Item) setExpectedQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("expectedQuantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.expectedQuantity = quantity
	return nil
}

func (i *Item) setPrice(price int64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%d is negative", price))
	}
	i.price = price
	return nil
}

func (i *Item) setAreaID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.areaID = id
	return nil
}

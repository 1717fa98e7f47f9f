package inspection

import (
	"errors"
	"fmt"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the newItem factory or RestoreItem.
var ErrItemIsNotConstructed = errors.New("inspection Item must be created via its constructor")

// Item is an immutable inspection result line emitted by a finalized
// worksheet. Only its putaway progress (receive status, location) changes
// afterwards.
//
// Invariants:
//   - qualifiedQuantity + unqualifiedQuantity == inspectionQuantity
//   - 0 <= qualifiedQuantity <= inspectionQuantity
type Item struct {
	id                  kernel.UUID
	productID           kernel.UUID
	batchNumber         string
	areaID              kernel.UUID
	locationCode        string
	inspectionQuantity  int
	qualifiedQuantity   int
	unqualifiedQuantity int
	quality             ItemQuality
	receiveStatus       ReceiveStatus
	remark              string

	guard kernel.ConstructorGuard
}

func newItem(
	id kernel.UUID,
	key ItemKey,
	areaID kernel.UUID,
	v Verdict,
) (*Item, error) {
	if err := errors.Join(id.Validate(), key.ProductID.Validate(), areaID.Validate()); err != nil {
		return nil, err
	}

	quality := Unqualified
	if v.Approved {
		quality = Qualified
	}

	item := &Item{
		id:                  id,
		productID:           key.ProductID,
		batchNumber:         key.BatchNumber,
		areaID:              areaID,
		inspectionQuantity:  v.ActualQuantity,
		qualifiedQuantity:   v.QualifiedQuantity,
		unqualifiedQuantity: v.UnqualifiedQuantity(),
		quality:             quality,
		receiveStatus:       NotShelved,
		remark:              v.Remark,
		guard:               kernel.NewConstructorGuard(),
	}

	if err := item.checkQuantities(); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem reconstructs an inspection item from persistence.
func RestoreItem(
	id kernel.UUID,
	productID kernel.UUID,
	batchNumber string,
	areaID kernel.UUID,
	locationCode string,
	inspectionQuantity int,
	qualifiedQuantity int,
	unqualifiedQuantity int,
	quality ItemQuality,
	receiveStatus ReceiveStatus,
	remark string,
) (*Item, error) {
	if err := errors.Join(
		id.Validate(),
		productID.Validate(),
		areaID.Validate(),
		quality.Validate(),
		receiveStatus.Validate(),
	); err != nil {
		return nil, err
	}
	if batchNumber == "" {
		return nil, errs.NewValueIsRequiredError("batchNumber")
	}

	item := &Item{
		id:                  id,
		productID:           productID,
		batchNumber:         batchNumber,
		areaID:              areaID,
		locationCode:        locationCode,
		inspectionQuantity:  inspectionQuantity,
		qualifiedQuantity:   qualifiedQuantity,
		unqualifiedQuantity: unqualifiedQuantity,
		quality:             quality,
		receiveStatus:       receiveStatus,
		remark:              remark,
		guard:               kernel.NewConstructorGuard(),
	}

	if err := item.checkQuantities(); err != nil {
		return nil, err
	}

	return item, nil
}

func (i *Item) checkQuantities() error {
	if i.inspectionQuantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("inspectionQuantity",
			fmt.Errorf("%d is negative", i.inspectionQuantity))
	}
	if i.qualifiedQuantity < 0 || i.qualifiedQuantity > i.inspectionQuantity {
		return errs.NewValueIsOutOfRangeError("qualifiedQuantity",
			i.qualifiedQuantity, 0, i.inspectionQuantity)
	}
	if i.qualifiedQuantity+i.unqualifiedQuantity != i.inspectionQuantity {
		return errs.NewValueIsInvalidErrorWithCause("unqualifiedQuantity",
			fmt.Errorf("%d + %d does not equal %d",
				i.qualifiedQuantity, i.unqualifiedQuantity, i.inspectionQuantity))
	}
	return nil
}

// Validate ensures the Item was properly constructed.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID { return i.id }

// ProductID returns the inspected product.
func (i *Item) ProductID() kernel.UUID { return i.productID }

// BatchNumber returns the inspected batch.
func (i *Item) BatchNumber() string { return i.batchNumber }

// Key returns the composite (productID, batchNumber) key of the item.
func (i *Item) Key() ItemKey {
	return ItemKey{ProductID: i.productID, BatchNumber: i.batchNumber}
}

// AreaID returns the warehouse area the item is put away into.
func (i *Item) AreaID() kernel.UUID { return i.areaID }

// LocationCode returns the committed putaway location, empty before putaway.
func (i *Item) LocationCode() string { return i.locationCode }

// InspectionQuantity returns the quantity that was inspected.
func (i *Item) InspectionQuantity() int { return i.inspectionQuantity }

// QualifiedQuantity returns the quantity that passed inspection.
func (i *Item) QualifiedQuantity() int { return i.qualifiedQuantity }

// UnqualifiedQuantity returns the quantity that failed inspection.
func (i *Item) UnqualifiedQuantity() int { return i.unqualifiedQuantity }

// Quality returns the per-item quality determination.
func (i *Item) Quality() ItemQuality { return i.quality }

// ReceiveStatus returns the putaway progress of the item.
func (i *Item) ReceiveStatus() ReceiveStatus { return i.receiveStatus }

// Remark returns the inspector's note for the item.
func (i *Item) Remark() string { return i.remark }

// StartShelving marks putaway as in progress and records the target
// location. Only valid from NotShelved.
func (i *Item) StartShelving(locationCode string) error {
	if i.receiveStatus != NotShelved {
		return errs.NewInvalidTransitionError(i.receiveStatus.String(), "start shelving")
	}
	if locationCode == "" {
		return errs.NewValueIsRequiredError("locationCode")
	}

	i.receiveStatus = Shelving
	i.locationCode = locationCode
	return nil
}

// FinishShelving marks putaway as completed. Only valid from Shelving.
func (i *Item) FinishShelving() error {
	if i.receiveStatus != Shelving {
		return errs.NewInvalidTransitionError(i.receiveStatus.String(), "finish shelving")
	}

	i.receiveStatus = Shelved
	return nil
}

// IsShelved reports whether putaway finished for the item.
func (i *Item) IsShelved() bool {
	return i.receiveStatus == Shelved
}

package stock

import (
	"errors"
	"fmt"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/pkg/errs"
)

var (
	// ErrEntryIsNotConstructed is returned when an Entry instance was not
	// created through the NewEntry factory method.
	ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry constructor")

	// ErrNegativeAdjustment is returned by SetQuantity for a new quantity
	// below the current one. The available-quantity semantics of a shrinking
	// edit are undefined, so the operation is rejected instead of guessed.
	ErrNegativeAdjustment = errors.New("quantity decrease is not supported")
)

// AlertStatus flags a stock entry whose quantity crossed its min/max
// thresholds. It is derived from the thresholds, never set directly.
type AlertStatus int

const (
	// AlertNone means the quantity is within thresholds.
	AlertNone AlertStatus = iota

	// AlertBelowMin means the quantity dropped below the minimum threshold.
	AlertBelowMin

	// AlertAboveMax means the quantity exceeded the maximum threshold.
	AlertAboveMax
)

func getAlertStatusStrings() map[AlertStatus]string {
	return map[AlertStatus]string{
		AlertNone:     "None",
		AlertBelowMin: "BelowMin",
		AlertAboveMax: "AboveMax",
	}
}

// Validate checks that the AlertStatus carries one of the defined values.
func (a AlertStatus) Validate() error {
	if _, ok := getAlertStatusStrings()[a]; !ok {
		return errs.NewValueIsInvalidError("alertStatus")
	}
	return nil
}

// String returns the human-readable name of the alert status.
func (a AlertStatus) String() string {
	if str, ok := getAlertStatusStrings()[a]; ok {
		return str
	}
	return "Unknown"
}

// BatchKey is the composite (productID, batchNumber) key identifying a
// stock entry.
type BatchKey struct {
	ProductID   kernel.UUID
	BatchNumber string
}

// NewBatchKey builds the ledger key for a batch.
func NewBatchKey(productID kernel.UUID, batchNumber string) (BatchKey, error) {
	if err := productID.Validate(); err != nil {
		return BatchKey{}, err
	}
	if batchNumber == "" {
		return BatchKey{}, errs.NewValueIsRequiredError("batchNumber")
	}
	return BatchKey{ProductID: productID, BatchNumber: batchNumber}, nil
}

// String returns the key in "productID/batchNumber" form for messages.
func (k BatchKey) String() string {
	return fmt.Sprintf("%s/%s", k.ProductID, k.BatchNumber)
}

// Entry is a batch-keyed stock ledger line: the on-hand quantity of one
// (productID, batchNumber) pair, its available (unreserved) share, the
// locations holding it and its alert state.
//
// Invariant: 0 <= availableQuantity <= quantity.
type Entry struct {
	key               BatchKey
	areaID            kernel.UUID
	placements        []order.Placement
	quantity          int
	availableQuantity int
	alertStatus       AlertStatus
	updatedAt         time.Time

	guard kernel.ConstructorGuard
}

// NewEntry creates a ledger entry on first putaway of a batch. The entry
// starts with quantity = availableQuantity = the initial count.
func NewEntry(key BatchKey, areaID kernel.UUID, initial int) (*Entry, error) {
	if err := errors.Join(key.ProductID.Validate(), areaID.Validate()); err != nil {
		return nil, err
	}
	if key.BatchNumber == "" {
		return nil, errs.NewValueIsRequiredError("batchNumber")
	}
	if initial <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("initial quantity",
			fmt.Errorf("%d is not greater than 0", initial))
	}

	return &Entry{
		key:               key,
		areaID:            areaID,
		quantity:          initial,
		availableQuantity: initial,
		alertStatus:       AlertNone,
		updatedAt:         time.Now().UTC(),
		guard:             kernel.NewConstructorGuard(),
	}, nil
}

// RestoreEntry reconstructs a ledger entry from persistence.
func RestoreEntry(
	key BatchKey,
	areaID kernel.UUID,
	placements []order.Placement,
	quantity int,
	availableQuantity int,
	alertStatus AlertStatus,
	updatedAt time.Time,
) (*Entry, error) {
	if err := errors.Join(key.ProductID.Validate(), areaID.Validate(), alertStatus.Validate()); err != nil {
		return nil, err
	}
	if availableQuantity < 0 || availableQuantity > quantity {
		return nil, errs.NewValueIsOutOfRangeError("availableQuantity", availableQuantity, 0, quantity)
	}

	return &Entry{
		key:               key,
		areaID:            areaID,
		placements:        placements,
		quantity:          quantity,
		availableQuantity: availableQuantity,
		alertStatus:       alertStatus,
		updatedAt:         updatedAt,
		guard:             kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Entry was properly constructed through NewEntry.
func (e *Entry) Validate() error {
	if e == nil {
		return ErrEntryIsNotConstructed
	}
	return e.guard.Validate(ErrEntryIsNotConstructed)
}

// Key returns the (productID, batchNumber) ledger key.
func (e *Entry) Key() BatchKey { return e.key }

// AreaID returns the area holding the batch.
func (e *Entry) AreaID() kernel.UUID { return e.areaID }

// Placements returns the shelf/storage rows holding the batch.
func (e *Entry) Placements() []order.Placement { return e.placements }

// Quantity returns the on-hand quantity.
func (e *Entry) Quantity() int { return e.quantity }

// AvailableQuantity returns the unreserved share of the quantity.
func (e *Entry) AvailableQuantity() int { return e.availableQuantity }

// AlertStatus returns the current threshold alert.
func (e *Entry) AlertStatus() AlertStatus { return e.alertStatus }

// UpdatedAt returns the time of the last ledger mutation.
func (e *Entry) UpdatedAt() time.Time { return e.updatedAt }

// Add applies the addition flow for an existing batch: both the quantity
// and the available quantity grow by the added amount. The amount must be
// positive.
func (e *Entry) Add(amount int) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("additionalQuantity",
			fmt.Errorf("%d is not greater than 0", amount))
	}

	e.quantity += amount
	e.availableQuantity += amount
	e.touch()
	return nil
}

// SetQuantity applies the direct-edit flow: the available quantity grows by
// the difference between the new and the current quantity. A shrinking edit
// (negative difference) is rejected with ErrNegativeAdjustment because its
// available-quantity semantics are undefined.
func (e *Entry) SetQuantity(newQuantity int) error {
	diff := newQuantity - e.quantity
	if diff < 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", ErrNegativeAdjustment)
	}

	e.quantity = newQuantity
	e.availableQuantity += diff
	e.touch()
	return nil
}

// Reserve withholds part of the available quantity for an outbound order.
func (e *Entry) Reserve(amount int) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("reserveQuantity",
			fmt.Errorf("%d is not greater than 0", amount))
	}
	if amount > e.availableQuantity {
		return errs.NewValueIsOutOfRangeError("reserveQuantity", amount, 1, e.availableQuantity)
	}

	e.availableQuantity -= amount
	e.touch()
	return nil
}

// MergePlacements folds newly committed putaway rows into the entry,
// deduplicating storage ids per shelf.
func (e *Entry) MergePlacements(placements []order.Placement) error {
	for _, p := range placements {
		if err := p.Validate(); err != nil {
			return err
		}

		merged := false
		for i, existing := range e.placements {
			if existing.ShelfID.IsEqual(p.ShelfID) {
				e.placements[i].StorageIDs = mergeStorageIDs(existing.StorageIDs, p.StorageIDs)
				merged = true
				break
			}
		}
		if !merged {
			e.placements = append(e.placements, p)
		}
	}
	e.touch()
	return nil
}

// EvaluateAlert derives the alert status from min/max thresholds.
func (e *Entry) EvaluateAlert(minQuantity, maxQuantity int) AlertStatus {
	switch {
	case e.quantity < minQuantity:
		e.alertStatus = AlertBelowMin
	case maxQuantity > 0 && e.quantity > maxQuantity:
		e.alertStatus = AlertAboveMax
	default:
		e.alertStatus = AlertNone
	}
	return e.alertStatus
}

func (e *Entry) touch() {
	e.updatedAt = time.Now().UTC()
}

func mergeStorageIDs(existing, incoming []kernel.UUID) []kernel.UUID {
	seen := make(map[kernel.UUID]struct{}, len(existing))
	for _, id := range existing {
		seen[id] = struct{}{}
	}
	for _, id := range incoming {
		if _, ok := seen[id]; !ok {
			existing = append(existing, id)
			seen[id] = struct{}{}
		}
	}
	return existing
}

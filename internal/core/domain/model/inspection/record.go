package inspection

import (
	"errors"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/pkg/errs"
)

var (
	// ErrRecordIsNotConstructed is returned when a Record instance was not
	// created through the NewRecord factory method.
	ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord constructor")

	// ErrRecordFinalized is returned when a mutation is attempted on an
	// already finalized inspection record.
	ErrRecordFinalized = errors.New("inspection record is finalized and immutable")

	// ErrRecordNotFinalized is returned when putaway progress is reported
	// against a record that has not been finalized yet.
	ErrRecordNotFinalized = errors.New("inspection record is not finalized")
)

// Record is the inspection aggregate for one order. It is created when the
// order enters processing, mutated incrementally through its worksheet while
// the inspector works, and becomes immutable once finalized — only the
// putaway progress of its items changes afterwards.
type Record struct {
	id           kernel.UUID
	inspectionNo string
	kind         Type
	orderID      kernel.UUID
	inspectorID  kernel.UUID
	status       order.QualityStatus
	worksheet    *Worksheet
	items        []*Item
	finalized    bool
	createdAt    time.Time
	finalizedAt  *time.Time

	guard kernel.ConstructorGuard
}

// NewRecord creates an open inspection record over the given worksheet.
func NewRecord(
	id kernel.UUID,
	inspectionNo string,
	kind Type,
	orderID kernel.UUID,
	inspectorID kernel.UUID,
	worksheet *Worksheet,
) (*Record, error) {
	if err := errors.Join(
		id.Validate(),
		kind.Validate(),
		orderID.Validate(),
		inspectorID.Validate(),
		worksheet.Validate(),
	); err != nil {
		return nil, err
	}
	if inspectionNo == "" {
		return nil, errs.NewValueIsRequiredError("inspectionNo")
	}

	return &Record{
		id:           id,
		inspectionNo: inspectionNo,
		kind:         kind,
		orderID:      orderID,
		inspectorID:  inspectorID,
		status:       order.NotInspected,
		worksheet:    worksheet,
		createdAt:    time.Now().UTC(),
		guard:        kernel.NewConstructorGuard(),
	}, nil
}

// RestoreRecord reconstructs a record from persistence. A record restored
// with items is finalized; one restored with only a worksheet is still open.
func RestoreRecord(
	id kernel.UUID,
	inspectionNo string,
	kind Type,
	orderID kernel.UUID,
	inspectorID kernel.UUID,
	status order.QualityStatus,
	worksheet *Worksheet,
	items []*Item,
	createdAt time.Time,
	finalizedAt *time.Time,
) (*Record, error) {
	rec, err := NewRecord(id, inspectionNo, kind, orderID, inspectorID, worksheet)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}

	for _, item := range items {
		if err = item.Validate(); err != nil {
			return nil, err
		}
	}

	rec.status = status
	rec.items = items
	rec.finalized = len(items) > 0
	rec.createdAt = createdAt
	rec.finalizedAt = finalizedAt
	return rec, nil
}

// Validate ensures the Record was properly constructed through NewRecord.
func (r *Record) Validate() error {
	if r == nil {
		return ErrRecordIsNotConstructed
	}
	return r.guard.Validate(ErrRecordIsNotConstructed)
}

// ID returns the record's unique identifier.
func (r *Record) ID() kernel.UUID { return r.id }

// InspectionNo returns the human-facing inspection number.
func (r *Record) InspectionNo() string { return r.inspectionNo }

// Kind returns the inspection type.
func (r *Record) Kind() Type { return r.kind }

// OrderID returns the related order's identifier.
func (r *Record) OrderID() kernel.UUID { return r.orderID }

// InspectorID returns the inspecting user's identifier.
func (r *Record) InspectorID() kernel.UUID { return r.inspectorID }

// Status returns the aggregated quality outcome, NotInspected while open.
func (r *Record) Status() order.QualityStatus { return r.status }

// Worksheet returns the record's verdict working set.
func (r *Record) Worksheet() *Worksheet { return r.worksheet }

// Items returns the immutable result lines, empty before finalize.
func (r *Record) Items() []*Item { return r.items }

// IsFinalized reports whether the record was committed.
func (r *Record) IsFinalized() bool { return r.finalized }

// CreatedAt returns the record creation time.
func (r *Record) CreatedAt() time.Time { return r.createdAt }

// FinalizedAt returns the finalize time, nil while open.
func (r *Record) FinalizedAt() *time.Time { return r.finalizedAt }

// RecordVerdict stores or overwrites the pending verdict for an item key.
// Rejected with ErrRecordFinalized once the record is committed.
func (r *Record) RecordVerdict(key ItemKey, v Verdict) error {
	if r.finalized {
		return ErrRecordFinalized
	}
	return r.worksheet.Record(key, v)
}

// Progress reports how many items have verdicts out of the total.
func (r *Record) Progress() (done, total int) {
	return r.worksheet.Progress()
}

// Finalize commits the worksheet all-or-nothing. When every item has a
// verdict it emits the immutable result lines, fixes the aggregated quality
// status and seals the record. A partial worksheet fails with an
// IncompleteError and leaves the record untouched.
func (r *Record) Finalize(newItemID func() kernel.UUID) (order.QualityStatus, error) {
	if r.finalized {
		return 0, ErrRecordFinalized
	}

	status, err := r.worksheet.Aggregate()
	if err != nil {
		return 0, err
	}

	items := make([]*Item, 0, len(r.worksheet.Keys()))
	for _, key := range r.worksheet.Keys() {
		verdict, _ := r.worksheet.Verdict(key)
		areaID, _ := r.worksheet.AreaID(key)

		item, itemErr := newItem(newItemID(), key, areaID, verdict)
		if itemErr != nil {
			return 0, itemErr
		}
		items = append(items, item)
	}

	now := time.Now().UTC()
	r.items = items
	r.status = status
	r.finalized = true
	r.finalizedAt = &now
	return status, nil
}

// ItemByKey finds the finalized result line for a (productID, batchNumber)
// pair. Only valid after finalize.
func (r *Record) ItemByKey(key ItemKey) (*Item, error) {
	if !r.finalized {
		return nil, ErrRecordNotFinalized
	}
	for _, item := range r.items {
		if item.Key() == key {
			return item, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("inspectionItem", key.String())
}

// AllShelved reports whether every qualified result line finished putaway.
// Lines with no qualified quantity do not gate completion.
func (r *Record) AllShelved() bool {
	if !r.finalized {
		return false
	}
	for _, item := range r.items {
		if item.QualifiedQuantity() > 0 && !item.IsShelved() {
			return false
		}
	}
	return true
}

package inspection

import (
	"errors"
	"fmt"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/pkg/errs"
)

// ErrWorksheetIsNotConstructed is returned when a Worksheet instance was not
// created through the NewWorksheet factory method.
var ErrWorksheetIsNotConstructed = errors.New("Worksheet must be created via NewWorksheet constructor")

// ItemKey identifies one order line inside a worksheet: the composite
// (productID, batchNumber) key shared with the stock ledger.
type ItemKey struct {
	ProductID   kernel.UUID
	BatchNumber string
}

// NewItemKey builds the worksheet key for an order line.
func NewItemKey(productID kernel.UUID, batchNumber string) (ItemKey, error) {
	if err := productID.Validate(); err != nil {
		return ItemKey{}, err
	}
	if batchNumber == "" {
		return ItemKey{}, errs.NewValueIsRequiredError("batchNumber")
	}
	return ItemKey{ProductID: productID, BatchNumber: batchNumber}, nil
}

// String returns the key in "productID/batchNumber" form for messages.
func (k ItemKey) String() string {
	return fmt.Sprintf("%s/%s", k.ProductID, k.BatchNumber)
}

// Verdict is an inspector's pending per-item determination: the actually
// received quantity, how much of it qualified, a pass/fail decision and an
// optional remark. A worksheet holds at most one live verdict per key;
// re-editing overwrites.
type Verdict struct {
	ActualQuantity    int
	QualifiedQuantity int
	Approved          bool
	Remark            string
}

// UnqualifiedQuantity derives the rejected share of the verdict, so that
// qualified + unqualified always equals the inspected quantity.
func (v Verdict) UnqualifiedQuantity() int {
	return v.ActualQuantity - v.QualifiedQuantity
}

// Worksheet is the working set of per-item verdicts for one order's
// inspection. It models the at-most-one-pending-edit-per-item invariant as
// a keyed dictionary: the key index is the (productID, batchNumber) pair,
// the verdict struct is the value, and a re-edit overwrites the live entry
// instead of appending.
//
// Aggregation and finalize are all-or-nothing: no order-level verdict is
// produced until every registered item has an entry.
type Worksheet struct {
	keys     []ItemKey
	expected map[ItemKey]int
	areas    map[ItemKey]kernel.UUID
	verdicts map[ItemKey]Verdict

	guard kernel.ConstructorGuard
}

// NewWorksheet registers the order's item lines and returns an empty
// worksheet for them. The expected quantity of each line caps the verdicts
// recorded against it.
func NewWorksheet(o *order.Order) (*Worksheet, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	items := o.Items()
	ws := &Worksheet{
		keys:     make([]ItemKey, 0, len(items)),
		expected: make(map[ItemKey]int, len(items)),
		areas:    make(map[ItemKey]kernel.UUID, len(items)),
		verdicts: make(map[ItemKey]Verdict, len(items)),
		guard:    kernel.NewConstructorGuard(),
	}

	for _, item := range items {
		key, err := NewItemKey(item.ProductID(), item.BatchNumber())
		if err != nil {
			return nil, err
		}
		ws.keys = append(ws.keys, key)
		ws.expected[key] = item.ExpectedQuantity()
		ws.areas[key] = item.AreaID()
	}

	return ws, nil
}

// RestoreWorksheet rebuilds a worksheet from persisted expectations and
// verdicts. Keys preserve their registration order.
func RestoreWorksheet(
	keys []ItemKey,
	expected map[ItemKey]int,
	areas map[ItemKey]kernel.UUID,
	verdicts map[ItemKey]Verdict,
) (*Worksheet, error) {
	if len(keys) == 0 {
		return nil, errs.NewValueIsRequiredError("keys")
	}

	ws := &Worksheet{
		keys:     keys,
		expected: expected,
		areas:    areas,
		verdicts: make(map[ItemKey]Verdict, len(verdicts)),
		guard:    kernel.NewConstructorGuard(),
	}

	for key, v := range verdicts {
		if err := ws.Record(key, v); err != nil {
			return nil, err
		}
	}

	return ws, nil
}

// Validate ensures the Worksheet was properly constructed through NewWorksheet.
func (w *Worksheet) Validate() error {
	if w == nil {
		return ErrWorksheetIsNotConstructed
	}
	return w.guard.Validate(ErrWorksheetIsNotConstructed)
}

// Keys returns the registered item keys in registration order.
func (w *Worksheet) Keys() []ItemKey {
	return w.keys
}

// ExpectedQuantity returns the expected quantity registered for a key.
func (w *Worksheet) ExpectedQuantity(key ItemKey) (int, bool) {
	q, ok := w.expected[key]
	return q, ok
}

// Verdict returns the live verdict for a key, if one was recorded.
func (w *Worksheet) Verdict(key ItemKey) (Verdict, bool) {
	v, ok := w.verdicts[key]
	return v, ok
}

// Record stores the verdict for a key, overwriting any previous entry for
// the same key. Quantity invariants are checked before any mutation:
//
//   - 0 <= actualQuantity <= expectedQuantity of the order line
//   - 0 <= qualifiedQuantity <= actualQuantity
//
// Violating verdicts are rejected with a ValueIsOutOfRangeError; unknown
// keys with an ObjectNotFoundError.
func (w *Worksheet) Record(key ItemKey, v Verdict) error {
	expected, ok := w.expected[key]
	if !ok {
		return errs.NewObjectNotFoundError("worksheetItem", key.String())
	}

	if v.ActualQuantity < 0 || v.ActualQuantity > expected {
		return errs.NewValueIsOutOfRangeError("actualQuantity", v.ActualQuantity, 0, expected)
	}
	if v.QualifiedQuantity < 0 || v.QualifiedQuantity > v.ActualQuantity {
		return errs.NewValueIsOutOfRangeError("qualifiedQuantity", v.QualifiedQuantity, 0, v.ActualQuantity)
	}

	w.verdicts[key] = v
	return nil
}

// Progress reports how many items have a recorded verdict out of the total
// registered items.
func (w *Worksheet) Progress() (done, total int) {
	return len(w.verdicts), len(w.keys)
}

// IsComplete reports whether every registered item has a verdict.
func (w *Worksheet) IsComplete() bool {
	done, total := w.Progress()
	return done == total
}

// Aggregate computes the order-level quality from the full verdict set:
// all approved -> Passed, all rejected -> Failed, mixed -> PartialException.
// A partial worksheet yields no verdict; the call fails with an
// IncompleteError carrying the progress counters.
func (w *Worksheet) Aggregate() (order.QualityStatus, error) {
	done, total := w.Progress()
	if done == 0 {
		return order.NotInspected, errs.NewIncompleteError("inspection worksheet", done, total)
	}
	if done < total {
		return order.NotInspected, errs.NewIncompleteError("inspection worksheet", done, total)
	}

	approved, rejected := 0, 0
	for _, v := range w.verdicts {
		if v.Approved {
			approved++
		} else {
			rejected++
		}
	}

	switch {
	case rejected == 0:
		return order.QualityPassed, nil
	case approved == 0:
		return order.QualityFailed, nil
	default:
		return order.PartialException, nil
	}
}

// AreaID returns the warehouse area registered for a key.
func (w *Worksheet) AreaID(key ItemKey) (kernel.UUID, bool) {
	id, ok := w.areas[key]
	return id, ok
}

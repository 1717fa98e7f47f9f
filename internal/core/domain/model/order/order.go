package order

import (
	"errors"
	"fmt"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrReasonIsRequired is returned when a reject or cancel action is
	// attempted without a non-empty reason.
	ErrReasonIsRequired = errs.NewValueIsRequiredError("reason")
)

// Order represents an inbound or outbound warehouse order. It is the
// aggregate root of the fulfillment workflow: it owns its item lines and is
// mutated only through lifecycle transitions.
//
// Order maintains these invariants:
//   - status transitions follow the lifecycle graph (see Status)
//   - quality status changes only through a finalized inspection
//   - reject and cancel require a non-empty reason
//   - totals are derived from the item lines at construction
//
// A rejected transition returns a typed error and leaves the aggregate
// unchanged.
type Order struct {
	id            kernel.UUID
	orderNo       string
	direction     Direction
	orderType     string
	creatorID     kernel.UUID
	approverID    *kernel.UUID
	inspectorID   *kernel.UUID
	status        Status
	qualityStatus QualityStatus
	totalAmount   int64
	totalQuantity int
	remark        string
	reason        string
	items         []*Item
	createdAt     time.Time
	updatedAt     time.Time

	guard kernel.ConstructorGuard
}

// NewOrder creates an order in PendingReview status from its item lines.
// Totals are computed from the lines; at least one line is required.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - orderNo: human-facing order number (must not be empty)
//   - direction: Inbound or Outbound
//   - orderType: free-form classification, e.g. "purchase" or "return"
//   - creatorID: the submitting user
//   - items: the order lines (at least one)
//   - remark: optional free text
func NewOrder(
	id kernel.UUID,
	orderNo string,
	direction Direction,
	orderType string,
	creatorID kernel.UUID,
	items []*Item,
	remark string,
) (*Order, error) {
	now := time.Now().UTC()
	o := &Order{
		status:        PendingReview,
		qualityStatus: NotInspected,
		remark:        remark,
		createdAt:     now,
		updatedAt:     now,
		guard:         kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderNo(orderNo),
		o.setDirection(direction),
		o.setOrderType(orderType),
		o.setCreatorID(creatorID),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence with its full state.
func RestoreOrder(
	id kernel.UUID,
	orderNo string,
	direction Direction,
	orderType string,
	creatorID kernel.UUID,
	approverID *kernel.UUID,
	inspectorID *kernel.UUID,
	status Status,
	qualityStatus QualityStatus,
	items []*Item,
	remark string,
	reason string,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	o, err := NewOrder(id, orderNo, direction, orderType, creatorID, items, remark)
	if err != nil {
		return nil, err
	}

	if err = errors.Join(status.Validate(), qualityStatus.Validate()); err != nil {
		return nil, err
	}

	if approverID != nil {
		if err = approverID.Validate(); err != nil {
			return nil, err
		}
	}
	if inspectorID != nil {
		if err = inspectorID.Validate(); err != nil {
			return nil, err
		}
	}

	o.status = status
	o.qualityStatus = qualityStatus
	o.approverID = approverID
	o.inspectorID = inspectorID
	o.reason = reason
	o.createdAt = createdAt
	o.updatedAt = updatedAt
	return o, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNo returns the human-facing order number.
func (o *Order) OrderNo() string {
	return o.orderNo
}

// Direction returns whether the order is inbound or outbound.
func (o *Order) Direction() Direction {
	return o.direction
}

// OrderType returns the free-form order classification.
func (o *Order) OrderType() string {
	return o.orderType
}

// CreatorID returns the submitting user's id.
func (o *Order) CreatorID() kernel.UUID {
	return o.creatorID
}

// ApproverID returns the reviewing user's id, nil before review.
func (o *Order) ApproverID() *kernel.UUID {
	return o.approverID
}

// InspectorID returns the assigned inspector's id, nil before inspection.
func (o *Order) InspectorID() *kernel.UUID {
	return o.inspectorID
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// QualityStatus returns the aggregated inspection outcome.
func (o *Order) QualityStatus() QualityStatus {
	return o.qualityStatus
}

// TotalAmount returns the order total in minor currency units.
func (o *Order) TotalAmount() int64 {
	return o.totalAmount
}

// TotalQuantity returns the sum of expected quantities across lines.
func (o *Order) TotalQuantity() int {
	return o.totalQuantity
}

// Remark returns the optional free-text note.
func (o *Order) Remark() string {
	return o.remark
}

// Reason returns the reject or cancel reason, empty otherwise.
func (o *Order) Reason() string {
	return o.reason
}

// Items returns the order lines.
func (o *Order) Items() []*Item {
	return o.items
}

// CreatedAt returns the submission time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the time of the last lifecycle mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// ItemByKey finds the order line for a (productID, batchNumber) pair.
// Returns an ObjectNotFoundError when no line matches.
func (o *Order) ItemByKey(productID kernel.UUID, batchNumber string) (*Item, error) {
	for _, item := range o.items {
		if item.ProductID().IsEqual(productID) && item.BatchNumber() == batchNumber {
			return item, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("orderItem",
		fmt.Sprintf("%s/%s", productID, batchNumber))
}

// Approve moves the order from PendingReview to Approved and records the
// reviewer. Fails closed with an InvalidTransitionError from any other state.
func (o *Order) Approve(approverID kernel.UUID) error {
	if err := approverID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Approve()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.approverID = &approverID
	o.touch()
	return nil
}

// Reject moves the order from PendingReview to Rejected. A non-empty reason
// is required; the reviewer and reason are recorded.
func (o *Order) Reject(approverID kernel.UUID, reason string) error {
	if err := approverID.Validate(); err != nil {
		return err
	}
	if reason == "" {
		return ErrReasonIsRequired
	}

	newStatus, err := o.status.Reject()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.approverID = &approverID
	o.reason = reason
	o.touch()
	return nil
}

// StartProcessing moves the order from Approved to InProgress when receiving
// or fulfillment begins, recording the assigned inspector.
func (o *Order) StartProcessing(inspectorID kernel.UUID) error {
	if err := inspectorID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.StartProcessing()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.inspectorID = &inspectorID
	o.touch()
	return nil
}

// ApplyInspectionOutcome records the aggregated quality status produced by a
// finalized inspection. Only valid while the order is InProgress, so a
// finalize racing a cancel loses once the cancel committed first.
func (o *Order) ApplyInspectionOutcome(quality QualityStatus) error {
	if err := quality.Validate(); err != nil {
		return err
	}

	if o.status != InProgress {
		return errs.NewInvalidTransitionError(o.status.String(), "apply inspection outcome")
	}

	o.qualityStatus = quality
	o.touch()
	return nil
}

// Complete moves the order from InProgress to Completed. Callers gate this
// on the completion policy: every item accounted for and putaway or outbound
// fulfillment finished.
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// Cancel withdraws the order. A non-empty reason is required. Allowed from
// PendingReview, Approved and InProgress; Completed and the terminal side
// states reject cancellation with an InvalidTransitionError.
func (o *Order) Cancel(reason string) error {
	if reason == "" {
		return ErrReasonIsRequired
	}

	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.reason = reason
	o.touch()
	return nil
}

func (o *Order) touch() {
	o.updatedAt = time.Now().UTC()
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrderNo(orderNo string) error {
	if orderNo == "" {
		return errs.NewValueIsRequiredError("orderNo")
	}
	o.orderNo = orderNo
	return nil
}

func (o *Order) setDirection(direction Direction) error {
	if err := direction.Validate(); err != nil {
		return err
	}
	o.direction = direction
	return nil
}

func (o *Order) setOrderType(orderType string) error {
	if orderType == "" {
		return errs.NewValueIsRequiredError("orderType")
	}
	o.orderType = orderType
	return nil
}

func (o *Order) setCreatorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.creatorID = id
	return nil
}

func (o *Order) setItems(items []*Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	var totalAmount int64
	var totalQuantity int
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		key := item.ProductID().String() + "/" + item.BatchNumber()
		if _, ok := seen[key]; ok {
			return errs.NewValueIsInvalidErrorWithCause("items",
				fmt.Errorf("duplicate line for %s", key))
		}
		seen[key] = struct{}{}
		totalAmount += item.Amount()
		totalQuantity += item.ExpectedQuantity()
	}

	o.items = items
	o.totalAmount = totalAmount
	o.totalQuantity = totalQuantity
	return nil
}

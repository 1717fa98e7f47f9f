package services

import (
	"warehouse/internal/core/domain/model/inspection"
	"warehouse/internal/core/domain/model/order"
)

// CompletionPolicy decides when an in-progress order may transition to
// Completed. The exact trigger is deliberately pluggable: different putaway
// collaborators complete orders on full or partial shelving.
type CompletionPolicy interface {
	// IsComplete reports whether the order's fulfillment finished given its
	// finalized inspection record.
	IsComplete(o *order.Order, rec *inspection.Record) bool
}

// FullPutawayPolicy completes an order only when every qualified inspection
// line finished putaway (inbound) or shipping (outbound). This is the
// default policy.
type FullPutawayPolicy struct{}

// NewFullPutawayPolicy creates the default completion policy.
func NewFullPutawayPolicy() FullPutawayPolicy {
	return FullPutawayPolicy{}
}

// IsComplete reports completion when the record is finalized and all its
// qualified lines are shelved.
func (FullPutawayPolicy) IsComplete(o *order.Order, rec *inspection.Record) bool {
	if o.Status() != order.InProgress {
		return false
	}
	return rec != nil && rec.AllShelved()
}

// InspectionOnlyPolicy completes an order as soon as its inspection record is
// finalized, without waiting for putaway. Useful for cross-dock flows where
// goods leave the dock directly.
type InspectionOnlyPolicy struct{}

// NewInspectionOnlyPolicy creates a policy that completes on finalize.
func NewInspectionOnlyPolicy() InspectionOnlyPolicy {
	return InspectionOnlyPolicy{}
}

// IsComplete reports completion once the record is finalized.
func (InspectionOnlyPolicy) IsComplete(o *order.Order, rec *inspection.Record) bool {
	if o.Status() != order.InProgress {
		return false
	}
	return rec != nil && rec.IsFinalized()
}

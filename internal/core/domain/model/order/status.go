package order

import (
	"warehouse/internal/pkg/errs"
)

// Status represents the lifecycle state of a warehouse order.
// It implements a state machine with defined transitions so orders
// follow the correct fulfillment workflow.
//
// State transitions:
//
//	PendingReview ──> Approved ──> InProgress ──> Completed
//	      │               │             │
//	      ├──> Rejected   │             │
//	      └───────────────┴─────────────┴──> Cancelled
//
// Completed, Cancelled and Rejected are terminal. Any transition outside
// this graph fails closed with an InvalidTransitionError and leaves the
// status unchanged.
//
// The numeric values are part of the wire and storage contract and must
// not be renumbered.
type Status int

const (
	// Rejected is a terminal state entered when a reviewer declines the order.
	Rejected Status = -2

	// Cancelled is a terminal state entered when the order is withdrawn
	// before completion.
	Cancelled Status = -1

	// PendingReview is the initial status of a freshly submitted order.
	PendingReview Status = 0

	// Approved indicates the order passed review and is waiting for
	// receiving or fulfillment to begin.
	Approved Status = 1

	// InProgress indicates receiving/putaway (inbound) or picking (outbound)
	// has started and inspection is underway.
	InProgress Status = 2

	// Completed indicates all items are accounted for and putaway or
	// outbound fulfillment finished. Terminal.
	Completed Status = 3
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Rejected:      "Rejected",
		Cancelled:     "Cancelled",
		PendingReview: "PendingReview",
		Approved:      "Approved",
		InProgress:    "InProgress",
		Completed:     "Completed",
	}
}

// Validate checks that the Status carries one of the defined values.
// Used when reconstructing orders from persistence or external input.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			errs.NewValueIsOutOfRangeError("status", int(s), int(Rejected), int(Completed)))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer; safe on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled || s == Rejected
}

// Approve transitions the status to Approved.
//
// Valid transitions:
//   - PendingReview -> Approved
//
// Returns (0, *errs.InvalidTransitionError) from any other state.
func (s Status) Approve() (Status, error) {
	if s != PendingReview {
		return 0, errs.NewInvalidTransitionError(s.String(), "approve")
	}
	return Approved, nil
}

// Reject transitions the status to Rejected.
//
// Valid transitions:
//   - PendingReview -> Rejected
//
// Returns (0, *errs.InvalidTransitionError) from any other state.
func (s Status) Reject() (Status, error) {
	if s != PendingReview {
		return 0, errs.NewInvalidTransitionError(s.String(), "reject")
	}
	return Rejected, nil
}

// StartProcessing transitions the status to InProgress when receiving or
// fulfillment begins.
//
// Valid transitions:
//   - Approved -> InProgress
//
// Returns (0, *errs.InvalidTransitionError) from any other state.
func (s Status) StartProcessing() (Status, error) {
	if s != Approved {
		return 0, errs.NewInvalidTransitionError(s.String(), "start processing")
	}
	return InProgress, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - InProgress -> Completed
//
// Returns (0, *errs.InvalidTransitionError) from any other state.
func (s Status) Complete() (Status, error) {
	if s != InProgress {
		return 0, errs.NewInvalidTransitionError(s.String(), "complete")
	}
	return Completed, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - PendingReview -> Cancelled
//   - Approved -> Cancelled
//   - InProgress -> Cancelled
//
// Completed and the terminal side states reject cancellation with an
// InvalidTransitionError.
func (s Status) Cancel() (Status, error) {
	switch s {
	case PendingReview, Approved, InProgress:
		return Cancelled, nil
	default:
		return 0, errs.NewInvalidTransitionError(s.String(), "cancel")
	}
}

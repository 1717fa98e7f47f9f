package ports

import (
	"context"
	"time"

	"warehouse/internal/core/domain/model/kernel"
)

// Event names emitted by the fulfillment workflow for the notification
// collaborator.
const (
	EventOrderApproved       = "order.approved"
	EventOrderRejected       = "order.rejected"
	EventOrderCancelled      = "order.cancelled"
	EventOrderCompleted      = "order.completed"
	EventInspectionFinalized = "inspection.finalized"
	EventStockAlertRaised    = "stock.alert_raised"
)

// DomainEvent is a fact about a committed workflow transition, published
// after the owning transaction commits. SubjectID identifies the aggregate
// the event is about: the order for workflow events, the product for stock
// alerts.
type DomainEvent struct {
	Name       string            `json:"name"`
	SubjectID  kernel.UUID       `json:"subjectId"`
	OccurredAt time.Time         `json:"occurredAt"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

// NewDomainEvent creates an event stamped with the current time.
func NewDomainEvent(name string, subjectID kernel.UUID, attributes map[string]string) DomainEvent {
	return DomainEvent{
		Name:       name,
		SubjectID:  subjectID,
		OccurredAt: time.Now().UTC(),
		Attributes: attributes,
	}
}

// EventPublisher delivers domain events to the messaging collaborator.
// Delivery is best-effort and happens after commit: a failed publish is
// retried once and then surfaced as a TransportError without affecting the
// committed state.
type EventPublisher interface {
	Publish(ctx context.Context, event DomainEvent) error
}

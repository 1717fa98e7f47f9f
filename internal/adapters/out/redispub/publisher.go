// Package redispub publishes domain events to a Redis channel for the
// notification collaborator. Delivery is best-effort: events fire after the
// owning transaction commits, so a lost event never un-commits state.
package redispub

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"warehouse/internal/core/ports"
	"warehouse/internal/pkg/errs"
)

const publishAttempts = 2

// EventPublisher implements ports.EventPublisher on top of Redis Pub/Sub.
type EventPublisher struct {
	client  *redis.Client
	channel string
	logger  *slog.Logger
}

// NewEventPublisher creates a publisher writing to the given channel.
func NewEventPublisher(client *redis.Client, channel string, logger *slog.Logger) *EventPublisher {
	return &EventPublisher{
		client:  client,
		channel: channel,
		logger:  logger.With("component", "event_publisher"),
	}
}

// Publish serializes the event to JSON and sends it to the channel. A failed
// send is retried once; after that the error is surfaced as a TransportError
// for the caller to log and drop.
func (p *EventPublisher) Publish(ctx context.Context, event ports.DomainEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	var lastErr error
	for attempt := 1; attempt <= publishAttempts; attempt++ {
		lastErr = p.client.Publish(ctx, p.channel, payload).Err()
		if lastErr == nil {
			return nil
		}
	}

	p.logger.ErrorContext(ctx, "Event publish failed after retry",
		"event", event.Name, "subjectId", event.SubjectID.String(), "error", lastErr)
	return errs.NewTransportError("publish", publishAttempts, lastErr)
}

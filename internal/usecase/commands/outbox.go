package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"booking-checkout/internal/usecase/shared"
)

type outbox struct {
	publisher shared.EventPublisher
}

// enqueue writes the notification job in tx and returns the event to publish after commit.
func (o outbox) enqueue(ctx context.Context, tx shared.Tx, topic, routingKey string, payload any, now time.Time) (pendingEvent, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return pendingEvent{}, err
	}
	if err := tx.Notifications().CreateJob(ctx, tx.DB(), notificationKindEmail, topic, body, now); err != nil {
		return pendingEvent{}, err
	}
	return pendingEvent{routingKey: routingKey, payload: payload}, nil
}

// publish never fails the caller; the notification job is the durable record.
func (o outbox) publish(ctx context.Context, events ...pendingEvent) {
	if o.publisher == nil {
		return
	}
	for _, ev := range events {
		if err := o.publisher.PublishJSON(ctx, ev.routingKey, ev.payload); err != nil {
			slog.Warn("failed to publish domain event",
				"routing_key", ev.routingKey,
				"error", err.Error())
		}
	}
}

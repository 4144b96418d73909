// Package events publishes domain events about budgets and payments.
//
// When AMQP_URL is configured events go to a RabbitMQ topic exchange keyed by
// event type; otherwise they are written to the application log.
package events

import (
	"context"
	"time"

	"nestegg/internal/logger"
)

// Event types.
const (
	TypePaymentStatusChanged     = "payment.status_changed"
	TypeWeeklyBudgetMaterialized = "weekly_budget.materialized"
	TypeReconciliationCompleted  = "reconciliation.completed"
	TypePaymentsMarkedOverdue    = "payment.marked_overdue"
)

// Event is a single domain event.
type Event struct {
	Type       string                 `json:"type"`
	OccurredAt time.Time              `json:"occurred_at"`
	UserID     string                 `json:"user_id,omitempty"`
	ResourceID string                 `json:"resource_id,omitempty"`
	Data       map[string]interface{} `json:"data,omitempty"`
}

// New returns an Event stamped with the current time.
func New(eventType, userID, resourceID string, data map[string]interface{}) Event {
	return Event{
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		UserID:     userID,
		ResourceID: resourceID,
		Data:       data,
	}
}

// Publisher delivers domain events.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// Emit publishes an event and logs a failure instead of returning it.
// Event delivery never fails the operation that produced the event.
func Emit(ctx context.Context, p Publisher, event Event) {
	if p == nil {
		return
	}
	if err := p.Publish(ctx, event); err != nil {
		logger.Get().Warnw("failed to publish event",
			"type", event.Type,
			"resource_id", event.ResourceID,
			"error", err,
		)
	}
}

// logPublisher writes events to the application log.
type logPublisher struct{}

// NewLogPublisher returns a Publisher that only logs events.
func NewLogPublisher() Publisher {
	return logPublisher{}
}

func (logPublisher) Publish(_ context.Context, event Event) error {
	logger.Get().Infow("event",
		"type", event.Type,
		"user_id", event.UserID,
		"resource_id", event.ResourceID,
		"data", event.Data,
	)
	return nil
}

func (logPublisher) Close() error { return nil }

// NewPublisher connects to AMQP when url is set and falls back to the log
// publisher otherwise.
func NewPublisher(url, exchange string) (Publisher, error) {
	if url == "" {
		return NewLogPublisher(), nil
	}
	return NewAMQPPublisher(url, exchange)
}

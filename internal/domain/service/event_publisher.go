package service

import (
	"context"
	"time"
)

// ReminderTransition names what happened to a prescription's reminder.
type ReminderTransition string

const (
	ReminderDispatched ReminderTransition = "dispatched"
	ReminderTaken      ReminderTransition = "taken"
	ReminderViewed     ReminderTransition = "viewed"
	ReminderDismissed  ReminderTransition = "dismissed"
)

// ReminderEvent is published after every reminder transition
type ReminderEvent struct {
	RequestID      string             `json:"request_id,omitempty"` // For distributed tracing
	EventID        string             `json:"event_id"`
	PrescriptionID string             `json:"prescription_id"`
	OwnerID        string             `json:"owner_id"`
	DrugName       string             `json:"drug_name"`
	Transition     ReminderTransition `json:"transition"`
	OccurredAt     time.Time          `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishReminderEvent publishes a reminder transition for downstream consumers
	PublishReminderEvent(ctx context.Context, event *ReminderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

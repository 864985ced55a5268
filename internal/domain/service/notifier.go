package service

import (
	"context"
	"time"

	"medreminder/internal/domain/entity"

	"github.com/google/uuid"
)

// Notification is one reminder prompt handed to a Notifier.
type Notification struct {
	ID             uuid.UUID
	RecipientID    uuid.UUID
	PrescriptionID uuid.UUID
	Title          string
	Body           string
	Actions        []entity.ReminderButton

	// OnAction is called with the token of the button the recipient chose.
	OnAction func(ctx context.Context, token string)
	// OnDismiss is called when the prompt is closed without a choice.
	OnDismiss func(ctx context.Context)
}

// Notifier presents reminders and reports the recipient's answer through the
// notification's callbacks. Exactly one callback fires per notification.
type Notifier interface {
	// Present shows the notification and returns without waiting for an answer.
	Present(ctx context.Context, notification Notification) error
}

// PendingPrompt is an unanswered notification as its recipient sees it.
type PendingPrompt struct {
	ID             uuid.UUID               `json:"id"`
	PrescriptionID uuid.UUID               `json:"prescription_id"`
	Title          string                  `json:"title"`
	Body           string                  `json:"body"`
	Actions        []entity.ReminderButton `json:"actions"`
	PresentedAt    time.Time               `json:"presented_at"`
	ExpiresAt      time.Time               `json:"expires_at"`
}

// PromptInbox lets a recipient list and answer the prompts presented to them.
// Only the recipient of a prompt can answer it.
type PromptInbox interface {
	// Pending lists the recipient's unanswered prompts, oldest first.
	Pending(recipientID uuid.UUID) []PendingPrompt

	// Resolve answers a prompt with the chosen action token.
	Resolve(ctx context.Context, recipientID, notificationID uuid.UUID, token string) error

	// Dismiss closes a prompt without choosing an action.
	Dismiss(ctx context.Context, recipientID, notificationID uuid.UUID) error
}

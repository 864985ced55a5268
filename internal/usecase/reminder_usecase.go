package usecase

import (
	"context"
	"time"

	"medreminder/internal/domain/entity"
	"medreminder/internal/domain/service"

	"github.com/google/uuid"
)

// ReminderUsecase is the reminder scheduler: it finds due prescriptions, presents
// them to their owners and applies the owner's answer.
type ReminderUsecase interface {
	// Scan returns every due prescription, clearing its expired snooze.
	Scan(ctx context.Context, now time.Time) []entity.Prescription

	// Notify presents a reminder for the prescription if session belongs to its owner.
	// It reports whether a prompt was presented.
	Notify(ctx context.Context, prescription entity.Prescription, session entity.Session) (bool, error)

	// HandleAction applies an answer token to the prescription and persists the result.
	HandleAction(ctx context.Context, prescriptionID uuid.UUID, token string) error

	// HandleDismiss treats a prompt closed without an answer as a dismiss.
	HandleDismiss(ctx context.Context, prescriptionID uuid.UUID) error

	// FinishView ends the session customer's inspection of a viewed reminder. The
	// reminder is snoozed like a dismiss and persisted.
	FinishView(ctx context.Context, session entity.Session, prescriptionID uuid.UUID) error

	// Tick scans and notifies each due prescription to its owner's session, if any.
	// It returns how many prompts were presented.
	Tick(ctx context.Context, now time.Time, sessions []entity.Session) (int, error)

	// PendingPrompts lists the session customer's unanswered prompts.
	PendingPrompts(ctx context.Context, session entity.Session) []service.PendingPrompt

	// AnswerPrompt resolves one of the session customer's prompts with a token.
	AnswerPrompt(ctx context.Context, session entity.Session, notificationID uuid.UUID, token string) error

	// DismissPrompt closes one of the session customer's prompts without an answer.
	DismissPrompt(ctx context.Context, session entity.Session, notificationID uuid.UUID) error
}

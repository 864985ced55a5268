// Package notification presents reminder prompts and routes the recipient's answer back to the scheduler.
package notification

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	domainerrors "medreminder/internal/domain/errors"
	"medreminder/internal/domain/service"
	"medreminder/internal/errors"

	"github.com/google/uuid"
)

const defaultAutoDismissAfter = 10 * time.Minute

// TopicFor is the FCM topic a customer's devices subscribe to.
func TopicFor(customerID uuid.UUID) string {
	return "customer-" + customerID.String()
}

type prompt struct {
	notification service.Notification
	presentedAt  time.Time
	expiresAt    time.Time
	timer        *time.Timer
}

// Registry keeps every presented, unanswered prompt until its recipient answers it,
// dismisses it, or it expires. Each prompt fires exactly one of its callbacks.
type Registry struct {
	mu      sync.Mutex
	prompts map[uuid.UUID]*prompt
	closed  bool

	push             service.PushService
	autoDismissAfter time.Duration
	now              func() time.Time
	logger           *slog.Logger
}

var (
	_ service.Notifier    = (*Registry)(nil)
	_ service.PromptInbox = (*Registry)(nil)
)

func newRegistry(push service.PushService, autoDismissAfter time.Duration, logger *slog.Logger) *Registry {
	return &Registry{
		prompts:          make(map[uuid.UUID]*prompt),
		push:             push,
		autoDismissAfter: autoDismissAfter,
		now:              time.Now,
		logger:           logger,
	}
}

// Present registers the prompt and pushes it to the recipient's devices.
// A failed push is logged; the prompt stays answerable through the inbox.
func (r *Registry) Present(ctx context.Context, notification service.Notification) error {
	if notification.OnAction == nil || notification.OnDismiss == nil {
		return errors.New("notification callbacks are required")
	}

	now := r.now()
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()

		return errors.New("notification registry is closed")
	}
	if _, exists := r.prompts[notification.ID]; exists {
		r.mu.Unlock()

		return errors.Errorf("notification %s already presented", notification.ID)
	}
	id := notification.ID
	r.prompts[id] = &prompt{
		notification: notification,
		presentedAt:  now,
		expiresAt:    now.Add(r.autoDismissAfter),
		timer:        time.AfterFunc(r.autoDismissAfter, func() { r.expire(id) }),
	}
	r.mu.Unlock()

	if err := r.push.SendTopicNotification(ctx, TopicFor(notification.RecipientID),
		notification.Title, notification.Body, pushData(notification)); err != nil {
		r.logger.Warn("Failed to push reminder",
			slog.String("notificationID", id.String()),
			slog.Any("error", err),
		)
	}

	return nil
}

// Pending lists the recipient's unanswered prompts, oldest first.
func (r *Registry) Pending(recipientID uuid.UUID) []service.PendingPrompt {
	r.mu.Lock()
	defer r.mu.Unlock()

	pending := make([]service.PendingPrompt, 0)
	for _, p := range r.prompts {
		if p.notification.RecipientID != recipientID {
			continue
		}
		pending = append(pending, service.PendingPrompt{
			ID:             p.notification.ID,
			PrescriptionID: p.notification.PrescriptionID,
			Title:          p.notification.Title,
			Body:           p.notification.Body,
			Actions:        slices.Clone(p.notification.Actions),
			PresentedAt:    p.presentedAt,
			ExpiresAt:      p.expiresAt,
		})
	}

	slices.SortFunc(pending, func(a, b service.PendingPrompt) int {
		if c := a.PresentedAt.Compare(b.PresentedAt); c != 0 {
			return c
		}

		return strings.Compare(a.ID.String(), b.ID.String())
	})

	return pending
}

// Resolve answers a prompt with the chosen action token.
func (r *Registry) Resolve(ctx context.Context, recipientID, notificationID uuid.UUID, token string) error {
	p, err := r.take(recipientID, notificationID)
	if err != nil {
		return err
	}

	p.notification.OnAction(ctx, token)

	return nil
}

// Dismiss closes a prompt without choosing an action.
func (r *Registry) Dismiss(ctx context.Context, recipientID, notificationID uuid.UUID) error {
	p, err := r.take(recipientID, notificationID)
	if err != nil {
		return err
	}

	p.notification.OnDismiss(ctx)

	return nil
}

// Close stops every expiry timer. Prompts still pending are dropped without a callback.
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, p := range r.prompts {
		p.timer.Stop()
		delete(r.prompts, id)
	}
	r.closed = true
}

// take removes the prompt so no other path can fire its callbacks.
// Another customer's prompt is reported as not found.
func (r *Registry) take(recipientID, notificationID uuid.UUID) (*prompt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.prompts[notificationID]
	if !ok || p.notification.RecipientID != recipientID {
		return nil, domainerrors.ErrNotificationNotFound.WrapMessage(notificationID.String())
	}
	delete(r.prompts, notificationID)
	p.timer.Stop()

	return p, nil
}

func (r *Registry) expire(notificationID uuid.UUID) {
	r.mu.Lock()
	p, ok := r.prompts[notificationID]
	if ok {
		delete(r.prompts, notificationID)
	}
	r.mu.Unlock()

	if !ok {
		return
	}

	r.logger.Info("Reminder prompt expired", slog.String("notificationID", notificationID.String()))
	p.notification.OnDismiss(context.Background())
}

func pushData(notification service.Notification) map[string]string {
	tokens := make([]string, len(notification.Actions))
	for i, action := range notification.Actions {
		tokens[i] = string(action.Token)
	}

	return map[string]string{
		"notification_id": notification.ID.String(),
		"prescription_id": notification.PrescriptionID.String(),
		"actions":         strings.Join(tokens, ","),
	}
}

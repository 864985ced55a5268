package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"medreminder/config"
	deliverycontext "medreminder/internal/delivery/context"
	"medreminder/internal/domain/entity"
	domainerrors "medreminder/internal/domain/errors"
	"medreminder/internal/domain/repository"
	"medreminder/internal/domain/service"
	"medreminder/internal/errors"
	"medreminder/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	reminderTitle          = "Medication Reminder"
	reminderExpirationDate = "January 02 2006"
)

// reminderService implements the ReminderUsecase interface.
//
// mu makes scans, dispatch bookkeeping and answer callbacks take turns. Two answers
// racing for the same prescription are applied in lock order; the last one wins.
type reminderService struct {
	mu          sync.Mutex
	outstanding map[uuid.UUID]time.Time // prescription ID -> when its unanswered prompt went out

	store        repository.PrescriptionRepository
	notifier     service.Notifier
	inbox        service.PromptInbox
	publisher    service.EventPublisher
	snoozeWindow time.Duration
	viewWindow   time.Duration
	now          func() time.Time
	logger       *slog.Logger
}

// ReminderServiceParams holds dependencies for ReminderService, injected by Fx.
type ReminderServiceParams struct {
	fx.In

	Store     repository.RecordStore
	Notifier  service.Notifier
	Inbox     service.PromptInbox
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewReminderService is the constructor for reminderService.
func NewReminderService(params ReminderServiceParams) usecase.ReminderUsecase {
	snoozeWindow := entity.DefaultSnoozeWindow
	viewWindow := entity.DefaultViewWindow
	if params.Config != nil && params.Config.Reminder != nil {
		if params.Config.Reminder.SnoozeWindow > 0 {
			snoozeWindow = params.Config.Reminder.SnoozeWindow
		}
		if params.Config.Reminder.ViewWindow > 0 {
			viewWindow = params.Config.Reminder.ViewWindow
		}
	}

	return &reminderService{
		outstanding:  make(map[uuid.UUID]time.Time),
		store:        params.Store,
		notifier:     params.Notifier,
		inbox:        params.Inbox,
		publisher:    params.Publisher,
		snoozeWindow: snoozeWindow,
		viewWindow:   viewWindow,
		now:          time.Now,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *reminderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Scan returns the due prescriptions. Their snooze is cleared in memory only; a
// stored snooze that old is past the window after a restart anyway.
func (srv *reminderService) Scan(ctx context.Context, now time.Time) []entity.Prescription {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.scan(ctx, now)
}

func (srv *reminderService) scan(ctx context.Context, now time.Time) []entity.Prescription {
	var due []entity.Prescription
	srv.store.ModifyPrescriptions(func(p *entity.Prescription) {
		if p.ReminderState(now, srv.snoozeWindow) != entity.ReminderDue {
			return
		}
		p.Snooze = nil
		due = append(due, p.Clone())
	})

	srv.log(ctx).Debug("Reminder scan finished", slog.Int("due", len(due)))

	return due
}

// dispatch is a reminder reserved under mu and presented once mu is released.
type dispatch struct {
	prescription entity.Prescription
	notification service.Notification
	sentAt       time.Time
}

// Notify presents a reminder to the prescription's owner.
func (srv *reminderService) Notify(ctx context.Context, prescription entity.Prescription, session entity.Session) (bool, error) {
	srv.mu.Lock()
	d, ok := srv.reserve(ctx, prescription, session, srv.now())
	srv.mu.Unlock()
	if !ok {
		return false, nil
	}

	if err := srv.present(ctx, d); err != nil {
		return false, err
	}

	return true, nil
}

// reserve marks the prescription outstanding and builds its prompt. The caller holds mu.
func (srv *reminderService) reserve(ctx context.Context, prescription entity.Prescription, session entity.Session, now time.Time) (dispatch, bool) {
	logger := srv.log(ctx).With(slog.String("prescriptionID", prescription.ID.String()))

	if !prescription.IsOwnedBy(session.CustomerID) {
		logger.Debug("Skipping reminder for non-owner", slog.String("customerID", session.CustomerID.String()))

		return dispatch{}, false
	}

	if sentAt, ok := srv.outstanding[prescription.ID]; ok && now.Sub(sentAt) < srv.snoozeWindow {
		logger.Debug("Reminder already outstanding", slog.Time("sentAt", sentAt))

		return dispatch{}, false
	}

	prescriptionID := prescription.ID
	notification := service.Notification{
		ID:             uuid.New(),
		RecipientID:    session.CustomerID,
		PrescriptionID: prescriptionID,
		Title:          reminderTitle,
		Body:           reminderBody(prescription),
		Actions:        entity.DefaultReminderButtons(),
		OnAction: func(ctx context.Context, token string) {
			if err := srv.HandleAction(ctx, prescriptionID, token); err != nil {
				srv.log(ctx).Error("Failed to apply reminder action",
					slog.String("prescriptionID", prescriptionID.String()),
					slog.String("token", token),
					slog.Any("error", err),
				)
			}
		},
		OnDismiss: func(ctx context.Context) {
			if err := srv.HandleDismiss(ctx, prescriptionID); err != nil {
				srv.log(ctx).Error("Failed to apply reminder dismissal",
					slog.String("prescriptionID", prescriptionID.String()),
					slog.Any("error", err),
				)
			}
		},
	}
	srv.outstanding[prescriptionID] = now

	return dispatch{prescription: prescription, notification: notification, sentAt: now}, true
}

// present hands a reserved reminder to the notifier and publishes the dispatch.
// A failure releases the reservation. The caller must not hold mu.
func (srv *reminderService) present(ctx context.Context, d dispatch) error {
	id := d.prescription.ID
	if err := srv.notifier.Present(ctx, d.notification); err != nil {
		srv.mu.Lock()
		if sentAt, ok := srv.outstanding[id]; ok && sentAt.Equal(d.sentAt) {
			delete(srv.outstanding, id)
		}
		srv.mu.Unlock()

		return errors.Wrap(err, "failed to present reminder")
	}

	srv.log(ctx).Info("Reminder presented",
		slog.String("prescriptionID", id.String()),
		slog.String("notificationID", d.notification.ID.String()),
	)
	srv.publish(ctx, d.prescription, service.ReminderDispatched, d.sentAt)

	return nil
}

// HandleAction applies the answer and writes prescriptions through.
func (srv *reminderService) HandleAction(ctx context.Context, prescriptionID uuid.UUID, token string) error {
	return srv.answer(ctx, prescriptionID, entity.ParseReminderAction(token))
}

// HandleDismiss applies a dismiss.
func (srv *reminderService) HandleDismiss(ctx context.Context, prescriptionID uuid.UUID) error {
	return srv.answer(ctx, prescriptionID, entity.ActionDismiss)
}

// FinishView ends the owner's inspection of a viewed reminder. It snoozes like a
// dismiss, so the reminder returns once the snooze window has passed.
func (srv *reminderService) FinishView(ctx context.Context, session entity.Session, prescriptionID uuid.UUID) error {
	prescription, ok := srv.store.FindPrescriptionByID(prescriptionID)
	if !ok {
		return errors.WithStack(domainerrors.ErrPrescriptionNotFound)
	}
	if !prescription.IsOwnedBy(session.CustomerID) {
		return errors.WithStack(domainerrors.ErrPrescriptionOwnership)
	}

	return srv.answer(ctx, prescriptionID, entity.ActionDismiss)
}

// answer applies action under mu and publishes the transition after releasing it.
func (srv *reminderService) answer(ctx context.Context, prescriptionID uuid.UUID, action entity.ReminderAction) error {
	srv.mu.Lock()
	now := srv.now()
	updated, transition, err := srv.apply(ctx, prescriptionID, action, now)
	srv.mu.Unlock()
	if err != nil {
		return err
	}

	srv.publish(ctx, updated, transition, now)

	return nil
}

// apply records the answer and persists prescriptions. The caller holds mu.
func (srv *reminderService) apply(ctx context.Context, prescriptionID uuid.UUID, action entity.ReminderAction, now time.Time) (entity.Prescription, service.ReminderTransition, error) {
	delete(srv.outstanding, prescriptionID)

	var (
		updated    entity.Prescription
		transition service.ReminderTransition
	)
	found := srv.store.ModifyPrescription(prescriptionID, func(p *entity.Prescription) {
		switch action {
		case entity.ActionTaken:
			p.WasTaken = now
			p.Snooze = nil
			transition = service.ReminderTaken
		case entity.ActionView:
			snooze := now.Add(srv.viewWindow)
			p.Snooze = &snooze
			transition = service.ReminderViewed
		default:
			snooze := now
			p.Snooze = &snooze
			transition = service.ReminderDismissed
		}
		updated = p.Clone()
	})
	if !found {
		return entity.Prescription{}, "", domainerrors.ErrPrescriptionNotFound.WrapMessage("reminder answered for unknown prescription")
	}

	srv.log(ctx).Info("Reminder answered",
		slog.String("prescriptionID", prescriptionID.String()),
		slog.String("action", string(action)),
	)

	if err := srv.store.PersistPrescriptions(ctx); err != nil {
		return entity.Prescription{}, "", errors.Wrap(err, "failed to persist reminder state")
	}

	return updated, transition, nil
}

// Tick runs one scan and presents each due prescription to its owner's session.
// Prompts are reserved under mu and presented after it is released.
func (srv *reminderService) Tick(ctx context.Context, now time.Time, sessions []entity.Session) (int, error) {
	owners := make(map[uuid.UUID]entity.Session, len(sessions))
	for _, session := range sessions {
		if session.IsActive(now) {
			owners[session.CustomerID] = session
		}
	}

	srv.mu.Lock()
	var reserved []dispatch
	for _, prescription := range srv.scan(ctx, now) {
		session, ok := owners[prescription.OwnerID]
		if !ok {
			continue
		}
		if d, ok := srv.reserve(ctx, prescription, session, now); ok {
			reserved = append(reserved, d)
		}
	}
	srv.mu.Unlock()

	var (
		presented int
		errs      []error
	)
	for _, d := range reserved {
		if err := srv.present(ctx, d); err != nil {
			errs = append(errs, errors.Wrapf(err, "prescription %s", d.prescription.ID))

			continue
		}
		presented++
	}

	return presented, errors.Join(errs...)
}

// PendingPrompts lists the session customer's unanswered prompts.
func (srv *reminderService) PendingPrompts(_ context.Context, session entity.Session) []service.PendingPrompt {
	return srv.inbox.Pending(session.CustomerID)
}

// AnswerPrompt resolves a prompt; the callback re-enters the scheduler, so no lock is held here.
func (srv *reminderService) AnswerPrompt(ctx context.Context, session entity.Session, notificationID uuid.UUID, token string) error {
	return srv.inbox.Resolve(ctx, session.CustomerID, notificationID, token)
}

// DismissPrompt closes a prompt without an answer.
func (srv *reminderService) DismissPrompt(ctx context.Context, session entity.Session, notificationID uuid.UUID) error {
	return srv.inbox.Dismiss(ctx, session.CustomerID, notificationID)
}

func (srv *reminderService) publish(ctx context.Context, p entity.Prescription, transition service.ReminderTransition, now time.Time) {
	event := &service.ReminderEvent{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		EventID:        uuid.New().String(),
		PrescriptionID: p.ID.String(),
		OwnerID:        p.OwnerID.String(),
		DrugName:       p.DrugName,
		Transition:     transition,
		OccurredAt:     now,
	}
	if err := srv.publisher.PublishReminderEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish reminder event",
			slog.String("prescriptionID", event.PrescriptionID),
			slog.String("transition", string(transition)),
			slog.Any("error", err),
		)
	}
}

func reminderBody(p entity.Prescription) string {
	return fmt.Sprintf("Name: %s\nDosage: %s\nExpiration Date: %s",
		p.DrugName, p.Dosage, p.ExpirationDate.Time().Format(reminderExpirationDate))
}

package entity

import (
	"time"
)

const (
	// DefaultSnoozeWindow is how long a dismissed reminder stays quiet before it may fire again.
	DefaultSnoozeWindow = 5 * time.Minute

	// DefaultViewWindow is how far ahead the snooze is pushed while the customer looks at the prescription.
	DefaultViewWindow = 7 * 24 * time.Hour
)

// ReminderState is the reminder eligibility of a prescription. It is derived, never stored.
type ReminderState int

const (
	// ReminderIdle means the dose interval has not elapsed yet.
	ReminderIdle ReminderState = iota
	// ReminderDue means a reminder should be shown.
	ReminderDue
	// ReminderSuppressed means the interval elapsed but the reminder is inside its snooze window.
	ReminderSuppressed
)

// String returns the state name.
func (s ReminderState) String() string {
	switch s {
	case ReminderIdle:
		return "idle"
	case ReminderDue:
		return "due"
	case ReminderSuppressed:
		return "suppressed"
	default:
		return "unknown"
	}
}

// ReminderState evaluates the prescription at now. Both comparisons are inclusive:
// exactly one interval after WasTaken is due, exactly one window after Snooze is due again.
func (p Prescription) ReminderState(now time.Time, snoozeWindow time.Duration) ReminderState {
	if now.Sub(p.WasTaken) < p.Interval() {
		return ReminderIdle
	}
	if p.Snooze != nil && now.Sub(*p.Snooze) < snoozeWindow {
		return ReminderSuppressed
	}

	return ReminderDue
}

// ReminderAction is the token a Notifier reports back for the button the customer chose.
type ReminderAction string

const (
	// ActionTaken marks the dose as taken now.
	ActionTaken ReminderAction = "taken"
	// ActionView suppresses the reminder for the view window while the prescription is inspected.
	ActionView ReminderAction = "view"
	// ActionDismiss snoozes the reminder for the snooze window.
	ActionDismiss ReminderAction = "dismiss"
)

// ParseReminderAction maps a Notifier token to an action. Unrecognised tokens are a dismiss.
func ParseReminderAction(token string) ReminderAction {
	switch action := ReminderAction(token); action {
	case ActionTaken, ActionView, ActionDismiss:
		return action
	default:
		return ActionDismiss
	}
}

// ReminderButton is one (label, token) choice offered with a reminder.
type ReminderButton struct {
	Label string         `json:"label"`
	Token ReminderAction `json:"token"`
}

// DefaultReminderButtons are the choices offered with every reminder, in display order.
func DefaultReminderButtons() []ReminderButton {
	return []ReminderButton{
		{Label: "Medication Taken", Token: ActionTaken},
		{Label: "View Medication", Token: ActionView},
		{Label: "Dismiss", Token: ActionDismiss},
	}
}

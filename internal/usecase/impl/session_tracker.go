package impl

import (
	"slices"
	"strings"
	"sync"
	"time"

	"medreminder/internal/domain/entity"
	"medreminder/internal/usecase"

	"github.com/google/uuid"
)

// sessionTracker keeps the latest session per customer until it expires.
type sessionTracker struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]entity.Session
}

// NewSessionTracker creates an empty tracker.
func NewSessionTracker() usecase.SessionTracker {
	return &sessionTracker{sessions: make(map[uuid.UUID]entity.Session)}
}

// Track records the session, replacing any earlier one for the same customer.
func (t *sessionTracker) Track(session entity.Session) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.sessions[session.CustomerID] = session
}

// Forget drops the customer's session.
func (t *sessionTracker) Forget(customerID uuid.UUID) {
	t.mu.Lock()
	defer t.mu.Unlock()

	delete(t.sessions, customerID)
}

// Active prunes expired sessions and returns the rest ordered by username.
func (t *sessionTracker) Active(now time.Time) []entity.Session {
	t.mu.Lock()
	defer t.mu.Unlock()

	active := make([]entity.Session, 0, len(t.sessions))
	for id, session := range t.sessions {
		if !session.IsActive(now) {
			delete(t.sessions, id)

			continue
		}
		active = append(active, session)
	}

	slices.SortFunc(active, func(a, b entity.Session) int {
		return strings.Compare(a.Username, b.Username)
	})

	return active
}

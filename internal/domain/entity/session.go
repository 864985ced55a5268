package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is the authenticated customer an operation acts on behalf of.
// It is passed explicitly; nothing holds a "current user".
type Session struct {
	CustomerID uuid.UUID `json:"customer_id"`
	Username   string    `json:"username"`
	IssuedAt   time.Time `json:"issued_at"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// NewSession opens a session for customer valid for ttl from now.
func NewSession(customer Customer, now time.Time, ttl time.Duration) Session {
	return Session{
		CustomerID: customer.ID,
		Username:   customer.Username,
		IssuedAt:   now,
		ExpiresAt:  now.Add(ttl),
	}
}

// IsActive reports whether the session is still valid at now.
func (s Session) IsActive(now time.Time) bool {
	return s.CustomerID != uuid.Nil && now.Before(s.ExpiresAt)
}

// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"medreminder/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignUpInput defines the data required to create an account.
type SignUpInput struct {
	FirstName   string
	LastName    string
	Username    string
	Password    string
	Email       string
	PhoneNumber string
}

// LoginInput defines the data required for a customer to log in.
type LoginInput struct {
	Username string
	Password string
}

// --- Output DTOs ---

// AuthOutput is returned by SignUp and Login.
type AuthOutput struct {
	Token    string
	Session  entity.Session
	Customer entity.Customer
}

// AccountUsecase defines the interface for account-related business operations.
type AccountUsecase interface {
	SignUp(ctx context.Context, input SignUpInput) (*AuthOutput, error)
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)
	Logout(ctx context.Context, session entity.Session) error
	Profile(ctx context.Context, session entity.Session) (*entity.Customer, error)
}

// SessionTracker remembers the sessions handed out at login so the scheduler
// knows whom it can present reminders to.
type SessionTracker interface {
	Track(session entity.Session)
	Forget(customerID uuid.UUID)
	Active(now time.Time) []entity.Session
}

package service

import (
	"medreminder/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims for session tokens.
type Claims struct {
	CustomerID uuid.UUID `json:"cid"`
	Username   string    `json:"username"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for turning sessions into bearer tokens and back.
type TokenService interface {
	// IssueToken signs a token carrying the session.
	IssueToken(session entity.Session) (string, error)

	// ParseToken validates a token and returns the session it carries.
	ParseToken(tokenString string) (entity.Session, error)
}

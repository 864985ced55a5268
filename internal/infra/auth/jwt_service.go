// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"medreminder/config"
	"medreminder/internal/domain/entity"
	"medreminder/internal/domain/service"
	"medreminder/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const tokenIssuer = "medreminder"

// ErrInvalidToken is returned for tokens that are malformed, forged or expired.
var ErrInvalidToken = errors.New("invalid or expired token")

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	secret []byte // Secret key for signing session tokens.
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{secret: []byte(cfg.SecretKey.Access)}, nil
}

// IssueToken signs the session; the token expires with it.
func (s *jwtService) IssueToken(session entity.Session) (string, error) {
	claims := service.Claims{
		CustomerID: session.CustomerID,
		Username:   session.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   session.CustomerID.String(),
			IssuedAt:  jwt.NewNumericDate(session.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return signed, nil
}

// ParseToken checks signature, issuer and expiry and rebuilds the session.
func (s *jwtService) ParseToken(tokenString string) (entity.Session, error) {
	claims := &service.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithExpirationRequired())
	if err != nil {
		return entity.Session{}, errors.Wrap(ErrInvalidToken, err.Error())
	}

	if claims.CustomerID == uuid.Nil {
		return entity.Session{}, errors.Wrap(ErrInvalidToken, "customer id missing")
	}

	session := entity.Session{
		CustomerID: claims.CustomerID,
		Username:   claims.Username,
	}
	if claims.IssuedAt != nil {
		session.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		session.ExpiresAt = claims.ExpiresAt.Time
	}

	return session, nil
}


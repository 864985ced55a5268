package middleware

import (
	"strings"
	"time"

	deliverycontext "medreminder/internal/delivery/context"
	"medreminder/internal/delivery/http/response"
	"medreminder/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware authenticates requests by their bearer session token.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	now      func() time.Time
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, now: time.Now}
}

// Authenticate validates the token and places its Session in the echo context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		session, err := m.tokenSvc.ParseToken(tokenString)
		if err != nil || !session.IsActive(m.now()) {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		deliverycontext.SetSession(c, session)

		return next(c)
	}
}

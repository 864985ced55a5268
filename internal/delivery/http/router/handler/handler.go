// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	deliverycontext "medreminder/internal/delivery/context"
	"medreminder/internal/delivery/http/response"
	"medreminder/internal/domain/entity"
	domainerrors "medreminder/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// sessionFrom returns the session the auth middleware placed in the context.
func sessionFrom(c echo.Context) (entity.Session, error) {
	session, ok := deliverycontext.GetSession(c)
	if !ok {
		return entity.Session{}, errors.WithStack(domainerrors.ErrUnauthorized)
	}

	return session, nil
}

// bindAndValidate binds the request body into req and runs the echo validator on it.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errors.WithStack(domainerrors.ErrInvalidInput)
	}

	return errors.WithStack(c.Validate(req))
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

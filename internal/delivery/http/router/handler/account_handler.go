package handler

import (
	"log/slog"
	"net/http"
	"time"

	"medreminder/internal/delivery/http/response"
	"medreminder/internal/domain/entity"
	"medreminder/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Logger    *slog.Logger
}

// AccountHandler holds dependencies for account-related handlers.
type AccountHandler struct {
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler.
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		accountUC: params.AccountUC,
		logger:    params.Logger,
	}
}

// SignUpRequest represents the request body for creating an account
type SignUpRequest struct {
	FirstName   string `json:"first_name" validate:"max=128"`
	LastName    string `json:"last_name" validate:"max=128"`
	Username    string `json:"username" validate:"max=64"`
	Password    string `json:"password" validate:"max=128"`
	Email       string `json:"email" validate:"max=254"`
	PhoneNumber string `json:"phone_number" validate:"max=32"`
}

// LoginRequest represents the request body for logging in
type LoginRequest struct {
	Username string `json:"username" validate:"max=64"`
	Password string `json:"password" validate:"max=128"`
}

// CustomerResponse is a customer without their password.
type CustomerResponse struct {
	ID          uuid.UUID `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
}

// AuthResponse is returned by sign-up and login.
type AuthResponse struct {
	Token     string           `json:"token"`
	ExpiresAt time.Time        `json:"expires_at"`
	Customer  CustomerResponse `json:"customer"`
}

func newCustomerResponse(customer entity.Customer) CustomerResponse {
	return CustomerResponse{
		ID:          customer.ID,
		FirstName:   customer.FirstName,
		LastName:    customer.LastName,
		Username:    customer.Username,
		Email:       customer.Email,
		PhoneNumber: customer.PhoneNumber,
	}
}

func newAuthResponse(output *usecase.AuthOutput) AuthResponse {
	return AuthResponse{
		Token:     output.Token,
		ExpiresAt: output.Session.ExpiresAt,
		Customer:  newCustomerResponse(output.Customer),
	}
}

// SignUp handles the account creation request.
func (h *AccountHandler) SignUp(c echo.Context) error {
	var req SignUpRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.accountUC.SignUp(c.Request().Context(), usecase.SignUpInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Username:    req.Username,
		Password:    req.Password,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newAuthResponse(output))
}

// Login handles the login request.
func (h *AccountHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.accountUC.Login(c.Request().Context(), usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAuthResponse(output))
}

// Logout stops reminders for the caller's session.
func (h *AccountHandler) Logout(c echo.Context) error {
	session, err := sessionFrom(c)
	if err != nil {
		return err
	}

	if err := h.accountUC.Logout(c.Request().Context(), session); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// GetProfile returns the caller's account.
func (h *AccountHandler) GetProfile(c echo.Context) error {
	session, err := sessionFrom(c)
	if err != nil {
		return err
	}

	customer, err := h.accountUC.Profile(c.Request().Context(), session)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCustomerResponse(*customer))
}

package handler

import (
	"log/slog"
	"net/http"

	"medreminder/internal/delivery/http/response"
	"medreminder/internal/domain/service"
	"medreminder/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ReminderHandlerParams holds dependencies for ReminderHandler, injected by Fx.
type ReminderHandlerParams struct {
	fx.In

	ReminderUC usecase.ReminderUsecase
	Logger     *slog.Logger
}

// ReminderHandler lets a customer see and answer their reminder prompts
type ReminderHandler struct {
	reminderUC usecase.ReminderUsecase
	logger     *slog.Logger
}

// NewReminderHandler is the constructor for ReminderHandler
func NewReminderHandler(params ReminderHandlerParams) *ReminderHandler {
	return &ReminderHandler{
		reminderUC: params.ReminderUC,
		logger:     params.Logger,
	}
}

// ActionRequest carries the token of the button the customer chose
type ActionRequest struct {
	Token string `json:"token" validate:"required,max=32"`
}

// ListPending returns the caller's unanswered prompts, oldest first
func (h *ReminderHandler) ListPending(c echo.Context) error {
	session, err := sessionFrom(c)
	if err != nil {
		return err
	}

	pending := h.reminderUC.PendingPrompts(c.Request().Context(), session)
	if pending == nil {
		pending = []service.PendingPrompt{}
	}

	return response.Success(c, http.StatusOK, pending)
}

// Answer resolves one of the caller's prompts with an action token
func (h *ReminderHandler) Answer(c echo.Context) error {
	session, err := sessionFrom(c)
	if err != nil {
		return err
	}

	notificationID, err := uuid.Parse(c.Param("notificationID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid notification ID format")
	}

	var req ActionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.reminderUC.AnswerPrompt(c.Request().Context(), session, notificationID, req.Token); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// Dismiss closes one of the caller's prompts without an answer
func (h *ReminderHandler) Dismiss(c echo.Context) error {
	session, err := sessionFrom(c)
	if err != nil {
		return err
	}

	notificationID, err := uuid.Parse(c.Param("notificationID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid notification ID format")
	}

	if err := h.reminderUC.DismissPrompt(c.Request().Context(), session, notificationID); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// FinishView ends the caller's inspection of a viewed reminder
func (h *ReminderHandler) FinishView(c echo.Context) error {
	session, err := sessionFrom(c)
	if err != nil {
		return err
	}

	prescriptionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid prescription ID format")
	}

	if err := h.reminderUC.FinishView(c.Request().Context(), session, prescriptionID); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

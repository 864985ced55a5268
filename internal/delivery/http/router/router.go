// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"medreminder/internal/delivery/http/middleware"
	"medreminder/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler      *handler.AccountHandler
	PrescriptionHandler *handler.PrescriptionHandler
	ReminderHandler     *handler.ReminderHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler      *handler.AccountHandler
	prescriptionHandler *handler.PrescriptionHandler
	reminderHandler     *handler.ReminderHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:      params.AccountHandler,
		prescriptionHandler: params.PrescriptionHandler,
		reminderHandler:     params.ReminderHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Account routes
	accountsGroup := e.Group("/accounts")
	{
		accountsGroup.POST("/signup", r.accountHandler.SignUp)
		accountsGroup.POST("/login", r.accountHandler.Login)
		accountsGroup.POST("/logout", r.accountHandler.Logout, r.authMiddleware.Authenticate)
		accountsGroup.GET("/me", r.accountHandler.GetProfile, r.authMiddleware.Authenticate)
	}

	// Prescription routes, all acting for the authenticated customer
	prescriptionsGroup := e.Group("/prescriptions")
	prescriptionsGroup.Use(r.authMiddleware.Authenticate)
	{
		prescriptionsGroup.GET("", r.prescriptionHandler.ListPrescriptions)
		prescriptionsGroup.POST("", r.prescriptionHandler.AddPrescription)
		prescriptionsGroup.GET("/forms/:kind", r.prescriptionHandler.GetForm)
		prescriptionsGroup.PUT("/by-name/:drugName", r.prescriptionHandler.EditPrescription)
		prescriptionsGroup.DELETE("/by-name/:drugName", r.prescriptionHandler.DeletePrescription)
		prescriptionsGroup.GET("/:id", r.prescriptionHandler.GetPrescription)
		prescriptionsGroup.POST("/:id/view/close", r.reminderHandler.FinishView)
	}

	// Reminder prompt routes
	remindersGroup := e.Group("/reminders")
	remindersGroup.Use(r.authMiddleware.Authenticate)
	{
		remindersGroup.GET("/pending", r.reminderHandler.ListPending)
		remindersGroup.POST("/:notificationID/action", r.reminderHandler.Answer)
		remindersGroup.POST("/:notificationID/dismiss", r.reminderHandler.Dismiss)
	}
}

package notification

import (
	"context"
	"log/slog"

	"medreminder/config"
	"medreminder/internal/domain/service"

	"go.uber.org/fx"
)

// PushParams holds dependencies for PushService, injected by Fx
type PushParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewPushService creates the FCM push service, or a logging stand-in when Firebase is not configured
func NewPushService(params PushParams) (service.PushService, error) {
	cfg := params.Config.Firebase
	if cfg == nil || cfg.CredentialsPath == "" {
		params.Logger.Info("Firebase not configured, push notifications are logged only")

		return NewLogPushService(params.Logger), nil
	}

	params.Logger.Info("Using Firebase Cloud Messaging", slog.String("project_id", cfg.ProjectID))

	return NewFirebaseService(params.Ctx, cfg.ProjectID, cfg.CredentialsPath)
}

// RegistryParams holds dependencies for Registry, injected by Fx
type RegistryParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Push   service.PushService
	Logger *slog.Logger
}

// NewRegistry creates the prompt registry and stops its timers on shutdown
func NewRegistry(params RegistryParams) *Registry {
	autoDismissAfter := defaultAutoDismissAfter
	if params.Config.Reminder != nil && params.Config.Reminder.AutoDismissAfter > 0 {
		autoDismissAfter = params.Config.Reminder.AutoDismissAfter
	}

	registry := newRegistry(params.Push, autoDismissAfter, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			registry.Close()

			return nil
		},
	})

	return registry
}

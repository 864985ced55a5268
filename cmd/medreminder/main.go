package main

import (
	"context"
	"log/slog"
	"os"

	"medreminder/config"
	"medreminder/internal/delivery"
	"medreminder/internal/delivery/http"
	"medreminder/internal/delivery/http/middleware"
	"medreminder/internal/delivery/http/router/handler"
	"medreminder/internal/delivery/scheduler"
	"medreminder/internal/domain/service"
	"medreminder/internal/infra/auth"
	logs "medreminder/internal/infra/log"
	"medreminder/internal/infra/notification"
	"medreminder/internal/infra/persistence/blobstore"
	"medreminder/internal/infra/pubsub"
	"medreminder/internal/usecase/impl"
	"medreminder/internal/usecase/validation"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		blobstore.New,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			notification.NewPushService,
			notification.NewRegistry,
			newNotifier,
			newPromptInbox,
			pubsub.NewEventPublisher,
			validation.NewFactoryFromStore,
		),
	)
}

// newNotifier exposes the registry as the reminder engine's Notifier.
func newNotifier(registry *notification.Registry) service.Notifier {
	return registry
}

// newPromptInbox exposes the registry as the customer-facing PromptInbox.
func newPromptInbox(registry *notification.Registry) service.PromptInbox {
	return registry
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionTracker,
			impl.NewAccountService,
			impl.NewPrescriptionService,
			impl.NewReminderService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAccountHandler,
			handler.NewPrescriptionHandler,
			handler.NewReminderHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				scheduler.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}

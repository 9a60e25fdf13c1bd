package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"wakeup/config"
	"wakeup/internal/delivery"
	"wakeup/internal/delivery/http"
	"wakeup/internal/delivery/http/middleware"
	"wakeup/internal/delivery/http/router/handler"
	"wakeup/internal/delivery/worker"
	workerhandler "wakeup/internal/delivery/worker/handler"
	"wakeup/internal/domain/service"
	"wakeup/internal/infra/auth"
	logs "wakeup/internal/infra/log"
	"wakeup/internal/infra/notification"
	"wakeup/internal/infra/persistence/postgres"
	"wakeup/internal/infra/pubsub"
	"wakeup/internal/infra/reminder"
	"wakeup/internal/usecase/impl"

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
		injectRepo(),
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
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			reminder.NewRegistry,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewAlarmRepository,
			postgres.NewChallengeRepository,
			postgres.NewDeviceRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			newFirebaseService,
		),
	)
}

// newFirebaseService creates a Firebase service with dependency injection
func newFirebaseService(ctx context.Context, cfg *config.Config) (service.PushService, error) {
	if cfg.Firebase == nil {
		return nil, nil // Firebase is optional
	}

	svc, err := notification.NewFirebaseService(ctx, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firebase service: %w", err)
	}

	return svc, nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewScheduleService,
			impl.NewChallengeService,
			impl.NewSessionService,
			impl.NewAlarmService,
			impl.NewDeviceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAlarmHandler,
			handler.NewChallengeHandler,
			handler.NewDeviceHandler,
			handler.NewTestHandler,
			workerhandler.NewReminderHandler,
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
				worker.NewRuntime,
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

package worker

import (
	"context"
	"log/slog"

	"wakeup/internal/delivery"
	"wakeup/internal/delivery/worker/handler"
	"wakeup/internal/domain/repository"
	"wakeup/internal/domain/service"
	"wakeup/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// schedulerRuntime binds the reminder registry to its delivery handler and
// restores the timer state from the store at startup. It has no listen
// socket; Serve blocks until shutdown so the timers stay alive.
type schedulerRuntime struct {
	logger    *slog.Logger
	registry  service.ReminderRegistry
	scheduler usecase.ScheduleUsecase
	alarmRepo repository.AlarmRepository
}

// RuntimeParams holds dependencies for the scheduler runtime
type RuntimeParams struct {
	fx.In

	Lc              fx.Lifecycle
	Logger          *slog.Logger
	Registry        service.ReminderRegistry
	Scheduler       usecase.ScheduleUsecase
	AlarmRepo       repository.AlarmRepository
	ReminderHandler *handler.ReminderHandler
}

// NewRuntime creates the scheduler runtime delivery
func NewRuntime(params RuntimeParams) (delivery.Delivery, error) {
	params.Registry.OnDelivered(params.ReminderHandler.HandleReminder)

	runtime := &schedulerRuntime{
		logger:    params.Logger,
		registry:  params.Registry,
		scheduler: params.Scheduler,
		alarmRepo: params.AlarmRepo,
	}

	params.Lc.Append(fx.Hook{
		OnStop: runtime.stop,
	})

	return runtime, nil
}

// Serve rebuilds the reminder timers for every enabled alarm and then waits
// for shutdown. Timers are in-memory only, so a restart always starts from
// the store.
func (s *schedulerRuntime) Serve(ctx context.Context) error {
	s.logger.Info("Starting scheduler runtime")

	alarms, err := s.alarmRepo.FindEnabledAlarms(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	s.scheduler.RescheduleAll(ctx, alarms)

	<-ctx.Done()

	return nil
}

// stop drops all pending reminder timers
func (s *schedulerRuntime) stop(ctx context.Context) error {
	s.logger.Info("Shutting down scheduler runtime")
	s.registry.CancelAll()

	return nil
}

// Package impl contains the concrete implementations of the use cases.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"wakeup/config"
	"wakeup/internal/domain/entity"
	"wakeup/internal/domain/service"
	"wakeup/internal/usecase"

	"github.com/google/uuid"
)

// ReminderID derives the registry identifier for one reminder of an alarm's
// burst. It is a pure function of (alarm, index) so a whole burst can be
// cancelled by reconstruction, with no persisted index of what was scheduled.
func ReminderID(alarmID uuid.UUID, index int) string {
	return fmt.Sprintf("alarm:%s:reminder:%d", alarmID, index)
}

type scheduleService struct {
	logger   *slog.Logger
	registry service.ReminderRegistry

	burstCount int
	interval   time.Duration

	now func() time.Time
}

// NewScheduleService creates a new schedule service instance
func NewScheduleService(
	logger *slog.Logger,
	cfg *config.Config,
	registry service.ReminderRegistry,
) usecase.ScheduleUsecase {
	return &scheduleService{
		logger:     logger,
		registry:   registry,
		burstCount: cfg.Reminder.BurstCount,
		interval:   cfg.Reminder.Interval,
		now:        time.Now,
	}
}

// ScheduleOccurrence resolves the alarm's next occurrence and registers the
// reminder burst for it.
func (s *scheduleService) ScheduleOccurrence(ctx context.Context, alarm *entity.Alarm) ([]string, error) {
	if !alarm.IsEnabled {
		s.logger.Debug("Alarm disabled, nothing to schedule",
			slog.String("alarmID", alarm.ID.String()),
		)

		return nil, nil
	}

	now := s.now()
	base, ok := alarm.NextOccurrence(now)
	if !ok {
		// Unschedulable is not an error: an alarm with no selected weekdays
		// simply never produces a next occurrence.
		s.logger.Debug("Alarm unschedulable, no weekdays selected",
			slog.String("alarmID", alarm.ID.String()),
		)

		return nil, nil
	}

	scheduled := make([]string, 0, s.burstCount)
	for i := 0; i < s.burstCount; i++ {
		fireAt := base.Add(time.Duration(i) * s.interval)
		if !fireAt.After(now) {
			// A reminder instant already in the past is skipped, not an error.
			continue
		}

		id := ReminderID(alarm.ID, i)
		payload := service.ReminderPayload{
			AlarmID:      alarm.ID,
			UserID:       alarm.UserID,
			OccurrenceAt: base,
			Index:        i,
		}

		if err := s.registry.ScheduleAt(ctx, id, fireAt, payload); err != nil {
			// One failed reminder must not prevent scheduling the rest of the burst.
			s.logger.Warn("Failed to schedule reminder",
				slog.String("reminderID", id),
				slog.Any("error", err),
			)

			continue
		}

		scheduled = append(scheduled, id)
	}

	s.logger.Info("Scheduled alarm occurrence",
		slog.String("alarmID", alarm.ID.String()),
		slog.Time("occurrence", base),
		slog.Int("reminders", len(scheduled)),
	)

	return scheduled, nil
}

// CancelOccurrence reconstructs every identifier the configured burst could
// have produced and cancels each one. Cancelling an identifier that was never
// scheduled, or that already fired, is silently tolerated by the registry.
func (s *scheduleService) CancelOccurrence(ctx context.Context, alarmID uuid.UUID) {
	for i := 0; i < s.burstCount; i++ {
		s.registry.Cancel(ReminderID(alarmID, i))
	}

	s.logger.Debug("Cancelled alarm occurrence",
		slog.String("alarmID", alarmID.String()),
	)
}

// RescheduleAll clears the registry and schedules every enabled alarm anew.
func (s *scheduleService) RescheduleAll(ctx context.Context, alarms []*entity.Alarm) {
	s.registry.CancelAll()

	count := 0
	for _, alarm := range alarms {
		if !alarm.IsEnabled {
			continue
		}

		if _, err := s.ScheduleOccurrence(ctx, alarm); err != nil {
			// Never abort the sweep over one alarm.
			s.logger.Warn("Failed to reschedule alarm",
				slog.String("alarmID", alarm.ID.String()),
				slog.Any("error", err),
			)

			continue
		}
		count++
	}

	s.logger.Info("Full reschedule complete", slog.Int("alarms", count))
}

package usecase

import (
	"context"

	"wakeup/internal/domain/entity"

	"github.com/google/uuid"
)

// ScheduleUsecase defines the interface for the notification scheduler: it
// turns one alarm occurrence into a bounded burst of locally scheduled
// reminders and knows how to take them down again.
type ScheduleUsecase interface {
	// ScheduleOccurrence resolves the alarm's next occurrence and schedules
	// the reminder burst for it. Returns the identifiers of the reminders
	// actually scheduled; an unschedulable alarm (disabled, or no weekdays
	// selected) yields an empty list and no error.
	ScheduleOccurrence(ctx context.Context, alarm *entity.Alarm) ([]string, error)

	// CancelOccurrence cancels every reminder the configured burst could
	// have produced for the alarm, reconstructing identifiers without any
	// lookup. Identifiers that were never scheduled are silently tolerated.
	CancelOccurrence(ctx context.Context, alarmID uuid.UUID)

	// RescheduleAll unconditionally clears the whole reminder registry and
	// schedules an occurrence for every enabled alarm. Full reset rather
	// than an incremental diff; used at process start and after bulk changes.
	RescheduleAll(ctx context.Context, alarms []*entity.Alarm)
}

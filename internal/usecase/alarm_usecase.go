// Package usecase defines the interfaces for the application's use cases.
package usecase

import (
	"context"

	"wakeup/internal/domain/entity"

	"github.com/google/uuid"
)

// AlarmInput carries the user-editable fields of an alarm definition.
type AlarmInput struct {
	Hours        int              `json:"hours"`
	Minutes      int              `json:"minutes"`
	SelectedDays []entity.Weekday `json:"selected_days"`
	IsEnabled    bool             `json:"is_enabled"`
}

// AlarmUsecase defines the interface for alarm management use cases.
// Every mutation re-establishes the alarm's scheduled reminder burst: the
// current occurrence is cancelled and, when the alarm ends up enabled, the
// next occurrence is scheduled from now.
type AlarmUsecase interface {
	// CreateAlarm persists a new alarm and schedules its first occurrence.
	CreateAlarm(ctx context.Context, userID uuid.UUID, input AlarmInput) (*entity.Alarm, error)

	// ListAlarms retrieves all alarms owned by the user.
	ListAlarms(ctx context.Context, userID uuid.UUID) ([]*entity.Alarm, error)

	// UpdateAlarm applies new time/day/enabled values to an existing alarm.
	UpdateAlarm(ctx context.Context, userID, alarmID uuid.UUID, input AlarmInput) (*entity.Alarm, error)

	// SetAlarmEnabled toggles an alarm on or off.
	SetAlarmEnabled(ctx context.Context, userID, alarmID uuid.UUID, enabled bool) (*entity.Alarm, error)

	// DeleteAlarm removes an alarm and cancels its outstanding reminders.
	// Challenges referencing the alarm are kept (orphan reference).
	DeleteAlarm(ctx context.Context, userID, alarmID uuid.UUID) error
}

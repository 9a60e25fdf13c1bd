// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"wakeup/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for alarm persistence.
var (
	// ErrAlarmNotFound is returned when an alarm is not found.
	ErrAlarmNotFound = errors.New("alarm not found")
)

// AlarmRepository defines the interface for alarm-related database operations.
type AlarmRepository interface {
	// CreateAlarm persists a new alarm definition.
	CreateAlarm(ctx context.Context, alarm *entity.Alarm) error

	// FindAlarmByID retrieves an alarm by its unique ID.
	FindAlarmByID(ctx context.Context, id uuid.UUID) (*entity.Alarm, error)

	// FindAlarmsByUser retrieves all alarms owned by a specific user.
	FindAlarmsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Alarm, error)

	// FindEnabledAlarms retrieves every enabled alarm across all users.
	// Used by the startup full reschedule.
	FindEnabledAlarms(ctx context.Context) ([]*entity.Alarm, error)

	// UpdateAlarm persists changes to an alarm's time, weekday set and enabled flag.
	UpdateAlarm(ctx context.Context, alarm *entity.Alarm) error

	// SetAlarmEnabled toggles the enabled flag for an alarm.
	SetAlarmEnabled(ctx context.Context, id uuid.UUID, enabled bool) error

	// DeleteAlarm removes an alarm. Challenges referencing it are left intact.
	DeleteAlarm(ctx context.Context, id uuid.UUID) error
}

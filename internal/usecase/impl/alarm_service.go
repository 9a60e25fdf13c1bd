package impl

import (
	"context"
	"log/slog"
	"time"

	"wakeup/internal/domain/entity"
	domainerrors "wakeup/internal/domain/errors"
	"wakeup/internal/domain/repository"
	"wakeup/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type alarmService struct {
	logger    *slog.Logger
	alarmRepo repository.AlarmRepository
	scheduler usecase.ScheduleUsecase

	now func() time.Time
}

// NewAlarmService creates a new alarm service instance
func NewAlarmService(
	logger *slog.Logger,
	alarmRepo repository.AlarmRepository,
	scheduler usecase.ScheduleUsecase,
) usecase.AlarmUsecase {
	return &alarmService{
		logger:    logger,
		alarmRepo: alarmRepo,
		scheduler: scheduler,
		now:       time.Now,
	}
}

func validateAlarmInput(input usecase.AlarmInput) error {
	if input.Hours < 0 || input.Hours > 23 || input.Minutes < 0 || input.Minutes > 59 {
		return domainerrors.ErrInvalidAlarmTime
	}
	for _, day := range input.SelectedDays {
		if day < 0 || day > 6 {
			return domainerrors.ErrInvalidAlarmTime.WithDetails("selected days must be within 0-6")
		}
	}

	return nil
}

// CreateAlarm persists a new alarm and schedules its first occurrence.
func (s *alarmService) CreateAlarm(ctx context.Context, userID uuid.UUID, input usecase.AlarmInput) (*entity.Alarm, error) {
	if err := validateAlarmInput(input); err != nil {
		return nil, err
	}

	alarm := &entity.Alarm{
		ID:           uuid.New(),
		UserID:       userID,
		Hours:        input.Hours,
		Minutes:      input.Minutes,
		SelectedDays: input.SelectedDays,
		IsEnabled:    input.IsEnabled,
		CreatedAt:    s.now(),
		UpdatedAt:    s.now(),
	}

	if err := s.alarmRepo.CreateAlarm(ctx, alarm); err != nil {
		return nil, errors.Wrap(err, "failed to create alarm")
	}

	s.scheduleQuietly(ctx, alarm)

	return alarm, nil
}

// ListAlarms retrieves all alarms owned by the user.
func (s *alarmService) ListAlarms(ctx context.Context, userID uuid.UUID) ([]*entity.Alarm, error) {
	return s.alarmRepo.FindAlarmsByUser(ctx, userID)
}

// UpdateAlarm applies new time/day/enabled values and re-establishes the
// alarm's reminder burst from the updated definition.
func (s *alarmService) UpdateAlarm(ctx context.Context, userID, alarmID uuid.UUID, input usecase.AlarmInput) (*entity.Alarm, error) {
	if err := validateAlarmInput(input); err != nil {
		return nil, err
	}

	alarm, err := s.ownedAlarm(ctx, userID, alarmID)
	if err != nil {
		return nil, err
	}

	alarm.Hours = input.Hours
	alarm.Minutes = input.Minutes
	alarm.SelectedDays = input.SelectedDays
	alarm.IsEnabled = input.IsEnabled
	alarm.UpdatedAt = s.now()

	if err := s.alarmRepo.UpdateAlarm(ctx, alarm); err != nil {
		return nil, errors.Wrap(err, "failed to update alarm")
	}

	s.scheduler.CancelOccurrence(ctx, alarmID)
	s.scheduleQuietly(ctx, alarm)

	return alarm, nil
}

// SetAlarmEnabled toggles an alarm, cancelling its occurrence when disabled
// and scheduling one when enabled.
func (s *alarmService) SetAlarmEnabled(ctx context.Context, userID, alarmID uuid.UUID, enabled bool) (*entity.Alarm, error) {
	alarm, err := s.ownedAlarm(ctx, userID, alarmID)
	if err != nil {
		return nil, err
	}

	if err := s.alarmRepo.SetAlarmEnabled(ctx, alarmID, enabled); err != nil {
		return nil, errors.Wrap(err, "failed to toggle alarm")
	}
	alarm.IsEnabled = enabled

	s.scheduler.CancelOccurrence(ctx, alarmID)
	if enabled {
		s.scheduleQuietly(ctx, alarm)
	}

	return alarm, nil
}

// DeleteAlarm removes an alarm and cancels its outstanding reminders.
// Challenge records referencing the alarm are left untouched; they outlive
// the alarm with an orphan reference.
func (s *alarmService) DeleteAlarm(ctx context.Context, userID, alarmID uuid.UUID) error {
	if _, err := s.ownedAlarm(ctx, userID, alarmID); err != nil {
		return err
	}

	if err := s.alarmRepo.DeleteAlarm(ctx, alarmID); err != nil {
		return errors.Wrap(err, "failed to delete alarm")
	}

	s.scheduler.CancelOccurrence(ctx, alarmID)

	return nil
}

// ownedAlarm loads an alarm and verifies ownership. A foreign alarm is
// reported as not found rather than forbidden, so ids cannot be probed.
func (s *alarmService) ownedAlarm(ctx context.Context, userID, alarmID uuid.UUID) (*entity.Alarm, error) {
	alarm, err := s.alarmRepo.FindAlarmByID(ctx, alarmID)
	if err != nil {
		if errors.Is(err, repository.ErrAlarmNotFound) {
			return nil, domainerrors.ErrAlarmNotFound
		}

		return nil, errors.Wrap(err, "failed to load alarm")
	}

	if alarm.UserID != userID {
		return nil, domainerrors.ErrAlarmNotFound
	}

	return alarm, nil
}

// scheduleQuietly schedules an occurrence and only logs on failure; alarm
// mutations must not fail because the reminder subsystem hiccupped.
func (s *alarmService) scheduleQuietly(ctx context.Context, alarm *entity.Alarm) {
	if _, err := s.scheduler.ScheduleOccurrence(ctx, alarm); err != nil {
		s.logger.Warn("Failed to schedule alarm occurrence",
			slog.String("alarmID", alarm.ID.String()),
			slog.Any("error", err),
		)
	}
}

package postgres

import (
	"context"
	"time"

	"wakeup/internal/domain/entity"
	domainerrors "wakeup/internal/domain/errors"
	"wakeup/internal/domain/repository"
	"wakeup/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// alarmRepository implements the repository.AlarmRepository interface.
type alarmRepository struct {
	db *gorm.DB
}

// NewAlarmRepository is the constructor for alarmRepository.
func NewAlarmRepository(db *gorm.DB) repository.AlarmRepository {
	return &alarmRepository{
		db: db,
	}
}

// CreateAlarm persists a new alarm definition.
func (repo *alarmRepository) CreateAlarm(ctx context.Context, alarm *entity.Alarm) error {
	alarmM := fromAlarmDomain(alarm)

	if err := repo.db.WithContext(ctx).Create(alarmM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrAlarmCreationFailed.WrapMessage("invalid user reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrAlarmCreationFailed.WrapMessage("missing required alarm information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create alarm")
	}

	// Update the entity with generated values
	alarm.ID = alarmM.ID
	alarm.CreatedAt = alarmM.CreatedAt
	alarm.UpdatedAt = alarmM.UpdatedAt

	return nil
}

// FindAlarmByID retrieves an alarm by its unique ID.
func (repo *alarmRepository) FindAlarmByID(ctx context.Context, id uuid.UUID) (*entity.Alarm, error) {
	var alarmM model.AlarmModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&alarmM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAlarmNotFound
		}

		return nil, errors.Wrap(err, "failed to find alarm by ID")
	}

	return toAlarmDomain(&alarmM), nil
}

// FindAlarmsByUser retrieves all alarms owned by a specific user.
func (repo *alarmRepository) FindAlarmsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Alarm, error) {
	var alarmModels []*model.AlarmModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&alarmModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find alarms by user")
	}

	alarms := make([]*entity.Alarm, 0, len(alarmModels))
	for _, alarmM := range alarmModels {
		alarms = append(alarms, toAlarmDomain(alarmM))
	}

	return alarms, nil
}

// FindEnabledAlarms retrieves every enabled alarm across all users. Used by
// the scheduler's startup sweep.
func (repo *alarmRepository) FindEnabledAlarms(ctx context.Context) ([]*entity.Alarm, error) {
	var alarmModels []*model.AlarmModel

	if err := repo.db.WithContext(ctx).
		Where("is_enabled = ?", true).
		Find(&alarmModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find enabled alarms")
	}

	alarms := make([]*entity.Alarm, 0, len(alarmModels))
	for _, alarmM := range alarmModels {
		alarms = append(alarms, toAlarmDomain(alarmM))
	}

	return alarms, nil
}

// UpdateAlarm persists new time, weekday and enabled values for an alarm.
func (repo *alarmRepository) UpdateAlarm(ctx context.Context, alarm *entity.Alarm) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AlarmModel{}).
		Where("id = ?", alarm.ID).
		Updates(map[string]any{
			"hours":      alarm.Hours,
			"minutes":    alarm.Minutes,
			"days_mask":  model.DaysMaskFromWeekdays(alarm.SelectedDays),
			"is_enabled": alarm.IsEnabled,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update alarm")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAlarmNotFound
	}

	return nil
}

// SetAlarmEnabled toggles the enabled flag without touching the schedule fields.
func (repo *alarmRepository) SetAlarmEnabled(ctx context.Context, id uuid.UUID, enabled bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AlarmModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"is_enabled": enabled,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to toggle alarm")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAlarmNotFound
	}

	return nil
}

// DeleteAlarm removes an alarm by its ID (soft delete). Challenge rows that
// reference it are intentionally left in place.
func (repo *alarmRepository) DeleteAlarm(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.AlarmModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete alarm")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAlarmNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toAlarmDomain converts a GORM AlarmModel to a domain Alarm entity.
func toAlarmDomain(data *model.AlarmModel) *entity.Alarm {
	if data == nil {
		return nil
	}

	return &entity.Alarm{
		ID:           data.ID,
		UserID:       data.UserID,
		Hours:        data.Hours,
		Minutes:      data.Minutes,
		SelectedDays: model.WeekdaysFromMask(data.DaysMask),
		IsEnabled:    data.IsEnabled,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromAlarmDomain converts a domain Alarm entity to a GORM AlarmModel.
func fromAlarmDomain(data *entity.Alarm) *model.AlarmModel {
	if data == nil {
		return nil
	}

	return &model.AlarmModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Hours:     data.Hours,
		Minutes:   data.Minutes,
		DaysMask:  model.DaysMaskFromWeekdays(data.SelectedDays),
		IsEnabled: data.IsEnabled,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

package impl

import (
	"context"
	"testing"
	"time"

	"wakeup/internal/domain/entity"
	domainerrors "wakeup/internal/domain/errors"
	"wakeup/internal/domain/repository"
	mockRepo "wakeup/internal/mocks/repository"
	mockUC "wakeup/internal/mocks/usecase"
	"wakeup/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestAlarmService(t *testing.T) (*alarmService, *mockRepo.MockAlarmRepository, *mockUC.MockScheduleUsecase) {
	alarmRepo := mockRepo.NewMockAlarmRepository(t)
	scheduler := mockUC.NewMockScheduleUsecase(t)

	svc := &alarmService{
		logger:    newTestLogger(),
		alarmRepo: alarmRepo,
		scheduler: scheduler,
		now:       time.Now,
	}

	return svc, alarmRepo, scheduler
}

func TestAlarmService_CreateAlarm(t *testing.T) {
	svc, alarmRepo, scheduler := newTestAlarmService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := usecase.AlarmInput{
		Hours:        6,
		Minutes:      30,
		SelectedDays: []entity.Weekday{entity.Weekday(time.Monday), entity.Weekday(time.Friday)},
		IsEnabled:    true,
	}

	alarmRepo.EXPECT().
		CreateAlarm(ctx, mock.AnythingOfType("*entity.Alarm")).
		Run(func(ctx context.Context, alarm *entity.Alarm) {
			assert.Equal(t, userID, alarm.UserID)
			assert.Equal(t, 6, alarm.Hours)
			assert.Equal(t, 30, alarm.Minutes)
			assert.True(t, alarm.IsEnabled)
		}).
		Return(nil)

	scheduler.EXPECT().
		ScheduleOccurrence(ctx, mock.AnythingOfType("*entity.Alarm")).
		Return([]string{"alarm:x:reminder:0"}, nil)

	alarm, err := svc.CreateAlarm(ctx, userID, input)
	require.NoError(t, err)
	require.NotNil(t, alarm)
	assert.NotEqual(t, uuid.Nil, alarm.ID)
	assert.Equal(t, userID, alarm.UserID)
}

func TestAlarmService_CreateAlarm_InvalidTime(t *testing.T) {
	svc, _, _ := newTestAlarmService(t)

	ctx := context.Background()
	userID := uuid.New()

	cases := []struct {
		name  string
		input usecase.AlarmInput
	}{
		{"hours too large", usecase.AlarmInput{Hours: 24, Minutes: 0}},
		{"negative hours", usecase.AlarmInput{Hours: -1, Minutes: 0}},
		{"minutes too large", usecase.AlarmInput{Hours: 7, Minutes: 60}},
		{"negative minutes", usecase.AlarmInput{Hours: 7, Minutes: -5}},
		{"day out of range", usecase.AlarmInput{Hours: 7, Minutes: 0, SelectedDays: []entity.Weekday{7}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			alarm, err := svc.CreateAlarm(ctx, userID, tc.input)
			require.Error(t, err)
			assert.Nil(t, alarm)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, domainerrors.ErrInvalidAlarmTime.ErrorCode(), appErr.ErrorCode())
		})
	}
}

func TestAlarmService_UpdateAlarm_Reschedules(t *testing.T) {
	svc, alarmRepo, scheduler := newTestAlarmService(t)

	ctx := context.Background()
	userID := uuid.New()
	alarmID := uuid.New()
	existing := &entity.Alarm{
		ID:           alarmID,
		UserID:       userID,
		Hours:        6,
		Minutes:      0,
		SelectedDays: []entity.Weekday{entity.Weekday(time.Monday)},
		IsEnabled:    true,
	}

	alarmRepo.EXPECT().FindAlarmByID(ctx, alarmID).Return(existing, nil)
	alarmRepo.EXPECT().
		UpdateAlarm(ctx, mock.AnythingOfType("*entity.Alarm")).
		Run(func(ctx context.Context, alarm *entity.Alarm) {
			assert.Equal(t, 7, alarm.Hours)
			assert.Equal(t, 15, alarm.Minutes)
		}).
		Return(nil)

	scheduler.EXPECT().CancelOccurrence(ctx, alarmID).Return()
	scheduler.EXPECT().
		ScheduleOccurrence(ctx, mock.AnythingOfType("*entity.Alarm")).
		Return([]string{"id"}, nil)

	alarm, err := svc.UpdateAlarm(ctx, userID, alarmID, usecase.AlarmInput{
		Hours:        7,
		Minutes:      15,
		SelectedDays: []entity.Weekday{entity.Weekday(time.Monday)},
		IsEnabled:    true,
	})
	require.NoError(t, err)
	assert.Equal(t, 7, alarm.Hours)
}

func TestAlarmService_UpdateAlarm_ForeignAlarmHidden(t *testing.T) {
	svc, alarmRepo, _ := newTestAlarmService(t)

	ctx := context.Background()
	alarmID := uuid.New()
	existing := &entity.Alarm{
		ID:     alarmID,
		UserID: uuid.New(),
	}

	alarmRepo.EXPECT().FindAlarmByID(ctx, alarmID).Return(existing, nil)

	alarm, err := svc.UpdateAlarm(ctx, uuid.New(), alarmID, usecase.AlarmInput{Hours: 7})
	require.Error(t, err)
	assert.Nil(t, alarm)
	assert.ErrorIs(t, err, domainerrors.ErrAlarmNotFound)
}

func TestAlarmService_SetAlarmEnabled_DisableCancelsOnly(t *testing.T) {
	svc, alarmRepo, scheduler := newTestAlarmService(t)

	ctx := context.Background()
	userID := uuid.New()
	alarmID := uuid.New()
	existing := &entity.Alarm{
		ID:           alarmID,
		UserID:       userID,
		Hours:        6,
		SelectedDays: []entity.Weekday{entity.Weekday(time.Monday)},
		IsEnabled:    true,
	}

	alarmRepo.EXPECT().FindAlarmByID(ctx, alarmID).Return(existing, nil)
	alarmRepo.EXPECT().SetAlarmEnabled(ctx, alarmID, false).Return(nil)

	// Disabling cancels the occurrence and never schedules a new one.
	scheduler.EXPECT().CancelOccurrence(ctx, alarmID).Return()

	alarm, err := svc.SetAlarmEnabled(ctx, userID, alarmID, false)
	require.NoError(t, err)
	assert.False(t, alarm.IsEnabled)
}

func TestAlarmService_SetAlarmEnabled_EnableSchedules(t *testing.T) {
	svc, alarmRepo, scheduler := newTestAlarmService(t)

	ctx := context.Background()
	userID := uuid.New()
	alarmID := uuid.New()
	existing := &entity.Alarm{
		ID:           alarmID,
		UserID:       userID,
		Hours:        6,
		SelectedDays: []entity.Weekday{entity.Weekday(time.Monday)},
		IsEnabled:    false,
	}

	alarmRepo.EXPECT().FindAlarmByID(ctx, alarmID).Return(existing, nil)
	alarmRepo.EXPECT().SetAlarmEnabled(ctx, alarmID, true).Return(nil)

	scheduler.EXPECT().CancelOccurrence(ctx, alarmID).Return()
	scheduler.EXPECT().
		ScheduleOccurrence(ctx, mock.AnythingOfType("*entity.Alarm")).
		Return([]string{"id"}, nil)

	alarm, err := svc.SetAlarmEnabled(ctx, userID, alarmID, true)
	require.NoError(t, err)
	assert.True(t, alarm.IsEnabled)
}

func TestAlarmService_DeleteAlarm(t *testing.T) {
	svc, alarmRepo, scheduler := newTestAlarmService(t)

	ctx := context.Background()
	userID := uuid.New()
	alarmID := uuid.New()
	existing := &entity.Alarm{ID: alarmID, UserID: userID}

	alarmRepo.EXPECT().FindAlarmByID(ctx, alarmID).Return(existing, nil)
	alarmRepo.EXPECT().DeleteAlarm(ctx, alarmID).Return(nil)
	scheduler.EXPECT().CancelOccurrence(ctx, alarmID).Return()

	err := svc.DeleteAlarm(ctx, userID, alarmID)
	require.NoError(t, err)
}

func TestAlarmService_DeleteAlarm_NotFound(t *testing.T) {
	svc, alarmRepo, _ := newTestAlarmService(t)

	ctx := context.Background()
	alarmID := uuid.New()

	alarmRepo.EXPECT().
		FindAlarmByID(ctx, alarmID).
		Return(nil, repository.ErrAlarmNotFound)

	err := svc.DeleteAlarm(ctx, uuid.New(), alarmID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAlarmNotFound)
}

func TestAlarmService_ListAlarms(t *testing.T) {
	svc, alarmRepo, _ := newTestAlarmService(t)

	ctx := context.Background()
	userID := uuid.New()
	alarms := []*entity.Alarm{
		{ID: uuid.New(), UserID: userID},
		{ID: uuid.New(), UserID: userID},
	}

	alarmRepo.EXPECT().FindAlarmsByUser(ctx, userID).Return(alarms, nil)

	got, err := svc.ListAlarms(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

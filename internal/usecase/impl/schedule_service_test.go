package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"wakeup/internal/domain/entity"
	"wakeup/internal/domain/service"
	mockSvc "wakeup/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestScheduleService(registry service.ReminderRegistry, now time.Time) *scheduleService {
	return &scheduleService{
		logger:     newTestLogger(),
		registry:   registry,
		burstCount: 10,
		interval:   17500 * time.Millisecond,
		now:        func() time.Time { return now },
	}
}

func TestScheduleService_ScheduleOccurrence_FullBurst(t *testing.T) {
	mockRegistry := mockSvc.NewMockReminderRegistry(t)

	// Monday 2026-01-05, 07:00. Alarm fires Tuesdays at 06:30.
	now := time.Date(2026, 1, 5, 7, 0, 0, 0, time.UTC)
	svc := newTestScheduleService(mockRegistry, now)

	alarm := &entity.Alarm{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		Hours:        6,
		Minutes:      30,
		SelectedDays: []entity.Weekday{entity.Weekday(time.Tuesday)},
		IsEnabled:    true,
	}

	expectedBase := time.Date(2026, 1, 6, 6, 30, 0, 0, time.UTC)
	var fireTimes []time.Time
	mockRegistry.EXPECT().
		ScheduleAt(mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time"), mock.AnythingOfType("service.ReminderPayload")).
		Run(func(ctx context.Context, id string, fireAt time.Time, payload service.ReminderPayload) {
			fireTimes = append(fireTimes, fireAt)
			assert.Equal(t, alarm.ID, payload.AlarmID)
			assert.Equal(t, alarm.UserID, payload.UserID)
			assert.Equal(t, expectedBase, payload.OccurrenceAt)
		}).
		Return(nil).
		Times(10)

	ids, err := svc.ScheduleOccurrence(context.Background(), alarm)
	require.NoError(t, err)
	require.Len(t, ids, 10)

	assert.Equal(t, ReminderID(alarm.ID, 0), ids[0])
	assert.Equal(t, ReminderID(alarm.ID, 9), ids[9])

	require.Len(t, fireTimes, 10)
	assert.Equal(t, expectedBase, fireTimes[0])
	for i := 1; i < len(fireTimes); i++ {
		assert.Equal(t, 17500*time.Millisecond, fireTimes[i].Sub(fireTimes[i-1]))
	}
}

func TestScheduleService_ScheduleOccurrence_RollsToNextWeek(t *testing.T) {
	mockRegistry := mockSvc.NewMockReminderRegistry(t)

	// 08:01 on a Monday, alarm set for Mondays 08:00. Today's instant has
	// passed, so the occurrence rolls a full week forward and every reminder
	// instant in the burst stays in the future.
	now := time.Date(2026, 1, 5, 8, 1, 0, 0, time.UTC)
	svc := newTestScheduleService(mockRegistry, now)

	alarm := &entity.Alarm{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		Hours:        8,
		Minutes:      0,
		SelectedDays: []entity.Weekday{entity.Weekday(time.Monday)},
		IsEnabled:    true,
	}

	// Next occurrence is Monday 2026-01-12: today's 08:00 is already past.
	expectedBase := time.Date(2026, 1, 12, 8, 0, 0, 0, time.UTC)
	mockRegistry.EXPECT().
		ScheduleAt(mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time"), mock.AnythingOfType("service.ReminderPayload")).
		Run(func(ctx context.Context, id string, fireAt time.Time, payload service.ReminderPayload) {
			assert.Equal(t, expectedBase, payload.OccurrenceAt)
			assert.True(t, fireAt.After(now))
		}).
		Return(nil).
		Times(10)

	ids, err := svc.ScheduleOccurrence(context.Background(), alarm)
	require.NoError(t, err)
	assert.Len(t, ids, 10)
}

func TestScheduleService_ScheduleOccurrence_DisabledAlarm(t *testing.T) {
	mockRegistry := mockSvc.NewMockReminderRegistry(t)
	svc := newTestScheduleService(mockRegistry, time.Now())

	alarm := &entity.Alarm{
		ID:           uuid.New(),
		Hours:        7,
		SelectedDays: []entity.Weekday{entity.Weekday(time.Monday)},
		IsEnabled:    false,
	}

	ids, err := svc.ScheduleOccurrence(context.Background(), alarm)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestScheduleService_ScheduleOccurrence_NoWeekdays(t *testing.T) {
	mockRegistry := mockSvc.NewMockReminderRegistry(t)
	svc := newTestScheduleService(mockRegistry, time.Now())

	alarm := &entity.Alarm{
		ID:        uuid.New(),
		Hours:     7,
		IsEnabled: true,
	}

	ids, err := svc.ScheduleOccurrence(context.Background(), alarm)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestScheduleService_ScheduleOccurrence_RegistryErrorContinues(t *testing.T) {
	mockRegistry := mockSvc.NewMockReminderRegistry(t)

	now := time.Date(2026, 1, 5, 7, 0, 0, 0, time.UTC)
	svc := newTestScheduleService(mockRegistry, now)

	alarm := &entity.Alarm{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		Hours:        8,
		Minutes:      0,
		SelectedDays: []entity.Weekday{entity.Weekday(time.Monday)},
		IsEnabled:    true,
	}

	// Third reminder fails to register; the rest of the burst still goes in.
	failedID := ReminderID(alarm.ID, 2)
	mockRegistry.EXPECT().
		ScheduleAt(mock.Anything, failedID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("service.ReminderPayload")).
		Return(errors.New("registry full"))
	mockRegistry.EXPECT().
		ScheduleAt(mock.Anything, mock.MatchedBy(func(id string) bool { return id != failedID }), mock.AnythingOfType("time.Time"), mock.AnythingOfType("service.ReminderPayload")).
		Return(nil).
		Times(9)

	ids, err := svc.ScheduleOccurrence(context.Background(), alarm)
	require.NoError(t, err)
	assert.Len(t, ids, 9)
	assert.NotContains(t, ids, failedID)
}

func TestScheduleService_CancelOccurrence_ReconstructsAllIDs(t *testing.T) {
	mockRegistry := mockSvc.NewMockReminderRegistry(t)
	svc := newTestScheduleService(mockRegistry, time.Now())

	alarmID := uuid.New()
	for i := 0; i < 10; i++ {
		mockRegistry.EXPECT().Cancel(ReminderID(alarmID, i)).Return()
	}

	svc.CancelOccurrence(context.Background(), alarmID)
}

func TestScheduleService_RescheduleAll(t *testing.T) {
	mockRegistry := mockSvc.NewMockReminderRegistry(t)

	now := time.Date(2026, 1, 5, 7, 0, 0, 0, time.UTC)
	svc := newTestScheduleService(mockRegistry, now)

	enabled := &entity.Alarm{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		Hours:        8,
		SelectedDays: []entity.Weekday{entity.Weekday(time.Monday)},
		IsEnabled:    true,
	}
	disabled := &entity.Alarm{
		ID:           uuid.New(),
		Hours:        9,
		SelectedDays: []entity.Weekday{entity.Weekday(time.Tuesday)},
		IsEnabled:    false,
	}

	mockRegistry.EXPECT().CancelAll().Return()
	mockRegistry.EXPECT().
		ScheduleAt(mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time"), mock.AnythingOfType("service.ReminderPayload")).
		Run(func(ctx context.Context, id string, fireAt time.Time, payload service.ReminderPayload) {
			assert.Equal(t, enabled.ID, payload.AlarmID)
		}).
		Return(nil).
		Times(10)

	svc.RescheduleAll(context.Background(), []*entity.Alarm{enabled, disabled})
}

func TestReminderID_Deterministic(t *testing.T) {
	alarmID := uuid.MustParse("3d9f6a52-8f13-4c1c-9c0a-2f8f61f0a111")

	assert.Equal(t, "alarm:3d9f6a52-8f13-4c1c-9c0a-2f8f61f0a111:reminder:0", ReminderID(alarmID, 0))
	assert.Equal(t, "alarm:3d9f6a52-8f13-4c1c-9c0a-2f8f61f0a111:reminder:9", ReminderID(alarmID, 9))
	assert.Equal(t, ReminderID(alarmID, 3), ReminderID(alarmID, 3))
}

package impl

import (
	"context"
	"testing"
	"time"

	"wakeup/internal/domain/entity"
	"wakeup/internal/domain/repository"
	"wakeup/internal/domain/service"
	mockRepo "wakeup/internal/mocks/repository"
	mockSvc "wakeup/internal/mocks/service"
	mockUC "wakeup/internal/mocks/usecase"
	"wakeup/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type challengeServiceMocks struct {
	challengeRepo *mockRepo.MockChallengeRepository
	alarmRepo     *mockRepo.MockAlarmRepository
	scheduler     *mockUC.MockScheduleUsecase
	publisher     *mockSvc.MockEventPublisher
}

func newTestChallengeService(t *testing.T, now time.Time) (usecase.ChallengeUsecase, challengeServiceMocks) {
	mocks := challengeServiceMocks{
		challengeRepo: mockRepo.NewMockChallengeRepository(t),
		alarmRepo:     mockRepo.NewMockAlarmRepository(t),
		scheduler:     mockUC.NewMockScheduleUsecase(t),
		publisher:     mockSvc.NewMockEventPublisher(t),
	}

	svc := &challengeService{
		logger:        newTestLogger(),
		challengeRepo: mocks.challengeRepo,
		alarmRepo:     mocks.alarmRepo,
		scheduler:     mocks.scheduler,
		publisher:     mocks.publisher,
		now:           func() time.Time { return now },
	}

	return svc, mocks
}

func TestChallengeService_LogFired_CreatesPendingChallenge(t *testing.T) {
	now := time.Date(2026, 1, 5, 8, 0, 0, 0, time.UTC)
	svc, mocks := newTestChallengeService(t, now)

	ctx := context.Background()
	userID := uuid.New()
	alarmID := uuid.New()

	mocks.challengeRepo.EXPECT().
		FindPendingChallenge(ctx, userID, alarmID).
		Return(nil, repository.ErrChallengeNotFound)

	mocks.challengeRepo.EXPECT().
		CreateChallenge(ctx, mock.AnythingOfType("*entity.Challenge")).
		Run(func(ctx context.Context, challenge *entity.Challenge) {
			assert.Equal(t, userID, challenge.UserID)
			assert.Equal(t, alarmID, challenge.AlarmID)
			assert.Equal(t, entity.ChallengeStatusPending, challenge.Status)
			assert.Equal(t, now, challenge.SentAt)
			assert.Nil(t, challenge.CompletedAt)
			assert.Nil(t, challenge.AttemptsMade)
		}).
		Return(nil)

	challenge, err := svc.LogFired(ctx, userID, alarmID)
	require.NoError(t, err)
	require.NotNil(t, challenge)
	assert.Equal(t, entity.ChallengeStatusPending, challenge.Status)
}

func TestChallengeService_LogFired_ReusesPendingChallenge(t *testing.T) {
	now := time.Date(2026, 1, 5, 8, 0, 35, 0, time.UTC)
	svc, mocks := newTestChallengeService(t, now)

	ctx := context.Background()
	userID := uuid.New()
	alarmID := uuid.New()

	existing := &entity.Challenge{
		ID:      uuid.New(),
		UserID:  userID,
		AlarmID: alarmID,
		SentAt:  now.Add(-35 * time.Second),
		Status:  entity.ChallengeStatusPending,
	}

	// Second and third reminders of the same burst reuse the record; no
	// CreateChallenge expectation, so any create would fail the test.
	mocks.challengeRepo.EXPECT().
		FindPendingChallenge(ctx, userID, alarmID).
		Return(existing, nil).
		Twice()

	for i := 0; i < 2; i++ {
		challenge, err := svc.LogFired(ctx, userID, alarmID)
		require.NoError(t, err)
		assert.Equal(t, existing.ID, challenge.ID)
		assert.Equal(t, existing.SentAt, challenge.SentAt)
	}
}

func TestChallengeService_LogFired_StoreErrorPropagates(t *testing.T) {
	svc, mocks := newTestChallengeService(t, time.Now())

	ctx := context.Background()
	userID := uuid.New()
	alarmID := uuid.New()

	mocks.challengeRepo.EXPECT().
		FindPendingChallenge(ctx, userID, alarmID).
		Return(nil, errors.New("connection reset"))

	challenge, err := svc.LogFired(ctx, userID, alarmID)
	require.Error(t, err)
	assert.Nil(t, challenge)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestChallengeService_ResolveSuccess_ReschedulesAlarm(t *testing.T) {
	now := time.Date(2026, 1, 5, 8, 3, 0, 0, time.UTC)
	svc, mocks := newTestChallengeService(t, now)

	ctx := context.Background()
	challengeID := uuid.New()
	userID := uuid.New()
	alarm := &entity.Alarm{
		ID:           uuid.New(),
		UserID:       userID,
		Hours:        8,
		SelectedDays: []entity.Weekday{entity.Weekday(time.Monday)},
		IsEnabled:    true,
	}

	mocks.challengeRepo.EXPECT().
		ResolveChallenge(ctx, challengeID, entity.ChallengeStatusSuccess, now, 3).
		Return(nil)

	mocks.challengeRepo.EXPECT().
		FindChallengeByID(ctx, challengeID).
		Return(&entity.Challenge{
			ID:      challengeID,
			UserID:  userID,
			AlarmID: alarm.ID,
			SentAt:  now.Add(-3 * time.Minute),
			Status:  entity.ChallengeStatusSuccess,
		}, nil)

	mocks.publisher.EXPECT().
		PublishChallengeEvent(ctx, mock.MatchedBy(func(event *service.ChallengeEvent) bool {
			return event.ChallengeID == challengeID.String() &&
				event.Status == string(entity.ChallengeStatusSuccess) &&
				event.AttemptsMade == 3
		})).
		Return(nil)

	mocks.scheduler.EXPECT().CancelOccurrence(ctx, alarm.ID).Return()
	mocks.alarmRepo.EXPECT().FindAlarmByID(ctx, alarm.ID).Return(alarm, nil)
	mocks.scheduler.EXPECT().
		ScheduleOccurrence(ctx, alarm).
		Return([]string{ReminderID(alarm.ID, 0)}, nil)

	err := svc.ResolveSuccess(ctx, challengeID, 3, alarm.ID)
	require.NoError(t, err)
}

func TestChallengeService_ResolveFailure_ReschedulesIdentically(t *testing.T) {
	now := time.Date(2026, 1, 5, 8, 15, 0, 0, time.UTC)
	svc, mocks := newTestChallengeService(t, now)

	ctx := context.Background()
	challengeID := uuid.New()
	alarm := &entity.Alarm{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		Hours:        8,
		SelectedDays: []entity.Weekday{entity.Weekday(time.Monday)},
		IsEnabled:    true,
	}

	mocks.challengeRepo.EXPECT().
		ResolveChallenge(ctx, challengeID, entity.ChallengeStatusFailed, now, 2).
		Return(nil)
	mocks.challengeRepo.EXPECT().
		FindChallengeByID(ctx, challengeID).
		Return(&entity.Challenge{ID: challengeID, UserID: alarm.UserID, AlarmID: alarm.ID}, nil)
	mocks.publisher.EXPECT().
		PublishChallengeEvent(ctx, mock.AnythingOfType("*service.ChallengeEvent")).
		Return(nil)

	mocks.scheduler.EXPECT().CancelOccurrence(ctx, alarm.ID).Return()
	mocks.alarmRepo.EXPECT().FindAlarmByID(ctx, alarm.ID).Return(alarm, nil)
	mocks.scheduler.EXPECT().
		ScheduleOccurrence(ctx, alarm).
		Return([]string{ReminderID(alarm.ID, 0)}, nil)

	err := svc.ResolveFailure(ctx, challengeID, 2, alarm.ID)
	require.NoError(t, err)
}

func TestChallengeService_Resolve_StoreErrorPropagates(t *testing.T) {
	now := time.Date(2026, 1, 5, 8, 3, 0, 0, time.UTC)
	svc, mocks := newTestChallengeService(t, now)

	ctx := context.Background()
	challengeID := uuid.New()
	alarmID := uuid.New()

	// No fallback: a failed write must reach the caller, and no reschedule
	// or event may happen.
	mocks.challengeRepo.EXPECT().
		ResolveChallenge(ctx, challengeID, entity.ChallengeStatusSuccess, now, 1).
		Return(errors.New("write timeout"))

	err := svc.ResolveSuccess(ctx, challengeID, 1, alarmID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write timeout")
}

func TestChallengeService_Resolve_DeletedAlarmSkipsReschedule(t *testing.T) {
	now := time.Date(2026, 1, 5, 8, 3, 0, 0, time.UTC)
	svc, mocks := newTestChallengeService(t, now)

	ctx := context.Background()
	challengeID := uuid.New()
	alarmID := uuid.New()

	mocks.challengeRepo.EXPECT().
		ResolveChallenge(ctx, challengeID, entity.ChallengeStatusSuccess, now, 1).
		Return(nil)
	mocks.challengeRepo.EXPECT().
		FindChallengeByID(ctx, challengeID).
		Return(&entity.Challenge{ID: challengeID, AlarmID: alarmID}, nil)
	mocks.publisher.EXPECT().
		PublishChallengeEvent(ctx, mock.AnythingOfType("*service.ChallengeEvent")).
		Return(nil)

	// Outstanding reminders still come down even though the alarm is gone.
	mocks.scheduler.EXPECT().CancelOccurrence(ctx, alarmID).Return()
	mocks.alarmRepo.EXPECT().
		FindAlarmByID(ctx, alarmID).
		Return(nil, repository.ErrAlarmNotFound)

	err := svc.ResolveSuccess(ctx, challengeID, 1, alarmID)
	require.NoError(t, err)
}

func TestChallengeService_Resolve_DisabledAlarmSkipsReschedule(t *testing.T) {
	now := time.Date(2026, 1, 5, 8, 3, 0, 0, time.UTC)
	svc, mocks := newTestChallengeService(t, now)

	ctx := context.Background()
	challengeID := uuid.New()
	alarm := &entity.Alarm{
		ID:           uuid.New(),
		Hours:        8,
		SelectedDays: []entity.Weekday{entity.Weekday(time.Monday)},
		IsEnabled:    false,
	}

	mocks.challengeRepo.EXPECT().
		ResolveChallenge(ctx, challengeID, entity.ChallengeStatusFailed, now, 0).
		Return(nil)
	mocks.challengeRepo.EXPECT().
		FindChallengeByID(ctx, challengeID).
		Return(&entity.Challenge{ID: challengeID, AlarmID: alarm.ID}, nil)
	mocks.publisher.EXPECT().
		PublishChallengeEvent(ctx, mock.AnythingOfType("*service.ChallengeEvent")).
		Return(nil)

	mocks.scheduler.EXPECT().CancelOccurrence(ctx, alarm.ID).Return()
	mocks.alarmRepo.EXPECT().FindAlarmByID(ctx, alarm.ID).Return(alarm, nil)

	err := svc.ResolveFailure(ctx, challengeID, 0, alarm.ID)
	require.NoError(t, err)
}

func TestChallengeService_Resolve_PublishFailureSwallowed(t *testing.T) {
	now := time.Date(2026, 1, 5, 8, 3, 0, 0, time.UTC)
	svc, mocks := newTestChallengeService(t, now)

	ctx := context.Background()
	challengeID := uuid.New()
	alarmID := uuid.New()

	mocks.challengeRepo.EXPECT().
		ResolveChallenge(ctx, challengeID, entity.ChallengeStatusSuccess, now, 1).
		Return(nil)
	mocks.challengeRepo.EXPECT().
		FindChallengeByID(ctx, challengeID).
		Return(&entity.Challenge{ID: challengeID, AlarmID: alarmID}, nil)
	mocks.publisher.EXPECT().
		PublishChallengeEvent(ctx, mock.AnythingOfType("*service.ChallengeEvent")).
		Return(errors.New("broker unavailable"))

	mocks.scheduler.EXPECT().CancelOccurrence(ctx, alarmID).Return()
	mocks.alarmRepo.EXPECT().
		FindAlarmByID(ctx, alarmID).
		Return(nil, repository.ErrAlarmNotFound)

	err := svc.ResolveSuccess(ctx, challengeID, 1, alarmID)
	require.NoError(t, err)
}

func TestChallengeService_GetPending(t *testing.T) {
	svc, mocks := newTestChallengeService(t, time.Now())

	ctx := context.Background()
	userID := uuid.New()

	pending := &entity.Challenge{
		ID:     uuid.New(),
		UserID: userID,
		Status: entity.ChallengeStatusPending,
	}

	mocks.challengeRepo.EXPECT().
		FindLatestPendingByUser(ctx, userID).
		Return(pending, nil)

	challenge, err := svc.GetPending(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, pending.ID, challenge.ID)
}

func TestChallengeService_GetPending_NoneIsNotAnError(t *testing.T) {
	svc, mocks := newTestChallengeService(t, time.Now())

	ctx := context.Background()
	userID := uuid.New()

	mocks.challengeRepo.EXPECT().
		FindLatestPendingByUser(ctx, userID).
		Return(nil, repository.ErrChallengeNotFound)

	challenge, err := svc.GetPending(ctx, userID)
	require.NoError(t, err)
	assert.Nil(t, challenge)
}

func TestChallengeService_GetHistory(t *testing.T) {
	svc, mocks := newTestChallengeService(t, time.Now())

	ctx := context.Background()
	userID := uuid.New()
	history := []*entity.Challenge{
		{ID: uuid.New(), Status: entity.ChallengeStatusSuccess},
		{ID: uuid.New(), Status: entity.ChallengeStatusFailed},
	}

	mocks.challengeRepo.EXPECT().
		FindChallengesByUser(ctx, userID, 20, 0).
		Return(history, nil)

	got, err := svc.GetHistory(ctx, userID, 20, 0)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

package impl

import (
	"context"
	"testing"
	"time"

	"wakeup/internal/domain/entity"
	domainerrors "wakeup/internal/domain/errors"
	mockUC "wakeup/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestSessionService(t *testing.T, now time.Time) (*sessionService, *mockUC.MockChallengeUsecase) {
	tracker := mockUC.NewMockChallengeUsecase(t)

	svc := &sessionService{
		logger:         newTestLogger(),
		tracker:        tracker,
		window:         15 * time.Minute,
		tickInterval:   time.Second,
		matchThreshold: 0.8,
		wordCount:      4,
		sessions:       make(map[uuid.UUID]*liveSession),
		now:            func() time.Time { return now },
	}

	return svc, tracker
}

func TestSessionService_Recover_NothingPending(t *testing.T) {
	svc, tracker := newTestSessionService(t, time.Now())

	ctx := context.Background()
	userID := uuid.New()

	tracker.EXPECT().GetPending(ctx, userID).Return(nil, nil)

	session, err := svc.Recover(ctx, userID)
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestSessionService_Recover_CountdownKeepsOriginalOrigin(t *testing.T) {
	// Challenge sent 10 minutes before the process came back: only 5 of the
	// 15 window minutes remain.
	now := time.Date(2026, 1, 5, 8, 10, 0, 0, time.UTC)
	svc, tracker := newTestSessionService(t, now)

	ctx := context.Background()
	userID := uuid.New()
	pending := &entity.Challenge{
		ID:      uuid.New(),
		UserID:  userID,
		AlarmID: uuid.New(),
		SentAt:  now.Add(-10 * time.Minute),
		Status:  entity.ChallengeStatusPending,
	}

	tracker.EXPECT().GetPending(ctx, userID).Return(pending, nil)

	session, err := svc.Recover(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, session)

	assert.Equal(t, pending.ID, session.ChallengeID)
	assert.Equal(t, pending.AlarmID, session.AlarmID)
	assert.Equal(t, now.Add(5*time.Minute), session.Deadline)
	assert.NotEmpty(t, session.Phrase)
	assert.Zero(t, session.Attempts)

	svc.Close(userID)
}

func TestSessionService_Recover_ExpiredChallengeFailsImmediately(t *testing.T) {
	now := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	svc, tracker := newTestSessionService(t, now)

	ctx := context.Background()
	userID := uuid.New()
	pending := &entity.Challenge{
		ID:      uuid.New(),
		UserID:  userID,
		AlarmID: uuid.New(),
		SentAt:  now.Add(-20 * time.Minute),
		Status:  entity.ChallengeStatusPending,
	}

	tracker.EXPECT().GetPending(ctx, userID).Return(pending, nil)
	tracker.EXPECT().ResolveFailure(ctx, pending.ID, 0, pending.AlarmID).Return(nil)

	session, err := svc.Recover(ctx, userID)
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestSessionService_Recover_ExistingSessionIsReturned(t *testing.T) {
	now := time.Date(2026, 1, 5, 8, 0, 30, 0, time.UTC)
	svc, tracker := newTestSessionService(t, now)

	ctx := context.Background()
	userID := uuid.New()
	pending := &entity.Challenge{
		ID:      uuid.New(),
		UserID:  userID,
		AlarmID: uuid.New(),
		SentAt:  now.Add(-30 * time.Second),
		Status:  entity.ChallengeStatusPending,
	}

	// GetPending is hit once; the second Recover finds the live session.
	tracker.EXPECT().GetPending(ctx, userID).Return(pending, nil).Once()

	first, err := svc.Recover(ctx, userID)
	require.NoError(t, err)
	second, err := svc.Recover(ctx, userID)
	require.NoError(t, err)

	assert.Equal(t, first.ChallengeID, second.ChallengeID)
	assert.Equal(t, first.Phrase, second.Phrase)

	svc.Close(userID)
}

func TestSessionService_Attempt_NoSession(t *testing.T) {
	svc, _ := newTestSessionService(t, time.Now())

	result, err := svc.Attempt(context.Background(), uuid.New(), "i am unstoppable")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNoActiveSession)
	assert.Nil(t, result)
}

func TestSessionService_Attempt_MismatchRepromptsWithoutStoreWrite(t *testing.T) {
	now := time.Date(2026, 1, 5, 8, 0, 30, 0, time.UTC)
	svc, tracker := newTestSessionService(t, now)

	ctx := context.Background()
	userID := uuid.New()
	pending := &entity.Challenge{
		ID:      uuid.New(),
		UserID:  userID,
		AlarmID: uuid.New(),
		SentAt:  now.Add(-30 * time.Second),
		Status:  entity.ChallengeStatusPending,
	}

	tracker.EXPECT().GetPending(ctx, userID).Return(pending, nil)

	session, err := svc.Recover(ctx, userID)
	require.NoError(t, err)

	// No resolve expectations registered: any store write fails the test.
	result, err := svc.Attempt(ctx, userID, "complete gibberish input")
	require.NoError(t, err)
	assert.False(t, result.Passed)
	assert.Equal(t, 1, result.Attempts)
	assert.Equal(t, session.Phrase, result.Phrase)

	result, err = svc.Attempt(ctx, userID, "still not the phrase")
	require.NoError(t, err)
	assert.False(t, result.Passed)
	assert.Equal(t, 2, result.Attempts)

	svc.Close(userID)
}

func TestSessionService_Attempt_MatchResolvesWithFullAttemptCount(t *testing.T) {
	now := time.Date(2026, 1, 5, 8, 0, 30, 0, time.UTC)
	svc, tracker := newTestSessionService(t, now)

	ctx := context.Background()
	userID := uuid.New()
	pending := &entity.Challenge{
		ID:      uuid.New(),
		UserID:  userID,
		AlarmID: uuid.New(),
		SentAt:  now.Add(-30 * time.Second),
		Status:  entity.ChallengeStatusPending,
	}

	tracker.EXPECT().GetPending(ctx, userID).Return(pending, nil)

	session, err := svc.Recover(ctx, userID)
	require.NoError(t, err)

	// One miss, then a hit. The successful submission counts too, so the
	// recorded total is 2.
	tracker.EXPECT().ResolveSuccess(ctx, pending.ID, 2, pending.AlarmID).Return(nil)

	result, err := svc.Attempt(ctx, userID, "wrong words entirely here")
	require.NoError(t, err)
	assert.False(t, result.Passed)

	result, err = svc.Attempt(ctx, userID, session.Phrase)
	require.NoError(t, err)
	assert.True(t, result.Passed)
	assert.Equal(t, 2, result.Attempts)

	// The session is gone once resolved.
	_, err = svc.Attempt(ctx, userID, session.Phrase)
	assert.ErrorIs(t, err, domainerrors.ErrNoActiveSession)
}

func TestSessionService_Close_LeavesChallengePending(t *testing.T) {
	now := time.Date(2026, 1, 5, 8, 0, 30, 0, time.UTC)
	svc, tracker := newTestSessionService(t, now)

	ctx := context.Background()
	userID := uuid.New()
	pending := &entity.Challenge{
		ID:      uuid.New(),
		UserID:  userID,
		AlarmID: uuid.New(),
		SentAt:  now.Add(-30 * time.Second),
		Status:  entity.ChallengeStatusPending,
	}

	tracker.EXPECT().GetPending(ctx, userID).Return(pending, nil).Once()

	_, err := svc.Recover(ctx, userID)
	require.NoError(t, err)

	// Close resolves nothing; the only tracker calls are the two GetPending.
	svc.Close(userID)

	_, err = svc.Attempt(ctx, userID, "anything")
	assert.ErrorIs(t, err, domainerrors.ErrNoActiveSession)

	// Recovering again reopens the same pending challenge.
	tracker.EXPECT().GetPending(ctx, userID).Return(pending, nil).Once()
	session, err := svc.Recover(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, pending.ID, session.ChallengeID)

	svc.Close(userID)
}

func TestSessionService_WatchDeadline_ExpiryResolvesFailure(t *testing.T) {
	svc, tracker := newTestSessionService(t, time.Now())
	svc.now = time.Now
	svc.window = 50 * time.Millisecond
	svc.tickInterval = 5 * time.Millisecond

	ctx := context.Background()
	userID := uuid.New()
	pending := &entity.Challenge{
		ID:      uuid.New(),
		UserID:  userID,
		AlarmID: uuid.New(),
		SentAt:  time.Now(),
		Status:  entity.ChallengeStatusPending,
	}

	tracker.EXPECT().GetPending(ctx, userID).Return(pending, nil)

	resolved := make(chan struct{})
	tracker.EXPECT().
		ResolveFailure(mock.Anything, pending.ID, 1, pending.AlarmID).
		Run(func(ctx context.Context, challengeID uuid.UUID, attemptsMade int, alarmID uuid.UUID) {
			close(resolved)
		}).
		Return(nil)

	_, err := svc.Recover(ctx, userID)
	require.NoError(t, err)

	// One failed attempt before the window runs out.
	result, err := svc.Attempt(ctx, userID, "not it")
	require.NoError(t, err)
	assert.False(t, result.Passed)

	select {
	case <-resolved:
	case <-time.After(2 * time.Second):
		t.Fatal("challenge window expiry never resolved the challenge")
	}

	// The expired session is gone.
	_, err = svc.Attempt(ctx, userID, "too late")
	assert.ErrorIs(t, err, domainerrors.ErrNoActiveSession)
}

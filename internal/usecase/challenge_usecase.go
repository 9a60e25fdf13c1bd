package usecase

import (
	"context"

	"wakeup/internal/domain/entity"

	"github.com/google/uuid"
)

// ChallengeUsecase defines the interface for the challenge tracker: the
// bookkeeping of verification challenges from first reminder delivery to
// terminal resolution, plus the rescheduling that follows every resolution.
type ChallengeUsecase interface {
	// LogFired records that a reminder for the alarm was delivered. The first
	// delivery of an occurrence creates a pending challenge; repeated
	// deliveries of the same burst return the existing pending challenge
	// unchanged, so a multi-reminder burst produces exactly one record.
	LogFired(ctx context.Context, userID, alarmID uuid.UUID) (*entity.Challenge, error)

	// ResolveSuccess moves the challenge to success, records the attempt
	// count, and schedules the alarm's next occurrence. A store failure
	// propagates: the record is authoritative and must not be faked.
	ResolveSuccess(ctx context.Context, challengeID uuid.UUID, attemptsMade int, alarmID uuid.UUID) error

	// ResolveFailure is identical to ResolveSuccess but records failed.
	// It is reachable only from challenge window expiry, never from an
	// incorrect attempt submission.
	ResolveFailure(ctx context.Context, challengeID uuid.UUID, attemptsMade int, alarmID uuid.UUID) error

	// GetPending returns the user's most recently sent pending challenge,
	// or nil when there is none.
	GetPending(ctx context.Context, userID uuid.UUID) (*entity.Challenge, error)

	// GetHistory returns the user's challenge history, newest first.
	GetHistory(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Challenge, error)
}

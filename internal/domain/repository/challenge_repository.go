package repository

import (
	"context"
	"errors"
	"time"

	"wakeup/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for challenge persistence.
var (
	// ErrChallengeNotFound is returned when a challenge is not found.
	ErrChallengeNotFound = errors.New("challenge not found")
	// ErrChallengeTerminal is returned when attempting to resolve a challenge
	// that already reached success or failed.
	ErrChallengeTerminal = errors.New("challenge already in a terminal status")
)

// ChallengeRepository defines the interface for challenge-related database
// operations. Challenge history is append-only: records are created once,
// resolved once and never deleted by normal operation.
type ChallengeRepository interface {
	// CreateChallenge persists a new pending challenge.
	CreateChallenge(ctx context.Context, challenge *entity.Challenge) error

	// FindChallengeByID retrieves a challenge by its unique ID.
	FindChallengeByID(ctx context.Context, id uuid.UUID) (*entity.Challenge, error)

	// FindPendingChallenge retrieves the most recently sent pending challenge
	// for a (user, alarm) pair, or ErrChallengeNotFound if none exists.
	FindPendingChallenge(ctx context.Context, userID, alarmID uuid.UUID) (*entity.Challenge, error)

	// FindLatestPendingByUser retrieves the most recently sent pending
	// challenge for a user across all alarms, or ErrChallengeNotFound.
	FindLatestPendingByUser(ctx context.Context, userID uuid.UUID) (*entity.Challenge, error)

	// ResolveChallenge moves a pending challenge to a terminal status,
	// recording the completion time and the number of attempts made.
	// It returns ErrChallengeTerminal if the challenge is no longer pending.
	ResolveChallenge(ctx context.Context, id uuid.UUID, status entity.ChallengeStatus, completedAt time.Time, attemptsMade int) error

	// FindChallengesByUser retrieves a user's challenge history ordered by
	// sent time descending, with pagination.
	FindChallengesByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Challenge, error)
}

package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ChallengeSession is the live, in-memory state of one open verification
// challenge. The phrase is generated when the session surfaces and is never
// persisted; a session restored after a process restart gets a fresh one.
type ChallengeSession struct {
	ChallengeID uuid.UUID `json:"challenge_id"`
	AlarmID     uuid.UUID `json:"alarm_id"`
	Phrase      string    `json:"phrase"`
	Deadline    time.Time `json:"deadline"` // SentAt + challenge window; survives restarts.
	Attempts    int       `json:"attempts"` // Submissions made so far in this session.
}

// AttemptResult reports the outcome of one phrase submission.
type AttemptResult struct {
	Passed   bool   `json:"passed"`
	Attempts int    `json:"attempts"`
	Phrase   string `json:"phrase"` // Re-prompted target phrase when not passed.
}

// SessionUsecase manages at most one live challenge session per user: phrase
// generation and matching, the attempt counter, and the countdown that fails
// the challenge when the window expires.
type SessionUsecase interface {
	// Recover finds the user's pending challenge, if any, and returns a live
	// session for it with a newly generated phrase. The countdown origin is
	// the challenge's original sent time, so time elapsed before a restart
	// still counts against the window. Returns nil when nothing is pending.
	Recover(ctx context.Context, userID uuid.UUID) (*ChallengeSession, error)

	// Attempt matches the candidate text against the session's phrase.
	// A match resolves the challenge as success; a mismatch increments the
	// in-memory attempt counter and re-prompts without touching the store.
	Attempt(ctx context.Context, userID uuid.UUID, candidate string) (*AttemptResult, error)

	// Close tears down the user's live session and its countdown without
	// resolving the challenge (UI dismissed; the record stays pending).
	Close(userID uuid.UUID)
}

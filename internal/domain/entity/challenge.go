package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChallengeStatus is the lifecycle status of a verification challenge.
// Transitions are forward-only: pending may move to success or failed,
// and both of those are terminal.
type ChallengeStatus string

const (
	// ChallengeStatusPending is the sole non-terminal status.
	ChallengeStatusPending ChallengeStatus = "pending"
	// ChallengeStatusSuccess means the user passed the verification.
	ChallengeStatusSuccess ChallengeStatus = "success"
	// ChallengeStatusFailed means the challenge window expired.
	ChallengeStatusFailed ChallengeStatus = "failed"
)

// IsTerminal reports whether no further transition may leave this status.
func (s ChallengeStatus) IsTerminal() bool {
	return s == ChallengeStatusSuccess || s == ChallengeStatusFailed
}

// CanTransitionTo reports whether moving from s to next is a legal transition.
func (s ChallengeStatus) CanTransitionTo(next ChallengeStatus) bool {
	return s == ChallengeStatusPending && next.IsTerminal()
}

// Challenge is a persisted record of one verification attempt window tied to
// a single firing of a single alarm. At most one pending Challenge exists per
// (user, alarm) pair at any time; many resolved Challenges accumulate per
// alarm over its lifetime. A Challenge outlives its alarm if the alarm is
// deleted, keeping an orphan alarm reference.
type Challenge struct {
	ID           uuid.UUID       `json:"id"`                      // Store-assigned opaque identifier.
	UserID       uuid.UUID       `json:"user_id"`                 // The ID of the user this challenge belongs to.
	AlarmID      uuid.UUID       `json:"alarm_id"`                // The ID of the alarm whose firing created this challenge.
	SentAt       time.Time       `json:"sent_at"`                 // When the first reminder for the occurrence was delivered.
	Status       ChallengeStatus `json:"status"`                  // pending, success or failed.
	CompletedAt  *time.Time      `json:"completed_at,omitempty"`  // Set only when the challenge reaches a terminal status.
	AttemptsMade *int            `json:"attempts_made,omitempty"` // Set only at resolution, counts all submissions including a final successful one.
}

// Deadline returns the instant the challenge window closes, given the fixed
// window duration. The origin is SentAt, so time elapsed before a process
// restart still counts against the window.
func (c *Challenge) Deadline(window time.Duration) time.Time {
	return c.SentAt.Add(window)
}

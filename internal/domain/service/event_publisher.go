package service

import (
	"context"
	"time"
)

// ChallengeEvent describes a challenge reaching a terminal status. Published
// for downstream consumers (stats, streaks) after every resolution.
type ChallengeEvent struct {
	RequestID    string    `json:"request_id,omitempty"` // For distributed tracing
	ChallengeID  string    `json:"challenge_id"`
	AlarmID      string    `json:"alarm_id"`
	UserID       string    `json:"user_id"`
	Status       string    `json:"status"` // success or failed
	AttemptsMade int       `json:"attempts_made"`
	SentAt       time.Time `json:"sent_at"`
	CompletedAt  time.Time `json:"completed_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishChallengeEvent publishes a challenge resolution event for async processing
	PublishChallengeEvent(ctx context.Context, event *ChallengeEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

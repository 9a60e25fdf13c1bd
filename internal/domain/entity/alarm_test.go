package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustLocal builds a local time for test scenarios.
func mustLocal(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.Local)
}

func TestAlarm_NextOccurrence_EmptyDaySet(t *testing.T) {
	alarm := &Alarm{Hours: 8, Minutes: 0, SelectedDays: nil}

	_, ok := alarm.NextOccurrence(time.Now())

	assert.False(t, ok, "alarm with no selected days must be unschedulable")
}

func TestAlarm_NextOccurrence_TodayStillAhead(t *testing.T) {
	// 2026-01-05 is a Monday.
	now := mustLocal(2026, time.January, 5, 7, 30)
	alarm := &Alarm{Hours: 8, Minutes: 0, SelectedDays: []Weekday{1}}

	next, ok := alarm.NextOccurrence(now)

	require.True(t, ok)
	assert.Equal(t, mustLocal(2026, time.January, 5, 8, 0), next)
}

func TestAlarm_NextOccurrence_TodayAlreadyPassed(t *testing.T) {
	// Monday 08:05 with Monday-only alarm resolves to next Monday, not today.
	now := mustLocal(2026, time.January, 5, 8, 5)
	alarm := &Alarm{Hours: 8, Minutes: 0, SelectedDays: []Weekday{1}}

	next, ok := alarm.NextOccurrence(now)

	require.True(t, ok)
	assert.Equal(t, mustLocal(2026, time.January, 12, 8, 0), next)
}

func TestAlarm_NextOccurrence_ExactInstantRejected(t *testing.T) {
	// A candidate equal to now is not strictly in the future.
	now := mustLocal(2026, time.January, 5, 8, 0)
	alarm := &Alarm{Hours: 8, Minutes: 0, SelectedDays: []Weekday{1}}

	next, ok := alarm.NextOccurrence(now)

	require.True(t, ok)
	assert.Equal(t, mustLocal(2026, time.January, 12, 8, 0), next)
}

func TestAlarm_NextOccurrence_PicksEarliestSelectedDay(t *testing.T) {
	// Monday evening, alarm on Wednesday (3) and Saturday (6).
	now := mustLocal(2026, time.January, 5, 22, 0)
	alarm := &Alarm{Hours: 6, Minutes: 45, SelectedDays: []Weekday{6, 3}}

	next, ok := alarm.NextOccurrence(now)

	require.True(t, ok)
	assert.Equal(t, mustLocal(2026, time.January, 7, 6, 45), next)
	assert.Equal(t, time.Wednesday, next.Weekday())
}

func TestAlarm_NextOccurrence_AlwaysWithinAWeek(t *testing.T) {
	now := mustLocal(2026, time.January, 5, 12, 0)

	for day := Weekday(0); day <= 6; day++ {
		alarm := &Alarm{Hours: 0, Minutes: 30, SelectedDays: []Weekday{day}}

		next, ok := alarm.NextOccurrence(now)

		require.True(t, ok)
		assert.True(t, next.After(now), "occurrence must be strictly in the future")
		assert.LessOrEqual(t, next.Sub(now), 7*24*time.Hour, "occurrence must fall within the next 7 days")
		assert.Equal(t, time.Weekday(day), next.Weekday())
	}
}

func TestAlarm_FiresOn(t *testing.T) {
	alarm := &Alarm{SelectedDays: []Weekday{0, 6}}

	assert.True(t, alarm.FiresOn(time.Sunday))
	assert.True(t, alarm.FiresOn(time.Saturday))
	assert.False(t, alarm.FiresOn(time.Wednesday))
}

func TestChallengeStatus_Transitions(t *testing.T) {
	assert.True(t, ChallengeStatusPending.CanTransitionTo(ChallengeStatusSuccess))
	assert.True(t, ChallengeStatusPending.CanTransitionTo(ChallengeStatusFailed))

	// Terminal statuses never move again, in any direction.
	for _, terminal := range []ChallengeStatus{ChallengeStatusSuccess, ChallengeStatusFailed} {
		assert.True(t, terminal.IsTerminal())
		assert.False(t, terminal.CanTransitionTo(ChallengeStatusPending))
		assert.False(t, terminal.CanTransitionTo(ChallengeStatusSuccess))
		assert.False(t, terminal.CanTransitionTo(ChallengeStatusFailed))
	}

	assert.False(t, ChallengeStatusPending.IsTerminal())
	assert.False(t, ChallengeStatusPending.CanTransitionTo(ChallengeStatusPending))
}

func TestChallenge_Deadline(t *testing.T) {
	sent := mustLocal(2026, time.January, 5, 8, 0)
	challenge := &Challenge{SentAt: sent}

	assert.Equal(t, sent.Add(15*time.Minute), challenge.Deadline(15*time.Minute))
}

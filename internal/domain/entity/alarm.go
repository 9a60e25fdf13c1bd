// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Weekday mirrors time.Weekday numbering: 0=Sunday .. 6=Saturday.
type Weekday int

// Alarm represents a recurring wake-up definition owned by a single user.
// Its current enabled flag, time of day and weekday set fully determine
// future scheduling; nothing else mutates it implicitly.
type Alarm struct {
	ID           uuid.UUID `json:"id"`            // Store-assigned opaque identifier.
	UserID       uuid.UUID `json:"user_id"`       // The ID of the user who owns this alarm.
	Hours        int       `json:"hours"`         // Hour of day the alarm fires (0-23).
	Minutes      int       `json:"minutes"`       // Minute of the hour the alarm fires (0-59).
	SelectedDays []Weekday `json:"selected_days"` // Weekdays the alarm is active on (0=Sunday).
	IsEnabled    bool      `json:"is_enabled"`    // Whether the alarm participates in scheduling.
	CreatedAt    time.Time `json:"created_at"`    // Timestamp of when this alarm was created.
	UpdatedAt    time.Time `json:"updated_at"`    // Timestamp of the last modification.
}

// FiresOn reports whether the alarm is active on the given weekday.
func (a *Alarm) FiresOn(day time.Weekday) bool {
	for _, d := range a.SelectedDays {
		if time.Weekday(d) == day {
			return true
		}
	}

	return false
}

// NextOccurrence computes the next instant at or after now at which the alarm
// should fire, in now's location. It scans forward day by day from today up
// to a full week ahead; a candidate on today's date is rejected unless it is
// strictly in the future, so an alarm whose time of day has already passed
// resolves to its next matching weekday instead of firing again today.
//
// An alarm with an empty weekday set is unschedulable and returns ok=false.
func (a *Alarm) NextOccurrence(now time.Time) (time.Time, bool) {
	if len(a.SelectedDays) == 0 {
		return time.Time{}, false
	}

	for offset := 0; offset <= 7; offset++ {
		day := now.AddDate(0, 0, offset)
		if !a.FiresOn(day.Weekday()) {
			continue
		}

		candidate := time.Date(day.Year(), day.Month(), day.Day(), a.Hours, a.Minutes, 0, 0, now.Location())
		if offset == 0 && !candidate.After(now) {
			continue
		}

		return candidate, true
	}

	return time.Time{}, false
}

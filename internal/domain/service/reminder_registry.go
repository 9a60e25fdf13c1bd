package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ReminderPayload is attached to every scheduled reminder so the delivery
// handler can recover its context without any lookup.
type ReminderPayload struct {
	AlarmID      uuid.UUID `json:"alarm_id"`
	UserID       uuid.UUID `json:"user_id"`
	OccurrenceAt time.Time `json:"occurrence_at"` // Base instant of the occurrence this reminder belongs to.
	Index        int       `json:"index"`         // Position of this reminder within the burst.
}

// DeliveryHandler is invoked when a scheduled reminder fires.
type DeliveryHandler func(ctx context.Context, payload ReminderPayload)

// ReminderRegistry is the process-wide registry of locally scheduled
// reminders. It is the only component allowed to mutate the underlying
// timer state, which keeps reminder identifiers collision-free.
//
// Identifiers are caller-supplied and deterministic, so a whole burst can be
// cancelled by reconstructing its identifiers without querying what was
// scheduled.
type ReminderRegistry interface {
	// ScheduleAt registers a one-shot reminder. Scheduling an identifier that
	// already exists replaces the previous entry.
	ScheduleAt(ctx context.Context, id string, fireAt time.Time, payload ReminderPayload) error

	// Cancel removes a scheduled reminder. Cancelling an identifier that was
	// never scheduled, or that already fired, is a no-op.
	Cancel(id string)

	// CancelAll removes every scheduled reminder.
	CancelAll()

	// OnDelivered registers the handler invoked when a reminder fires.
	OnDelivered(handler DeliveryHandler)
}

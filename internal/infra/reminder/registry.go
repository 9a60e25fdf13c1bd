// Package reminder provides the in-process timer registry behind the
// notification scheduler.
package reminder

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"wakeup/internal/domain/service"

	"github.com/pkg/errors"
)

// deliveryTimeout bounds the work one reminder delivery may do.
const deliveryTimeout = 30 * time.Second

// timerRegistry implements service.ReminderRegistry on plain time.AfterFunc
// timers keyed by reminder identifier. Entries are in-memory only; restarts
// rely on the startup sweep rebuilding the registry from the store.
type timerRegistry struct {
	logger *slog.Logger

	mu      sync.Mutex
	timers  map[string]*time.Timer
	handler service.DeliveryHandler
}

// NewRegistry creates an empty reminder registry.
func NewRegistry(logger *slog.Logger) service.ReminderRegistry {
	return &timerRegistry{
		logger: logger,
		timers: make(map[string]*time.Timer),
	}
}

// ScheduleAt registers a timer that delivers the payload at fireAt.
// Scheduling an identifier that is already registered replaces its timer.
func (r *timerRegistry) ScheduleAt(ctx context.Context, id string, fireAt time.Time, payload service.ReminderPayload) error {
	delay := time.Until(fireAt)
	if delay <= 0 {
		return errors.Errorf("fire time %s is not in the future", fireAt.Format(time.RFC3339))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.timers[id]; ok {
		existing.Stop()
	}

	r.timers[id] = time.AfterFunc(delay, func() {
		r.fire(id, payload)
	})

	r.logger.Debug("Reminder scheduled",
		slog.String("reminderID", id),
		slog.Time("fireAt", fireAt),
	)

	return nil
}

// Cancel stops and removes one timer. Unknown identifiers are ignored, so a
// whole burst can be cancelled by reconstructed ids without bookkeeping.
func (r *timerRegistry) Cancel(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if timer, ok := r.timers[id]; ok {
		timer.Stop()
		delete(r.timers, id)
	}
}

// CancelAll stops and removes every registered timer.
func (r *timerRegistry) CancelAll() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, timer := range r.timers {
		timer.Stop()
		delete(r.timers, id)
	}
}

// OnDelivered installs the handler invoked when a timer fires. Reminders that
// fire before a handler is installed are dropped with a warning.
func (r *timerRegistry) OnDelivered(handler service.DeliveryHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.handler = handler
}

func (r *timerRegistry) fire(id string, payload service.ReminderPayload) {
	r.mu.Lock()
	delete(r.timers, id)
	handler := r.handler
	r.mu.Unlock()

	if handler == nil {
		r.logger.Warn("Reminder fired with no delivery handler installed",
			slog.String("reminderID", id),
		)

		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), deliveryTimeout)
	defer cancel()

	handler(ctx, payload)
}

package reminder

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"wakeup/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry() service.ReminderRegistry {
	return NewRegistry(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestTimerRegistry_ScheduleAt_DeliversPayload(t *testing.T) {
	registry := newTestRegistry()

	payload := service.ReminderPayload{
		AlarmID:      uuid.New(),
		UserID:       uuid.New(),
		OccurrenceAt: time.Now(),
		Index:        3,
	}

	delivered := make(chan service.ReminderPayload, 1)
	registry.OnDelivered(func(ctx context.Context, got service.ReminderPayload) {
		delivered <- got
	})

	err := registry.ScheduleAt(context.Background(), "r1", time.Now().Add(10*time.Millisecond), payload)
	require.NoError(t, err)

	select {
	case got := <-delivered:
		assert.Equal(t, payload.AlarmID, got.AlarmID)
		assert.Equal(t, payload.Index, got.Index)
	case <-time.After(2 * time.Second):
		t.Fatal("reminder never delivered")
	}
}

func TestTimerRegistry_ScheduleAt_RejectsPastInstant(t *testing.T) {
	registry := newTestRegistry()

	err := registry.ScheduleAt(context.Background(), "r1", time.Now().Add(-time.Second), service.ReminderPayload{})
	require.Error(t, err)
}

func TestTimerRegistry_Cancel_PreventsDelivery(t *testing.T) {
	registry := newTestRegistry()

	fired := make(chan struct{}, 1)
	registry.OnDelivered(func(ctx context.Context, payload service.ReminderPayload) {
		fired <- struct{}{}
	})

	err := registry.ScheduleAt(context.Background(), "r1", time.Now().Add(50*time.Millisecond), service.ReminderPayload{})
	require.NoError(t, err)

	registry.Cancel("r1")

	select {
	case <-fired:
		t.Fatal("cancelled reminder still fired")
	case <-time.After(150 * time.Millisecond):
	}
}

func TestTimerRegistry_Cancel_UnknownIDIsNoop(t *testing.T) {
	registry := newTestRegistry()
	registry.Cancel("never-scheduled")
}

func TestTimerRegistry_CancelAll(t *testing.T) {
	registry := newTestRegistry()

	var mu sync.Mutex
	firedCount := 0
	registry.OnDelivered(func(ctx context.Context, payload service.ReminderPayload) {
		mu.Lock()
		firedCount++
		mu.Unlock()
	})

	for i := 0; i < 5; i++ {
		err := registry.ScheduleAt(context.Background(), fmt.Sprintf("r%d", i), time.Now().Add(50*time.Millisecond), service.ReminderPayload{Index: i})
		require.NoError(t, err)
	}

	registry.CancelAll()
	time.Sleep(150 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Zero(t, firedCount)
}

func TestTimerRegistry_ScheduleAt_SameIDReplaces(t *testing.T) {
	registry := newTestRegistry()

	delivered := make(chan service.ReminderPayload, 2)
	registry.OnDelivered(func(ctx context.Context, payload service.ReminderPayload) {
		delivered <- payload
	})

	err := registry.ScheduleAt(context.Background(), "r1", time.Now().Add(40*time.Millisecond), service.ReminderPayload{Index: 1})
	require.NoError(t, err)
	err = registry.ScheduleAt(context.Background(), "r1", time.Now().Add(40*time.Millisecond), service.ReminderPayload{Index: 2})
	require.NoError(t, err)

	select {
	case payload := <-delivered:
		assert.Equal(t, 2, payload.Index)
	case <-time.After(2 * time.Second):
		t.Fatal("replacement reminder never delivered")
	}

	select {
	case <-delivered:
		t.Fatal("replaced reminder fired as well")
	case <-time.After(100 * time.Millisecond):
	}
}

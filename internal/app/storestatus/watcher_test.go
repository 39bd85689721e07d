package storestatus

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sabordacasa/storefront/internal/adapter/bus"
	"github.com/sabordacasa/storefront/internal/adapter/logger"
	"github.com/sabordacasa/storefront/internal/adapter/memory"
	"github.com/sabordacasa/storefront/internal/app/settings"
	"github.com/sabordacasa/storefront/internal/interfaces"
)

// Default weekday window is 11:00-23:00.
var (
	insideHours  = time.Date(2026, 8, 3, 12, 0, 0, 0, time.UTC)
	outsideHours = time.Date(2026, 8, 3, 3, 0, 0, 0, time.UTC)
)

func newWatcher(t *testing.T) (*Watcher, *bus.Bus) {
	t.Helper()
	lgr := logger.Nop()
	eventBus := bus.New(lgr)
	settingsSvc := settings.NewService(memory.New(), eventBus, settings.DefaultQRGenerator{}, lgr)
	return NewWatcher(settingsSvc, eventBus, lgr, time.Minute), eventBus
}

func TestEvaluate_FlipsAndBroadcasts(t *testing.T) {
	ctx := context.Background()
	watcher, eventBus := newWatcher(t)

	events, cancel := eventBus.Subscribe()
	defer cancel()

	watcher.now = func() time.Time { return outsideHours }
	watcher.evaluate(ctx, false)
	assert.False(t, watcher.IsOpen())

	event := <-events
	assert.Equal(t, interfaces.EventStoreStatus, event.Type)
	assert.Equal(t, map[string]any{"open": false}, event.Data)

	// Unchanged state without force stays silent.
	watcher.evaluate(ctx, false)
	select {
	case event := <-events:
		t.Fatalf("unexpected event %q", event.Type)
	default:
	}

	watcher.now = func() time.Time { return insideHours }
	watcher.evaluate(ctx, false)
	assert.True(t, watcher.IsOpen())

	event = <-events
	assert.Equal(t, map[string]any{"open": true}, event.Data)
}

func TestEvaluate_ForceBroadcastsUnchanged(t *testing.T) {
	ctx := context.Background()
	watcher, eventBus := newWatcher(t)

	events, cancel := eventBus.Subscribe()
	defer cancel()

	watcher.now = func() time.Time { return insideHours }
	watcher.evaluate(ctx, true)
	assert.True(t, watcher.IsOpen())

	event := <-events
	assert.Equal(t, interfaces.EventStoreStatus, event.Type)
}

func TestRun_InitialEvaluation(t *testing.T) {
	ctx, cancelRun := context.WithCancel(context.Background())
	defer cancelRun()

	watcher, eventBus := newWatcher(t)
	watcher.now = func() time.Time { return outsideHours }

	events, cancel := eventBus.Subscribe()
	defer cancel()

	done := make(chan struct{})
	go func() {
		watcher.Run(ctx)
		close(done)
	}()

	select {
	case event := <-events:
		require.Equal(t, interfaces.EventStoreStatus, event.Type)
		assert.Equal(t, map[string]any{"open": false}, event.Data)
	case <-time.After(2 * time.Second):
		t.Fatal("no initial store_status event")
	}
	assert.False(t, watcher.IsOpen())

	cancelRun()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

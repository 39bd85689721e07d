package storestatus

import (
	"context"
	"sync"
	"time"

	"github.com/sabordacasa/storefront/internal/adapter/logger"
	"github.com/sabordacasa/storefront/internal/domain"
	"github.com/sabordacasa/storefront/internal/interfaces"
)

// Watcher re-evaluates the business-hours table on a fixed interval so
// the storefront reflects day and time changes without a reload. The
// hours data itself has no push mechanism; polling is the contract.
type Watcher struct {
	settings interfaces.SettingsService
	bus      interfaces.EventBus
	logger   logger.Logger
	interval time.Duration
	now      func() time.Time

	mu   sync.RWMutex
	open bool
}

func NewWatcher(settings interfaces.SettingsService, bus interfaces.EventBus, lgr logger.Logger, interval time.Duration) *Watcher {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Watcher{
		settings: settings,
		bus:      bus,
		logger:   lgr,
		interval: interval,
		now:      time.Now,
		open:     true,
	}
}

// IsOpen returns the last evaluated state.
func (w *Watcher) IsOpen() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.open
}

// Run polls until ctx is cancelled, broadcasting a store_status event
// on every open/closed flip. Settings changes take effect on the next
// tick at the latest; an immediate re-check also runs on every
// settings_updated event.
func (w *Watcher) Run(ctx context.Context) {
	events, cancel := w.bus.Subscribe()
	defer cancel()

	w.evaluate(ctx, true)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.evaluate(ctx, false)
		case event, ok := <-events:
			if !ok {
				return
			}
			if event.Type == interfaces.EventSettingsUpdated {
				w.evaluate(ctx, false)
			}
		}
	}
}

func (w *Watcher) evaluate(ctx context.Context, force bool) {
	storeSettings, err := w.settings.Store(ctx)
	if err != nil {
		w.logger.Error("store_status_check_failed", "Failed to load store settings", "", nil, err)
		return
	}

	open := domain.IsOpenAt(storeSettings.BusinessHours, w.now())

	w.mu.Lock()
	changed := open != w.open
	w.open = open
	w.mu.Unlock()

	if changed || force {
		w.bus.Publish(ctx, interfaces.Event{
			Type: interfaces.EventStoreStatus,
			Data: map[string]any{"open": open},
		})
		w.logger.Info("store_status_changed", "Store open state evaluated", "", map[string]interface{}{
			"open": open,
		})
	}
}

package bus

import (
	"context"
	"sync"

	"github.com/sabordacasa/storefront/internal/adapter/logger"
	"github.com/sabordacasa/storefront/internal/interfaces"
)

// Bus is the in-process event bus. Writers publish after a successful
// persistence write; already-rendered views subscribe so they refresh
// without a reload.
type Bus struct {
	mu     sync.RWMutex
	subs   map[chan interfaces.Event]struct{}
	logger logger.Logger
}

func New(lgr logger.Logger) *Bus {
	return &Bus{
		subs:   make(map[chan interfaces.Event]struct{}),
		logger: lgr,
	}
}

var _ interfaces.EventBus = (*Bus)(nil)

func (b *Bus) Publish(ctx context.Context, event interfaces.Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for ch := range b.subs {
		select {
		case ch <- event:
		default:
			b.logger.Warn("event_dropped", "Subscriber channel full, dropping event", "", map[string]interface{}{
				"event_type": event.Type,
			})
		}
	}
}

func (b *Bus) Subscribe() (<-chan interfaces.Event, func()) {
	ch := make(chan interfaces.Event, 16)

	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		if _, ok := b.subs[ch]; ok {
			delete(b.subs, ch)
			close(ch)
		}
		b.mu.Unlock()
	}
	return ch, cancel
}

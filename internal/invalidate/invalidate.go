// Package invalidate carries the cache-invalidation signal emitted after
// every successful verification decision. The engine only emits; cache
// lifetimes belong to whoever subscribes.
package invalidate

import (
	"sync"

	"github.com/google/uuid"
)

// EvidenceQueueKey identifies the merged evidence queue view.
const EvidenceQueueKey = "evidence-queue"

// Signal names what became stale: the order (when known) and a view key.
type Signal struct {
	OrderID  *uuid.UUID
	QueueKey string
}

// Bus is a minimal in-process fan-out of invalidation signals.
type Bus struct {
	mu   sync.RWMutex
	subs []func(Signal)
}

func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers fn for every future signal. Subscribers must not
// block; Emit calls them synchronously.
func (b *Bus) Subscribe(fn func(Signal)) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.subs = append(b.subs, fn)
}

func (b *Bus) Emit(signal Signal) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, fn := range b.subs {
		fn(signal)
	}
}

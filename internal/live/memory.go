package live

import (
	"context"
	"sync"
)

// MemoryBroadcaster is an in-process Broadcaster used by tests.
type MemoryBroadcaster struct {
	mu   sync.Mutex
	subs map[int64]map[chan Event]struct{}
}

func NewMemoryBroadcaster() *MemoryBroadcaster {
	return &MemoryBroadcaster{subs: make(map[int64]map[chan Event]struct{})}
}

func (b *MemoryBroadcaster) Publish(ctx context.Context, userID int64, ev Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.subs[userID] {
		select {
		case ch <- ev:
		default: // drop rather than block a slow subscriber
		}
	}
}

func (b *MemoryBroadcaster) Subscribe(ctx context.Context, userID int64) (<-chan Event, func()) {
	ch := make(chan Event, 16)

	b.mu.Lock()
	if b.subs[userID] == nil {
		b.subs[userID] = make(map[chan Event]struct{})
	}
	b.subs[userID][ch] = struct{}{}
	b.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs[userID], ch)
			b.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

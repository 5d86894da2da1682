package history

import (
	"context"
	"sync"

	"github.com/hanzicards/hanzicards-backend/internal/models"
)

// MemoryRecorder is an in-memory Recorder used by tests.
type MemoryRecorder struct {
	mu     sync.Mutex
	events []models.ReviewEvent
}

func NewMemoryRecorder() *MemoryRecorder {
	return &MemoryRecorder{}
}

func (r *MemoryRecorder) Record(ctx context.Context, ev models.ReviewEvent) error {
	r.mu.Lock()
	r.events = append(r.events, ev)
	r.mu.Unlock()
	return nil
}

func (r *MemoryRecorder) List(ctx context.Context, userID int64, limit, skip int) ([]models.ReviewEvent, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Newest first: events are appended in time order, so walk backwards.
	mine := []models.ReviewEvent{}
	for i := len(r.events) - 1; i >= 0; i-- {
		if r.events[i].UserID == userID {
			mine = append(mine, r.events[i])
		}
	}
	total := int64(len(mine))

	if skip >= len(mine) {
		return []models.ReviewEvent{}, total, nil
	}
	mine = mine[skip:]
	if limit > 0 && limit < len(mine) {
		mine = mine[:limit]
	}
	return mine, total, nil
}

func (r *MemoryRecorder) Clear(ctx context.Context, userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.events[:0]
	for _, ev := range r.events {
		if ev.UserID != userID {
			kept = append(kept, ev)
		}
	}
	r.events = kept
	return nil
}

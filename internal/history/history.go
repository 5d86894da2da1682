// Package history records review events: every time a user reports a review
// result for a card, one append-only event is written. History is a
// best-effort supplement to the flashcard core; when its backing store is
// unavailable the recorder degrades to a no-op.
package history

import (
	"context"

	"github.com/hanzicards/hanzicards-backend/internal/models"
)

// Recorder stores and reads per-user review events.
type Recorder interface {
	// Record appends one review event.
	Record(ctx context.Context, ev models.ReviewEvent) error
	// List returns the user's events, newest first, plus the total count.
	List(ctx context.Context, userID int64, limit, skip int) ([]models.ReviewEvent, int64, error)
	// Clear removes every event for the user.
	Clear(ctx context.Context, userID int64) error
}

// Nop is the recorder used when no history store is configured. Writes are
// dropped and reads come back empty.
type Nop struct{}

func (Nop) Record(ctx context.Context, ev models.ReviewEvent) error { return nil }

func (Nop) List(ctx context.Context, userID int64, limit, skip int) ([]models.ReviewEvent, int64, error) {
	return []models.ReviewEvent{}, 0, nil
}

func (Nop) Clear(ctx context.Context, userID int64) error { return nil }

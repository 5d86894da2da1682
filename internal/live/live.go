// Package live fans out flashcard change events to the owning user's open
// websocket connections, so a deck edited in one tab refreshes in the others.
package live

import (
	"context"
	"sync"
)

// Event types pushed to clients.
const (
	EventCardAdded    = "card_added"
	EventCardUpdated  = "card_updated"
	EventCardDeleted  = "card_deleted"
	EventCardsCleared = "cards_cleared"
)

// Event is one flashcard change notification. CardID is zero for
// cards_cleared.
type Event struct {
	Type   string `json:"type"`
	CardID int64  `json:"card_id,omitempty"`
}

// Broadcaster delivers events published for a user to every subscriber of
// that user. Publish is fire-and-forget: delivery failures must never fail
// the mutation that triggered them.
type Broadcaster interface {
	Publish(ctx context.Context, userID int64, ev Event)
	// Subscribe returns a channel of the user's events and a cancel
	// function. The channel is closed after cancellation.
	Subscribe(ctx context.Context, userID int64) (<-chan Event, func())
}

// Nop drops every event and delivers none.
type Nop struct{}

func (Nop) Publish(ctx context.Context, userID int64, ev Event) {}

func (Nop) Subscribe(ctx context.Context, userID int64) (<-chan Event, func()) {
	ch := make(chan Event)
	var once sync.Once
	return ch, func() { once.Do(func() { close(ch) }) }
}

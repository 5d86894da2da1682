package live

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"
)

// RedisBroadcaster fans events out over Redis pub/sub so every server
// instance sees every mutation. One channel per user.
type RedisBroadcaster struct {
	client *redis.Client
}

func NewRedisBroadcaster(client *redis.Client) *RedisBroadcaster {
	return &RedisBroadcaster{client: client}
}

func channelFor(userID int64) string {
	return fmt.Sprintf("cards:%d", userID)
}

func (b *RedisBroadcaster) Publish(ctx context.Context, userID int64, ev Event) {
	payload, err := json.Marshal(ev)
	if err != nil {
		return
	}
	if err := b.client.Publish(ctx, channelFor(userID), payload).Err(); err != nil {
		log.Printf("live: publish to %s failed: %v", channelFor(userID), err)
	}
}

func (b *RedisBroadcaster) Subscribe(ctx context.Context, userID int64) (<-chan Event, func()) {
	pubsub := b.client.Subscribe(ctx, channelFor(userID))
	out := make(chan Event, 16)

	go func() {
		defer close(out)
		for msg := range pubsub.Channel() {
			var ev Event
			if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
				continue
			}
			select {
			case out <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, func() { _ = pubsub.Close() }
}

package ws

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/shivaram19/gorbagana-plinko/internal/events"
)

// StartEventSubscriber subscribes to the room events channel and forwards
// every event to the clients of its room. The subscription is confirmed
// before it returns.
func StartEventSubscriber(ctx context.Context, rdb *redis.Client, hub *Hub) {
	if rdb == nil || hub == nil {
		log.Println("[WS] Redis client or hub missing; event subscriber not started")
		return
	}

	pubsub := rdb.Subscribe(ctx, events.Channel)
	if _, err := pubsub.Receive(ctx); err != nil {
		log.Printf("[WS] Failed to subscribe to %s: %v", events.Channel, err)
		pubsub.Close()
		return
	}
	ch := pubsub.Channel()

	go func() {
		defer pubsub.Close()
		log.Printf("[WS] %s subscriber started", events.Channel)
		for {
			select {
			case <-ctx.Done():
				log.Printf("[WS] %s subscriber stopping", events.Channel)
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				ForwardEvent(hub, msg.Payload)
			}
		}
	}()
}

// ForwardEvent broadcasts a published event to its room as-is.
func ForwardEvent(hub *Hub, payload string) bool {
	ev, err := events.Decode(payload)
	if err != nil {
		log.Printf("[WS] Invalid event payload: %v", err)
		return false
	}
	if ev.RoomID == "" {
		log.Printf("[WS] Event %s has no room, dropping", ev.Type)
		return false
	}
	hub.Broadcast(ev.RoomID, []byte(payload))
	return true
}

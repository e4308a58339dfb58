package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shivaram19/gorbagana-plinko/internal/common/clock"
)

type redisNotifier struct {
	client *redis.Client
	clock  clock.Clock
}

type Config struct {
	RedisClient *redis.Client
	Clock       clock.Clock
}

// NewRedis returns a Notifier that publishes on Channel.
func NewRedis(cfg *Config) (Notifier, error) {
	if cfg == nil || cfg.RedisClient == nil {
		return nil, errors.New("redis client is required")
	}
	c := cfg.Clock
	if c == nil {
		c = clock.DefaultClock{}
	}
	return &redisNotifier{client: cfg.RedisClient, clock: c}, nil
}

func outcomeKey(roundID string) string {
	return fmt.Sprintf("round:%s:outcome", roundID)
}

func (r *redisNotifier) Publish(ctx context.Context, roomID, eventType string, data any) error {
	ev := Event{Type: eventType, RoomID: roomID, At: r.clock.Now().UTC()}
	if data != nil {
		raw, err := json.Marshal(data)
		if err != nil {
			return fmt.Errorf("encoding %s payload: %w", eventType, err)
		}
		ev.Data = raw
	}
	return r.send(ctx, ev)
}

func (r *redisNotifier) SystemMessage(ctx context.Context, roomID, text string) error {
	return r.send(ctx, Event{Type: TypeSystemMessage, RoomID: roomID, Message: text, At: r.clock.Now().UTC()})
}

func (r *redisNotifier) send(ctx context.Context, ev Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	if err := r.client.Publish(ctx, Channel, payload).Err(); err != nil {
		log.Printf("[EVENTS] publish %s for room %s failed: %v", ev.Type, ev.RoomID, err)
		return err
	}
	return nil
}

func (r *redisNotifier) CacheOutcome(ctx context.Context, roundID string, payload any, ttl time.Duration) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return r.client.SetEx(ctx, outcomeKey(roundID), raw, ttl).Err()
}

func (r *redisNotifier) CachedOutcome(ctx context.Context, roundID string) ([]byte, error) {
	raw, err := r.client.Get(ctx, outcomeKey(roundID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotCached
	}
	return raw, err
}

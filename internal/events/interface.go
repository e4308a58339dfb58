package events

//go:generate mockgen -package=mocks -destination=mocks/mock_notifier.go github.com/shivaram19/gorbagana-plinko/internal/events Notifier

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

// Channel is the pub/sub channel every room event is published on.
const Channel = "room_events"

// Event types
const (
	TypeRoundStarted  = "round_started"
	TypeBetPlaced     = "bet_placed"
	TypeBallResult    = "ball_result"
	TypeSystemMessage = "system_message"
	TypeRoomUpdate    = "room_update"
)

// ErrNotCached is returned when a round outcome is absent or expired.
var ErrNotCached = errors.New("round outcome not cached")

// Event is the envelope published to Channel and forwarded to websocket
// clients as-is.
type Event struct {
	Type    string          `json:"type"`
	RoomID  string          `json:"room_id"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	At      time.Time       `json:"at"`
}

// Notifier fans room events out to listeners and caches finished rounds
// for replay.
type Notifier interface {
	Publish(ctx context.Context, roomID, eventType string, data any) error
	SystemMessage(ctx context.Context, roomID, text string) error
	CacheOutcome(ctx context.Context, roundID string, payload any, ttl time.Duration) error
	CachedOutcome(ctx context.Context, roundID string) ([]byte, error)
}

// Decode parses a published payload.
func Decode(payload string) (Event, error) {
	var ev Event
	err := json.Unmarshal([]byte(payload), &ev)
	return ev, err
}

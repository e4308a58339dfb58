package rooms

import (
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/shivaram19/gorbagana-plinko/internal/common/clock"
	"github.com/shivaram19/gorbagana-plinko/internal/events"
	"github.com/shivaram19/gorbagana-plinko/internal/game"
	"github.com/shivaram19/gorbagana-plinko/internal/models"
	"github.com/shivaram19/gorbagana-plinko/internal/store"
)

const (
	MinPlayers   = 2
	MaxPlayers   = 12
	listLimit    = 20
	freePlaySeed = "free-play"
)

type Config struct {
	Board    *game.Board
	Store    store.Store
	Notifier events.Notifier
	// Redis schedules betting deadlines. When nil, drops only happen on
	// an explicit DropBall call.
	Redis *redis.Client
	Clock clock.Clock

	BettingWindow    time.Duration
	Jitter           game.JitterMode
	TrajectoryStride int
	TrajectoryTTL    time.Duration
	MaxRoomPlayers   int
}

type CreateRoomInput struct {
	Name       string          `json:"name"`
	MaxPlayers int             `json:"max_players"`
	EntryFee   decimal.Decimal `json:"entry_fee"`
	CreatedBy  string          `json:"-"`
}

type PlaceBetInput struct {
	RoomID string          `json:"-"`
	Wallet string          `json:"-"`
	Slot   int             `json:"slot_number"`
	Amount decimal.Decimal `json:"amount"`
}

// RoomView is a room as shown to clients.
type RoomView struct {
	models.Room
	Players        []models.RoomPlayer `json:"players"`
	ServerSeedHash string              `json:"server_seed_hash,omitempty"`
	DropAt         *time.Time          `json:"drop_at,omitempty"`
	BetCount       int                 `json:"bet_count"`
	LastRoundID    string              `json:"last_round_id,omitempty"`
}

// RoundInfo is published when betting opens. The server seed itself is
// withheld until the drop.
type RoundInfo struct {
	RoomID         string    `json:"room_id"`
	RoundID        string    `json:"round_id"`
	RoundNumber    int       `json:"round_number"`
	ServerSeedHash string    `json:"server_seed_hash"`
	ClientSeed     string    `json:"client_seed"`
	Nonce          uint64    `json:"nonce"`
	DropAt         time.Time `json:"drop_at"`
}

// DropResult is a settled round.
type DropResult struct {
	Round      models.GameRound       `json:"round"`
	Bets       []models.Bet           `json:"bets"`
	Seeds      game.Seeds             `json:"seeds"`
	Trajectory []game.TrajectoryPoint `json:"trajectory"`
	Multiplier float64                `json:"multiplier"`
}

// SimulationResult is a free-play round with the seeds that produced it.
type SimulationResult struct {
	Seeds          game.Seeds         `json:"seeds"`
	ServerSeedHash string             `json:"server_seed_hash"`
	Outcome        *game.RoundOutcome `json:"outcome"`
	Multiplier     float64            `json:"multiplier"`
}

type room struct {
	info      models.Room
	players   map[string]*models.RoomPlayer
	round     *openRound
	lastRound string
}

type openRound struct {
	id      string
	number  int
	seeds   game.Seeds
	hash    string
	started time.Time
	dropAt  time.Time
	bets    []models.Bet
}

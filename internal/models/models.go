package models

import (
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx/types"
	"github.com/shopspring/decimal"
)

// Room states
const (
	RoomWaiting  = "WAITING"
	RoomBetting  = "BETTING"
	RoomBallDrop = "BALL_DROP"
	RoomResults  = "RESULTS"
	RoomFinished = "FINISHED"
)

// Player is a wallet that has signed in at least once
type Player struct {
	ID            int64           `db:"id" json:"id"`
	WalletAddress string          `db:"wallet_address" json:"wallet_address"`
	Username      sql.NullString  `db:"username" json:"username,omitempty"`
	TotalGames    int             `db:"total_games" json:"total_games"`
	TotalWins     int             `db:"total_wins" json:"total_wins"`
	TotalWagered  decimal.Decimal `db:"total_wagered" json:"total_wagered"`
	TotalWinnings decimal.Decimal `db:"total_winnings" json:"total_winnings"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
	LastActive    sql.NullTime    `db:"last_active" json:"last_active,omitempty"`
}

// Room is a table players join to bet on the same drops
type Room struct {
	ID          string          `db:"id" json:"id"`
	Name        string          `db:"name" json:"name"`
	MaxPlayers  int             `db:"max_players" json:"max_players"`
	EntryFee    decimal.Decimal `db:"entry_fee" json:"entry_fee"`
	State       string          `db:"state" json:"state"`
	RoundNumber int             `db:"round_number" json:"round_number"`
	CreatedBy   string          `db:"created_by" json:"created_by"`
	IsActive    bool            `db:"is_active" json:"is_active"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
}

// RoomPlayer is a wallet's seat in a room
type RoomPlayer struct {
	WalletAddress string    `json:"wallet_address"`
	IsSpectator   bool      `json:"is_spectator"`
	JoinedAt      time.Time `json:"joined_at"`
}

// GameRound is one settled ball drop. ServerSeed stays empty until the round
// settles; ServerSeedHash is published when betting opens.
type GameRound struct {
	ID             string         `db:"id" json:"id"`
	RoomID         string         `db:"room_id" json:"room_id"`
	RoundNumber    int            `db:"round_number" json:"round_number"`
	ServerSeed     sql.NullString `db:"server_seed" json:"server_seed,omitempty"`
	ServerSeedHash string         `db:"server_seed_hash" json:"server_seed_hash"`
	ClientSeed     string         `db:"client_seed" json:"client_seed"`
	Nonce          int64          `db:"nonce" json:"nonce"`
	EntryX         float64        `db:"entry_x" json:"entry_x"`
	WinningSlot    int            `db:"winning_slot" json:"winning_slot"`
	Multiplier     float64        `db:"multiplier" json:"multiplier"`
	Forced         bool           `db:"forced" json:"forced"`
	Ticks          int            `db:"ticks" json:"ticks"`
	BallPath       types.JSONText `db:"ball_path" json:"ball_path"`
	StartTime      time.Time      `db:"start_time" json:"start_time"`
	EndTime        sql.NullTime   `db:"end_time" json:"end_time,omitempty"`
}

// Bet is a wager on one slot of one round
type Bet struct {
	ID            string          `db:"id" json:"id"`
	RoundID       string          `db:"round_id" json:"round_id"`
	WalletAddress string          `db:"wallet_address" json:"wallet_address"`
	SlotNumber    int             `db:"slot_number" json:"slot_number"`
	Amount        decimal.Decimal `db:"amount" json:"amount"`
	Multiplier    decimal.Decimal `db:"multiplier" json:"multiplier"`
	IsWinner      bool            `db:"is_winner" json:"is_winner"`
	Payout        decimal.Decimal `db:"payout" json:"payout"`
	PlacedAt      time.Time       `db:"placed_at" json:"placed_at"`
}

// PlayerStats aggregates a wallet's settled bets
type PlayerStats struct {
	WalletAddress string          `db:"wallet_address" json:"wallet_address"`
	TotalGames    int             `db:"total_games" json:"total_games"`
	TotalWins     int             `db:"total_wins" json:"total_wins"`
	TotalWagered  decimal.Decimal `db:"total_wagered" json:"total_wagered"`
	TotalWinnings decimal.Decimal `db:"total_winnings" json:"total_winnings"`
	BestSlot      sql.NullInt64   `db:"best_slot" json:"best_slot,omitempty"`
}

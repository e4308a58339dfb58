package store

//go:generate mockgen -package=mocks -destination=mocks/mock_store.go github.com/shivaram19/gorbagana-plinko/internal/store Store

import (
	"context"
	"errors"

	"github.com/shivaram19/gorbagana-plinko/internal/models"
)

// ErrNotFound is returned when a round or player does not exist.
var ErrNotFound = errors.New("not found")

// Store is the ledger that settled rounds are written to.
type Store interface {
	// UpsertPlayer records a wallet sign-in and returns the player row.
	UpsertPlayer(ctx context.Context, wallet string) (*models.Player, error)

	SaveRoom(ctx context.Context, room *models.Room) error

	// SettleRound writes the round, its bets and the players' running totals
	// in one transaction.
	SettleRound(ctx context.Context, input *SettleRoundInput) error

	GetRound(ctx context.Context, roundID string) (*RoundRecord, error)

	PlayerStats(ctx context.Context, wallet string) (*models.PlayerStats, error)
}

type SettleRoundInput struct {
	Round *models.GameRound
	Bets  []models.Bet
}

// RoundRecord is a settled round with its bets.
type RoundRecord struct {
	Round models.GameRound `json:"round"`
	Bets  []models.Bet     `json:"bets"`
}

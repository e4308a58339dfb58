package store

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/shivaram19/gorbagana-plinko/internal/database"
	"github.com/shivaram19/gorbagana-plinko/internal/migrations"
	"github.com/shivaram19/gorbagana-plinko/internal/models"
)

// PostgresTestSuite runs against a real database named by TEST_DATABASE_URL
// and is skipped without one.
type PostgresTestSuite struct {
	suite.Suite
	store Store
	ctx   context.Context
}

func TestPostgresTestSuite(t *testing.T) {
	if os.Getenv("TEST_DATABASE_URL") == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	suite.Run(t, new(PostgresTestSuite))
}

func (s *PostgresTestSuite) SetupSuite() {
	url := os.Getenv("TEST_DATABASE_URL")
	s.Require().NoError(migrations.RunMigrations(url, "../../migrations"))

	db, err := database.Connect(url)
	s.Require().NoError(err)
	s.store, err = NewPostgres(db)
	s.Require().NoError(err)
	s.ctx = context.Background()
}

func (s *PostgresTestSuite) TestSettleRoundUpdatesTotals() {
	now := time.Now().UTC().Truncate(time.Second)
	wallet := "wallet-" + uuid.NewString()[:8]

	room := &models.Room{
		ID: uuid.NewString(), Name: "suite", MaxPlayers: 4,
		EntryFee: decimal.Zero, State: models.RoomResults, IsActive: true, CreatedAt: now,
	}
	s.Require().NoError(s.store.SaveRoom(s.ctx, room))

	round := &models.GameRound{
		ID: uuid.NewString(), RoomID: room.ID, RoundNumber: 1,
		ServerSeedHash: "h", ClientSeed: "c", EntryX: 413, WinningSlot: 1, Multiplier: 8,
		Ticks: 300, BallPath: types.JSONText(`[]`), StartTime: now,
	}
	bet := models.Bet{
		ID: uuid.NewString(), RoundID: round.ID, WalletAddress: wallet, SlotNumber: 1,
		Amount: decimal.NewFromInt(10), Multiplier: decimal.NewFromInt(8), IsWinner: true,
		Payout: decimal.NewFromInt(80), PlacedAt: now,
	}
	s.Require().NoError(s.store.SettleRound(s.ctx, &SettleRoundInput{Round: round, Bets: []models.Bet{bet}}))

	rec, err := s.store.GetRound(s.ctx, round.ID)
	s.Require().NoError(err)
	s.Equal(1, rec.Round.WinningSlot)
	s.Require().Len(rec.Bets, 1)
	s.True(rec.Bets[0].Payout.Equal(decimal.NewFromInt(80)))

	stats, err := s.store.PlayerStats(s.ctx, wallet)
	s.Require().NoError(err)
	s.Equal(1, stats.TotalGames)
	s.Equal(1, stats.TotalWins)
	s.True(stats.TotalWinnings.Equal(decimal.NewFromInt(80)))
	s.EqualValues(1, stats.BestSlot.Int64)
}

func (s *PostgresTestSuite) TestGetRoundNotFound() {
	_, err := s.store.GetRound(s.ctx, uuid.NewString())
	s.ErrorIs(err, ErrNotFound)
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"

	"github.com/shivaram19/gorbagana-plinko/internal/models"
)

type postgres struct {
	db *sqlx.DB
}

// NewPostgres returns a Store backed by the given pool.
func NewPostgres(db *sqlx.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("db is nil")
	}
	return &postgres{db: db}, nil
}

const playerColumns = `id, wallet_address, username, total_games, total_wins, total_wagered, total_winnings, created_at, last_active`

func (p *postgres) UpsertPlayer(ctx context.Context, wallet string) (*models.Player, error) {
	var player models.Player
	err := p.db.GetContext(ctx, &player, `
		INSERT INTO players (wallet_address, created_at, last_active)
		VALUES ($1, NOW(), NOW())
		ON CONFLICT (wallet_address) DO UPDATE SET last_active = NOW()
		RETURNING `+playerColumns, wallet)
	if err != nil {
		return nil, fmt.Errorf("upsert player: %w", err)
	}
	return &player, nil
}

func (p *postgres) SaveRoom(ctx context.Context, room *models.Room) error {
	_, err := p.db.NamedExecContext(ctx, `
		INSERT INTO rooms (id, name, max_players, entry_fee, state, round_number, created_by, is_active, created_at)
		VALUES (:id, :name, :max_players, :entry_fee, :state, :round_number, :created_by, :is_active, :created_at)
		ON CONFLICT (id) DO UPDATE SET
			state = EXCLUDED.state,
			round_number = EXCLUDED.round_number,
			is_active = EXCLUDED.is_active`, room)
	if err != nil {
		return fmt.Errorf("save room: %w", err)
	}
	return nil
}

func (p *postgres) SettleRound(ctx context.Context, input *SettleRoundInput) error {
	if input == nil || input.Round == nil {
		return fmt.Errorf("round is nil")
	}

	tx, err := p.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.NamedExecContext(ctx, `
		INSERT INTO game_rounds (id, room_id, round_number, server_seed, server_seed_hash, client_seed, nonce,
			entry_x, winning_slot, multiplier, forced, ticks, ball_path, start_time, end_time)
		VALUES (:id, :room_id, :round_number, :server_seed, :server_seed_hash, :client_seed, :nonce,
			:entry_x, :winning_slot, :multiplier, :forced, :ticks, :ball_path, :start_time, :end_time)`, input.Round)
	if err != nil {
		return fmt.Errorf("insert round: %w", err)
	}

	for i := range input.Bets {
		bet := &input.Bets[i]
		if _, err := tx.NamedExecContext(ctx, `
			INSERT INTO bets (id, round_id, wallet_address, slot_number, amount, multiplier, is_winner, payout, placed_at)
			VALUES (:id, :round_id, :wallet_address, :slot_number, :amount, :multiplier, :is_winner, :payout, :placed_at)`, bet); err != nil {
			return fmt.Errorf("insert bet %s: %w", bet.ID, err)
		}

		wins := 0
		if bet.IsWinner {
			wins = 1
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO players (wallet_address, total_games, total_wins, total_wagered, total_winnings, created_at, last_active)
			VALUES ($1, 1, $2, $3, $4, NOW(), NOW())
			ON CONFLICT (wallet_address) DO UPDATE SET
				total_games = players.total_games + 1,
				total_wins = players.total_wins + $2,
				total_wagered = players.total_wagered + $3,
				total_winnings = players.total_winnings + $4,
				last_active = NOW()`,
			bet.WalletAddress, wins, bet.Amount, bet.Payout); err != nil {
			return fmt.Errorf("update totals for %s: %w", bet.WalletAddress, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	log.Printf("[DB] Round settled: id=%s room=%s slot=%d bets=%d",
		input.Round.ID, input.Round.RoomID, input.Round.WinningSlot, len(input.Bets))
	return nil
}

func (p *postgres) GetRound(ctx context.Context, roundID string) (*RoundRecord, error) {
	var rec RoundRecord
	err := p.db.GetContext(ctx, &rec.Round, `
		SELECT id, room_id, round_number, server_seed, server_seed_hash, client_seed, nonce, entry_x,
			winning_slot, multiplier, forced, ticks, ball_path, start_time, end_time
		FROM game_rounds WHERE id = $1`, roundID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := p.db.SelectContext(ctx, &rec.Bets, `
		SELECT id, round_id, wallet_address, slot_number, amount, multiplier, is_winner, payout, placed_at
		FROM bets WHERE round_id = $1 ORDER BY placed_at`, roundID); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (p *postgres) PlayerStats(ctx context.Context, wallet string) (*models.PlayerStats, error) {
	var player models.Player
	err := p.db.GetContext(ctx, &player, `SELECT `+playerColumns+` FROM players WHERE wallet_address = $1`, wallet)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	stats := &models.PlayerStats{
		WalletAddress: player.WalletAddress,
		TotalGames:    player.TotalGames,
		TotalWins:     player.TotalWins,
		TotalWagered:  player.TotalWagered,
		TotalWinnings: player.TotalWinnings,
	}
	// most profitable slot for this wallet, if any winning bet exists
	var best sql.NullInt64
	if err := p.db.GetContext(ctx, &best, `
		SELECT slot_number FROM bets
		WHERE wallet_address = $1 AND is_winner
		GROUP BY slot_number ORDER BY SUM(payout) DESC, slot_number LIMIT 1`, wallet); err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	stats.BestSlot = best
	return stats, nil
}

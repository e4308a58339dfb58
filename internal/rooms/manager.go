package rooms

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/shivaram19/gorbagana-plinko/internal/common/clock"
	"github.com/shivaram19/gorbagana-plinko/internal/events"
	"github.com/shivaram19/gorbagana-plinko/internal/game"
	"github.com/shivaram19/gorbagana-plinko/internal/models"
	"github.com/shivaram19/gorbagana-plinko/internal/store"
)

// Manager owns every live room and drives each through
// WAITING -> BETTING -> BALL_DROP -> RESULTS -> BETTING ...
type Manager struct {
	cfg   Config
	clock clock.Clock
	rooms map[string]*room
	mu    sync.RWMutex
}

// NewManager validates cfg and returns an empty manager.
func NewManager(cfg Config) (*Manager, error) {
	if cfg.Board == nil {
		return nil, errors.New("board is required")
	}
	if cfg.Store == nil {
		return nil, errors.New("store is required")
	}
	if cfg.Notifier == nil {
		return nil, errors.New("notifier is required")
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.DefaultClock{}
	}
	if cfg.TrajectoryStride < 1 {
		cfg.TrajectoryStride = 1
	}
	if cfg.MaxRoomPlayers < MinPlayers || cfg.MaxRoomPlayers > MaxPlayers {
		cfg.MaxRoomPlayers = MaxPlayers
	}
	if cfg.Jitter == "" {
		cfg.Jitter = game.JitterSeeded
	}
	return &Manager{
		cfg:   cfg,
		clock: cfg.Clock,
		rooms: make(map[string]*room),
	}, nil
}

// Board returns the board every room plays on.
func (m *Manager) Board() *game.Board {
	return m.cfg.Board
}

func (m *Manager) CreateRoom(ctx context.Context, input CreateRoomInput) (*RoomView, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidRoom)
	}
	if input.MaxPlayers < MinPlayers || input.MaxPlayers > m.cfg.MaxRoomPlayers {
		return nil, fmt.Errorf("%w: max players must be between %d and %d", ErrInvalidRoom, MinPlayers, m.cfg.MaxRoomPlayers)
	}
	if input.EntryFee.IsNegative() {
		return nil, fmt.Errorf("%w: entry fee cannot be negative", ErrInvalidRoom)
	}

	r := &room{
		info: models.Room{
			ID:         uuid.NewString(),
			Name:       name,
			MaxPlayers: input.MaxPlayers,
			EntryFee:   input.EntryFee,
			State:      models.RoomWaiting,
			CreatedBy:  input.CreatedBy,
			IsActive:   true,
			CreatedAt:  m.clock.Now().UTC(),
		},
		players: make(map[string]*models.RoomPlayer),
	}
	if err := m.cfg.Store.SaveRoom(ctx, &r.info); err != nil {
		return nil, fmt.Errorf("saving room: %w", err)
	}

	m.mu.Lock()
	m.rooms[r.info.ID] = r
	view := r.view()
	m.mu.Unlock()

	log.Printf("[ROOM] Created room %s (%q, max=%d, fee=%s)", view.ID, view.Name, view.MaxPlayers, view.EntryFee)
	return view, nil
}

// ListRooms returns active rooms, newest first.
func (m *Manager) ListRooms(ctx context.Context) []*RoomView {
	m.mu.RLock()
	defer m.mu.RUnlock()

	views := make([]*RoomView, 0, len(m.rooms))
	for _, r := range m.rooms {
		if r.info.IsActive {
			views = append(views, r.view())
		}
	}
	sort.Slice(views, func(i, j int) bool {
		if views[i].CreatedAt.Equal(views[j].CreatedAt) {
			return views[i].ID < views[j].ID
		}
		return views[i].CreatedAt.After(views[j].CreatedAt)
	})
	if len(views) > listLimit {
		views = views[:listLimit]
	}
	return views
}

func (m *Manager) GetRoom(roomID string) (*RoomView, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.rooms[roomID]
	if !ok {
		return nil, ErrRoomNotFound
	}
	return r.view(), nil
}

// JoinRoom seats a wallet. Spectators are not counted against the limit.
// Joining twice updates the spectator flag.
func (m *Manager) JoinRoom(ctx context.Context, roomID, wallet string, spectator bool) (*RoomView, error) {
	m.mu.Lock()
	r, ok := m.rooms[roomID]
	if !ok {
		m.mu.Unlock()
		return nil, ErrRoomNotFound
	}
	if !r.info.IsActive {
		m.mu.Unlock()
		return nil, ErrRoomClosed
	}
	if p, exists := r.players[wallet]; exists {
		if p.IsSpectator && !spectator && r.seated() >= r.info.MaxPlayers {
			m.mu.Unlock()
			return nil, ErrRoomFull
		}
		p.IsSpectator = spectator
	} else {
		if !spectator && r.seated() >= r.info.MaxPlayers {
			m.mu.Unlock()
			return nil, ErrRoomFull
		}
		r.players[wallet] = &models.RoomPlayer{WalletAddress: wallet, IsSpectator: spectator, JoinedAt: m.clock.Now().UTC()}
	}
	view := r.view()
	m.mu.Unlock()

	log.Printf("[ROOM] %s joined room %s (spectator=%v)", wallet, roomID, spectator)
	m.publish(ctx, roomID, events.TypeRoomUpdate, view)
	return view, nil
}

func (m *Manager) LeaveRoom(ctx context.Context, roomID, wallet string) (*RoomView, error) {
	m.mu.Lock()
	r, ok := m.rooms[roomID]
	if !ok {
		m.mu.Unlock()
		return nil, ErrRoomNotFound
	}
	if _, exists := r.players[wallet]; !exists {
		m.mu.Unlock()
		return nil, ErrNotInRoom
	}
	delete(r.players, wallet)
	view := r.view()
	m.mu.Unlock()

	log.Printf("[ROOM] %s left room %s", wallet, roomID)
	m.publish(ctx, roomID, events.TypeRoomUpdate, view)
	return view, nil
}

// CloseRoom marks a room FINISHED. It refuses while a ball is in flight.
func (m *Manager) CloseRoom(ctx context.Context, roomID string) error {
	m.mu.Lock()
	r, ok := m.rooms[roomID]
	if !ok {
		m.mu.Unlock()
		return ErrRoomNotFound
	}
	if r.info.State == models.RoomBallDrop {
		m.mu.Unlock()
		return fmt.Errorf("%w: ball in flight", ErrWrongState)
	}
	r.info.State = models.RoomFinished
	r.info.IsActive = false
	r.round = nil
	info := r.info
	m.mu.Unlock()

	m.unschedule(ctx, roomID)
	if err := m.cfg.Store.SaveRoom(ctx, &info); err != nil {
		log.Printf("[ROOM] Failed to persist closed room %s: %v", roomID, err)
	}
	m.publish(ctx, roomID, events.TypeRoomUpdate, info)
	return nil
}

// OpenBetting starts a new round: a fresh server seed is drawn and only its
// hash is published. The drop is scheduled BettingWindow from now.
func (m *Manager) OpenBetting(ctx context.Context, roomID string) (*RoundInfo, error) {
	serverSeed, err := game.NewServerSeed()
	if err != nil {
		return nil, err
	}
	now := m.clock.Now().UTC()

	m.mu.Lock()
	r, ok := m.rooms[roomID]
	if !ok {
		m.mu.Unlock()
		return nil, ErrRoomNotFound
	}
	if !r.info.IsActive {
		m.mu.Unlock()
		return nil, ErrRoomClosed
	}
	if r.info.State != models.RoomWaiting && r.info.State != models.RoomResults {
		state := r.info.State
		m.mu.Unlock()
		return nil, fmt.Errorf("%w: cannot open betting while %s", ErrWrongState, state)
	}
	r.info.RoundNumber++
	r.info.State = models.RoomBetting
	r.round = &openRound{
		id:     uuid.NewString(),
		number: r.info.RoundNumber,
		seeds: game.Seeds{
			Server: serverSeed,
			Client: roomID,
			Nonce:  uint64(r.info.RoundNumber),
		},
		hash:    game.HashServerSeed(serverSeed),
		started: now,
		dropAt:  now.Add(m.cfg.BettingWindow),
	}
	info := &RoundInfo{
		RoomID:         roomID,
		RoundID:        r.round.id,
		RoundNumber:    r.round.number,
		ServerSeedHash: r.round.hash,
		ClientSeed:     r.round.seeds.Client,
		Nonce:          r.round.seeds.Nonce,
		DropAt:         r.round.dropAt,
	}
	m.mu.Unlock()

	m.schedule(ctx, roomID, info.DropAt.Unix())
	log.Printf("[ROUND] Room %s round %d betting open until %s (hash=%s)", roomID, info.RoundNumber, info.DropAt.Format("15:04:05"), info.ServerSeedHash[:12])
	m.publish(ctx, roomID, events.TypeRoundStarted, info)
	m.systemMessage(ctx, roomID, fmt.Sprintf("Round %d: betting is open", info.RoundNumber))
	return info, nil
}

func (m *Manager) PlaceBet(ctx context.Context, input PlaceBetInput) (*models.Bet, error) {
	if err := game.ValidateSlot(input.Slot, m.cfg.Board.Slots()); err != nil {
		return nil, err
	}
	if input.Amount.IsNegative() {
		return nil, game.ErrInvalidWager
	}
	mult, err := m.cfg.Board.Multipliers.Multiplier(input.Slot)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	r, ok := m.rooms[input.RoomID]
	if !ok {
		m.mu.Unlock()
		return nil, ErrRoomNotFound
	}
	if r.info.State != models.RoomBetting || r.round == nil {
		m.mu.Unlock()
		return nil, ErrBettingClosed
	}
	p, seated := r.players[input.Wallet]
	if !seated {
		m.mu.Unlock()
		return nil, ErrNotInRoom
	}
	if p.IsSpectator {
		m.mu.Unlock()
		return nil, ErrSpectator
	}
	for _, b := range r.round.bets {
		if b.WalletAddress == input.Wallet {
			m.mu.Unlock()
			return nil, ErrAlreadyBet
		}
	}
	bet := models.Bet{
		ID:            uuid.NewString(),
		RoundID:       r.round.id,
		WalletAddress: input.Wallet,
		SlotNumber:    input.Slot,
		Amount:        input.Amount,
		Multiplier:    mult,
		Payout:        decimal.Zero,
		PlacedAt:      m.clock.Now().UTC(),
	}
	r.round.bets = append(r.round.bets, bet)
	m.mu.Unlock()

	log.Printf("[BETTING] %s bet %s on slot %d in room %s", input.Wallet, input.Amount, input.Slot, input.RoomID)
	m.publish(ctx, input.RoomID, events.TypeBetPlaced, bet)
	return &bet, nil
}

// DropBall closes betting, runs the round and settles every bet. Ledger and
// broadcast failures are logged; they never undo a computed outcome.
func (m *Manager) DropBall(ctx context.Context, roomID string) (*DropResult, error) {
	m.mu.Lock()
	r, ok := m.rooms[roomID]
	if !ok {
		m.mu.Unlock()
		return nil, ErrRoomNotFound
	}
	if r.info.State != models.RoomBetting || r.round == nil {
		state := r.info.State
		m.mu.Unlock()
		return nil, fmt.Errorf("%w: cannot drop while %s", ErrWrongState, state)
	}
	r.info.State = models.RoomBallDrop
	round := *r.round
	round.bets = append([]models.Bet(nil), r.round.bets...)
	m.mu.Unlock()

	m.unschedule(ctx, roomID)

	outcome, err := game.RunRound(m.cfg.Board, game.RoundOptions{
		Jitter: m.cfg.Jitter,
		Seeds:  &round.seeds,
	})
	if err != nil {
		log.Printf("[ROUND] Room %s round %d aborted: %v", roomID, round.number, err)
		m.mu.Lock()
		r.info.State = models.RoomWaiting
		r.round = nil
		m.mu.Unlock()
		m.systemMessage(ctx, roomID, fmt.Sprintf("Round %d was aborted", round.number))
		return nil, err
	}

	result, err := m.settle(roomID, &round, outcome)
	if err != nil {
		m.mu.Lock()
		r.info.State = models.RoomWaiting
		r.round = nil
		m.mu.Unlock()
		return nil, err
	}

	if err := m.cfg.Store.SettleRound(ctx, &store.SettleRoundInput{Round: &result.Round, Bets: result.Bets}); err != nil {
		log.Printf("[ROUND] Failed to persist round %s: %v", result.Round.ID, err)
	}
	if err := m.cfg.Notifier.CacheOutcome(ctx, result.Round.ID, result, m.cfg.TrajectoryTTL); err != nil {
		log.Printf("[ROUND] Failed to cache round %s: %v", result.Round.ID, err)
	}

	m.mu.Lock()
	r.info.State = models.RoomResults
	r.round = nil
	r.lastRound = result.Round.ID
	info := r.info
	m.mu.Unlock()

	if err := m.cfg.Store.SaveRoom(ctx, &info); err != nil {
		log.Printf("[ROOM] Failed to persist room %s: %v", roomID, err)
	}

	log.Printf("[ROUND] Room %s round %d landed in slot %d (%gx, ticks=%d, forced=%v, bets=%d)",
		roomID, round.number, outcome.WinningSlot, result.Multiplier, outcome.Ticks, outcome.Forced, len(result.Bets))
	m.publish(ctx, roomID, events.TypeBallResult, result)
	m.systemMessage(ctx, roomID, fmt.Sprintf("Ball landed in slot %d (%gx)", outcome.WinningSlot, result.Multiplier))
	return result, nil
}

func (m *Manager) settle(roomID string, round *openRound, outcome *game.RoundOutcome) (*DropResult, error) {
	table := m.cfg.Board.Multipliers
	bets := make([]models.Bet, len(round.bets))
	for i, bet := range round.bets {
		bet.IsWinner = bet.SlotNumber == outcome.WinningSlot
		bet.Payout = decimal.Zero
		if bet.IsWinner {
			payout, err := game.Payout(bet.SlotNumber, table, bet.Amount)
			if err != nil {
				return nil, fmt.Errorf("settling bet %s: %w", bet.ID, err)
			}
			bet.Payout = payout
		}
		bets[i] = bet
	}

	path := game.Decimate(outcome.Trajectory, m.cfg.TrajectoryStride)
	raw, err := json.Marshal(path)
	if err != nil {
		return nil, err
	}

	multiplier := outcome.Multiplier(m.cfg.Board)
	return &DropResult{
		Round: models.GameRound{
			ID:             round.id,
			RoomID:         roomID,
			RoundNumber:    round.number,
			ServerSeed:     sql.NullString{String: round.seeds.Server, Valid: true},
			ServerSeedHash: round.hash,
			ClientSeed:     round.seeds.Client,
			Nonce:          int64(round.seeds.Nonce),
			EntryX:         outcome.EntryX,
			WinningSlot:    outcome.WinningSlot,
			Multiplier:     multiplier,
			Forced:         outcome.Forced,
			Ticks:          outcome.Ticks,
			BallPath:       raw,
			StartTime:      round.started,
			EndTime:        sql.NullTime{Time: m.clock.Now().UTC(), Valid: true},
		},
		Bets:       bets,
		Seeds:      round.seeds,
		Trajectory: path,
		Multiplier: multiplier,
	}, nil
}

// Simulate runs a free-play round that is neither persisted nor broadcast.
// Without seeds a fresh server seed is drawn.
func (m *Manager) Simulate(seeds *game.Seeds, entryX *float64) (*SimulationResult, error) {
	if seeds == nil || seeds.Server == "" {
		server, err := game.NewServerSeed()
		if err != nil {
			return nil, err
		}
		s := game.Seeds{Server: server, Client: freePlaySeed}
		if seeds != nil {
			s.Nonce = seeds.Nonce
			if seeds.Client != "" {
				s.Client = seeds.Client
			}
		}
		seeds = &s
	}

	outcome, err := game.RunRound(m.cfg.Board, game.RoundOptions{
		EntryX:       entryX,
		Jitter:       m.cfg.Jitter,
		Seeds:        seeds,
		SampleStride: m.cfg.TrajectoryStride,
	})
	if err != nil {
		return nil, err
	}
	return &SimulationResult{
		Seeds:          *seeds,
		ServerSeedHash: game.HashServerSeed(seeds.Server),
		Outcome:        outcome,
		Multiplier:     outcome.Multiplier(m.cfg.Board),
	}, nil
}

// Verify replays a revealed round with the manager's jitter mode and checks
// the published hash and the claimed slot.
func (m *Manager) Verify(seeds game.Seeds, hash string, slot int) (*game.RoundOutcome, error) {
	return game.VerifyRound(m.cfg.Board, game.RoundOptions{
		Jitter:       m.cfg.Jitter,
		Seeds:        &seeds,
		SampleStride: m.cfg.TrajectoryStride,
	}, hash, slot, nil)
}

func (m *Manager) schedule(ctx context.Context, roomID string, at int64) {
	if m.cfg.Redis == nil {
		return
	}
	if err := m.cfg.Redis.ZAdd(ctx, DeadlineKey, redis.Z{Score: float64(at), Member: roomID}).Err(); err != nil {
		log.Printf("[BETTING] Failed to schedule drop for room %s: %v", roomID, err)
	}
}

func (m *Manager) unschedule(ctx context.Context, roomID string) {
	if m.cfg.Redis == nil {
		return
	}
	if err := m.cfg.Redis.ZRem(ctx, DeadlineKey, roomID).Err(); err != nil {
		log.Printf("[BETTING] Failed to clear deadline for room %s: %v", roomID, err)
	}
}

func (m *Manager) publish(ctx context.Context, roomID, eventType string, data any) {
	if err := m.cfg.Notifier.Publish(ctx, roomID, eventType, data); err != nil {
		log.Printf("[EVENTS] %s for room %s not published: %v", eventType, roomID, err)
	}
}

func (m *Manager) systemMessage(ctx context.Context, roomID, text string) {
	if err := m.cfg.Notifier.SystemMessage(ctx, roomID, text); err != nil {
		log.Printf("[EVENTS] system message for room %s not published: %v", roomID, err)
	}
}

func (r *room) seated() int {
	n := 0
	for _, p := range r.players {
		if !p.IsSpectator {
			n++
		}
	}
	return n
}

// view copies the room; callers must hold the manager lock.
func (r *room) view() *RoomView {
	v := &RoomView{Room: r.info, Players: make([]models.RoomPlayer, 0, len(r.players)), LastRoundID: r.lastRound}
	for _, p := range r.players {
		v.Players = append(v.Players, *p)
	}
	sort.Slice(v.Players, func(i, j int) bool {
		if v.Players[i].JoinedAt.Equal(v.Players[j].JoinedAt) {
			return v.Players[i].WalletAddress < v.Players[j].WalletAddress
		}
		return v.Players[i].JoinedAt.Before(v.Players[j].JoinedAt)
	})
	if r.round != nil {
		v.ServerSeedHash = r.round.hash
		dropAt := r.round.dropAt
		v.DropAt = &dropAt
		v.BetCount = len(r.round.bets)
	}
	return v
}

package game

import (
	"fmt"
	"math"
)

// JitterMode selects how the entry point is perturbed.
type JitterMode string

const (
	// JitterNone drops from the exact horizontal centre. The empty string is
	// treated the same way.
	JitterNone JitterMode = "none"
	// JitterFixed drops from the centre plus a constant offset.
	JitterFixed JitterMode = "fixed"
	// JitterSeeded draws the offset from the round's seed stream, so each
	// round takes a different path that can still be replayed.
	JitterSeeded JitterMode = "seeded"
)

// ParseJitterMode validates a mode name from configuration.
func ParseJitterMode(s string) (JitterMode, error) {
	switch m := JitterMode(s); m {
	case "", JitterNone:
		return JitterNone, nil
	case JitterFixed, JitterSeeded:
		return m, nil
	}
	return "", fmt.Errorf("unknown jitter mode %q", s)
}

// RoundOptions controls one round. The zero value drops from the centre and
// records every tick.
type RoundOptions struct {
	// EntryX, when set, overrides Jitter entirely.
	EntryX *float64 `json:"entry_x,omitempty"`

	Jitter       JitterMode `json:"jitter"`
	EntryOffsetX float64    `json:"entry_offset_x,omitempty"` // fixed mode; 0 means DefaultEntryOffsetX
	JitterRange  float64    `json:"jitter_range,omitempty"`   // seeded mode; 0 means DefaultJitterRange
	Seeds        *Seeds     `json:"seeds,omitempty"`

	// SampleStride keeps every n-th tick in the trajectory. Values below 2
	// keep every tick.
	SampleStride int `json:"sample_stride,omitempty"`
}

// TrajectoryPoint is one recorded ball position.
type TrajectoryPoint struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Tick int     `json:"tick"`
}

// RoundOutcome is the immutable result of a finished drop. The trajectory is
// ordered by tick and ends at the captured position.
type RoundOutcome struct {
	Trajectory  []TrajectoryPoint `json:"trajectory"`
	WinningSlot int               `json:"winning_slot"`
	Ticks       int               `json:"ticks"`
	Forced      bool              `json:"forced"`
	Collisions  []CollisionEvent  `json:"collisions"`
	EntryX      float64           `json:"entry_x"`
}

// Multiplier returns the multiplier of the winning slot on board.
func (o *RoundOutcome) Multiplier(board *Board) float64 {
	if o.WinningSlot < 1 || o.WinningSlot > len(board.Multipliers) {
		return 0
	}
	return board.Multipliers[o.WinningSlot-1]
}

// ResolveEntryX returns the horizontal entry coordinate opts selects, clamped
// to the board margins.
func ResolveEntryX(board *Board, opts RoundOptions) (float64, error) {
	x := board.CenterX()
	switch {
	case opts.EntryX != nil:
		x = *opts.EntryX
	case opts.Jitter == JitterFixed:
		offset := opts.EntryOffsetX
		if offset == 0 {
			offset = DefaultEntryOffsetX
		}
		x += offset
	case opts.Jitter == JitterSeeded:
		if opts.Seeds == nil || opts.Seeds.Server == "" {
			return 0, ErrMissingSeeds
		}
		jr := opts.JitterRange
		if jr == 0 {
			jr = DefaultJitterRange
		}
		f := opts.Seeds.Floats(1)[0]
		x += (f - 0.5) * 2 * jr
	case opts.Jitter == "" || opts.Jitter == JitterNone:
	default:
		return 0, fmt.Errorf("unknown jitter mode %q", opts.Jitter)
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, fmt.Errorf("entry x is not finite")
	}
	return fix(math.Max(board.MarginLeft, math.Min(board.MarginRight, x))), nil
}

// RunRound drops one ball and runs it to capture. It fails only if the entry
// options are unusable or the board has no sink to fall back to.
func RunRound(board *Board, opts RoundOptions) (*RoundOutcome, error) {
	x, err := ResolveEntryX(board, opts)
	if err != nil {
		return nil, err
	}

	stride := opts.SampleStride
	if stride < 1 {
		stride = 1
	}

	sim := NewSimulator(board, Vec2{X: x, Y: board.EntryY})
	start := sim.Ball().Position
	trajectory := []TrajectoryPoint{{X: start.X, Y: start.Y, Tick: 0}}

	for {
		res, err := sim.Step()
		if err != nil {
			return nil, err
		}
		pos := sim.Ball().Position
		if res.Captured {
			trajectory = append(trajectory, TrajectoryPoint{X: pos.X, Y: pos.Y, Tick: sim.Tick()})
			return &RoundOutcome{
				Trajectory:  trajectory,
				WinningSlot: res.Slot,
				Ticks:       sim.Tick(),
				Forced:      res.Forced,
				Collisions:  sim.Events(),
				EntryX:      x,
			}, nil
		}
		if sim.Tick()%stride == 0 {
			trajectory = append(trajectory, TrajectoryPoint{X: pos.X, Y: pos.Y, Tick: sim.Tick()})
		}
	}
}

// Decimate returns every n-th point of a trajectory, always keeping the first
// and last points.
func Decimate(points []TrajectoryPoint, n int) []TrajectoryPoint {
	if n < 2 || len(points) <= 2 {
		return points
	}
	out := make([]TrajectoryPoint, 0, len(points)/n+2)
	for i, p := range points {
		if i == 0 || i == len(points)-1 || i%n == 0 {
			out = append(out, p)
		}
	}
	return out
}

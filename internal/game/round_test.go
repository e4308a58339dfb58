package game

import (
	"errors"
	"reflect"
	"testing"
)

func TestRunRoundIsDeterministic(t *testing.T) {
	board := mustBoard(t, DefaultBoardConfig())
	opts := RoundOptions{Jitter: JitterFixed}

	a, err := RunRound(board, opts)
	if err != nil {
		t.Fatalf("RunRound: %v", err)
	}
	b, err := RunRound(board, opts)
	if err != nil {
		t.Fatalf("RunRound: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("two runs with identical inputs differ")
	}
	if a.EntryX != 413 {
		t.Errorf("fixed entry x = %.4f, want 413", a.EntryX)
	}
}

func TestSeededRoundsAreReproducible(t *testing.T) {
	board := mustBoard(t, DefaultBoardConfig())
	seeds := &Seeds{Server: "server-seed", Client: "client-seed", Nonce: 7}
	opts := RoundOptions{Jitter: JitterSeeded, Seeds: seeds}

	a, err := RunRound(board, opts)
	if err != nil {
		t.Fatalf("RunRound: %v", err)
	}
	b, err := RunRound(board, RoundOptions{Jitter: JitterSeeded, Seeds: &Seeds{Server: "server-seed", Client: "client-seed", Nonce: 7}})
	if err != nil {
		t.Fatalf("RunRound: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("same seeds produced different rounds")
	}
	if a.EntryX < 370 || a.EntryX > 430 {
		t.Errorf("seeded entry x = %.4f outside 400±30", a.EntryX)
	}
}

func TestRoundInvariants(t *testing.T) {
	board := mustBoard(t, DefaultBoardConfig())
	const eps = 1e-3

	for nonce := uint64(0); nonce < 40; nonce++ {
		out, err := RunRound(board, RoundOptions{
			Jitter: JitterSeeded,
			Seeds:  &Seeds{Server: "invariants", Client: "test", Nonce: nonce},
		})
		if err != nil {
			t.Fatalf("nonce %d: %v", nonce, err)
		}
		if out.WinningSlot < 1 || out.WinningSlot > board.Slots() {
			t.Errorf("nonce %d: slot %d out of range", nonce, out.WinningSlot)
		}
		if out.Ticks > board.Physics.MaxTicks {
			t.Errorf("nonce %d: %d ticks exceeds budget", nonce, out.Ticks)
		}
		for _, p := range out.Trajectory {
			if p.X < board.MarginLeft || p.X > board.MarginRight {
				t.Fatalf("nonce %d tick %d: x=%.4f outside margins", nonce, p.Tick, p.X)
			}
			pos := Vec2{X: p.X, Y: p.Y}
			for i, peg := range board.Pegs {
				d := pos.DistanceTo(Vec2{X: peg.X, Y: peg.Y})
				if d < board.BallRadius+peg.Radius-eps {
					t.Fatalf("nonce %d tick %d: ball inside peg %d (d=%.4f)", nonce, p.Tick, i, d)
				}
			}
		}
	}
}

func TestCentreDropOnPegFallsBackToCentreSink(t *testing.T) {
	// The row-2 centre peg sits directly under an undisturbed centre drop.
	board := mustBoard(t, DefaultBoardConfig())
	out, err := RunRound(board, RoundOptions{Jitter: JitterNone})
	if err != nil {
		t.Fatalf("RunRound: %v", err)
	}
	if out.WinningSlot != 8 {
		t.Errorf("slot = %d, want 8", out.WinningSlot)
	}
	if !out.Forced || out.Ticks != board.Physics.MaxTicks {
		t.Errorf("forced = %v ticks = %d, want forced after %d", out.Forced, out.Ticks, board.Physics.MaxTicks)
	}
}

func TestTrajectorySampling(t *testing.T) {
	board := mustBoard(t, DefaultBoardConfig())
	full, err := RunRound(board, RoundOptions{Jitter: JitterFixed})
	if err != nil {
		t.Fatalf("RunRound: %v", err)
	}
	if len(full.Trajectory) != full.Ticks+1 {
		t.Errorf("full trajectory has %d points for %d ticks", len(full.Trajectory), full.Ticks)
	}

	sparse, err := RunRound(board, RoundOptions{Jitter: JitterFixed, SampleStride: 5})
	if err != nil {
		t.Fatalf("RunRound: %v", err)
	}
	if sparse.WinningSlot != full.WinningSlot {
		t.Errorf("sampling changed the outcome: %d vs %d", sparse.WinningSlot, full.WinningSlot)
	}
	pts := sparse.Trajectory
	if pts[0].Tick != 0 {
		t.Errorf("first sample tick = %d", pts[0].Tick)
	}
	last := pts[len(pts)-1]
	if last.Tick != sparse.Ticks || last != full.Trajectory[len(full.Trajectory)-1] {
		t.Errorf("last sample = %+v, want captured position at tick %d", last, sparse.Ticks)
	}
	for _, p := range pts[1 : len(pts)-1] {
		if p.Tick%5 != 0 {
			t.Errorf("unexpected sample at tick %d", p.Tick)
		}
	}
	for i := 1; i < len(pts); i++ {
		if pts[i].Tick <= pts[i-1].Tick {
			t.Fatalf("trajectory not ordered at %d", i)
		}
	}
}

func TestExplicitEntryOverridesJitter(t *testing.T) {
	board := mustBoard(t, DefaultBoardConfig())
	x := 250.0
	out, err := RunRound(board, RoundOptions{EntryX: &x, Jitter: JitterSeeded})
	if err != nil {
		t.Fatalf("RunRound: %v", err)
	}
	if out.EntryX != 250 || out.Trajectory[0].X != 250 {
		t.Errorf("entry x = %.4f, want 250", out.EntryX)
	}

	far := -100.0
	got, err := ResolveEntryX(board, RoundOptions{EntryX: &far})
	if err != nil || got != board.MarginLeft {
		t.Errorf("entry left of board = %.4f, %v; want clamped to %.1f", got, err, board.MarginLeft)
	}
}

func TestSeededJitterRequiresSeeds(t *testing.T) {
	board := mustBoard(t, DefaultBoardConfig())
	if _, err := RunRound(board, RoundOptions{Jitter: JitterSeeded}); !errors.Is(err, ErrMissingSeeds) {
		t.Errorf("err = %v, want ErrMissingSeeds", err)
	}
}

func TestParseJitterMode(t *testing.T) {
	for in, want := range map[string]JitterMode{"": JitterNone, "none": JitterNone, "fixed": JitterFixed, "seeded": JitterSeeded} {
		got, err := ParseJitterMode(in)
		if err != nil || got != want {
			t.Errorf("ParseJitterMode(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseJitterMode("random"); err == nil {
		t.Error("unknown mode accepted")
	}
}

func TestDecimateKeepsEnds(t *testing.T) {
	pts := make([]TrajectoryPoint, 11)
	for i := range pts {
		pts[i] = TrajectoryPoint{Tick: i}
	}
	got := Decimate(pts, 4)
	ticks := make([]int, len(got))
	for i, p := range got {
		ticks[i] = p.Tick
	}
	if !reflect.DeepEqual(ticks, []int{0, 4, 8, 10}) {
		t.Errorf("ticks = %v", ticks)
	}
}

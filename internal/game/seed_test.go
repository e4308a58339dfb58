package game

import (
	"errors"
	"testing"
)

func TestSeedFloatsAreStableAndInRange(t *testing.T) {
	s := Seeds{Server: "server", Client: "client", Nonce: 1}

	// 20 floats consume 80 bytes, crossing two HMAC rounds
	a := s.Floats(20)
	b := s.Floats(20)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("float %d differs between calls: %v vs %v", i, a[i], b[i])
		}
		if a[i] < 0 || a[i] >= 1 {
			t.Errorf("float %d = %v out of [0, 1)", i, a[i])
		}
	}

	other := Seeds{Server: "server", Client: "client", Nonce: 2}.Floats(1)
	if other[0] == a[0] {
		t.Error("different nonces produced the same first float")
	}
}

func TestHashServerSeed(t *testing.T) {
	const want = "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	if got := HashServerSeed("abc"); got != want {
		t.Errorf("HashServerSeed(abc) = %s", got)
	}
}

func TestNewServerSeed(t *testing.T) {
	a, err := NewServerSeed()
	if err != nil {
		t.Fatalf("NewServerSeed: %v", err)
	}
	b, err := NewServerSeed()
	if err != nil {
		t.Fatalf("NewServerSeed: %v", err)
	}
	if len(a) != 64 || a == b {
		t.Errorf("seeds %q and %q", a, b)
	}
}

func TestVerifyRound(t *testing.T) {
	board := mustBoard(t, DefaultBoardConfig())
	seeds := &Seeds{Server: "revealed", Client: "player", Nonce: 3}
	opts := RoundOptions{Jitter: JitterSeeded, Seeds: seeds, SampleStride: 4}
	hash := HashServerSeed(seeds.Server)

	out, err := RunRound(board, opts)
	if err != nil {
		t.Fatalf("RunRound: %v", err)
	}

	if _, err := VerifyRound(board, opts, hash, out.WinningSlot, out.Trajectory); err != nil {
		t.Errorf("honest round failed verification: %v", err)
	}

	wrongSlot := out.WinningSlot%board.Slots() + 1
	if _, err := VerifyRound(board, opts, hash, wrongSlot, nil); !errors.Is(err, ErrVerificationFailed) {
		t.Errorf("tampered slot err = %v", err)
	}

	if _, err := VerifyRound(board, opts, HashServerSeed("other"), out.WinningSlot, nil); !errors.Is(err, ErrVerificationFailed) {
		t.Errorf("mismatched hash err = %v", err)
	}

	if _, err := VerifyRound(board, RoundOptions{Jitter: JitterSeeded}, "", 1, nil); !errors.Is(err, ErrMissingSeeds) {
		t.Errorf("missing seeds err = %v", err)
	}
}

package game

import "errors"

var (
	// ErrInvalidSlot is returned when a slot index falls outside [1, N].
	ErrInvalidSlot = errors.New("invalid slot")

	// ErrInvalidWager is returned for negative wagers.
	ErrInvalidWager = errors.New("invalid wager")

	// ErrInvalidBoard is returned by BuildBoard for unusable configurations.
	ErrInvalidBoard = errors.New("invalid board config")

	// ErrEngineFault means the tick budget ran out and no sink could take the
	// ball. It is fatal to the round; rerunning the same inputs reproduces it.
	ErrEngineFault = errors.New("engine fault")

	// ErrMissingSeeds is returned when seeded jitter is requested without seeds.
	ErrMissingSeeds = errors.New("seeded jitter requires a server seed")

	// ErrVerificationFailed is returned when a replayed round does not match
	// the claimed outcome.
	ErrVerificationFailed = errors.New("round verification failed")
)

package game

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"
	"reflect"
)

// Seeds identify one provably fair round. The server seed stays secret until
// the round settles; its SHA-256 hash is published when betting opens.
type Seeds struct {
	Server string `json:"server_seed"`
	Client string `json:"client_seed"`
	Nonce  uint64 `json:"nonce"`
}

// byteStream yields HMAC-SHA256(server, "client:nonce:round") bytes, moving to
// the next round every 32 bytes.
type byteStream struct {
	seeds Seeds
	round uint64
	pos   int
	buf   [32]byte
}

func newByteStream(s Seeds) *byteStream {
	bs := &byteStream{seeds: s}
	bs.fill()
	return bs
}

func (bs *byteStream) fill() {
	mac := hmac.New(sha256.New, []byte(bs.seeds.Server))
	fmt.Fprintf(mac, "%s:%d:%d", bs.seeds.Client, bs.seeds.Nonce, bs.round)
	copy(bs.buf[:], mac.Sum(nil))
}

func (bs *byteStream) next() byte {
	if bs.pos >= len(bs.buf) {
		bs.round++
		bs.pos = 0
		bs.fill()
	}
	b := bs.buf[bs.pos]
	bs.pos++
	return b
}

// nextFloat consumes 4 bytes and returns a value in [0, 1).
func (bs *byteStream) nextFloat() float64 {
	var f float64
	for i := 0; i < 4; i++ {
		f += float64(bs.next()) / math.Pow(256, float64(i+1))
	}
	return f
}

// Floats returns the first n floats of the seed stream.
func (s Seeds) Floats(n int) []float64 {
	bs := newByteStream(s)
	out := make([]float64, n)
	for i := range out {
		out[i] = bs.nextFloat()
	}
	return out
}

// HashServerSeed returns the hex SHA-256 commitment of a server seed.
func HashServerSeed(seed string) string {
	sum := sha256.Sum256([]byte(seed))
	return hex.EncodeToString(sum[:])
}

// NewServerSeed returns a fresh 32-byte hex seed from crypto/rand.
func NewServerSeed() (string, error) {
	var b [32]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", fmt.Errorf("generating server seed: %w", err)
	}
	return hex.EncodeToString(b[:]), nil
}

// VerifyRound replays a seeded round and checks it against the claimed slot
// and, when given, the claimed trajectory. hash is checked against the
// revealed server seed when non-empty.
func VerifyRound(board *Board, opts RoundOptions, hash string, slot int, trajectory []TrajectoryPoint) (*RoundOutcome, error) {
	if opts.Seeds == nil {
		return nil, ErrMissingSeeds
	}
	if hash != "" && HashServerSeed(opts.Seeds.Server) != hash {
		return nil, fmt.Errorf("%w: server seed does not match published hash", ErrVerificationFailed)
	}
	out, err := RunRound(board, opts)
	if err != nil {
		return nil, err
	}
	if out.WinningSlot != slot {
		return out, fmt.Errorf("%w: replay landed in slot %d, claimed %d", ErrVerificationFailed, out.WinningSlot, slot)
	}
	if trajectory != nil && !reflect.DeepEqual(out.Trajectory, trajectory) {
		return out, fmt.Errorf("%w: trajectory differs", ErrVerificationFailed)
	}
	return out, nil
}

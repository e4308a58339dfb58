package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shivaram19/gorbagana-plinko/internal/game"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_PORT", "")
	t.Setenv("BETTING_WINDOW_SECONDS", "")
	t.Setenv("MIGRATE_ON_START", "")

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 30*time.Second, cfg.BettingWindow())
	assert.True(t, cfg.MigrateOnStart)
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("BETTING_WINDOW_SECONDS", "5")
	t.Setenv("MIGRATE_ON_START", "false")
	t.Setenv("TRAJECTORY_STRIDE", "not-a-number")

	cfg := Load()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 5*time.Second, cfg.BettingWindow())
	assert.False(t, cfg.MigrateOnStart)
	assert.Equal(t, 2, cfg.TrajectoryStride, "bad ints fall back to the default")
}

func TestLoadBoardDefault(t *testing.T) {
	board, cfg, err := LoadBoard("")
	require.NoError(t, err)
	assert.Equal(t, game.DefaultNumSinks, board.Slots())
	assert.Equal(t, game.DefaultGravity, cfg.Physics.Gravity)
}

func TestLoadBoardMergesYAMLOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.yaml")
	doc := `
num_sinks: 5
multipliers: [4, 2, 1, 2, 4]
physics:
  gravity: 0.5
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	board, cfg, err := LoadBoard(path)
	require.NoError(t, err)
	assert.Equal(t, 5, board.Slots())
	assert.Equal(t, 0.5, board.Physics.Gravity)
	assert.Equal(t, game.DefaultVerticalFriction, cfg.Physics.VerticalFriction)
	assert.Equal(t, game.DefaultMaxTicks, cfg.Physics.MaxTicks)
	assert.Equal(t, game.DefaultWidth, board.Width)
}

func TestLoadBoardEnvOverride(t *testing.T) {
	t.Setenv("PLINKO_GRAVITY", "0.9")
	board, _, err := LoadBoard("")
	require.NoError(t, err)
	assert.Equal(t, 0.9, board.Physics.Gravity)
}

func TestLoadBoardRejectsAsymmetricTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.yaml")
	require.NoError(t, os.WriteFile(path, []byte("num_sinks: 3\nmultipliers: [1, 2, 3]\n"), 0o600))

	_, _, err := LoadBoard(path)
	assert.True(t, errors.Is(err, game.ErrInvalidBoard), "err = %v", err)
}

func TestShippedBoardMatchesDefaults(t *testing.T) {
	board, _, err := LoadBoard("../../configs/board.yaml")
	require.NoError(t, err)

	def, _, err := LoadBoard("")
	require.NoError(t, err)
	assert.Equal(t, def.Sinks, board.Sinks)
	assert.Equal(t, len(def.Pegs), len(board.Pegs))
	assert.Equal(t, def.Physics, board.Physics)
}

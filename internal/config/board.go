package config

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/shivaram19/gorbagana-plinko/internal/game"
)

// LoadBoard reads board geometry and physics from a YAML file. Keys absent
// from the file keep their defaults. An empty path returns the default board.
// PLINKO_GRAVITY, PLINKO_HORIZONTAL_FRICTION and PLINKO_VERTICAL_FRICTION
// override the file when set.
func LoadBoard(path string) (*game.Board, game.BoardConfig, error) {
	cfg := game.DefaultBoardConfig()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, cfg, fmt.Errorf("reading board config: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return nil, cfg, fmt.Errorf("parsing board config %s: %w", path, err)
		}
		log.Printf("[CONFIG] Board loaded from %s (%d sinks, %d rows)", path, cfg.NumSinks, cfg.Rows)
	}

	cfg.Physics.Gravity = getEnvFloat("PLINKO_GRAVITY", cfg.Physics.Gravity)
	cfg.Physics.HorizontalFriction = getEnvFloat("PLINKO_HORIZONTAL_FRICTION", cfg.Physics.HorizontalFriction)
	cfg.Physics.VerticalFriction = getEnvFloat("PLINKO_VERTICAL_FRICTION", cfg.Physics.VerticalFriction)

	board, err := game.BuildBoard(cfg)
	if err != nil {
		return nil, cfg, err
	}
	return board, cfg, nil
}

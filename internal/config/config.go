package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Environment
	Environment string

	// Database
	DatabaseURL    string
	MigrateOnStart bool
	MigrationsDir  string

	// Redis
	RedisURL string

	// Server
	Port        string
	FrontendURL string

	// Rounds
	BettingWindowSeconds     int
	BettingWorkerPollSeconds int
	MaxRoomPlayers           int
	TrajectoryStride         int
	TrajectoryTTLMinutes     int
	JitterMode               string
	BoardConfigPath          string

	// Security
	JWTSecret         string
	SessionTimeoutMin int
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	return &Config{
		Environment: getEnv("APP_ENV", "development"),

		DatabaseURL:    getEnv("DATABASE_URL", "postgres://localhost:5432/plinko?sslmode=disable"),
		MigrateOnStart: getEnvBool("MIGRATE_ON_START", true),
		MigrationsDir:  getEnv("MIGRATIONS_DIR", "migrations"),

		RedisURL: getEnv("REDIS_URL", "redis://localhost:6379/0"),

		Port:        getEnv("APP_PORT", "8080"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:5173"),

		BettingWindowSeconds:     getEnvInt("BETTING_WINDOW_SECONDS", 30),
		BettingWorkerPollSeconds: getEnvInt("BETTING_WORKER_POLL_SECONDS", 1),
		MaxRoomPlayers:           getEnvInt("MAX_ROOM_PLAYERS", 12),
		TrajectoryStride:         getEnvInt("TRAJECTORY_STRIDE", 2),
		TrajectoryTTLMinutes:     getEnvInt("TRAJECTORY_TTL_MINUTES", 60),
		JitterMode:               getEnv("JITTER_MODE", "seeded"),
		BoardConfigPath:          getEnv("BOARD_CONFIG_PATH", ""),

		JWTSecret:         getEnv("JWT_SECRET", "change-me-in-production"),
		SessionTimeoutMin: getEnvInt("SESSION_TIMEOUT_MINUTES", 24*60),
	}
}

// BettingWindow is how long a room accepts bets before the ball drops.
func (c *Config) BettingWindow() time.Duration {
	return time.Duration(c.BettingWindowSeconds) * time.Second
}

// SessionTimeout is the lifetime of an issued session token.
func (c *Config) SessionTimeout() time.Duration {
	return time.Duration(c.SessionTimeoutMin) * time.Minute
}

// TrajectoryTTL is how long a finished round stays in the Redis cache.
func (c *Config) TrajectoryTTL() time.Duration {
	return time.Duration(c.TrajectoryTTLMinutes) * time.Minute
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

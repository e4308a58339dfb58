package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shivaram19/gorbagana-plinko/internal/api"
	"github.com/shivaram19/gorbagana-plinko/internal/common/clock"
	"github.com/shivaram19/gorbagana-plinko/internal/config"
	"github.com/shivaram19/gorbagana-plinko/internal/database"
	"github.com/shivaram19/gorbagana-plinko/internal/events"
	"github.com/shivaram19/gorbagana-plinko/internal/game"
	"github.com/shivaram19/gorbagana-plinko/internal/migrations"
	"github.com/shivaram19/gorbagana-plinko/internal/redis"
	"github.com/shivaram19/gorbagana-plinko/internal/rooms"
	"github.com/shivaram19/gorbagana-plinko/internal/store"
	"github.com/shivaram19/gorbagana-plinko/internal/ws"
)

func main() {
	cfg := config.Load()

	board, boardCfg, err := config.LoadBoard(cfg.BoardConfigPath)
	if err != nil {
		log.Fatalf("Failed to load board: %v", err)
	}
	log.Printf("[BOARD] %d rows, %d pegs, %d slots (gravity=%g, max_ticks=%d)",
		boardCfg.Rows, len(board.Pegs), board.Slots(), board.Physics.Gravity, board.Physics.MaxTicks)

	jitter, err := game.ParseJitterMode(cfg.JitterMode)
	if err != nil {
		log.Fatalf("Invalid JITTER_MODE: %v", err)
	}

	// Initialize database
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if cfg.MigrateOnStart {
		log.Println("[MIGRATE] Running DB migrations on startup...")
		if err := migrations.RunMigrations(cfg.DatabaseURL, cfg.MigrationsDir); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	}

	// Initialize Redis
	rdb, err := redis.Connect(cfg.RedisURL)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer rdb.Close()

	ledger, err := store.NewPostgres(db)
	if err != nil {
		log.Fatalf("Failed to create store: %v", err)
	}
	notifier, err := events.NewRedis(&events.Config{RedisClient: rdb, Clock: clock.DefaultClock{}})
	if err != nil {
		log.Fatalf("Failed to create notifier: %v", err)
	}

	manager, err := rooms.NewManager(rooms.Config{
		Board:            board,
		Store:            ledger,
		Notifier:         notifier,
		Redis:            rdb,
		Clock:            clock.DefaultClock{},
		BettingWindow:    cfg.BettingWindow(),
		Jitter:           jitter,
		TrajectoryStride: cfg.TrajectoryStride,
		TrajectoryTTL:    cfg.TrajectoryTTL(),
		MaxRoomPlayers:   cfg.MaxRoomPlayers,
	})
	if err != nil {
		log.Fatalf("Failed to create room manager: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hub := ws.NewHub()
	ws.StartEventSubscriber(ctx, rdb, hub)
	rooms.StartBettingWorker(ctx, rdb, manager, clock.DefaultClock{}, time.Duration(cfg.BettingWorkerPollSeconds)*time.Second)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	api.SetupRoutes(router, &api.Deps{
		Config:   cfg,
		Rooms:    manager,
		Store:    ledger,
		Notifier: notifier,
		Hub:      hub,
	})

	port := cfg.Port
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{Addr: ":" + port, Handler: router}

	go func() {
		log.Printf("Starting Gorbagana Plinko server on port %s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")
	hub.Shutdown()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
}

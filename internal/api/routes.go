package api

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/shivaram19/gorbagana-plinko/internal/api/handlers"
	"github.com/shivaram19/gorbagana-plinko/internal/config"
	"github.com/shivaram19/gorbagana-plinko/internal/events"
	"github.com/shivaram19/gorbagana-plinko/internal/middleware"
	"github.com/shivaram19/gorbagana-plinko/internal/rooms"
	"github.com/shivaram19/gorbagana-plinko/internal/store"
	"github.com/shivaram19/gorbagana-plinko/internal/ws"
)

// Deps are the services the routes are served from.
type Deps struct {
	Config   *config.Config
	Rooms    *rooms.Manager
	Store    store.Store
	Notifier events.Notifier
	Hub      *ws.Hub
}

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, d *Deps) {
	cfg := d.Config
	router.Use(middleware.CORSMiddleware(cfg))

	if cfg.Environment != "production" {
		router.Use(func(c *gin.Context) {
			c.Header("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
			c.Header("Pragma", "no-cache")
			c.Header("Expires", "0")
			c.Next()
		})
		log.Println("[DEV MODE] No-cache headers enabled for all routes")
	}

	requireWallet := middleware.RequireWallet(cfg.JWTSecret)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", handlers.HealthCheck)
		v1.GET("/config", handlers.GetConfig(cfg))
		v1.GET("/board", handlers.GetBoard(d.Rooms.Board()))

		authGroup := v1.Group("/auth")
		{
			authGroup.GET("/message", handlers.GetLoginMessage)
			authGroup.POST("/login", handlers.Login(d.Store, cfg))
		}

		rounds := v1.Group("/rounds")
		{
			rounds.POST("/simulate", handlers.SimulateRound(d.Rooms))
			rounds.POST("/verify", handlers.VerifyRound(d.Rooms))
			rounds.GET("/:id", handlers.GetRound(d.Notifier, d.Store))
		}

		roomGroup := v1.Group("/rooms")
		{
			roomGroup.GET("", handlers.ListRooms(d.Rooms))
			roomGroup.GET("/:id", handlers.GetRoom(d.Rooms))
			roomGroup.GET("/:id/ws", middleware.WebSocketCORSCheck(cfg), requireWallet, handlers.HandleRoomWebSocket(d.Hub, d.Rooms))

			roomGroup.POST("", requireWallet, handlers.CreateRoom(d.Rooms))
			roomGroup.POST("/:id/join", requireWallet, handlers.JoinRoom(d.Rooms))
			roomGroup.POST("/:id/leave", requireWallet, handlers.LeaveRoom(d.Rooms))
			roomGroup.POST("/:id/betting", requireWallet, handlers.OpenBetting(d.Rooms))
			roomGroup.POST("/:id/bets", requireWallet, handlers.PlaceBet(d.Rooms))
			roomGroup.POST("/:id/drop", requireWallet, handlers.DropBall(d.Rooms))
		}

		player := v1.Group("/player")
		{
			player.GET("/:address/stats", handlers.GetPlayerStats(d.Store))
		}
	}
}

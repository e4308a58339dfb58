package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shivaram19/gorbagana-plinko/internal/config"
)

// GetConfig returns minimal config values required by frontend
func GetConfig(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"betting_window_seconds": cfg.BettingWindowSeconds,
			"max_room_players":       cfg.MaxRoomPlayers,
			"jitter_mode":            cfg.JitterMode,
		})
	}
}

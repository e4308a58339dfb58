package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shivaram19/gorbagana-plinko/internal/events"
	"github.com/shivaram19/gorbagana-plinko/internal/game"
	"github.com/shivaram19/gorbagana-plinko/internal/rooms"
	"github.com/shivaram19/gorbagana-plinko/internal/store"
)

// GetBoard returns the board geometry clients render.
func GetBoard(board *game.Board) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"board": board,
			"slots": board.Slots(),
		})
	}
}

// SimulateRound runs a free-play drop. The body is optional; without seeds a
// fresh server seed is drawn and returned.
func SimulateRound(mgr *rooms.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			ServerSeed string   `json:"server_seed"`
			ClientSeed string   `json:"client_seed"`
			Nonce      uint64   `json:"nonce"`
			EntryX     *float64 `json:"entry_x"`
		}
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		var seeds *game.Seeds
		if req.ServerSeed != "" || req.ClientSeed != "" || req.Nonce != 0 {
			seeds = &game.Seeds{Server: req.ServerSeed, Client: req.ClientSeed, Nonce: req.Nonce}
		}
		res, err := mgr.Simulate(seeds, req.EntryX)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

// GetRound returns a finished round, from the replay cache while it is warm
// and from the ledger afterwards.
func GetRound(notifier events.Notifier, st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		roundID := c.Param("id")
		ctx := c.Request.Context()

		if raw, err := notifier.CachedOutcome(ctx, roundID); err == nil {
			c.JSON(http.StatusOK, gin.H{"source": "cache", "round": json.RawMessage(raw)})
			return
		} else if !errors.Is(err, events.ErrNotCached) {
			log.Printf("[API] Round cache lookup for %s failed, reading ledger: %v", roundID, err)
		}

		rec, err := st.GetRound(ctx, roundID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"source": "ledger", "round": rec})
	}
}

// VerifyRound replays a round from its revealed seeds.
func VerifyRound(mgr *rooms.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			ServerSeed     string `json:"server_seed" binding:"required"`
			ServerSeedHash string `json:"server_seed_hash"`
			ClientSeed     string `json:"client_seed"`
			Nonce          uint64 `json:"nonce"`
			WinningSlot    int    `json:"winning_slot" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "server_seed and winning_slot required"})
			return
		}

		seeds := game.Seeds{Server: req.ServerSeed, Client: req.ClientSeed, Nonce: req.Nonce}
		out, err := mgr.Verify(seeds, req.ServerSeedHash, req.WinningSlot)
		if err != nil {
			if errors.Is(err, game.ErrVerificationFailed) {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"verified": false, "error": err.Error()})
				return
			}
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"verified": true, "outcome": out})
	}
}

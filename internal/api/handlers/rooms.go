package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shivaram19/gorbagana-plinko/internal/middleware"
	"github.com/shivaram19/gorbagana-plinko/internal/rooms"
)

func ListRooms(mgr *rooms.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"rooms": mgr.ListRooms(c.Request.Context())})
	}
}

func GetRoom(mgr *rooms.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		view, err := mgr.GetRoom(c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"room": view})
	}
}

// CreateRoom opens a room owned by the caller and seats them in it.
func CreateRoom(mgr *rooms.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input rooms.CreateRoomInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name, max_players and entry_fee required"})
			return
		}
		wallet := middleware.Wallet(c)
		input.CreatedBy = wallet

		ctx := c.Request.Context()
		view, err := mgr.CreateRoom(ctx, input)
		if err != nil {
			respondError(c, err)
			return
		}
		if joined, err := mgr.JoinRoom(ctx, view.ID, wallet, false); err != nil {
			log.Printf("[ROOM] Creator %s could not join room %s: %v", wallet, view.ID, err)
		} else {
			view = joined
		}
		c.JSON(http.StatusCreated, gin.H{"room": view})
	}
}

func JoinRoom(mgr *rooms.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Spectator bool `json:"spectator"`
		}
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		view, err := mgr.JoinRoom(c.Request.Context(), c.Param("id"), middleware.Wallet(c), req.Spectator)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"room": view})
	}
}

func LeaveRoom(mgr *rooms.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		view, err := mgr.LeaveRoom(c.Request.Context(), c.Param("id"), middleware.Wallet(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"room": view})
	}
}

// OpenBetting starts the next round. Only the room creator may do this.
func OpenBetting(mgr *rooms.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		roomID := c.Param("id")
		if !requireCreator(c, mgr, roomID) {
			return
		}
		info, err := mgr.OpenBetting(c.Request.Context(), roomID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"round": info})
	}
}

func PlaceBet(mgr *rooms.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input rooms.PlaceBetInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "slot_number and amount required"})
			return
		}
		input.RoomID = c.Param("id")
		input.Wallet = middleware.Wallet(c)

		bet, err := mgr.PlaceBet(c.Request.Context(), input)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"bet": bet})
	}
}

// DropBall ends betting early. The betting worker drops the ball on its own
// once the window passes.
func DropBall(mgr *rooms.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		roomID := c.Param("id")
		if !requireCreator(c, mgr, roomID) {
			return
		}
		res, err := mgr.DropBall(c.Request.Context(), roomID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"result": res})
	}
}

func requireCreator(c *gin.Context, mgr *rooms.Manager, roomID string) bool {
	view, err := mgr.GetRoom(roomID)
	if err != nil {
		respondError(c, err)
		return false
	}
	if view.CreatedBy != middleware.Wallet(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "only the room creator can do this"})
		return false
	}
	return true
}

package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shivaram19/gorbagana-plinko/internal/events"
	"github.com/shivaram19/gorbagana-plinko/internal/game"
	"github.com/shivaram19/gorbagana-plinko/internal/rooms"
	"github.com/shivaram19/gorbagana-plinko/internal/store"
)

// statusFor maps a domain error to an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, rooms.ErrRoomNotFound),
		errors.Is(err, store.ErrNotFound),
		errors.Is(err, events.ErrNotCached):
		return http.StatusNotFound
	case errors.Is(err, rooms.ErrRoomFull),
		errors.Is(err, rooms.ErrRoomClosed),
		errors.Is(err, rooms.ErrBettingClosed),
		errors.Is(err, rooms.ErrAlreadyBet),
		errors.Is(err, rooms.ErrWrongState):
		return http.StatusConflict
	case errors.Is(err, rooms.ErrNotInRoom),
		errors.Is(err, rooms.ErrSpectator):
		return http.StatusForbidden
	case errors.Is(err, rooms.ErrInvalidRoom),
		errors.Is(err, game.ErrInvalidSlot),
		errors.Is(err, game.ErrInvalidWager),
		errors.Is(err, game.ErrMissingSeeds):
		return http.StatusBadRequest
	case errors.Is(err, game.ErrVerificationFailed):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

// respondError writes err with its mapped status. Internal errors are logged
// and hidden from the client.
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Printf("[API] %s %s failed: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(status, gin.H{"error": "internal error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

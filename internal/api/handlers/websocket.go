package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/shivaram19/gorbagana-plinko/internal/rooms"
	"github.com/shivaram19/gorbagana-plinko/internal/ws"
)

// HandleRoomWebSocket streams a room's events to the caller
func HandleRoomWebSocket(hub *ws.Hub, mgr *rooms.Manager) gin.HandlerFunc {
	return ws.HandleRoomWebSocket(hub, mgr)
}

package ws

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/shopspring/decimal"

	"github.com/shivaram19/gorbagana-plinko/internal/middleware"
	"github.com/shivaram19/gorbagana-plinko/internal/models"
	"github.com/shivaram19/gorbagana-plinko/internal/rooms"
)

// Inbound message types
const (
	MsgPlaceBet = "bet_placed"
	MsgPing     = "ping"
)

// Bettor is the part of the room manager a websocket client talks to.
type Bettor interface {
	GetRoom(roomID string) (*rooms.RoomView, error)
	PlaceBet(ctx context.Context, input rooms.PlaceBetInput) (*models.Bet, error)
}

type PlaceBetData struct {
	Slot   int             `json:"slot_number"`
	Amount decimal.Decimal `json:"amount"`
}

// HandleRoomWebSocket upgrades an authenticated request and attaches the
// connection to the room's hub. The current room view is sent first.
func HandleRoomWebSocket(hub *Hub, bettor Bettor) gin.HandlerFunc {
	return func(c *gin.Context) {
		roomID := c.Param("id")
		wallet := middleware.Wallet(c)
		if wallet == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			return
		}

		view, err := bettor.GetRoom(roomID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Printf("[WS] Upgrade error: %v", err)
			return
		}

		client := &Client{
			hub:    hub,
			conn:   conn,
			roomID: roomID,
			wallet: wallet,
			send:   make(chan []byte, sendBuffer),
		}
		client.sendJSON(map[string]interface{}{
			"type":    "room_state",
			"room_id": roomID,
			"data":    view,
		})
		hub.add(client)

		go client.writePump()
		go client.readPump(bettor)
	}
}

func (c *Client) readPump(bettor Bettor) {
	defer func() {
		c.hub.remove(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[WS] Unexpected close for %s in room %s: %v", c.wallet, c.roomID, err)
			}
			return
		}

		var msg WSMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			c.sendError("invalid message")
			continue
		}
		c.handleMessage(bettor, msg)
	}
}

func (c *Client) handleMessage(bettor Bettor, msg WSMessage) {
	switch msg.Type {
	case MsgPlaceBet:
		var data PlaceBetData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			c.sendError("slot_number and amount required")
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		// The accepted bet reaches every client through the room_events channel.
		if _, err := bettor.PlaceBet(ctx, rooms.PlaceBetInput{
			RoomID: c.roomID,
			Wallet: c.wallet,
			Slot:   data.Slot,
			Amount: data.Amount,
		}); err != nil {
			c.sendError(err.Error())
		}

	case MsgPing:
		c.sendJSON(map[string]interface{}{"type": "pong"})

	default:
		c.sendError("unknown message type")
	}
}

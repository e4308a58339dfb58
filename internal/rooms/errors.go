package rooms

import "errors"

var (
	ErrRoomNotFound  = errors.New("room not found")
	ErrInvalidRoom   = errors.New("invalid room")
	ErrRoomFull      = errors.New("room is full")
	ErrRoomClosed    = errors.New("room is closed")
	ErrNotInRoom     = errors.New("player is not in this room")
	ErrSpectator     = errors.New("spectators cannot place bets")
	ErrBettingClosed = errors.New("betting is closed")
	ErrAlreadyBet    = errors.New("player already has a bet this round")
	ErrWrongState    = errors.New("room is not in the required state")
)

// internal/game/errors.go
package game

import "errors"

// Rejections for a proposed line. CheckLine and CheckNewLine wrap these so
// callers can match with errors.Is.
var (
	ErrLineLength        = errors.New("line must hold between 1 and 4 tiles")
	ErrNotColinear       = errors.New("line tiles must share a row or a column")
	ErrDuplicateCell     = errors.New("line places two tiles on the same cell")
	ErrLineGap           = errors.New("line has a gap")
	ErrAttributeMismatch = errors.New("line tiles must be all-same or all-distinct per attribute")
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrNotConnected      = errors.New("line tiles are not connected to each other")
	ErrNotTouchingBoard  = errors.New("line does not touch the board")
)

// State and lookup failures.
var (
	ErrNoPlayers      = errors.New("game needs at least one player")
	ErrTooManyPlayers = errors.New("not enough cards to deal every player")
	ErrUnknownPlayer  = errors.New("player is not in this game")
	ErrCardNotInHand  = errors.New("card is not in the player's hand")
	ErrStaleVersion   = errors.New("move was made against an old game state")
	ErrGameNotFound   = errors.New("game not found")
)

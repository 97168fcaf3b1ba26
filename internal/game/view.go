// internal/game/view.go
package game

import (
	"github.com/google/uuid"
	"github.com/jason-s-yu/qwirkle/internal/models"
)

// SeatView is one player as seen by someone else at the table.
type SeatView struct {
	PlayerID int           `json:"player_id"`
	HandSize int           `json:"hand_size"`
	Cards    []models.Card `json:"cards,omitempty"` // only for the requesting player
}

// PlayerView is the part of a GameState a single player is allowed to see:
// the board, how many cards are left to draw, and everyone's hand size, with
// card faces only for the player's own hand.
type PlayerView struct {
	GameID   uuid.UUID          `json:"game_id"`
	Version  int                `json:"version"`
	DeckSize int                `json:"deck_size"`
	Board    []models.Placement `json:"board"`
	Seats    []SeatView         `json:"seats"`
}

// ViewFor builds the view of state for playerID. An unknown playerID gets a
// spectator view with no hands revealed.
func ViewFor(state GameState, playerID int) PlayerView {
	view := PlayerView{
		GameID:   state.ID,
		DeckSize: len(state.Deck),
		Board:    state.Board.Placements(),
		Seats:    make([]SeatView, 0, len(state.Players)),
	}
	for _, p := range state.Players {
		seat := SeatView{PlayerID: p.ID, HandSize: len(p.Cards)}
		if p.ID == playerID {
			seat.Cards = append([]models.Card(nil), p.Cards...)
		}
		view.Seats = append(view.Seats, seat)
	}
	return view
}

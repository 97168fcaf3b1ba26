// internal/game/apply.go
package game

import (
	"fmt"

	"github.com/jason-s-yu/qwirkle/internal/models"
)

// ApplyLine checks line for activePlayerID against state and, if it is a
// legal move, returns the state after playing it. state is left untouched
// either way.
func ApplyLine(state GameState, activePlayerID int, line []models.Placement) (GameState, error) {
	player, ok := state.Player(activePlayerID)
	if !ok {
		return GameState{}, fmt.Errorf("player %d: %w", activePlayerID, ErrUnknownPlayer)
	}
	if err := CheckLine(line); err != nil {
		return GameState{}, err
	}
	if err := CheckNewLine(state.Board, line); err != nil {
		return GameState{}, err
	}
	played := make(map[models.Card]struct{}, len(line))
	for _, p := range line {
		if _, dup := played[p.Card]; dup {
			return GameState{}, fmt.Errorf("%s played twice: %w", p.Card, ErrCardNotInHand)
		}
		played[p.Card] = struct{}{}
		if !player.HasCard(p.Card) {
			return GameState{}, fmt.Errorf("player %d does not hold %s: %w", player.ID, p.Card, ErrCardNotInHand)
		}
	}
	return ApplyValidatedLine(state, player, line), nil
}

// ApplyValidatedLine plays line for activePlayer without checking anything:
// the played cards leave the player's hand, the same number of cards are
// drawn from the front of the deck (fewer if the deck runs short), and the
// line is appended to the board. Passing a line that ApplyLine would reject
// breaks the one-place-per-card invariant of the result.
func ApplyValidatedLine(state GameState, activePlayer models.Player, line []models.Placement) GameState {
	drawn := min(len(line), len(state.Deck))

	deck := make([]models.Card, len(state.Deck)-drawn)
	copy(deck, state.Deck[drawn:])

	played := make(map[models.Card]struct{}, len(line))
	for _, p := range line {
		played[p.Card] = struct{}{}
	}

	players := make([]models.Player, len(state.Players))
	for i, p := range state.Players {
		if p.ID != activePlayer.ID {
			players[i] = models.Player{ID: p.ID, Cards: append([]models.Card(nil), p.Cards...)}
			continue
		}
		hand := make([]models.Card, 0, len(p.Cards))
		for _, c := range p.Cards {
			if _, used := played[c]; !used {
				hand = append(hand, c)
			}
		}
		hand = append(hand, state.Deck[:drawn]...)
		players[i] = models.Player{ID: p.ID, Cards: hand}
	}

	return GameState{
		ID:      state.ID,
		Deck:    deck,
		Players: players,
		Board:   state.Board.With(line),
	}
}

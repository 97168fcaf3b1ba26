// internal/game/state.go
package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jason-s-yu/qwirkle/internal/models"
)

// StarterCell is where the first tile of every game is placed.
var StarterCell = models.Coordinate{X: 0, Y: 0}

// GameState is the whole game: the draw deck, every hand and the board.
// Every card of the full deck is in exactly one of those places. Functions in
// this package never modify a GameState they are given; transitions return a
// new value that shares nothing mutable with the old one.
type GameState struct {
	ID      uuid.UUID       `json:"id"`
	Deck    []models.Card   `json:"deck"`
	Players []models.Player `json:"players"`
	Board   Board           `json:"board"`
}

// CreateGame deals a new game for playerCount players with the default house
// rules and a clock-seeded shuffle.
func CreateGame(playerCount int) (GameState, error) {
	return Deal(playerCount, DefaultHouseRules(), nil)
}

// Deal shuffles a full deck, gives each of playerCount players rules.HandSize
// cards from the front, puts the next card on StarterCell and leaves the rest
// as the draw deck. Players get ids 1..playerCount. A nil r uses
// rules.ShuffleSeed, or the clock when the seed is zero.
func Deal(playerCount int, rules HouseRules, r *rand.Rand) (GameState, error) {
	if playerCount < 1 {
		return GameState{}, ErrNoPlayers
	}
	if rules.HandSize < 1 {
		return GameState{}, fmt.Errorf("invalid hand size %d", rules.HandSize)
	}
	if playerCount > rules.MaxPlayers() {
		return GameState{}, fmt.Errorf("%d players with %d cards each, deck has %d: %w", playerCount, rules.HandSize, DeckSize, ErrTooManyPlayers)
	}
	needed := playerCount*rules.HandSize + 1
	if r == nil {
		seed := rules.ShuffleSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		r = rand.New(rand.NewSource(seed))
	}

	shuffled := ShuffleDeck(BuildDeck(), r)

	players := make([]models.Player, playerCount)
	for i := range players {
		hand := make([]models.Card, rules.HandSize)
		copy(hand, shuffled[i*rules.HandSize:(i+1)*rules.HandSize])
		players[i] = models.Player{ID: i + 1, Cards: hand}
	}

	starter := shuffled[needed-1]
	board, err := NewBoard(models.Placement{X: StarterCell.X, Y: StarterCell.Y, Card: starter})
	if err != nil {
		return GameState{}, err
	}

	deck := make([]models.Card, len(shuffled)-needed)
	copy(deck, shuffled[needed:])

	id, _ := uuid.NewRandom()
	return GameState{
		ID:      id,
		Deck:    deck,
		Players: players,
		Board:   board,
	}, nil
}

// Player returns the player with the given id.
func (s GameState) Player(id int) (models.Player, bool) {
	for _, p := range s.Players {
		if p.ID == id {
			return p, true
		}
	}
	return models.Player{}, false
}

// Cards returns every card in the state: deck, then hands in seat order,
// then the board in insertion order.
func (s GameState) Cards() []models.Card {
	all := make([]models.Card, 0, DeckSize)
	all = append(all, s.Deck...)
	for _, p := range s.Players {
		all = append(all, p.Cards...)
	}
	for _, p := range s.Board.placements {
		all = append(all, p.Card)
	}
	return all
}

// Clone returns a deep copy of the state.
func (s GameState) Clone() GameState {
	out := GameState{
		ID:      s.ID,
		Deck:    append([]models.Card(nil), s.Deck...),
		Players: make([]models.Player, len(s.Players)),
		Board:   s.Board.With(nil),
	}
	for i, p := range s.Players {
		out.Players[i] = models.Player{ID: p.ID, Cards: append([]models.Card(nil), p.Cards...)}
	}
	return out
}

package game

import (
	"math/rand"
	"testing"

	"github.com/jason-s-yu/qwirkle/internal/models"
	"github.com/stretchr/testify/require"
)

func card(color models.Color, number models.Number, shape models.Shape) models.Card {
	return models.Card{Color: color, Number: number, Shape: shape}
}

func place(x, y int, c models.Card) models.Placement {
	return models.Placement{X: x, Y: y, Card: c}
}

// cells builds placements at the given (x, y) pairs, each with a different card.
func cells(coords ...[2]int) []models.Placement {
	deck := BuildDeck()
	out := make([]models.Placement, len(coords))
	for i, c := range coords {
		out[i] = place(c[0], c[1], deck[i])
	}
	return out
}

func mustBoard(t *testing.T, placements ...models.Placement) Board {
	t.Helper()
	b, err := NewBoard(placements...)
	require.NoError(t, err)
	return b
}

// seededGame deals a deterministic game.
func seededGame(t *testing.T, players int) GameState {
	t.Helper()
	state, err := Deal(players, DefaultHouseRules(), rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	return state
}

// requireConserved checks that every card of the deck is in exactly one place.
func requireConserved(t *testing.T, state GameState) {
	t.Helper()
	seen := make(map[models.Card]int)
	for _, c := range state.Cards() {
		seen[c]++
	}
	require.Len(t, seen, DeckSize, "every card should be somewhere")
	for c, n := range seen {
		require.Equal(t, 1, n, "card %s appears %d times", c, n)
	}
}

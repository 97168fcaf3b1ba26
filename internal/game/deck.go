// internal/game/deck.go
package game

import (
	"math/rand"
	"slices"

	"github.com/jason-s-yu/qwirkle/internal/models"
)

var (
	colors  = [...]models.Color{models.Red, models.Green, models.Blue, models.Yellow}
	numbers = [...]models.Number{1, 2, 3, 4}
	shapes  = [...]models.Shape{models.Cross, models.Square, models.Circle, models.Triangle}
)

// DeckSize is the number of distinct cards in a full deck.
const DeckSize = 64

// Colors returns the tile colors in deck order.
func Colors() []models.Color { return slices.Clone(colors[:]) }

// Numbers returns the tile numbers in deck order.
func Numbers() []models.Number { return slices.Clone(numbers[:]) }

// Shapes returns the tile shapes in deck order.
func Shapes() []models.Shape { return slices.Clone(shapes[:]) }

// BuildDeck returns every card exactly once, color-major, then number, then shape.
func BuildDeck() []models.Card {
	deck := make([]models.Card, 0, DeckSize)
	for _, color := range colors {
		for _, number := range numbers {
			for _, shape := range shapes {
				deck = append(deck, models.Card{Color: color, Number: number, Shape: shape})
			}
		}
	}
	return deck
}

// IsDeckCard reports whether c has attributes from the deck's domains.
func IsDeckCard(c models.Card) bool {
	return slices.Contains(colors[:], c.Color) && slices.Contains(numbers[:], c.Number) && slices.Contains(shapes[:], c.Shape)
}

// ShuffleDeck returns a shuffled copy of deck.
func ShuffleDeck(deck []models.Card, r *rand.Rand) []models.Card {
	out := make([]models.Card, len(deck))
	copy(out, deck)
	r.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

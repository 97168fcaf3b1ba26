// internal/models/card.go
package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is one of the four tile colors.
type Color string

// Shape is one of the four tile shapes.
type Shape string

// Number is the printed value on a tile, 1 through 4.
type Number int

const (
	Red    Color = "red"
	Green  Color = "green"
	Blue   Color = "blue"
	Yellow Color = "yellow"
)

const (
	Cross    Shape = "cross"
	Square   Shape = "square"
	Circle   Shape = "circle"
	Triangle Shape = "triangle"
)

// Card is a single tile. Every combination of color, number and shape exists
// exactly once in a game, so a Card value is also its identity.
type Card struct {
	Color  Color  `json:"color"`
	Number Number `json:"number"`
	Shape  Shape  `json:"shape"`
}

// String renders the card as "color-number-shape", e.g. "red-1-cross".
func (c Card) String() string {
	return fmt.Sprintf("%s-%d-%s", c.Color, c.Number, c.Shape)
}

// ParseCard is the inverse of Card.String. It does not check that the
// attributes belong to the deck; see game.IsDeckCard for that.
func ParseCard(s string) (Card, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return Card{}, fmt.Errorf("invalid card %q: want color-number-shape", s)
	}
	n, err := strconv.Atoi(parts[1])
	if err != nil {
		return Card{}, fmt.Errorf("invalid card number in %q: %w", s, err)
	}
	return Card{Color: Color(parts[0]), Number: Number(n), Shape: Shape(parts[2])}, nil
}

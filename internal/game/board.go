// internal/game/board.go
package game

import (
	"encoding/json"
	"fmt"

	"github.com/jason-s-yu/qwirkle/internal/models"
)

// Board is the set of tiles on the table. Placements keep their insertion
// order; the index gives constant-time lookup by cell. A Board is never
// modified after construction, With returns a new one.
type Board struct {
	placements []models.Placement
	index      map[models.Coordinate]int
}

// NewBoard builds a board from placements in the order given. Two placements
// on the same cell fail with ErrCellOccupied.
func NewBoard(placements ...models.Placement) (Board, error) {
	b := Board{
		placements: make([]models.Placement, 0, len(placements)),
		index:      make(map[models.Coordinate]int, len(placements)),
	}
	for _, p := range placements {
		if _, taken := b.index[p.Coord()]; taken {
			return Board{}, fmt.Errorf("placing %s at (%d,%d): %w", p.Card, p.X, p.Y, ErrCellOccupied)
		}
		b.index[p.Coord()] = len(b.placements)
		b.placements = append(b.placements, p)
	}
	return b, nil
}

// Len returns the number of tiles on the board.
func (b Board) Len() int {
	return len(b.placements)
}

// At returns the placement occupying c, if any.
func (b Board) At(c models.Coordinate) (models.Placement, bool) {
	i, ok := b.index[c]
	if !ok {
		return models.Placement{}, false
	}
	return b.placements[i], true
}

// Occupied reports whether a tile sits on c.
func (b Board) Occupied(c models.Coordinate) bool {
	_, ok := b.index[c]
	return ok
}

// Placements returns a copy of the board's placements in insertion order.
func (b Board) Placements() []models.Placement {
	out := make([]models.Placement, len(b.placements))
	copy(out, b.placements)
	return out
}

// With returns a new board with line appended. It does not check for
// occupied cells; a later placement on a taken cell shadows the earlier one
// in lookups.
func (b Board) With(line []models.Placement) Board {
	next := Board{
		placements: make([]models.Placement, 0, len(b.placements)+len(line)),
		index:      make(map[models.Coordinate]int, len(b.placements)+len(line)),
	}
	next.placements = append(next.placements, b.placements...)
	next.placements = append(next.placements, line...)
	for i, p := range next.placements {
		next.index[p.Coord()] = i
	}
	return next
}

// MarshalJSON encodes the board as its ordered placement list.
func (b Board) MarshalJSON() ([]byte, error) {
	if b.placements == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(b.placements)
}

// UnmarshalJSON decodes an ordered placement list, rejecting duplicate cells.
func (b *Board) UnmarshalJSON(data []byte) error {
	var placements []models.Placement
	if err := json.Unmarshal(data, &placements); err != nil {
		return err
	}
	decoded, err := NewBoard(placements...)
	if err != nil {
		return err
	}
	*b = decoded
	return nil
}

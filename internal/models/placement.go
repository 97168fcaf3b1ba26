// internal/models/placement.go
package models

// Coordinate identifies a single board cell.
type Coordinate struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Placement binds a card to a board cell.
type Placement struct {
	X    int  `json:"x"`
	Y    int  `json:"y"`
	Card Card `json:"card"`
}

// Coord returns the cell the placement occupies.
func (p Placement) Coord() Coordinate {
	return Coordinate{X: p.X, Y: p.Y}
}

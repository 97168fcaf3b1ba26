// internal/game/connectivity.go
package game

import (
	"fmt"

	"github.com/jason-s-yu/qwirkle/internal/models"
)

// IsConnected reports whether every tile of line lies on a run through the
// line's first tile. board must already hold the line's tiles.
func IsConnected(board Board, line []models.Placement) bool {
	if len(line) == 0 {
		return false
	}
	reachable := make(map[models.Coordinate]struct{})
	for _, run := range LinesThrough(board, line[0].Coord()) {
		for _, p := range run {
			reachable[p.Coord()] = struct{}{}
		}
	}
	for _, p := range line[1:] {
		if _, ok := reachable[p.Coord()]; !ok {
			return false
		}
	}
	return true
}

// IsConnectedToBoard counts the tiles on every run through every tile of
// line, duplicates included, and requires more than len(line)^2. A line lying
// alone in open space sums to at most len(line)^2; contact with an existing
// tile pushes it over. board must already hold the line's tiles.
func IsConnectedToBoard(board Board, line []models.Placement) bool {
	total := 0
	for _, p := range line {
		for _, run := range LinesThrough(board, p.Coord()) {
			total += len(run)
		}
	}
	return total > len(line)*len(line)
}

// ValidateNewLine reports whether line can be laid on board: the tiles share
// a row or column, land on free cells, reach each other along runs, and touch
// the tiles already there. Connectivity is judged on board with line placed.
func ValidateNewLine(board Board, line []models.Placement) bool {
	return CheckNewLine(board, line) == nil
}

// CheckNewLine is ValidateNewLine with the reason for a rejection.
func CheckNewLine(board Board, line []models.Placement) error {
	if !isColinear(line) {
		return ErrNotColinear
	}
	for _, p := range line {
		if board.Occupied(p.Coord()) {
			return fmt.Errorf("cell (%d,%d): %w", p.X, p.Y, ErrCellOccupied)
		}
	}
	prospective, err := NewBoard(append(board.Placements(), line...)...)
	if err != nil {
		return err
	}
	if !IsConnected(prospective, line) {
		return ErrNotConnected
	}
	if !IsConnectedToBoard(prospective, line) {
		return ErrNotTouchingBoard
	}
	return nil
}

// internal/game/lines.go
package game

import "github.com/jason-s-yu/qwirkle/internal/models"

// LinesThrough returns the runs of adjacent tiles passing through cell: the
// horizontal run first, then the vertical one. Each run starts with the tile
// on cell, continues toward -x (-y) and then toward +x (+y), stopping at the
// first empty cell in each direction. Runs of a single tile are dropped, and
// an empty cell has no runs at all.
func LinesThrough(board Board, cell models.Coordinate) [][]models.Placement {
	origin, ok := board.At(cell)
	if !ok {
		return nil
	}

	horizontal := []models.Placement{origin}
	horizontal = append(horizontal, walk(board, cell, -1, 0)...)
	horizontal = append(horizontal, walk(board, cell, 1, 0)...)

	vertical := []models.Placement{origin}
	vertical = append(vertical, walk(board, cell, 0, -1)...)
	vertical = append(vertical, walk(board, cell, 0, 1)...)

	var lines [][]models.Placement
	for _, run := range [][]models.Placement{horizontal, vertical} {
		if len(run) > 1 {
			lines = append(lines, run)
		}
	}
	return lines
}

// walk collects the tiles after from in the direction (dx, dy) until a gap.
func walk(board Board, from models.Coordinate, dx, dy int) []models.Placement {
	var run []models.Placement
	next := models.Coordinate{X: from.X + dx, Y: from.Y + dy}
	for {
		p, ok := board.At(next)
		if !ok {
			return run
		}
		run = append(run, p)
		next = models.Coordinate{X: next.X + dx, Y: next.Y + dy}
	}
}

// internal/game/legality.go
package game

import (
	"fmt"

	"github.com/jason-s-yu/qwirkle/internal/models"
)

// MaxLineLength is the longest line a single move may place.
const MaxLineLength = 4

// IsLegalLine reports whether line is a well-shaped move on its own: 1 to 4
// tiles in one row or column, no shared or skipped cells, and every attribute
// either the same on all tiles or different on all tiles.
func IsLegalLine(line []models.Placement) bool {
	return CheckLine(line) == nil
}

// CheckLine is IsLegalLine with the reason for a rejection. Checks run in a
// fixed order and the first failure is returned.
func CheckLine(line []models.Placement) error {
	n := len(line)
	if n < 1 || n > MaxLineLength {
		return fmt.Errorf("got %d tiles: %w", n, ErrLineLength)
	}
	if !isColinear(line) {
		return ErrNotColinear
	}

	// the varying axis; a single tile varies on neither and passes both ways
	positions := make([]int, n)
	horizontal := sameValue(line, func(p models.Placement) int { return p.Y })
	for i, p := range line {
		if horizontal {
			positions[i] = p.X
		} else {
			positions[i] = p.Y
		}
	}

	distinct := make(map[int]struct{}, n)
	lo, hi := positions[0], positions[0]
	for _, pos := range positions {
		distinct[pos] = struct{}{}
		lo = min(lo, pos)
		hi = max(hi, pos)
	}
	if len(distinct) != n {
		return ErrDuplicateCell
	}
	if hi-lo != n-1 {
		return fmt.Errorf("tiles span %d cells for %d tiles: %w", hi-lo+1, n, ErrLineGap)
	}

	if !attributesMatch(line) {
		return ErrAttributeMismatch
	}
	return nil
}

// attributesMatch applies the all-same / all-distinct rule to each of color,
// number and shape.
func attributesMatch(line []models.Placement) bool {
	colors := make(map[models.Color]struct{})
	numbers := make(map[models.Number]struct{})
	shapes := make(map[models.Shape]struct{})
	for _, p := range line {
		colors[p.Card.Color] = struct{}{}
		numbers[p.Card.Number] = struct{}{}
		shapes[p.Card.Shape] = struct{}{}
	}

	n := len(line)
	counts := []int{len(colors), len(numbers), len(shapes)}
	allUniq, someShared := true, false
	for _, c := range counts {
		if c != 1 && c != n {
			return false
		}
		allUniq = allUniq && c == n
		someShared = someShared || c == 1
	}
	return allUniq || someShared
}

func isColinear(line []models.Placement) bool {
	return sameValue(line, func(p models.Placement) int { return p.X }) ||
		sameValue(line, func(p models.Placement) int { return p.Y })
}

func sameValue(line []models.Placement, axis func(models.Placement) int) bool {
	if len(line) == 0 {
		return false
	}
	for _, p := range line[1:] {
		if axis(p) != axis(line[0]) {
			return false
		}
	}
	return true
}

package gridpath

import (
	"math"

	"github.com/pdrpinto/gridpath/grid"
)

// Heuristic returns the estimated cost from one cell to another.
type Heuristic func(from, to grid.Position) float64

func deltas(from, to grid.Position) (float64, float64) {
	dx := from.X - to.X
	if dx < 0 {
		dx = -dx
	}
	dy := from.Y - to.Y
	if dy < 0 {
		dy = -dy
	}
	return float64(dx), float64(dy)
}

// Manhattan is exact on an open grid without diagonal movement.
func Manhattan(from, to grid.Position) float64 {
	dx, dy := deltas(from, to)
	return dx + dy
}

// Octile is exact on an open grid with √2 diagonal steps.
func Octile(from, to grid.Position) float64 {
	dx, dy := deltas(from, to)
	return math.Max(dx, dy) + (math.Sqrt2-1)*math.Min(dx, dy)
}

// Euclidean is the straight-line distance.
func Euclidean(from, to grid.Position) float64 {
	dx, dy := deltas(from, to)
	return math.Hypot(dx, dy)
}

// Chebyshev treats diagonal steps as costing 1.
func Chebyshev(from, to grid.Position) float64 {
	dx, dy := deltas(from, to)
	return math.Max(dx, dy)
}

package grid

import (
	"fmt"
	"math"
	"strings"
)

// CornerPolicy decides when a diagonal step may pass between the two
// orthogonal cells flanking it.
type CornerPolicy int

const (
	// NoCornerCutting requires both flanking cells to be walkable.
	NoCornerCutting CornerPolicy = iota
	// CutCorners requires at least one flanking cell to be walkable.
	CutCorners
	// AlwaysAllow ignores the flanking cells.
	AlwaysAllow
)

func (c CornerPolicy) String() string {
	switch c {
	case NoCornerCutting:
		return "no-cut"
	case CutCorners:
		return "cut"
	case AlwaysAllow:
		return "always"
	default:
		return fmt.Sprintf("CornerPolicy(%d)", int(c))
	}
}

// ParseCornerPolicy accepts the names produced by String. An empty string
// selects NoCornerCutting.
func ParseCornerPolicy(s string) (CornerPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "no-cut", "none", "never":
		return NoCornerCutting, nil
	case "cut", "one":
		return CutCorners, nil
	case "always", "all":
		return AlwaysAllow, nil
	default:
		return 0, fmt.Errorf("grid: unknown corner policy %q", s)
	}
}

// Movement is the diagonal rule set applied while expanding a node.
type Movement struct {
	AllowDiagonal bool
	Corners       CornerPolicy
}

// Orthogonal allows only the four axis-aligned steps.
var Orthogonal = Movement{}

// Walkability is the read side of a grid that neighbor expansion needs.
type Walkability interface {
	IsWalkable(pos Position) bool
}

// Neighbors appends the walkable neighbors of pos to dst and returns the
// extended slice. Orthogonal neighbors come first in N, E, S, W order (north
// is y-1), then eligible diagonals in NW, NE, SE, SW order.
func Neighbors(g Walkability, pos Position, m Movement, dst []Position) []Position {
	x, y := pos.X, pos.Y
	var s0, s1, s2, s3 bool
	var scratch Position

	if g.IsWalkable(*scratch.Set(x, y-1)) {
		dst = append(dst, scratch)
		s0 = true
	}
	if g.IsWalkable(*scratch.Set(x+1, y)) {
		dst = append(dst, scratch)
		s1 = true
	}
	if g.IsWalkable(*scratch.Set(x, y+1)) {
		dst = append(dst, scratch)
		s2 = true
	}
	if g.IsWalkable(*scratch.Set(x-1, y)) {
		dst = append(dst, scratch)
		s3 = true
	}
	if !m.AllowDiagonal {
		return dst
	}

	var d0, d1, d2, d3 bool
	switch m.Corners {
	case AlwaysAllow:
		d0, d1, d2, d3 = true, true, true, true
	case CutCorners:
		d0 = s3 || s0
		d1 = s0 || s1
		d2 = s1 || s2
		d3 = s2 || s3
	default:
		d0 = s3 && s0
		d1 = s0 && s1
		d2 = s1 && s2
		d3 = s2 && s3
	}

	if d0 && g.IsWalkable(*scratch.Set(x-1, y-1)) {
		dst = append(dst, scratch)
	}
	if d1 && g.IsWalkable(*scratch.Set(x+1, y-1)) {
		dst = append(dst, scratch)
	}
	if d2 && g.IsWalkable(*scratch.Set(x+1, y+1)) {
		dst = append(dst, scratch)
	}
	if d3 && g.IsWalkable(*scratch.Set(x-1, y+1)) {
		dst = append(dst, scratch)
	}
	return dst
}

// IsStep reports whether to is one of the neighbors Neighbors would produce
// for from under m.
func IsStep(g Walkability, from, to Position, m Movement) bool {
	var buf [8]Position
	for _, n := range Neighbors(g, from, m, buf[:0]) {
		if n == to {
			return true
		}
	}
	return false
}

// StepCost is 1 for an orthogonal step and √2 for a diagonal one.
func StepCost(from, to Position) float64 {
	if from.X != to.X && from.Y != to.Y {
		return math.Sqrt2
	}
	return 1
}

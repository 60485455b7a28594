// Package scene turns world-space obstacle geometry into grid walkability.
package scene

import (
	"fmt"

	"github.com/jakecoffman/cp"

	"github.com/pdrpinto/gridpath/grid"
)

// cellInset shrinks cell bounds before querying so obstacles that only touch
// a cell edge do not block it.
const cellInset = 1e-6

// Obstacle is an axis-aligned rectangle in world units. X, Y is the corner
// with the smallest coordinates.
type Obstacle struct {
	X      float64 `yaml:"x" json:"x"`
	Y      float64 `yaml:"y" json:"y"`
	Width  float64 `yaml:"w" json:"w"`
	Height float64 `yaml:"h" json:"h"`
}

// Scene holds static obstacle shapes in a chipmunk space. Cell (x, y) covers
// [x*CellSize, (x+1)*CellSize) on each axis.
type Scene struct {
	cellSize float64
	space    *cp.Space
	shapes   int
}

// New returns an empty scene. cellSize must be positive.
func New(cellSize float64) (*Scene, error) {
	if cellSize <= 0 {
		return nil, fmt.Errorf("scene: cell size must be positive, got %v", cellSize)
	}
	return &Scene{cellSize: cellSize, space: cp.NewSpace()}, nil
}

// Add inserts an obstacle. Degenerate rectangles are rejected.
func (s *Scene) Add(o Obstacle) error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("scene: obstacle at (%v,%v) has non-positive size %vx%v", o.X, o.Y, o.Width, o.Height)
	}
	bb := cp.BB{L: o.X, B: o.Y, R: o.X + o.Width, T: o.Y + o.Height}
	shape := cp.NewBox2(s.space.StaticBody, bb, 0)
	s.space.AddShape(shape)
	s.shapes++
	return nil
}

// Len is the number of obstacles added.
func (s *Scene) Len() int { return s.shapes }

func (s *Scene) cellBB(pos grid.Position) cp.BB {
	x0 := float64(pos.X) * s.cellSize
	y0 := float64(pos.Y) * s.cellSize
	return cp.BB{
		L: x0 + cellInset,
		B: y0 + cellInset,
		R: x0 + s.cellSize - cellInset,
		T: y0 + s.cellSize - cellInset,
	}
}

// Blocked reports whether any obstacle overlaps the cell at pos.
func (s *Scene) Blocked(pos grid.Position) bool {
	hit := false
	s.space.BBQuery(s.cellBB(pos), cp.SHAPE_FILTER_ALL, func(shape *cp.Shape, data interface{}) {
		hit = true
	}, nil)
	return hit
}

// Rasterize marks every grid node overlapped by an obstacle as blocked and
// returns how many nodes it changed. Nodes outside all obstacles keep their
// walkability.
func (s *Scene) Rasterize(g grid.Grid) int {
	changed := 0
	for i := 0; i < g.Len(); i++ {
		node := g.NodeAt(i)
		if !node.Walkable {
			continue
		}
		if s.Blocked(node.Pos()) {
			g.SetWalkable(node.Pos(), false)
			changed++
		}
	}
	return changed
}

package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdrpinto/gridpath/grid"
)

func TestRasterizeBlocksOverlappedCells(t *testing.T) {
	s, err := New(32)
	require.NoError(t, err)
	// Covers cells x 1..2, y 0 exactly, and pokes into x 3 by half a cell.
	require.NoError(t, s.Add(Obstacle{X: 32, Y: 0, Width: 80, Height: 32}))

	g := grid.NewDense(5, 2)
	changed := s.Rasterize(g)
	assert.Equal(t, 3, changed)

	for x := 0; x < 5; x++ {
		wantBlocked := x >= 1 && x <= 3
		assert.Equal(t, !wantBlocked, g.IsWalkable(grid.Pos(x, 0)), "cell (%d,0)", x)
		assert.True(t, g.IsWalkable(grid.Pos(x, 1)), "cell (%d,1) only touches the obstacle edge", x)
	}
}

func TestRasterizeSparseOnlyTouchesStoredNodes(t *testing.T) {
	s, err := New(1)
	require.NoError(t, err)
	require.NoError(t, s.Add(Obstacle{X: 0, Y: 0, Width: 10, Height: 1}))

	g := grid.NewSparseFromPositions([]grid.Position{grid.Pos(2, 0), grid.Pos(2, 1)})
	assert.Equal(t, 1, s.Rasterize(g))
	assert.False(t, g.IsWalkable(grid.Pos(2, 0)))
	assert.True(t, g.IsWalkable(grid.Pos(2, 1)))
	assert.Equal(t, 2, g.Len())
}

func TestRejectsBadInput(t *testing.T) {
	_, err := New(0)
	assert.Error(t, err)

	s, err := New(8)
	require.NoError(t, err)
	assert.Error(t, s.Add(Obstacle{X: 0, Y: 0, Width: 0, Height: 4}))
	assert.Zero(t, s.Len())
	assert.False(t, s.Blocked(grid.Pos(0, 0)))
}

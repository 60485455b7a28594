package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPositionSetReusesValue(t *testing.T) {
	var p Position
	q := p.Set(3, -2)
	require.Same(t, &p, q)
	assert.Equal(t, Pos(3, -2), p)

	seen := map[Position]bool{Pos(1, 1): true}
	assert.True(t, seen[*p.Set(1, 1)])
	assert.Equal(t, "(1,1)", p.String())
}

func TestRectExtend(t *testing.T) {
	r := Rect{MaxX: -1, MaxY: -1}
	require.True(t, r.Empty())
	r = r.Extend(Pos(2, 3))
	assert.Equal(t, Rect{MinX: 2, MinY: 3, MaxX: 2, MaxY: 3}, r)
	r = r.Extend(Pos(-1, 5))
	assert.Equal(t, Rect{MinX: -1, MinY: 3, MaxX: 2, MaxY: 5}, r)
	assert.Equal(t, 4, r.Width())
	assert.Equal(t, 3, r.Height())
}

func TestWalkableRoundTrip(t *testing.T) {
	for name, g := range map[string]Grid{
		"dense":  NewDense(4, 3),
		"sparse": NewSparse(),
	} {
		t.Run(name, func(t *testing.T) {
			for y := 0; y < 3; y++ {
				for x := 0; x < 4; x++ {
					p := Pos(x, y)
					require.True(t, g.SetWalkable(p, true))
					assert.True(t, g.IsWalkable(p), "%v after set true", p)
					require.True(t, g.SetWalkable(p, false))
					assert.False(t, g.IsWalkable(p), "%v after set false", p)
					require.True(t, g.SetWalkable(p, true))
					assert.True(t, g.IsWalkable(p), "%v after set true again", p)
				}
			}
		})
	}
}

func TestDenseBounds(t *testing.T) {
	g := NewDenseRect(Rect{MinX: -2, MinY: 1, MaxX: 2, MaxY: 3})
	assert.Equal(t, 5, g.Width())
	assert.Equal(t, 3, g.Height())
	assert.Equal(t, 15, g.Len())

	n, ok := g.GetNode(Pos(-2, 1))
	require.True(t, ok)
	assert.Equal(t, Pos(-2, 1), n.Pos())

	_, ok = g.GetNode(Pos(3, 1))
	assert.False(t, ok)
	assert.False(t, g.IsWalkable(Pos(0, 0)))
	assert.False(t, g.SetWalkable(Pos(0, 4), true))

	for i := 0; i < g.Len(); i++ {
		idx, ok := g.Index(g.NodeAt(i).Pos())
		require.True(t, ok)
		assert.Equal(t, i, idx)
	}
}

func TestDenseSetWalkableKeepsNodeIdentity(t *testing.T) {
	g := NewDense(2, 2)
	before, ok := g.GetNode(Pos(1, 1))
	require.True(t, ok)
	g.SetWalkable(Pos(1, 1), false)
	after, _ := g.GetNode(Pos(1, 1))
	assert.Same(t, before, after)
	assert.False(t, before.Walkable)
}

func TestDenseFromMatrixPadsShortRows(t *testing.T) {
	g := NewDenseFromMatrix([][]bool{
		{true, true, true},
		{true},
	})
	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 2, g.Height())
	assert.True(t, g.IsWalkable(Pos(2, 0)))
	assert.True(t, g.IsWalkable(Pos(0, 1)))
	assert.False(t, g.IsWalkable(Pos(1, 1)))
	assert.False(t, g.IsWalkable(Pos(2, 1)))
}

func TestSparseImplicitNodes(t *testing.T) {
	g := NewSparse()
	_, ok := g.GetNode(Pos(0, 0))
	assert.False(t, ok, "empty sparse grid has no bounds")

	g.SetWalkable(Pos(0, 0), true)
	g.SetWalkable(Pos(4, 2), true)
	assert.Equal(t, Rect{MinX: 0, MinY: 0, MaxX: 4, MaxY: 2}, g.Bounds())
	assert.Equal(t, 2, g.Len())

	n, ok := g.GetNode(Pos(2, 1))
	require.True(t, ok)
	assert.False(t, n.Walkable)
	_, indexed := g.Index(Pos(2, 1))
	assert.False(t, indexed)

	_, ok = g.GetNode(Pos(5, 0))
	assert.False(t, ok)

	require.True(t, g.SetWalkable(Pos(9, 9), false))
	assert.Equal(t, 2, g.Len(), "blocking an unset cell does not allocate")
}

func TestSparseSetWalkableKeepsNodeIdentity(t *testing.T) {
	g := NewSparse()
	g.SetWalkable(Pos(1, 1), true)
	before, _ := g.GetNode(Pos(1, 1))
	for i := 0; i < 64; i++ {
		g.SetWalkable(Pos(i, 5), true)
	}
	g.SetWalkable(Pos(1, 1), false)
	after, _ := g.GetNode(Pos(1, 1))
	assert.Same(t, before, after)
	assert.False(t, before.Walkable)
}

func TestResetOverride(t *testing.T) {
	for name, g := range map[string]Grid{
		"dense":  NewDense(3, 3),
		"sparse": NewSparseFromPositions([]Position{Pos(0, 0), Pos(1, 0), Pos(2, 2)}),
	} {
		t.Run(name, func(t *testing.T) {
			g.SetWalkable(Pos(0, 0), false)
			g.Reset()
			assert.False(t, g.IsWalkable(Pos(0, 0)), "plain reset keeps walkability")

			g.Reset(false)
			for i := 0; i < g.Len(); i++ {
				assert.False(t, g.NodeAt(i).Walkable)
			}
			g.Reset(true)
			for i := 0; i < g.Len(); i++ {
				assert.True(t, g.NodeAt(i).Walkable)
			}
		})
	}
}

func TestCloneIsIndependent(t *testing.T) {
	for name, g := range map[string]Grid{
		"dense":  NewDense(3, 2),
		"sparse": NewSparseFromPositions([]Position{Pos(0, 0), Pos(1, 0), Pos(2, 1)}),
	} {
		t.Run(name, func(t *testing.T) {
			c := g.Clone()
			require.Equal(t, g.Bounds(), c.Bounds())
			require.Equal(t, g.Len(), c.Len())
			for i := 0; i < g.Len(); i++ {
				assert.Equal(t, *g.NodeAt(i), *c.NodeAt(i))
			}

			c.SetWalkable(Pos(0, 0), false)
			assert.True(t, g.IsWalkable(Pos(0, 0)))
			assert.False(t, c.IsWalkable(Pos(0, 0)))
		})
	}
}

// Package grid holds walkability topologies for grid pathfinding.
//
// A Grid owns the persistent part of every cell: its coordinates and whether
// it can be walked on. Search state is kept elsewhere, keyed by the index a
// grid assigns to each node, so many searches can share one grid.
package grid

// Node is one cell of a grid. Grids hand out pointers into their own storage;
// a pointer stays valid for the lifetime of the grid.
type Node struct {
	X        int
	Y        int
	Walkable bool
}

// Pos returns the node's coordinates.
func (n *Node) Pos() Position {
	return Position{X: n.X, Y: n.Y}
}

// Grid is the topology contract shared by the dense and sparse variants.
type Grid interface {
	// Bounds is the inclusive rectangle of valid coordinates.
	Bounds() Rect
	Width() int
	Height() int

	// Len is the number of indexed nodes. Indices are in [0, Len).
	Len() int
	// Index maps a position to its node index. It fails for positions
	// without a backing node.
	Index(pos Position) (int, bool)
	// NodeAt returns the node stored at index.
	NodeAt(index int) *Node

	// GetNode returns the node at pos, or false if pos is outside the bounds.
	GetNode(pos Position) (*Node, bool)
	IsWalkable(pos Position) bool
	// SetWalkable updates the node at pos in place. It reports false when
	// the grid cannot hold pos.
	SetWalkable(pos Position, walkable bool) bool

	// Reset forces every node to walkable[0] when given. Grids carry no
	// search state, so without an argument Reset has nothing to clear.
	Reset(walkable ...bool)
	// Clone returns an independent grid with the same bounds and walkability.
	Clone() Grid
}

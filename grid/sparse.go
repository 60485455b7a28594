package grid

// Sparse is a hash-indexed grid that only stores cells that were explicitly
// set. Its bounds grow to cover every stored cell.
type Sparse struct {
	bounds Rect
	index  map[Position]int
	nodes  []*Node
}

var _ Grid = (*Sparse)(nil)

// NewSparse returns an empty sparse grid.
func NewSparse() *Sparse {
	return &Sparse{
		bounds: Rect{MinX: 0, MinY: 0, MaxX: -1, MaxY: -1},
		index:  make(map[Position]int),
	}
}

// NewSparseFromPositions returns a sparse grid with every listed position
// walkable.
func NewSparseFromPositions(walkable []Position) *Sparse {
	g := NewSparse()
	for _, p := range walkable {
		g.SetWalkable(p, true)
	}
	return g
}

func (g *Sparse) Bounds() Rect { return g.bounds }
func (g *Sparse) Width() int   { return g.bounds.Width() }
func (g *Sparse) Height() int  { return g.bounds.Height() }
func (g *Sparse) Len() int     { return len(g.nodes) }

func (g *Sparse) Index(pos Position) (int, bool) {
	idx, ok := g.index[pos]
	return idx, ok
}

func (g *Sparse) NodeAt(index int) *Node {
	return g.nodes[index]
}

// GetNode returns the stored node at pos. Cells inside the bounds that were
// never set come back as a detached, non-walkable node.
func (g *Sparse) GetNode(pos Position) (*Node, bool) {
	if idx, ok := g.index[pos]; ok {
		return g.nodes[idx], true
	}
	if !g.bounds.Contains(pos) {
		return nil, false
	}
	return &Node{X: pos.X, Y: pos.Y}, true
}

func (g *Sparse) IsWalkable(pos Position) bool {
	idx, ok := g.index[pos]
	return ok && g.nodes[idx].Walkable
}

// SetWalkable always succeeds. Marking an unset cell walkable allocates its
// node and grows the bounds; marking it blocked leaves it implicit.
func (g *Sparse) SetWalkable(pos Position, walkable bool) bool {
	if idx, ok := g.index[pos]; ok {
		g.nodes[idx].Walkable = walkable
		return true
	}
	if !walkable {
		return true
	}
	g.index[pos] = len(g.nodes)
	g.nodes = append(g.nodes, &Node{X: pos.X, Y: pos.Y, Walkable: true})
	g.bounds = g.bounds.Extend(pos)
	return true
}

func (g *Sparse) Reset(walkable ...bool) {
	if len(walkable) == 0 {
		return
	}
	for _, n := range g.nodes {
		n.Walkable = walkable[0]
	}
}

func (g *Sparse) Clone() Grid {
	c := &Sparse{
		bounds: g.bounds,
		index:  make(map[Position]int, len(g.index)),
		nodes:  make([]*Node, len(g.nodes)),
	}
	for i, n := range g.nodes {
		cp := *n
		c.nodes[i] = &cp
		c.index[cp.Pos()] = i
	}
	return c
}

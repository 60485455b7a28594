package grid

// Dense is a rectangular grid with one node per cell, allocated up front.
type Dense struct {
	bounds Rect
	width  int
	nodes  []Node
}

var _ Grid = (*Dense)(nil)

// NewDense creates a width x height grid anchored at (0,0). Every cell starts
// walkable.
func NewDense(width, height int) *Dense {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return NewDenseRect(Rect{MinX: 0, MinY: 0, MaxX: width - 1, MaxY: height - 1})
}

// NewDenseRect creates a grid covering bounds. Every cell starts walkable.
func NewDenseRect(bounds Rect) *Dense {
	g := &Dense{
		bounds: bounds,
		width:  bounds.Width(),
		nodes:  make([]Node, bounds.Width()*bounds.Height()),
	}
	for i := range g.nodes {
		g.nodes[i] = Node{
			X:        bounds.MinX + i%g.width,
			Y:        bounds.MinY + i/g.width,
			Walkable: true,
		}
	}
	return g
}

// NewDenseFromMatrix builds a grid from rows of walkability flags, matrix[y][x].
// Rows shorter than the longest one are padded with blocked cells.
func NewDenseFromMatrix(matrix [][]bool) *Dense {
	width := 0
	for _, row := range matrix {
		if len(row) > width {
			width = len(row)
		}
	}
	g := NewDense(width, len(matrix))
	for y, row := range matrix {
		for x := 0; x < width; x++ {
			g.nodes[y*width+x].Walkable = x < len(row) && row[x]
		}
	}
	return g
}

func (g *Dense) Bounds() Rect { return g.bounds }
func (g *Dense) Width() int   { return g.bounds.Width() }
func (g *Dense) Height() int  { return g.bounds.Height() }
func (g *Dense) Len() int     { return len(g.nodes) }

func (g *Dense) Index(pos Position) (int, bool) {
	if !g.bounds.Contains(pos) {
		return 0, false
	}
	return (pos.Y-g.bounds.MinY)*g.width + (pos.X - g.bounds.MinX), true
}

func (g *Dense) NodeAt(index int) *Node {
	return &g.nodes[index]
}

func (g *Dense) GetNode(pos Position) (*Node, bool) {
	idx, ok := g.Index(pos)
	if !ok {
		return nil, false
	}
	return &g.nodes[idx], true
}

func (g *Dense) IsWalkable(pos Position) bool {
	idx, ok := g.Index(pos)
	return ok && g.nodes[idx].Walkable
}

func (g *Dense) SetWalkable(pos Position, walkable bool) bool {
	idx, ok := g.Index(pos)
	if !ok {
		return false
	}
	g.nodes[idx].Walkable = walkable
	return true
}

func (g *Dense) Reset(walkable ...bool) {
	if len(walkable) == 0 {
		return
	}
	for i := range g.nodes {
		g.nodes[i].Walkable = walkable[0]
	}
}

func (g *Dense) Clone() Grid {
	c := &Dense{
		bounds: g.bounds,
		width:  g.width,
		nodes:  make([]Node, len(g.nodes)),
	}
	copy(c.nodes, g.nodes)
	return c
}

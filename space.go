package gridpath

import "sync"

// NoParent marks a node without a parent link.
const NoParent int32 = -1

// Node is the transient search state of one cell. It lives in a Space, never
// in the grid, and is addressed by the grid's node index.
type Node struct {
	CostFromStart      float64
	HeuristicToEnd     float64
	HasHeuristic       bool
	TotalEstimatedCost float64
	Open               bool
	Closed             bool
	// Parent is the index of the node this one was reached from.
	Parent int32

	item *PriorityQueueItem
}

func (n *Node) reset() {
	*n = Node{Parent: NoParent}
}

// Space is the search context of one in-flight search: a flat arena with one
// Node per grid index.
type Space struct {
	nodes []Node
}

// NewSpace returns a reset space for a grid with size indexed nodes.
func NewSpace(size int) *Space {
	s := &Space{}
	s.resize(size)
	return s
}

func (s *Space) resize(size int) {
	if cap(s.nodes) < size {
		s.nodes = make([]Node, size)
	}
	s.nodes = s.nodes[:size]
	s.Reset()
}

// Reset clears the search state of every node in one pass.
func (s *Space) Reset() {
	for i := range s.nodes {
		s.nodes[i].reset()
	}
}

// Len is the number of nodes in the arena.
func (s *Space) Len() int { return len(s.nodes) }

// Node returns the state stored for index.
func (s *Space) Node(index int) *Node { return &s.nodes[index] }

// Parent returns the parent index of index, or NoParent.
func (s *Space) Parent(index int) int32 { return s.nodes[index].Parent }

var spacePool = sync.Pool{
	New: func() any { return &Space{} },
}

func acquireSpace(size int) *Space {
	s := spacePool.Get().(*Space)
	s.resize(size)
	return s
}

func releaseSpace(s *Space) {
	if s == nil {
		return
	}
	for i := range s.nodes {
		s.nodes[i].item = nil
	}
	spacePool.Put(s)
}

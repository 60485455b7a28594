package gridpath

import (
	"container/heap"
	"context"
	"fmt"

	"github.com/pdrpinto/gridpath/grid"
	"github.com/pdrpinto/gridpath/internal"
)

type stepOutcome int

const (
	stepContinue stepOutcome = iota
	stepFound
	stepExhausted
)

// search is the orchestrator shared by FindPath and Stepper. It owns the
// frontier and the Space; the grid is only read.
type search struct {
	grid    grid.Grid
	options Options
	space   *Space
	openSet PriorityQueue
	seq     uint64

	start     grid.Position
	goal      grid.Position
	startNode int
	goalNode  int

	current       int
	expandedNodes int
	neighbors     []grid.Position
	trackClosed   bool
	closedOrder   []int

	done   bool
	found  bool
	cost   float64
	err    error
	path   []grid.Position
	traced bool
}

func newSearch(g grid.Grid, start, goal grid.Position, options Options) (*search, error) {
	startNode, err := checkEndpoint(g, "start", start)
	if err != nil {
		return nil, err
	}
	goalNode, err := checkEndpoint(g, "goal", goal)
	if err != nil {
		return nil, err
	}

	s := &search{
		grid:      g,
		options:   options,
		space:     acquireSpace(g.Len()),
		openSet:   make(PriorityQueue, 0, 64),
		start:     start,
		goal:      goal,
		startNode: startNode,
		goalNode:  goalNode,
		current:   -1,
		neighbors: make([]grid.Position, 0, 8),
	}
	heap.Init(&s.openSet)
	s.open(startNode, NoParent, 0)
	return s, nil
}

func (s *search) release() {
	releaseSpace(s.space)
	s.space = nil
}

// open records a better route to index and (re)inserts it in the frontier.
func (s *search) open(index int, parent int32, cost float64) {
	node := s.space.Node(index)
	node.Parent = parent
	node.CostFromStart = cost
	if !node.HasHeuristic {
		from := s.grid.NodeAt(index).Pos()
		node.HeuristicToEnd = s.options.Weight * s.options.Heuristic(from, s.goal)
		node.HasHeuristic = true
	}
	node.TotalEstimatedCost = cost + node.HeuristicToEnd

	s.seq++
	if node.item == nil {
		node.item = &PriorityQueueItem{Node: index, FCost: node.TotalEstimatedCost, Seq: s.seq}
		heap.Push(&s.openSet, node.item)
		node.Open = true
		return
	}
	node.item.FCost = node.TotalEstimatedCost
	node.item.Seq = s.seq
	heap.Fix(&s.openSet, node.item.IndexInQueue)
}

func (s *search) abort(err error) (stepOutcome, error) {
	s.done = true
	s.err = err
	s.options.Logger.Debug("path search aborted",
		"start", s.start.String(),
		"goal", s.goal.String(),
		"expanded", s.expandedNodes,
		"error", err,
	)
	return stepContinue, err
}

// step pops and expands one node.
func (s *search) step(ctx context.Context) (stepOutcome, error) {
	if s.done {
		switch {
		case s.err != nil:
			return stepContinue, s.err
		case s.found:
			return stepFound, nil
		default:
			return stepExhausted, nil
		}
	}
	if err := ctx.Err(); err != nil {
		return s.abort(fmt.Errorf("%w: %w", ErrSearchAborted, err))
	}
	if limit := s.options.MaxExpansions; limit > 0 && s.expandedNodes >= limit {
		return s.abort(fmt.Errorf("%w: expansion limit %d reached", ErrSearchAborted, limit))
	}
	if s.openSet.Len() == 0 {
		s.done = true
		return stepExhausted, nil
	}

	item := heap.Pop(&s.openSet).(*PriorityQueueItem)
	current := item.Node
	node := s.space.Node(current)
	node.item = nil
	node.Open = false
	node.Closed = true
	s.current = current
	s.expandedNodes++
	if s.trackClosed {
		s.closedOrder = append(s.closedOrder, current)
	}

	if current == s.goalNode {
		s.done = true
		s.found = true
		s.cost = node.CostFromStart
		return stepFound, nil
	}

	pos := s.grid.NodeAt(current).Pos()
	s.neighbors = grid.Neighbors(s.grid, pos, s.options.Movement, s.neighbors[:0])
	for _, neighborPos := range s.neighbors {
		index, ok := s.grid.Index(neighborPos)
		if !ok {
			continue
		}
		neighbor := s.space.Node(index)
		if neighbor.Closed {
			continue
		}
		tentative := node.CostFromStart + grid.StepCost(pos, neighborPos)
		if !neighbor.Open || tentative < neighbor.CostFromStart {
			s.open(index, int32(current), tentative)
		}
	}
	return stepContinue, nil
}

// backtrace converts the parent chain ending at the goal into positions.
func (s *search) backtrace() ([]grid.Position, error) {
	if s.traced {
		return s.path, nil
	}
	indices, err := internal.Backtrace(s.space.Parent, s.goalNode, s.space.Len())
	if err != nil {
		return nil, fmt.Errorf("gridpath: backtrace from %v: %w", s.goal, err)
	}
	path := make([]grid.Position, len(indices))
	for i, index := range indices {
		path[i] = s.grid.NodeAt(index).Pos()
	}
	s.path = path
	s.traced = true
	return path, nil
}

func (s *search) result() Result {
	return Result{
		Path:          s.path,
		TotalCost:     s.cost,
		ExpandedNodes: s.expandedNodes,
		Found:         s.found,
	}
}

func (s *search) finish(outcome stepOutcome) (Result, error) {
	if outcome == stepExhausted {
		s.options.Logger.Debug("path search exhausted",
			"start", s.start.String(),
			"goal", s.goal.String(),
			"expanded", s.expandedNodes,
		)
		return s.result(), ErrNoPath
	}
	if _, err := s.backtrace(); err != nil {
		return s.result(), err
	}
	result := s.result()
	s.options.Logger.Debug("path search finished",
		"start", s.start.String(),
		"goal", s.goal.String(),
		"expanded", result.ExpandedNodes,
		"length", len(result.Path),
		"cost", result.TotalCost,
	)
	return result, nil
}

package gridpath

import (
	"context"

	"github.com/pdrpinto/gridpath/grid"
)

// StepSnapshot exposes the per-iteration state of the search.
type StepSnapshot struct {
	Current    grid.Position
	HasCurrent bool
	Open       []grid.Position
	Closed     []grid.Position
	Done       bool
	Found      bool
	Path       []grid.Position
	TotalCost  float64
	StepIndex  int
}

// Stepper advances a search one expansion per call to Step.
type Stepper struct {
	ctx    context.Context
	cancel context.CancelFunc
	search *search
}

// NewStepper validates the endpoints and seeds a search without running it.
func NewStepper(
	parent context.Context,
	g grid.Grid,
	startNode grid.Position,
	goalNode grid.Position,
	options ...Option,
) (*Stepper, error) {
	searchOptions := buildOptions(options)

	s, err := newSearch(g, startNode, goalNode, searchOptions)
	if err != nil {
		return nil, err
	}
	s.trackClosed = true

	var ctx context.Context
	var cancel context.CancelFunc
	if searchOptions.Timeout > 0 {
		ctx, cancel = context.WithTimeout(parent, searchOptions.Timeout)
	} else {
		ctx, cancel = context.WithCancel(parent)
	}
	return &Stepper{ctx: ctx, cancel: cancel, search: s}, nil
}

// Close releases the search state. Step must not be called afterwards.
func (s *Stepper) Close() {
	if s.cancel != nil {
		s.cancel()
	}
	if s.search != nil && s.search.space != nil {
		s.search.release()
	}
}

// Done reports whether the search has reached a verdict.
func (s *Stepper) Done() bool { return s.search.done }

// Step advances the search by one node expansion and returns a snapshot.
// Once the search is done, Step keeps returning the final snapshot. An
// aborted search returns ErrSearchAborted.
func (s *Stepper) Step() (StepSnapshot, error) {
	wasDone := s.search.done
	outcome, err := s.search.step(s.ctx)
	if err != nil {
		return s.snapshot(), err
	}
	if outcome == stepFound && !wasDone {
		if _, err := s.search.backtrace(); err != nil {
			return s.snapshot(), err
		}
	}
	return s.snapshot(), nil
}

// Result reports the outcome so far, using the same errors as FindPath once
// the search is done.
func (s *Stepper) Result() (Result, error) {
	switch {
	case s.search.err != nil:
		return s.search.result(), s.search.err
	case !s.search.done:
		return s.search.result(), nil
	case !s.search.found:
		return s.search.result(), ErrNoPath
	}
	return s.search.result(), nil
}

func (s *Stepper) snapshot() StepSnapshot {
	search := s.search
	snapshot := StepSnapshot{
		Done:      search.done,
		Found:     search.found,
		StepIndex: search.expandedNodes,
		Open:      make([]grid.Position, 0, len(search.openSet)),
		Closed:    make([]grid.Position, 0, len(search.closedOrder)),
	}
	if search.current >= 0 {
		snapshot.Current = search.grid.NodeAt(search.current).Pos()
		snapshot.HasCurrent = true
	}
	for _, item := range search.openSet {
		snapshot.Open = append(snapshot.Open, search.grid.NodeAt(item.Node).Pos())
	}
	for _, index := range search.closedOrder {
		snapshot.Closed = append(snapshot.Closed, search.grid.NodeAt(index).Pos())
	}
	if search.found {
		snapshot.Path = append([]grid.Position(nil), search.path...)
		snapshot.TotalCost = search.cost
	}
	return snapshot
}

package gridpath

import (
	"errors"
	"fmt"

	"github.com/pdrpinto/gridpath/grid"
)

var (
	// ErrInvalidPosition is returned before searching when the start or goal
	// cannot take part in a path.
	ErrInvalidPosition = errors.New("invalid position")
	// ErrNoPath means the frontier ran dry. The grid is disconnected between
	// start and goal.
	ErrNoPath = errors.New("no path found")
	// ErrSearchAborted means the search was stopped before reaching a verdict.
	// The cause is wrapped.
	ErrSearchAborted = errors.New("search aborted")
)

// PositionError describes why a start or goal was rejected.
type PositionError struct {
	Role   string // "start" or "goal"
	Pos    grid.Position
	Reason string
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("%s %v: %s", e.Role, e.Pos, e.Reason)
}

func (e *PositionError) Unwrap() error { return ErrInvalidPosition }

func checkEndpoint(g grid.Grid, role string, pos grid.Position) (int, error) {
	node, ok := g.GetNode(pos)
	if !ok {
		return 0, &PositionError{Role: role, Pos: pos, Reason: "out of bounds"}
	}
	if !node.Walkable {
		return 0, &PositionError{Role: role, Pos: pos, Reason: "not walkable"}
	}
	idx, ok := g.Index(pos)
	if !ok {
		return 0, &PositionError{Role: role, Pos: pos, Reason: "not walkable"}
	}
	return idx, nil
}

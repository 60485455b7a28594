// Package script compiles tengo programs into search heuristics.
//
// A heuristic script sees these globals and must assign a number to cost:
//
//	x, y     current cell
//	gx, gy   goal cell
//	dx, dy   absolute per-axis distance to the goal
//
// The tengo "math" module is importable.
package script

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/pdrpinto/gridpath"
	"github.com/pdrpinto/gridpath/grid"
)

var inputs = []string{"x", "y", "gx", "gy", "dx", "dy"}

// Heuristic is a compiled heuristic script. It is safe for concurrent use;
// evaluations are serialised.
type Heuristic struct {
	mu       sync.Mutex
	compiled *tengo.Compiled
	err      error
}

// Compile builds a heuristic from source.
func Compile(src []byte) (*Heuristic, error) {
	s := tengo.NewScript(src)
	for _, name := range inputs {
		if err := s.Add(name, 0); err != nil {
			return nil, fmt.Errorf("script: declare %s: %w", name, err)
		}
	}
	s.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile: %w", err)
	}
	// Globals assigned by the script only exist after a run.
	if err := compiled.Run(); err != nil {
		return nil, fmt.Errorf("script: run: %w", err)
	}
	if !compiled.IsDefined("cost") {
		return nil, errors.New("script: heuristic does not assign cost")
	}
	return &Heuristic{compiled: compiled}, nil
}

// Load reads and compiles a heuristic script file.
func Load(path string) (*Heuristic, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("script: read %s: %w", path, err)
	}
	h, err := Compile(src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return h, nil
}

// Eval runs the script for one cell.
func (h *Heuristic) Eval(from, to grid.Position) (float64, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	dx, dy := from.X-to.X, from.Y-to.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	values := [...]int{from.X, from.Y, to.X, to.Y, dx, dy}
	for i, name := range inputs {
		if err := h.compiled.Set(name, values[i]); err != nil {
			return 0, fmt.Errorf("script: set %s: %w", name, err)
		}
	}
	if err := h.compiled.Run(); err != nil {
		return 0, fmt.Errorf("script: run: %w", err)
	}
	cost := h.compiled.Get("cost")
	switch cost.ValueType() {
	case "int", "float":
		return cost.Float(), nil
	default:
		return 0, fmt.Errorf("script: cost is %s, want a number", cost.ValueType())
	}
}

// Func adapts h to the search. A failing evaluation yields 0, which keeps the
// search correct but uninformed; the first failure is kept for Err.
func (h *Heuristic) Func() gridpath.Heuristic {
	return func(from, to grid.Position) float64 {
		cost, err := h.Eval(from, to)
		if err != nil {
			h.mu.Lock()
			if h.err == nil {
				h.err = err
			}
			h.mu.Unlock()
			return 0
		}
		return cost
	}
}

// Err returns the first evaluation error seen through Func.
func (h *Heuristic) Err() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.err
}

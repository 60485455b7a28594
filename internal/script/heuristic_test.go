package script

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdrpinto/gridpath"
	"github.com/pdrpinto/gridpath/grid"
)

const euclidean = `
math := import("math")
cost := math.sqrt(dx*dx + dy*dy)
`

func TestEval(t *testing.T) {
	h, err := Compile([]byte(euclidean))
	require.NoError(t, err)

	got, err := h.Eval(grid.Pos(1, 1), grid.Pos(4, 5))
	require.NoError(t, err)
	assert.InDelta(t, 5.0, got, 1e-12)

	manhattan, err := Compile([]byte(`cost := dx + dy`))
	require.NoError(t, err)
	got, err = manhattan.Eval(grid.Pos(3, -2), grid.Pos(0, 0))
	require.NoError(t, err)
	assert.Equal(t, 5.0, got)
}

func TestScriptedHeuristicDrivesSearch(t *testing.T) {
	h, err := Compile([]byte(`cost := dx > dy ? dx : dy`))
	require.NoError(t, err)

	g := grid.NewDense(8, 8)
	result, err := gridpath.FindPath(context.Background(), g, grid.Pos(0, 0), grid.Pos(6, 2),
		gridpath.WithDiagonal(true),
		gridpath.WithCorners(grid.AlwaysAllow),
		gridpath.WithHeuristic(h.Func()))
	require.NoError(t, err)
	require.NoError(t, h.Err())
	assert.InDelta(t, 4+2*math.Sqrt2, result.TotalCost, 1e-9)
}

func TestCompileErrors(t *testing.T) {
	_, err := Compile([]byte(`cost := (`))
	assert.Error(t, err)

	_, err = Compile([]byte(`estimate := dx`))
	assert.ErrorContains(t, err, "does not assign cost")
}

func TestNonNumericCost(t *testing.T) {
	h, err := Compile([]byte(`cost := "far"`))
	require.NoError(t, err)
	_, err = h.Eval(grid.Pos(0, 0), grid.Pos(1, 1))
	assert.ErrorContains(t, err, "want a number")

	f := h.Func()
	assert.Zero(t, f(grid.Pos(0, 0), grid.Pos(1, 1)))
	assert.Error(t, h.Err())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "h.tengo")
	require.NoError(t, os.WriteFile(path, []byte(euclidean), 0o644))
	h, err := Load(path)
	require.NoError(t, err)
	got, err := h.Eval(grid.Pos(0, 0), grid.Pos(0, 3))
	require.NoError(t, err)
	assert.Equal(t, 3.0, got)

	_, err = Load(filepath.Join(t.TempDir(), "missing.tengo"))
	assert.Error(t, err)
}

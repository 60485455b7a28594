package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdrpinto/gridpath"
	"github.com/pdrpinto/gridpath/grid"
)

func writeMap(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "map.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestRunPrintsRoute(t *testing.T) {
	path := writeMap(t, "rows:\n  - \"S..\"\n  - \"##.\"\n  - \"..G\"\n")

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-map", path}, &out))

	lines := strings.Split(out.String(), "\n")
	assert.True(t, strings.HasPrefix(lines[0], "cost 4.0000, 4 steps"), lines[0])
	assert.Equal(t, "(0,0) (1,0) (2,0) (2,1) (2,2)", lines[1])
	assert.Equal(t, "S**\n##*\n..G\n", strings.Join(lines[2:], "\n"))
}

func TestRunFlagOverrides(t *testing.T) {
	path := writeMap(t, "rows:\n  - \"...\"\n  - \"...\"\n")
	h := filepath.Join(t.TempDir(), "h.tengo")
	require.NoError(t, os.WriteFile(h, []byte("cost := dx > dy ? dx : dy"), 0o644))

	var out bytes.Buffer
	err := run(context.Background(), []string{
		"-map", path, "-from", "0,0", "-to", "2, 1",
		"-diagonal", "-corners", "always", "-script", h,
	}, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "cost 2.4142, 2 steps")
}

func TestRunNoPath(t *testing.T) {
	path := writeMap(t, "rows:\n  - \"S#G\"\n")
	var out bytes.Buffer
	err := run(context.Background(), []string{"-map", path}, &out)
	assert.ErrorIs(t, err, gridpath.ErrNoPath)
	assert.Equal(t, "S#G\n", out.String())
}

func TestRunErrors(t *testing.T) {
	noEnds := writeMap(t, "rows:\n  - \"...\"\n")
	cases := map[string][]string{
		"missing map":  {},
		"no endpoints": {"-map", noEnds},
		"bad from":     {"-map", noEnds, "-from", "1", "-to", "2,0"},
		"bad corners":  {"-map", noEnds, "-from", "0,0", "-to", "2,0", "-corners", "maybe"},
		"off grid":     {"-map", noEnds, "-from", "0,0", "-to", "9,0"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, run(context.Background(), args, &bytes.Buffer{}))
		})
	}
}

func TestParsePosition(t *testing.T) {
	p, err := parsePosition("-3, 7")
	require.NoError(t, err)
	assert.Equal(t, grid.Pos(-3, 7), p)

	_, err = parsePosition("3;7")
	assert.Error(t, err)
	_, err = parsePosition("a,1")
	assert.Error(t, err)
}

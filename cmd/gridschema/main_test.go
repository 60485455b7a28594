package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSchema(t *testing.T) {
	out := filepath.Join(t.TempDir(), "schemas", "map.schema.json")
	require.NoError(t, writeSchema(out, buildSchema()))

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var doc struct {
		Title      string                     `json:"title"`
		Properties map[string]json.RawMessage `json:"properties"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "Grid map", doc.Title)
	for _, field := range []string{"name", "kind", "rows", "cells", "obstacles", "movement", "cell_size"} {
		assert.Contains(t, doc.Properties, field)
	}
	assert.Contains(t, string(doc.Properties["kind"]), "sparse")

	_, err = os.Stat(out + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

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
	path := filepath.Join(t.TempDir(), "schema.json")
	require.NoError(t, writeSchema(path))

	data, err := os.ReadFile(path) //nolint:gosec // test file
	require.NoError(t, err)

	var schema map[string]any
	require.NoError(t, json.Unmarshal(data, &schema))
	defs, ok := schema["$defs"].(map[string]any)
	require.True(t, ok, "schema has $defs")
	cfg, ok := defs["Config"].(map[string]any)
	require.True(t, ok, "schema defines Config")
	props, ok := cfg["properties"].(map[string]any)
	require.True(t, ok)
	for _, section := range []string{"server", "database", "generator", "cors"} {
		assert.Contains(t, props, section)
	}
}

func TestWriteSchema_BadPath(t *testing.T) {
	err := writeSchema(filepath.Join(t.TempDir(), "missing", "schema.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write schema file")
}

package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize_JSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "minoise.log")

	closeFn, err := Initialize(Options{File: path, JSON: true, Session: "test-session"})
	require.NoError(t, err)
	t.Cleanup(func() { Logger = nopLogger() })

	Infow("dataset loaded", "projection", "umap", "genres", 5)
	Debugw("hidden at info level")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "dataset loaded", entry["msg"])
	assert.Equal(t, "umap", entry["projection"])
	assert.Equal(t, "test-session", entry["session"])
}

func TestNamed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "minoise.log")

	closeFn, err := Initialize(Options{File: path, JSON: true})
	require.NoError(t, err)
	t.Cleanup(func() { Logger = nopLogger() })

	Named("watch").Infow("watching")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(string(data))), &entry))
	assert.Equal(t, "watch", entry["logger"])
	assert.NotEmpty(t, entry["session"])
}

func TestNewSessionID(t *testing.T) {
	a, b := NewSessionID(), NewSessionID()
	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
}

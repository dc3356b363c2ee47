package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesToFileAndStderr(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "logs", "tz.log")
	var stderr bytes.Buffer

	logger, closeFn, err := New(Options{Path: path, Level: "debug", Stderr: &stderr})
	require.NoError(t, err)

	logger.Debug("policy pass finished", "pinned", 2)
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "policy pass finished")
	assert.Contains(t, string(data), "pinned=2")
	assert.Contains(t, stderr.String(), "level=DEBUG")
}

func TestNewFiltersBelowLevel(t *testing.T) {
	t.Parallel()

	var stderr bytes.Buffer
	logger, _, err := New(Options{Level: "warn", Stderr: &stderr})
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, stderr.String(), "hidden")
	assert.Contains(t, stderr.String(), "shown")
}

func TestNewWithoutOutputsDiscards(t *testing.T) {
	t.Parallel()

	logger, closeFn, err := New(Options{})
	require.NoError(t, err)
	require.NotNil(t, logger)
	assert.NoError(t, closeFn())
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	level, err := ParseLevel("WARNING")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)

	_, err = ParseLevel("verbose")
	assert.Error(t, err)
}

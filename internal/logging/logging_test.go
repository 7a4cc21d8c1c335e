package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDisabledWithoutPath(t *testing.T) {
	logger, err := Init("", false)
	require.NoError(t, err)
	require.NotNil(t, logger)

	// No sink configured; must not panic.
	logger.Info("discarded")
}

func TestInitWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gitref.log")

	logger, err := Init(path, false)
	require.NoError(t, err)

	logger.Info("catalog reloaded")
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "catalog reloaded")
}

func TestInitLevelFollowsVerbose(t *testing.T) {
	quiet := filepath.Join(t.TempDir(), "quiet.log")
	logger, err := Init(quiet, false)
	require.NoError(t, err)
	logger.Debug("hidden")
	require.NoError(t, logger.Sync())
	data, err := os.ReadFile(quiet)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")

	loud := filepath.Join(t.TempDir(), "loud.log")
	logger, err = Init(loud, true)
	require.NoError(t, err)
	logger.Debug("visible")
	require.NoError(t, logger.Sync())
	data, err = os.ReadFile(loud)
	require.NoError(t, err)
	assert.Contains(t, string(data), "visible")
}

package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_EmptyPathIsSilent(t *testing.T) {
	logger, closer, err := New("test", "", "debug")
	require.NoError(t, err)
	assert.NoError(t, closer.Close())
	assert.False(t, logger.IsDebug())
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "catalog.log")

	logger, closer, err := New("test", path, "debug")
	require.NoError(t, err)
	logger.Debug("page fetched", "page", 2)
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "page fetched")
	assert.Contains(t, string(data), "page=2")
}

func TestNew_UnknownLevelDefaultsToInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.log")

	logger, closer, err := New("test", path, "chatty")
	require.NoError(t, err)
	defer closer.Close()

	assert.False(t, logger.IsDebug())
	assert.True(t, logger.IsInfo())
}

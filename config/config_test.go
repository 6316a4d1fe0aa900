package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestConfigDir(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("HOME", root)
	t.Setenv("XDG_CONFIG_HOME", root)
	return root
}

func TestLoadFile_Defaults(t *testing.T) {
	root := setTestConfigDir(t)

	cfg, err := LoadFile(filepath.Join(root, "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "https://jsonfakery.com/movies/paginated", cfg.APIURL)
	assert.Equal(t, 8, cfg.PageSize)
	assert.Equal(t, 1, cfg.MaxAttempts)
	assert.Equal(t, "file", cfg.Store)
	assert.True(t, cfg.ProbePosters)
	assert.Equal(t, filepath.Join(root, AppName, "preferences.json"), cfg.StorePath)
}

func TestLoadFile_YAMLOverridesDefaults(t *testing.T) {
	root := setTestConfigDir(t)
	path := filepath.Join(root, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
api_url: http://localhost:9999/movies
page_size: 12
timeout: 3s
store: sqlite
probe_posters: false
`), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9999/movies", cfg.APIURL)
	assert.Equal(t, 12, cfg.PageSize)
	assert.Equal(t, 3*time.Second, cfg.Timeout)
	assert.Equal(t, "sqlite", cfg.Store)
	assert.False(t, cfg.ProbePosters)
	assert.Equal(t, filepath.Join(root, AppName, "preferences.db"), cfg.StorePath)
	assert.Equal(t, "info", cfg.LogLevel, "keys absent from the file keep their defaults")
}

func TestLoadFile_EnvWins(t *testing.T) {
	root := setTestConfigDir(t)
	path := filepath.Join(root, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("page_size: 12\n"), 0o644))

	t.Setenv("MOVIE_CATALOG_PAGE_SIZE", "20")
	t.Setenv("MOVIE_CATALOG_STORE", "memory")
	t.Setenv("MOVIE_CATALOG_PROBE_POSTERS", "false")

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 20, cfg.PageSize)
	assert.Equal(t, "memory", cfg.Store)
	assert.Empty(t, cfg.StorePath)
	assert.False(t, cfg.ProbePosters)
}

func TestLoadFile_InvalidValues(t *testing.T) {
	root := setTestConfigDir(t)

	t.Setenv("MOVIE_CATALOG_PAGE_SIZE", "many")
	_, err := LoadFile(filepath.Join(root, "missing.yaml"))
	assert.Error(t, err)

	t.Setenv("MOVIE_CATALOG_PAGE_SIZE", "0")
	_, err = LoadFile(filepath.Join(root, "missing.yaml"))
	assert.ErrorContains(t, err, "page_size")

	t.Setenv("MOVIE_CATALOG_PAGE_SIZE", "")
	t.Setenv("MOVIE_CATALOG_STORE", "redis")
	_, err = LoadFile(filepath.Join(root, "missing.yaml"))
	assert.ErrorContains(t, err, "unknown store")
}

func TestLoad_UsesConfigEnv(t *testing.T) {
	root := setTestConfigDir(t)
	path := filepath.Join(root, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("page_size: 5\n"), 0o644))
	t.Setenv("MOVIE_CATALOG_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.PageSize)
}

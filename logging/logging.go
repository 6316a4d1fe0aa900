package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// New returns a logger writing to path. The terminal belongs to the UI, so
// an empty path yields a null logger. The returned closer releases the file.
func New(name string, path string, level string) (hclog.Logger, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return hclog.NewNullLogger(), io.NopCloser(nil), nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}

	lvl := hclog.LevelFromString(level)
	if lvl == hclog.NoLevel {
		lvl = hclog.Info
	}
	logger := hclog.New(&hclog.LoggerOptions{
		Name:       name,
		Level:      lvl,
		Output:     f,
		JSONFormat: strings.HasSuffix(path, ".json"),
	})
	return logger, f, nil
}

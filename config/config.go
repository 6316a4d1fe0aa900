package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"movie-catalog-cli/service"
	"movie-catalog-cli/store"
)

const AppName = "movie-catalog-cli"

const envPrefix = "MOVIE_CATALOG_"

// Config holds the runtime settings. Values come from the defaults, then the
// YAML file, then MOVIE_CATALOG_* environment variables.
type Config struct {
	APIURL       string        `yaml:"api_url"`
	PageSize     int           `yaml:"page_size"`
	Timeout      time.Duration `yaml:"timeout"`
	MaxAttempts  int           `yaml:"max_attempts"`
	Store        string        `yaml:"store"`
	StorePath    string        `yaml:"store_path"`
	LogFile      string        `yaml:"log_file"`
	LogLevel     string        `yaml:"log_level"`
	ProbePosters bool          `yaml:"probe_posters"`
}

func Default() Config {
	return Config{
		APIURL:       service.DefaultBaseURL,
		PageSize:     service.DefaultPageSize,
		Timeout:      12 * time.Second,
		MaxAttempts:  1,
		Store:        store.KindFile,
		LogLevel:     "info",
		ProbePosters: true,
	}
}

// Load reads the config file named by MOVIE_CATALOG_CONFIG, or config.yaml in
// the user config dir. A missing file is not an error.
func Load() (Config, error) {
	path := strings.TrimSpace(os.Getenv(envPrefix + "CONFIG"))
	if path == "" {
		var err error
		path, err = ConfigPath("config.yaml")
		if err != nil {
			return Config{}, err
		}
	}
	return LoadFile(path)
}

func LoadFile(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.resolvePaths(); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() error {
	if v := env("API_URL"); v != "" {
		c.APIURL = v
	}
	if v := env("PAGE_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sPAGE_SIZE: %w", envPrefix, err)
		}
		c.PageSize = n
	}
	if v := env("TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%sTIMEOUT: %w", envPrefix, err)
		}
		c.Timeout = d
	}
	if v := env("MAX_ATTEMPTS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sMAX_ATTEMPTS: %w", envPrefix, err)
		}
		c.MaxAttempts = n
	}
	if v := env("STORE"); v != "" {
		c.Store = v
	}
	if v := env("STORE_PATH"); v != "" {
		c.StorePath = v
	}
	if v := env("LOG_FILE"); v != "" {
		c.LogFile = v
	}
	if v := env("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := env("PROBE_POSTERS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sPROBE_POSTERS: %w", envPrefix, err)
		}
		c.ProbePosters = b
	}
	return nil
}

func (c *Config) resolvePaths() error {
	c.Store = strings.ToLower(strings.TrimSpace(c.Store))
	if c.StorePath != "" || c.Store == store.KindMemory {
		return nil
	}
	name := "preferences.json"
	if c.Store == store.KindSQLite {
		name = "preferences.db"
	}
	path, err := ConfigPath(name)
	if err != nil {
		return err
	}
	c.StorePath = path
	return nil
}

func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.APIURL) == "" {
		errs = append(errs, errors.New("api_url is required"))
	}
	if c.PageSize < 1 {
		errs = append(errs, fmt.Errorf("page_size must be positive, got %d", c.PageSize))
	}
	if c.Timeout < 0 {
		errs = append(errs, fmt.Errorf("timeout must not be negative, got %s", c.Timeout))
	}
	if c.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("max_attempts must be at least 1, got %d", c.MaxAttempts))
	}
	switch c.Store {
	case "", store.KindFile, store.KindSQLite, store.KindMemory:
	default:
		errs = append(errs, fmt.Errorf("unknown store %q", c.Store))
	}
	return errors.Join(errs...)
}

// ConfigPath places name in the per-user config directory.
func ConfigPath(name string) (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppName, name), nil
}

func env(name string) string {
	return strings.TrimSpace(os.Getenv(envPrefix + name))
}

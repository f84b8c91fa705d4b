package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/blend2d/blversion/internal/logger"
)

// Config holds overrides for the version lookup.
type Config struct {
	// Root is the project root holding src/blend2d/api.h.
	// Empty means the parent of the executable's directory.
	Root string `yaml:"root"`
	// LogLevel is the stderr diagnostics level (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`
}

// DefaultLogLevel keeps extraction fallbacks, which are logged at debug, off stderr.
const DefaultLogLevel = "info"

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errPathRequired is returned when Load is called without a path.
	errPathRequired = errors.New("settings path must be provided")
	// errInvalidLogLevel is returned for levels ParseLogLevel does not know.
	errInvalidLogLevel = errors.New("invalid log level")
)

// Default returns settings used when no file is given.
func Default() *Config {
	return &Config{
		LogLevel: DefaultLogLevel,
	}
}

// Load reads settings from path and validates them.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errPathRequired
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(contents, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the log level and normalizes the root path.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}

	if _, ok := logger.ParseLogLevel(cfg.LogLevel); !ok {
		return fmt.Errorf("%w: %q", errInvalidLogLevel, cfg.LogLevel)
	}

	if cfg.Root != "" {
		cfg.Root = filepath.Clean(cfg.Root)
	}

	return nil
}

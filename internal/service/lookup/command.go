package lookup

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/blend2d/blversion/internal/config"
	"github.com/blend2d/blversion/internal/extractor"
	"github.com/blend2d/blversion/internal/logger"
)

// Options contains inputs for the lookup entry point.
type Options struct {
	// ConfigPath is an optional settings file; empty means no file is read.
	ConfigPath string
	// Root overrides the project root derived from the executable location.
	Root string
	// LogLevel overrides the diagnostics level from the settings file.
	LogLevel string
	// Stdout receives the version line; nil means os.Stdout.
	Stdout io.Writer
}

// Run prints the project version, or "unknown", followed by a newline.
// Extraction failures are never returned; only a failed write is.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "blversion")

	if opts == nil {
		opts = new(Options)
	}

	settings, loadErr := resolveSettings(opts)

	level, _ := logger.ParseLogLevel(settings.LogLevel)
	ctx = logger.ToContext(ctx, logger.FromContext(ctx).WithOptions(logger.WithLevel(level)))

	if loadErr != nil {
		logger.DebugKV(ctx, "Ignoring settings file", "path", opts.ConfigPath, "error", loadErr)
	}

	var version string

	if settings.Root == "" {
		version = extractor.Version(ctx)
	} else {
		ctx = logger.WithKV(ctx, "root", settings.Root)
		version = extractor.FromRoot(ctx, settings.Root)
	}

	out := opts.Stdout
	if out == nil {
		out = os.Stdout
	}

	if _, err := fmt.Fprintln(out, version); err != nil {
		return fmt.Errorf("write version: %w", err)
	}

	return nil
}

// resolveSettings applies flag > settings file > default precedence.
// An unusable settings file is replaced by defaults and its error returned for logging.
func resolveSettings(opts *Options) (*config.Config, error) {
	var (
		settings = config.Default()
		loadErr  error
	)

	if opts.ConfigPath != "" {
		loaded, err := config.Load(opts.ConfigPath)
		if err != nil {
			loadErr = err
		} else {
			settings = loaded
		}
	}

	if opts.Root != "" {
		settings.Root = opts.Root
	}

	if opts.LogLevel != "" {
		if _, ok := logger.ParseLogLevel(opts.LogLevel); ok {
			settings.LogLevel = opts.LogLevel
		}
	}

	return settings, loadErr
}

package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/blend2d/blversion/internal/logger"
	"github.com/blend2d/blversion/internal/service/lookup"
	"github.com/blend2d/blversion/internal/version"
)

var (
	// configPath to the optional settings YAML file.
	configPath string
	// rootDir overrides the project root derived from the executable location.
	rootDir string
	// logLevel for diagnostics written to stderr.
	logLevel string

	// rootCmd prints the blend2d version found in src/blend2d/api.h.
	rootCmd = &cobra.Command{
		Use:   "blversion",
		Short: "Print the blend2d version declared in src/blend2d/api.h.",
		Long: `Reads src/blend2d/api.h under the project root and prints the version
declared by "#define BL_VERSION BL_MAKE_VERSION(major, minor, patch)" as major.minor.patch.

The project root defaults to the parent of the directory holding this binary.
When the header is missing, unreadable or has no version macro, "unknown" is printed.
Positional arguments and unknown flags are ignored. The exit status is always 0.`,
		Args: cobra.ArbitraryArgs,
		FParseErrWhitelist: cobra.FParseErrWhitelist{
			UnknownFlags: true,
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if version.PrintIfRequested(cmd) {
				return nil
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			printVersion(ctx, cmd, &lookup.Options{
				ConfigPath: configPath,
				Root:       rootDir,
				LogLevel:   logLevel,
			})

			return nil
		},
	}
)

// Execute runs the blversion CLI. A command line cobra rejects still prints
// a version line using defaults, so the process always exits with status 0.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		ctx := context.Background()

		logger.DebugKV(ctx, "Ignoring command line", "error", err)
		printVersion(ctx, rootCmd, new(lookup.Options))
	}
}

// printVersion runs the lookup against the command output; a failed write is only logged.
func printVersion(ctx context.Context, cmd *cobra.Command, options *lookup.Options) {
	options.Stdout = cmd.OutOrStdout()

	if err := lookup.Run(ctx, options); err != nil {
		logger.ErrorKV(ctx, "Failed to print version", "error", err)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to an optional settings file")
	rootCmd.Flags().StringVarP(&rootDir, "root", "r", "", "project root holding src/blend2d/api.h")
	rootCmd.Flags().StringVarP(&logLevel, "log-level", "l", "", "stderr log level: debug, info, warn or error")
	version.AttachCobraBuildInfoFlag(rootCmd)
}

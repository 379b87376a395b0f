package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/oshokin/update-registry/internal/config"
	"github.com/oshokin/update-registry/internal/logger"
	"github.com/oshokin/update-registry/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string
	// serverAddress overrides the server address from the configuration.
	serverAddress string
	// clientID overrides the detected username@hostname identifier.
	clientID string
	// verbose enables debug logging, otherwise only warnings are printed.
	verbose bool

	// rootCmd represents the base command for talking to an update server.
	rootCmd = &cobra.Command{
		Use:   "update-client",
		Short: "List, download and apply updates from an update server.",
		Long: `Talks to an update-server over gRPC.

Results are printed to stdout, logs go to stderr. Server address is loaded from
the configuration file unless --server is given.`,
		SilenceUsage: true,
	}
)

// Execute runs the update-client CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// commandContext returns a signal-aware context carrying a logger at the selected verbosity.
func commandContext() (context.Context, context.CancelFunc) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)

	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	return logger.ToContext(ctx, logger.Logger().WithOptions(logger.WithLevel(level))), stop
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	flags.StringVarP(&serverAddress, "server", "s", "", "update-server address, overrides configuration")
	flags.StringVar(&clientID, "client-id", "", "client identifier, defaults to username@hostname")
	flags.BoolVarP(&verbose, "verbose", "v", false, "print debug logs")

	rootCmd.AddCommand(listCmd, fetchCmd, applyCmd)
}

package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/update-registry/internal/config"
	"github.com/oshokin/update-registry/internal/service/server"
	"github.com/oshokin/update-registry/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string
	// manifestFile overrides the manifest from the configuration file.
	manifestFile string

	// rootCmd represents the base command for running the gRPC server.
	rootCmd = &cobra.Command{
		Use:   "update-server [listen-address]",
		Short: "Run the update registry gRPC server.",
		Long: `Starts the gRPC update server that lists available versions and serves their payloads.

The registry is loaded once at startup from the artifact manifest, or from the
built-in demo catalog when no manifest is configured.
Only the port from server_addr config is used for listening (e.g., :50051).
Listen address can be provided as argument to override config (e.g., :9090, 0.0.0.0:50051).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			// Use listen address argument if provided, otherwise rely on config.
			var listenAddress string
			if len(args) > 0 {
				listenAddress = args[0]
			}

			options := &server.Options{
				ConfigPath:    configPath,
				ListenAddress: listenAddress,
				ManifestFile:  manifestFile,
			}

			return server.Run(ctx, options)
		},
	}
)

// Execute runs the update-server CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.Flags().StringVarP(&manifestFile, "manifest", "m", "", "path to artifact manifest, overrides configuration")
}

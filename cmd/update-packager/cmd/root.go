package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/update-registry/internal/config"
	"github.com/oshokin/update-registry/internal/service/packager"
	"github.com/oshokin/update-registry/internal/version"
)

var (
	// configPath to the configuration YAML file written when a server is given.
	configPath string
	// manifestPath is where the manifest is written.
	manifestPath string
	// serverAddress of a running update-server to check.
	serverAddress string

	// rootCmd represents the base command for preparing the artifact manifest.
	rootCmd = &cobra.Command{
		Use:   "update-packager version=path [version=path...]",
		Short: "Prepare the artifact manifest for distribution",
		Long: `Computes SHA-512 checksums of the given payload files and writes the manifest
read by update-server. Versions are listed by the server in argument order.

With --server, the settings file is written and the server is asked for its
version listing to confirm it is reachable.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			options := &packager.Options{
				ConfigPath:    configPath,
				ServerAddress: serverAddress,
				ManifestPath:  manifestPath,
				Artifacts:     args,
			}

			return packager.Run(ctx, options)
		},
	}
)

// Execute runs the update-packager CLI and exits with non-zero status on error.
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
	rootCmd.Flags().
		StringVarP(&manifestPath, "manifest", "m", config.DefaultManifestFilename, "path of the manifest to write")
	rootCmd.Flags().StringVarP(&serverAddress, "server", "s", "", "update-server address to check and save")
}

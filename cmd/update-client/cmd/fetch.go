package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/update-registry/internal/service/client"
)

// outputPath is where fetch writes the payload.
var outputPath string

// fetchCmd downloads a single version payload.
var fetchCmd = &cobra.Command{
	Use:   "fetch [version]",
	Short: "Download a version payload to a file",
	Long: `Downloads the payload of the given version. Without a version, the last
version listed by the server is used. The written path is printed to stdout.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := commandContext()
		defer stop()

		var requested string
		if len(args) > 0 {
			requested = args[0]
		}

		_, err := client.Fetch(ctx, &client.Options{
			ConfigPath:    configPath,
			ServerAddress: serverAddress,
			ClientID:      clientID,
			Version:       requested,
			OutputPath:    outputPath,
			Out:           cmd.OutOrStdout(),
		})

		return err
	},
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	fetchCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file, defaults to the version name")
}

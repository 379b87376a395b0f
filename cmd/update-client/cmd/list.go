package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/update-registry/internal/service/client"
)

// listCmd prints the versions available on the server.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print available update versions, one per line",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := commandContext()
		defer stop()

		return client.List(ctx, &client.Options{
			ConfigPath:    configPath,
			ServerAddress: serverAddress,
			ClientID:      clientID,
			Out:           cmd.OutOrStdout(),
		})
	},
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oshokin/update-registry/internal/service/updater"
)

var (
	// targetPath is the file replaced by the payload.
	targetPath string
	// expectedChecksum is the base64 SHA-512 the payload must match.
	expectedChecksum string
	// killRunning terminates running copies of the target first.
	killRunning bool
	// startTarget launches the target after updating.
	startTarget bool
)

// applyCmd downloads a version and replaces the target file with it.
var applyCmd = &cobra.Command{
	Use:   "apply [version]",
	Short: "Download a version and apply it to a target file",
	Long: `Downloads the payload of the given version (or the last listed one) and
atomically replaces the target file with it. The applied version is printed to stdout.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := commandContext()
		defer stop()

		var requested string
		if len(args) > 0 {
			requested = args[0]
		}

		applied, err := updater.Run(ctx, &updater.Options{
			ConfigPath:    configPath,
			ServerAddress: serverAddress,
			ClientID:      clientID,
			Version:       requested,
			TargetPath:    targetPath,
			Checksum:      expectedChecksum,
			KillRunning:   killRunning,
			StartTarget:   startTarget,
		})
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(cmd.OutOrStdout(), applied)

		return err
	},
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	flags := applyCmd.Flags()
	flags.StringVarP(&targetPath, "target", "t", "", "file to replace")
	flags.StringVar(&expectedChecksum, "checksum", "", "expected base64 SHA-512 of the payload")
	flags.BoolVar(&killRunning, "kill", false, "terminate running processes named like the target first")
	flags.BoolVar(&startTarget, "start", false, "start the target after updating")

	if err := applyCmd.MarkFlagRequired("target"); err != nil {
		panic(err)
	}
}

package commands

import "github.com/spf13/cobra"

// Version is the SDK version, overridden at link time.
var Version = "0.1.0-dev"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the platform-info version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("platform-info version %s\n", Version)
		},
	}
}

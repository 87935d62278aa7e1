package commands

import (
	"fmt"

	"github.com/mobile-client/platform-shim/pkg/useragent"
	"github.com/spf13/cobra"
)

func newUserAgentCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "user-agent",
		Short: "Print the User-Agent header sent by the mobile client",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := opts.resolve(cmd)
			if err != nil {
				return fmt.Errorf("failed to resolve platform: %w", err)
			}
			ua, err := useragent.Build(Version, d)
			if err != nil {
				return err
			}
			cmd.Println(ua)
			return nil
		},
	}
}

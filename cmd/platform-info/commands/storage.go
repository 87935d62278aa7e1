package commands

import (
	"errors"
	"fmt"

	"github.com/mobile-client/platform-shim/pkg/config"
	"github.com/mobile-client/platform-shim/pkg/storage"
	"github.com/spf13/cobra"
)

// probeFile is opened, never written, to check the storage hook.
const probeFile = ".platform-probe"

func newStorageCheckCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "storage-check",
		Short: "Check that the application data directory can be opened through the storage hook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			cfg.RequireStorage = true
			if err := cfg.Validate(); err != nil {
				if errors.Is(err, config.ErrMissingConfiguration) {
					return fmt.Errorf("%w (use --app-data-dir or %s)", err, config.EnvAppDataDir)
				}
				return err
			}
			stream, err := cfg.StorageOps.OpenStream(probeFile, storage.OpenOrCreate, storage.ReadWrite)
			if err != nil {
				return fmt.Errorf("storage hook failed: %w", err)
			}
			if err := stream.Close(); err != nil {
				return fmt.Errorf("storage hook failed: %w", err)
			}
			cmd.Printf("Storage ready at %s\n", cfg.LocalAppDataDir)
			return nil
		},
	}
}

package commands

import (
	"os"

	"github.com/mobile-client/platform-shim/pkg/config"
	"github.com/mobile-client/platform-shim/pkg/logging"
	"github.com/mobile-client/platform-shim/pkg/platform"
	"github.com/mobile-client/platform-shim/pkg/storage"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var lookupEnv = os.LookupEnv

// rootOptions holds the persistent flags shared by all commands.
type rootOptions struct {
	overrides  config.Overrides
	appDataDir string
	logLevel   string

	// resolverOpts are passed to every resolver the commands create.
	resolverOpts []platform.Option
}

// NewRootCmd creates the platform-info command tree. The resolver options
// let callers simulate a different host.
func NewRootCmd(resolverOpts ...platform.Option) *cobra.Command {
	opts := &rootOptions{resolverOpts: resolverOpts}

	rootCmd := &cobra.Command{
		Use:           "platform-info",
		Short:         "Inspect the platform details reported by the mobile client",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.overrides.OSName, "os-name", "", "Override the reported operating system name")
	flags.StringVar(&opts.overrides.OSVersion, "os-version", "", "Override the reported operating system version")
	flags.StringVar(&opts.overrides.OSArchitecture, "os-arch", "", "Override the reported operating system architecture")
	flags.StringVar(&opts.appDataDir, "app-data-dir", "", "Local application data directory used for storage")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(
		newDescribeCmd(opts),
		newUserAgentCmd(opts),
		newStorageCheckCmd(opts),
		newVersionCmd(),
	)
	return rootCmd
}

// loadConfig merges the environment with the command line flags, flags
// taking precedence.
func (o *rootOptions) loadConfig() (config.Config, error) {
	cfg, err := config.FromEnv(lookupEnv)
	if err != nil {
		return config.Config{}, err
	}
	if o.overrides.OSName != "" {
		cfg.OSName = o.overrides.OSName
	}
	if o.overrides.OSVersion != "" {
		cfg.OSVersion = o.overrides.OSVersion
	}
	if o.overrides.OSArchitecture != "" {
		cfg.OSArchitecture = o.overrides.OSArchitecture
	}
	if o.appDataDir != "" {
		cfg.LocalAppDataDir = o.appDataDir
	}
	if cfg.LocalAppDataDir != "" {
		cfg.StorageOps = storage.NewFsOperations(afero.NewOsFs(), cfg.LocalAppDataDir)
	}
	return cfg, nil
}

func (o *rootOptions) logger(cmd *cobra.Command) (logging.Logger, error) {
	log, err := logging.New(cmd.ErrOrStderr(), o.logLevel)
	if err != nil {
		return nil, err
	}
	return log.WithField("component", "platform"), nil
}

func (o *rootOptions) resolve(cmd *cobra.Command) (platform.Descriptor, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return platform.Descriptor{}, err
	}
	log, err := o.logger(cmd)
	if err != nil {
		return platform.Descriptor{}, err
	}
	resolver, err := platform.NewResolver(cfg, log, o.resolverOpts...)
	if err != nil {
		return platform.Descriptor{}, err
	}
	return resolver.Resolve()
}

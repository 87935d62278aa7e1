package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mobile-client/platform-shim/pkg/storage"
)

// ErrMissingConfiguration indicates that a required setting was not
// supplied before the platform was resolved.
var ErrMissingConfiguration = errors.New("missing configuration")

// Environment variables read by FromEnv.
const (
	EnvOSName         = "MOBILE_CLIENT_OS_NAME"
	EnvOSVersion      = "MOBILE_CLIENT_OS_VERSION"
	EnvOSArchitecture = "MOBILE_CLIENT_OS_ARCH"
	EnvAppDataDir     = "MOBILE_CLIENT_APPDATA_DIR"
	EnvRequireStorage = "MOBILE_CLIENT_REQUIRE_STORAGE"
)

// Overrides replace the values derived from the host. Empty fields keep
// the derived value.
type Overrides struct {
	OSName         string
	OSVersion      string
	OSArchitecture string
}

// Config is the platform configuration, constructed before any resolver
// is created.
type Config struct {
	Overrides

	// LocalAppDataDir is the per-user application data directory, e.g.
	// %USERPROFILE%\AppData\Local\<app> on Windows.
	LocalAppDataDir string
	// StorageOps opens byte streams on hosts without a native file API.
	StorageOps storage.Operations
	// RequireStorage marks hosts without a native file API, for which
	// LocalAppDataDir and StorageOps must both be supplied.
	RequireStorage bool
}

// Validate reports every required setting that is missing.
func (c Config) Validate() error {
	if !c.RequireStorage {
		return nil
	}
	var missing []string
	if c.LocalAppDataDir == "" {
		missing = append(missing, "LocalAppDataDir")
	}
	if c.StorageOps == nil {
		missing = append(missing, "StorageOps")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s must be set", ErrMissingConfiguration, strings.Join(missing, ", "))
	}
	return nil
}

// FromEnv builds a Config from environment variables using lookup, which
// is normally os.LookupEnv. StorageOps is never set from the environment.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	get := func(key string) string {
		v, _ := lookup(key)
		return strings.TrimSpace(v)
	}

	cfg := Config{
		Overrides: Overrides{
			OSName:         get(EnvOSName),
			OSVersion:      get(EnvOSVersion),
			OSArchitecture: get(EnvOSArchitecture),
		},
		LocalAppDataDir: get(EnvAppDataDir),
	}
	if raw := get(EnvRequireStorage); raw != "" {
		required, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s value %q: %w", EnvRequireStorage, raw, err)
		}
		cfg.RequireStorage = required
	}
	return cfg, nil
}

package platform

import (
	"errors"
	"fmt"
	"strings"

	"github.com/elastic/go-sysinfo"
	"github.com/mobile-client/platform-shim/pkg/internal/utils"
)

// ErrMalformedDescription indicates an OS description without a version
// token.
var ErrMalformedDescription = errors.New("malformed OS description")

// versionToken is the position of the version in an OS description such
// as "Microsoft Windows 10.0.19041".
const versionToken = 2

// Describer produces the human-readable description of the host operating
// system.
type Describer interface {
	Describe() (string, error)
}

// DescriberFunc adapts a function to the Describer interface.
type DescriberFunc func() (string, error)

// Describe implements Describer.Describe.
func (f DescriberFunc) Describe() (string, error) {
	return f()
}

// StaticDescription returns a Describer that always reports description.
func StaticDescription(description string) Describer {
	return DescriberFunc(func() (string, error) {
		return description, nil
	})
}

// HostDescriber returns the Describer for the running host.
func HostDescriber() Describer {
	return DescriberFunc(describeHost)
}

// ParseVersion extracts the version from an OS description. The
// description is split on single spaces and the third token is returned.
func ParseVersion(description string) (string, error) {
	tokens := strings.Split(description, " ")
	if len(tokens) <= versionToken {
		return "", fmt.Errorf("%w: %q has %d tokens, need at least %d",
			ErrMalformedDescription, utils.SanitizeForLog(description), len(tokens), versionToken+1)
	}
	return tokens[versionToken], nil
}

// sysinfoDescription builds a description from the host information
// reported by go-sysinfo.
func sysinfoDescription() (string, error) {
	host, err := sysinfo.Host()
	if err != nil {
		return "", fmt.Errorf("unable to read host info: %w", err)
	}
	info := host.Info()
	if info.OS == nil {
		return "", errors.New("host info has no operating system details")
	}
	if info.OS.Type == "windows" {
		return fmt.Sprintf("Microsoft Windows %d.%d.%s", info.OS.Major, info.OS.Minor, info.OS.Build), nil
	}
	name := info.OS.Name
	if name == "" {
		name = info.OS.Type
	}
	return strings.Join([]string{name, info.KernelVersion, info.OS.Version}, " "), nil
}

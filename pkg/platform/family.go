package platform

import (
	"errors"
	"fmt"
	"slices"

	"github.com/containerd/platforms"
)

// ErrUnsupportedPlatform indicates that no Prober matched the host.
var ErrUnsupportedPlatform = errors.New("unsupported platform")

// Family is a coarse operating system category.
type Family uint8

const (
	// FamilyUnknown is the zero Family and never matches a host.
	FamilyUnknown Family = iota
	Windows
	MacOS
	Linux
)

// String returns the detection label of the family. MacOS is labelled
// "OSX".
func (f Family) String() string {
	switch f {
	case Windows:
		return "Windows"
	case MacOS:
		return "OSX"
	case Linux:
		return "Linux"
	}
	return "Unknown"
}

// DisplayName returns the label used for the default OS name and
// architecture, which differs from String only for MacOS.
func (f Family) DisplayName() string {
	if f == MacOS {
		return "MacOS"
	}
	return f.String()
}

// Prober checks whether the host belongs to a single Family.
type Prober interface {
	Family() Family
	Matches(goos string) bool
}

type goosProber struct {
	family Family
	goos   []string
}

func (p goosProber) Family() Family {
	return p.family
}

func (p goosProber) Matches(goos string) bool {
	return slices.Contains(p.goos, goos)
}

// DefaultProbers returns one Prober per supported family, in detection
// order: Windows, MacOS, Linux.
func DefaultProbers() []Prober {
	return []Prober{
		goosProber{family: Windows, goos: []string{"windows"}},
		goosProber{family: MacOS, goos: []string{"darwin"}},
		goosProber{family: Linux, goos: []string{"linux", "android"}},
	}
}

// HostOS returns the operating system of the running host in GOOS form.
func HostOS() string {
	return platforms.DefaultSpec().OS
}

// DetectFamily returns the family of the first prober matching goos.
func DetectFamily(goos string, probers []Prober) (Family, error) {
	for _, p := range probers {
		if p.Matches(goos) {
			return p.Family(), nil
		}
	}
	return FamilyUnknown, fmt.Errorf("%w: %q matched none of %d families", ErrUnsupportedPlatform, goos, len(probers))
}

package platform

import (
	"fmt"
	"sync"

	"github.com/mobile-client/platform-shim/pkg/config"
	"github.com/mobile-client/platform-shim/pkg/internal/utils"
	"github.com/mobile-client/platform-shim/pkg/logging"
	"github.com/sirupsen/logrus"
)

// UnknownValue is reported by the string accessors when the platform
// could not be resolved.
const UnknownValue = "--"

// Descriptor describes the host operating system for a User-Agent header.
type Descriptor struct {
	Family       Family `json:"-"`
	Name         string `json:"osName"`
	Version      string `json:"osVersion"`
	Architecture string `json:"osArchitecture"`
	// Description is the raw OS description the version was parsed from.
	// It is empty when the version was overridden.
	Description string `json:"osDescription,omitempty"`
}

// Option customizes a Resolver.
type Option func(*Resolver)

// WithProbers replaces the family probers.
func WithProbers(probers ...Prober) Option {
	return func(r *Resolver) {
		r.probers = probers
	}
}

// WithDescriber replaces the OS description source.
func WithDescriber(d Describer) Option {
	return func(r *Resolver) {
		r.describer = d
	}
}

// WithHostOS replaces the host operating system, given in GOOS form.
func WithHostOS(goos string) Option {
	return func(r *Resolver) {
		r.hostOS = func() string { return goos }
	}
}

// Resolver resolves the platform Descriptor at most once and caches the
// outcome, including failures, for its lifetime.
type Resolver struct {
	log       logging.Logger
	probers   []Prober
	describer Describer
	hostOS    func() string

	// mu guards overrides and resolved.
	mu        sync.Mutex
	overrides config.Overrides
	resolved  bool

	once       sync.Once
	descriptor Descriptor
	err        error
}

// NewResolver validates cfg and creates a Resolver for the running host.
// The configuration is copied; changing cfg afterwards has no effect.
func NewResolver(cfg config.Config, log logging.Logger, opts ...Option) (*Resolver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logging.Discard()
	}
	r := &Resolver{
		log:       log,
		probers:   DefaultProbers(),
		describer: HostDescriber(),
		hostOS:    HostOS,
		overrides: cfg.Overrides,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Override replaces the overrides supplied at construction. It reports
// false, leaving the resolver unchanged, once resolution has started.
func (r *Resolver) Override(o config.Overrides) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.resolved {
		r.log.Warnf("Ignoring platform override for %s: platform already resolved", utils.SanitizeForLog(o.OSName))
		return false
	}
	r.overrides = o
	return true
}

// Resolve returns the platform Descriptor. Only the first call does any
// work; concurrent first callers block until it completes and all callers
// receive the same result.
func (r *Resolver) Resolve() (Descriptor, error) {
	r.once.Do(func() {
		r.mu.Lock()
		r.resolved = true
		overrides := r.overrides
		r.mu.Unlock()

		r.descriptor, r.err = r.resolve(overrides)
		if r.err != nil {
			r.log.Errorf("Unable to resolve platform: %v", r.err)
			return
		}
		r.log.WithFields(logrus.Fields{
			"family":       r.descriptor.Family.String(),
			"os_name":      utils.SanitizeForLog(r.descriptor.Name),
			"os_version":   utils.SanitizeForLog(r.descriptor.Version),
			"architecture": utils.SanitizeForLog(r.descriptor.Architecture),
		}).Debug("Resolved platform")
	})
	return r.descriptor, r.err
}

func (r *Resolver) resolve(overrides config.Overrides) (Descriptor, error) {
	family, err := DetectFamily(r.hostOS(), r.probers)
	if err != nil {
		return Descriptor{}, err
	}

	defaultName := family.DisplayName()
	d := Descriptor{
		Family:       family,
		Name:         firstNonEmpty(overrides.OSName, defaultName),
		Version:      overrides.OSVersion,
		Architecture: firstNonEmpty(overrides.OSArchitecture, defaultName),
	}
	if d.Version != "" {
		return d, nil
	}

	description, err := r.describer.Describe()
	if err != nil {
		return Descriptor{}, fmt.Errorf("unable to describe operating system: %w", err)
	}
	version, err := ParseVersion(description)
	if err != nil {
		return Descriptor{}, err
	}
	d.Description = description
	d.Version = version
	return d, nil
}

// OSName returns the resolved OS name, or UnknownValue.
func (r *Resolver) OSName() string {
	d, err := r.Resolve()
	if err != nil {
		return UnknownValue
	}
	return d.Name
}

// OSVersion returns the resolved OS version, or UnknownValue.
func (r *Resolver) OSVersion() string {
	d, err := r.Resolve()
	if err != nil {
		return UnknownValue
	}
	return d.Version
}

// OSArchitecture returns the resolved OS architecture, or UnknownValue.
func (r *Resolver) OSArchitecture() string {
	d, err := r.Resolve()
	if err != nil {
		return UnknownValue
	}
	return d.Architecture
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

package useragent

import (
	"fmt"
	"net/http"

	"github.com/Masterminds/semver/v3"
	"github.com/mobile-client/platform-shim/pkg/internal/utils"
	"github.com/mobile-client/platform-shim/pkg/platform"
)

// Product is the User-Agent product token of the client SDK.
const Product = "ZUMO"

// Language is reported in the lang field of the User-Agent comment.
const Language = "Go"

// Build formats the User-Agent value for sdkVersion running on the host
// described by d:
//
//	ZUMO/<major>.<minor> (lang=Go; os=<name>; os_version=<version>; arch=<architecture>; version=<sdkVersion>)
func Build(sdkVersion string, d platform.Descriptor) (string, error) {
	v, err := semver.NewVersion(sdkVersion)
	if err != nil {
		return "", fmt.Errorf("invalid SDK version %q: %w", sdkVersion, err)
	}
	return fmt.Sprintf("%s/%d.%d (lang=%s; os=%s; os_version=%s; arch=%s; version=%s)",
		Product,
		v.Major(), v.Minor(),
		Language,
		utils.SanitizeHeaderValue(d.Name, platform.UnknownValue),
		utils.SanitizeHeaderValue(d.Version, platform.UnknownValue),
		utils.SanitizeHeaderValue(d.Architecture, platform.UnknownValue),
		v.String(),
	), nil
}

// Wrap installs a transport on client that appends userAgent to the
// User-Agent header of every outgoing request.
func Wrap(client *http.Client, userAgent string) {
	transport := client.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	client.Transport = &userAgentTransport{
		userAgent: userAgent,
		transport: transport,
	}
}

type userAgentTransport struct {
	userAgent string
	transport http.RoundTripper
}

func (u *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	reqClone := req.Clone(req.Context())

	newUA := u.userAgent
	if existingUA := reqClone.UserAgent(); existingUA != "" {
		newUA = existingUA + " " + u.userAgent
	}
	reqClone.Header.Set("User-Agent", newUA)

	return u.transport.RoundTrip(reqClone)
}

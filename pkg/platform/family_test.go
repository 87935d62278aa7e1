package platform

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDetectFamily(t *testing.T) {
	tests := []struct {
		goos    string
		want    Family
		wantErr bool
	}{
		{goos: "windows", want: Windows},
		{goos: "darwin", want: MacOS},
		{goos: "linux", want: Linux},
		{goos: "android", want: Linux},
		{goos: "freebsd", wantErr: true},
		{goos: "plan9", wantErr: true},
		{goos: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			got, err := DetectFamily(tt.goos, DefaultProbers())
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnsupportedPlatform)
				require.Equal(t, FamilyUnknown, got)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

type fixedProber struct {
	family Family
}

func (p fixedProber) Family() Family { return p.family }
func (p fixedProber) Matches(string) bool { return true }

func TestDetectFamilyOrder(t *testing.T) {
	got, err := DetectFamily("anything", []Prober{fixedProber{MacOS}, fixedProber{Linux}})
	require.NoError(t, err)
	require.Equal(t, MacOS, got)
}

func TestDetectFamilyNoProbers(t *testing.T) {
	_, err := DetectFamily("linux", nil)
	require.ErrorIs(t, err, ErrUnsupportedPlatform)
}

func TestFamilyLabels(t *testing.T) {
	require.Equal(t, "OSX", MacOS.String())
	require.Equal(t, "MacOS", MacOS.DisplayName())
	require.Equal(t, "Windows", Windows.DisplayName())
	require.Equal(t, "Linux", Linux.DisplayName())
	require.Equal(t, "Unknown", FamilyUnknown.String())
}

func TestHostOS(t *testing.T) {
	require.NotEmpty(t, HostOS())
}

//go:build !linux && !freebsd && !openbsd && !darwin

package platform

// describeHost relies on go-sysinfo, which formats Windows hosts as
// "Microsoft Windows <major>.<minor>.<build>".
func describeHost() (string, error) {
	return sysinfoDescription()
}

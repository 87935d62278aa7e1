//go:build linux || freebsd || openbsd || darwin

package platform

import (
	"strings"

	"golang.org/x/sys/unix"
)

// describeHost formats uname(2) as "<sysname> <release> <version>".
func describeHost() (string, error) {
	var un unix.Utsname
	if err := unix.Uname(&un); err != nil {
		return sysinfoDescription()
	}
	return strings.Join([]string{
		unix.ByteSliceToString(un.Sysname[:]),
		unix.ByteSliceToString(un.Release[:]),
		unix.ByteSliceToString(un.Version[:]),
	}, " "), nil
}

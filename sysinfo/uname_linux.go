//go:build linux
// +build linux

package sysinfo

import "golang.org/x/sys/unix"

// unameKernel reads the kernel release straight from uname(2), used as a
// fallback when host detection cannot provide it.
func unameKernel() string {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		log.WithError(err).Debug("uname probe failed")
		return ""
	}
	return unix.ByteSliceToString(uts.Release[:])
}

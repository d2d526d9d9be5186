//go:build !linux
// +build !linux

package sysinfo

// unameKernel has no portable equivalent off Linux; host detection is the
// only kernel version source there.
func unameKernel() string {
	return ""
}

// Package sysinfo provides cross-platform system information retrieval capabilities.
// It defines the core data structures and probes for gathering OS, hardware,
// and runtime information.
package sysinfo

import (
	"fmt"
	"os"
	"os/user"
	"runtime"
	"strings"
	"sync"
)

// ANSI color codes for terminal output formatting
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
	ColorPurple = "\033[35m"
	ColorCyan   = "\033[36m"
	ColorWhite  = "\033[37m"
)

// Unknown is the placeholder shown for any field a probe could not populate.
const Unknown = "Unknown"

// SystemInfo represents comprehensive system information including
// operating system details, hardware specifications, and runtime environment.
// Every field is a display-ready string; a field a probe could not populate
// is left empty and rendered as the Unknown placeholder.
type SystemInfo struct {
	// Username is the current logged-in user's name
	Username string `json:"username"`

	// Hostname is the computer's network name
	Hostname string `json:"hostname"`

	// OS is the full operating system name and version
	OS string `json:"os"`

	// Platform is the lower-case OS/distribution identifier (e.g. "ubuntu",
	// "darwin"), used for logo selection
	Platform string `json:"platform"`

	// Host is the computer manufacturer and model
	Host string `json:"host"`

	// Kernel is the operating system kernel version
	Kernel string `json:"kernel"`

	// Uptime is the formatted system uptime duration
	Uptime string `json:"uptime"`

	// Packages lists per-manager package counts, comma-separated
	Packages string `json:"packages"`

	// Shell is the current command shell being used
	Shell string `json:"shell"`

	// Resolution is the primary display resolution
	Resolution string `json:"resolution"`

	// Desktop is the desktop environment or window manager name
	Desktop string `json:"desktop"`

	// Terminal is the terminal emulator being used
	Terminal string `json:"terminal"`

	// CPU is the processor model and core count
	CPU string `json:"cpu"`

	// GPU is the graphics processor model
	GPU string `json:"gpu"`

	// Memory shows used/total RAM
	Memory string `json:"memory"`

	// Disk shows used/total disk space for the root filesystem
	Disk string `json:"disk"`

	// Battery shows charge percentage and power source, empty on desktops
	Battery string `json:"battery,omitempty"`

	// LocalIP is the primary local IPv4 address detected for the host
	LocalIP string `json:"local_ip"`
}

// GetSystemInfo retrieves comprehensive system information.
// This is the main entry point for gathering all system details.
//
// Returns:
//   - A pointer to a populated SystemInfo struct
//   - An error only when the operating system cannot be determined at all
//
// Individual probe failures never propagate: the affected field is simply
// left empty. Probes run concurrently; the struct is complete on return.
func GetSystemInfo() (*SystemInfo, error) {
	info := &SystemInfo{}

	info.Username = currentUsername()

	hostname, err := os.Hostname()
	if err != nil {
		log.WithError(err).Debug("hostname probe failed")
		hostname = Unknown
	}
	info.Hostname = hostname

	// OS identity first: it is the one fatal probe, and logo selection
	// depends on it.
	osName, platform, kernel, uptime, err := getOSInfo()
	if err != nil {
		return nil, fmt.Errorf("cannot determine operating system: %w", err)
	}
	info.OS = osName
	info.Platform = platform
	info.Kernel = kernel
	info.Uptime = uptime

	// Remaining probes are independent of each other; run them concurrently.
	// Each goroutine only sets its field if a faster source has not already.
	var wg sync.WaitGroup
	var mu sync.Mutex

	setField := func(field *string, val string) {
		mu.Lock()
		if *field == "" {
			*field = val
		}
		mu.Unlock()
	}

	probes := []struct {
		field *string
		probe func() string
	}{
		{&info.Host, getHostModel},
		{&info.CPU, getCPUInfo},
		{&info.GPU, getGPUInfo},
		{&info.Memory, getMemoryInfo},
		{&info.Disk, getDiskInfo},
		{&info.Battery, getBatteryInfo},
		{&info.Packages, getPackageCounts},
		{&info.LocalIP, getLocalIP},
		{&info.Resolution, getResolution},
		{&info.Shell, getShell},
		{&info.Desktop, getDesktop},
		{&info.Terminal, getTerminal},
	}

	for _, p := range probes {
		p := p
		wg.Add(1)
		go func() {
			defer wg.Done()
			setField(p.field, p.probe())
		}()
	}

	wg.Wait()

	return info, nil
}

// currentUsername returns the login name of the invoking user, preferring
// os/user over environment variables and stripping any Windows domain prefix.
func currentUsername() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		name := u.Username
		if i := strings.LastIndex(name, `\`); i >= 0 {
			name = name[i+1:]
		}
		return name
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	if name := os.Getenv("USERNAME"); name != "" {
		return name
	}
	return Unknown
}

// rootMount returns the filesystem path whose usage represents "the disk".
func rootMount() string {
	if runtime.GOOS == "windows" {
		if d := os.Getenv("SystemDrive"); d != "" {
			return d + `\`
		}
		return `C:\`
	}
	return "/"
}

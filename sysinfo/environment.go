// Package sysinfo - shell, desktop and display environment detection
package sysinfo

import (
	"os"
	"regexp"
	"runtime"
	"strings"
	"time"
)

// getShell returns the user's command shell. On Unix this is the $SHELL
// path; on Windows the command interpreter from %COMSPEC%.
func getShell() string {
	if runtime.GOOS == "windows" {
		if c := os.Getenv("COMSPEC"); c != "" {
			return c
		}
		return "cmd.exe"
	}
	return os.Getenv("SHELL")
}

// getDesktop returns the desktop environment or window manager name.
// Detection is env-var based and mostly meaningful on Linux desktops;
// macOS and Windows have fixed, well-known shells.
func getDesktop() string {
	for _, key := range []string{"XDG_CURRENT_DESKTOP", "DESKTOP_SESSION", "GDMSESSION"} {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	switch runtime.GOOS {
	case "darwin":
		return "Aqua"
	case "windows":
		return "Explorer"
	}
	return ""
}

// getTerminal returns the terminal emulator in use, preferring the
// program-level identifier over the bare $TERM type.
func getTerminal() string {
	if tp := os.Getenv("TERM_PROGRAM"); tp != "" {
		return tp
	}
	if os.Getenv("WT_SESSION") != "" {
		return "Windows Terminal"
	}
	return os.Getenv("TERM")
}

// resolutionRegex extracts the active mode from xrandr's per-output lines,
// e.g. "HDMI-1 connected primary 2560x1440+0+0 ...".
var resolutionRegex = regexp.MustCompile(`\bconnected\b.*?(\d+x\d+)\+`)

// getResolution returns the resolution of connected displays, comma-separated
// for multi-monitor setups. Best effort: headless machines yield "".
func getResolution() string {
	switch runtime.GOOS {
	case "linux":
		return xrandrResolution()
	case "darwin":
		return systemProfilerResolution()
	}
	return ""
}

func xrandrResolution() string {
	out, err := runCommand(2*time.Second, "xrandr", "--query")
	if err != nil {
		log.WithError(err).Debug("xrandr probe failed")
		return ""
	}

	var modes []string
	for _, line := range strings.Split(out, "\n") {
		if m := resolutionRegex.FindStringSubmatch(line); m != nil {
			modes = append(modes, m[1])
		}
	}
	return strings.Join(modes, ", ")
}

func systemProfilerResolution() string {
	out, err := runCommand(3*time.Second, "system_profiler", "SPDisplaysDataType")
	if err != nil {
		log.WithError(err).Debug("system_profiler probe failed")
		return ""
	}

	var modes []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if after, ok := strings.CutPrefix(line, "Resolution:"); ok {
			modes = append(modes, strings.TrimSpace(after))
		}
	}
	return strings.Join(modes, ", ")
}

package sysinfo

import (
	"runtime"
	"testing"
)

func TestGetDesktopEnvChain(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("env-chain detection is only meaningful on linux")
	}

	for _, key := range []string{"XDG_CURRENT_DESKTOP", "DESKTOP_SESSION", "GDMSESSION"} {
		t.Setenv(key, "")
	}

	t.Setenv("GDMSESSION", "gnome")
	if got := getDesktop(); got != "gnome" {
		t.Fatalf("getDesktop = %q; want %q", got, "gnome")
	}

	// Higher-priority variables win.
	t.Setenv("DESKTOP_SESSION", "plasma")
	if got := getDesktop(); got != "plasma" {
		t.Fatalf("getDesktop = %q; want %q", got, "plasma")
	}
	t.Setenv("XDG_CURRENT_DESKTOP", "KDE")
	if got := getDesktop(); got != "KDE" {
		t.Fatalf("getDesktop = %q; want %q", got, "KDE")
	}
}

func TestGetTerminal(t *testing.T) {
	t.Setenv("TERM_PROGRAM", "")
	t.Setenv("WT_SESSION", "")
	t.Setenv("TERM", "xterm-256color")
	if got := getTerminal(); got != "xterm-256color" {
		t.Fatalf("getTerminal = %q; want TERM fallback", got)
	}

	t.Setenv("TERM_PROGRAM", "iTerm.app")
	if got := getTerminal(); got != "iTerm.app" {
		t.Fatalf("getTerminal = %q; want TERM_PROGRAM", got)
	}
}

func TestGetShell(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("SHELL is not used on windows")
	}
	t.Setenv("SHELL", "/bin/zsh")
	if got := getShell(); got != "/bin/zsh" {
		t.Fatalf("getShell = %q; want %q", got, "/bin/zsh")
	}
}

func TestResolutionRegex(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"HDMI-1 connected primary 2560x1440+0+0 (normal left) 597mm x 336mm", "2560x1440"},
		{"eDP-1 connected 1920x1080+2560+0 inverted", "1920x1080"},
		{"DP-2 disconnected (normal left inverted)", ""},
	}

	for _, tc := range tests {
		m := resolutionRegex.FindStringSubmatch(tc.line)
		got := ""
		if m != nil {
			got = m[1]
		}
		if got != tc.want {
			t.Fatalf("resolutionRegex(%q) = %q; want %q", tc.line, got, tc.want)
		}
	}
}

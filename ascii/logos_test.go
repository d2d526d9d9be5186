package ascii

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPickSelectsByPlatform(t *testing.T) {
	tests := []struct {
		platform string
		osName   string
		want     string
	}{
		{"ubuntu", "Ubuntu 22.04 x86_64", "ubuntu"},
		{"arch", "Arch Linux x86_64", "arch"},
		{"debian", "Debian GNU/Linux 12", "debian"},
		{"fedora", "Fedora Linux 39", "fedora"},
		{"alpine", "Alpine Linux 3.19", "alpine"},
		{"darwin", "macOS 14.4 arm64", "macos"},
		{"Microsoft Windows 11 Pro", "Microsoft Windows 11 Pro", "windows"},
		// Unknown OS falls back to the generic penguin.
		{"freebsd", "FreeBSD 14.0", "linux"},
		{"", "", "linux"},
	}

	for _, tc := range tests {
		want, ok := Named(tc.want)
		require.True(t, ok, "logo %q must exist", tc.want)
		assert.Equal(t, want, Pick(tc.platform, tc.osName), "Pick(%q, %q)", tc.platform, tc.osName)
	}
}

func TestPickFallsBackToOSName(t *testing.T) {
	// Platform identifier is useless but the display name still matches.
	want, _ := Named("ubuntu")
	assert.Equal(t, want, Pick("linux", "Ubuntu 20.04"))
}

func TestNamed(t *testing.T) {
	for _, name := range Names() {
		logo, ok := Named(name)
		require.True(t, ok, "Named(%q)", name)
		require.NotEmpty(t, logo, "logo %q must have lines", name)
	}

	_, ok := Named("templeos")
	assert.False(t, ok)
	_, ok = Named("")
	assert.False(t, ok)

	// Aliases resolve to the same art as their key.
	byAlias, ok := Named("darwin")
	require.True(t, ok)
	byKey, _ := Named("macos")
	assert.Equal(t, byKey, byAlias)
}

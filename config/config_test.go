package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte("gap: 2\nlogo: arch\nno_color: true\nhide:\n  - gpu\n  - local ip\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Gap)
	assert.Equal(t, "arch", cfg.Logo)
	assert.True(t, cfg.NoColor)
	assert.Equal(t, []string{"gpu", "local ip"}, cfg.Hide)
}

func TestParseEmptyKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("logo: debian\n"))
	require.NoError(t, err)
	assert.Equal(t, Default().Gap, cfg.Gap, "unset gap keeps the default")
	assert.Equal(t, "debian", cfg.Logo)
}

func TestParseClampsNegativeGap(t *testing.T) {
	cfg, err := Parse([]byte("gap: -3\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Gap)
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse([]byte("gap: [not a number\n"))
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	setConfigDir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadReadsFile(t *testing.T) {
	dir := t.TempDir()
	setConfigDir(t, dir)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "gofetch"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "gofetch", "config.yaml"), []byte("gap: 6\n"), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Gap)
}

// setConfigDir points os.UserConfigDir at a temp directory.
func setConfigDir(t *testing.T, dir string) {
	t.Helper()
	switch runtime.GOOS {
	case "windows":
		t.Setenv("AppData", dir)
	case "darwin":
		t.Skip("os.UserConfigDir is not overridable via env on darwin")
	default:
		t.Setenv("XDG_CONFIG_HOME", dir)
	}
}

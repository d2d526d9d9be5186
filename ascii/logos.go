// Package ascii provides ASCII art logos for supported operating systems.
// Logos are color-coded using ANSI escape sequences for terminal display.
package ascii

import (
	"strings"

	"gofetch/sysinfo"
)

// logoEntry binds a lower-case match key to its logo builder. Entries are
// matched in order against the platform identifier and the OS display name,
// so the generic "linux" key must stay last.
type logoEntry struct {
	key     string
	aliases []string
	build   func() []string
}

var logoEntries = []logoEntry{
	{key: "ubuntu", build: getUbuntuLogo},
	{key: "arch", build: getArchLogo},
	{key: "debian", build: getDebianLogo},
	{key: "fedora", build: getFedoraLogo},
	{key: "alpine", build: getAlpineLogo},
	{key: "macos", aliases: []string{"darwin"}, build: getMacLogo},
	{key: "windows", build: getWindowsLogo},
	{key: "linux", build: getTuxLogo},
}

// Pick selects a logo by substring-matching the platform identifier and the
// OS display name against the known logo keys.
//
// Parameters:
//   - platform: lower-case OS/distribution identifier (e.g. "ubuntu")
//   - osName: full OS display name (e.g. "Ubuntu 22.04 x86_64")
//
// Returns:
//   - A slice of strings, one per line of ASCII art
//   - The generic Tux logo when nothing matches
func Pick(platform, osName string) []string {
	queries := []string{strings.ToLower(platform), strings.ToLower(osName)}

	// Entries outer, queries inner: a distro name anywhere must win over the
	// generic "linux" key matching the bare platform identifier.
	for _, e := range logoEntries {
		for _, q := range queries {
			if q == "" {
				continue
			}
			if strings.Contains(q, e.key) {
				return e.build()
			}
			for _, a := range e.aliases {
				if strings.Contains(q, a) {
					return e.build()
				}
			}
		}
	}
	return getTuxLogo()
}

// Named returns the logo registered under the exact given key, for callers
// that want to force a specific logo regardless of the detected OS.
func Named(name string) ([]string, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil, false
	}
	for _, e := range logoEntries {
		if e.key == name {
			return e.build(), true
		}
		for _, a := range e.aliases {
			if a == name {
				return e.build(), true
			}
		}
	}
	return nil, false
}

// Names lists the selectable logo keys in registration order.
func Names() []string {
	names := make([]string, 0, len(logoEntries))
	for _, e := range logoEntries {
		names = append(names, e.key)
	}
	return names
}

// getTuxLogo returns the generic Linux penguin, also used as the fallback
// for operating systems without a dedicated logo.
func getTuxLogo() []string {
	c := sysinfo.ColorYellow
	r := sysinfo.ColorReset

	return []string{
		c + `        .--.      ` + r,
		c + `       |o_o |     ` + r,
		c + `       |:_/ |     ` + r,
		c + `      //   \ \    ` + r,
		c + `     (|     | )   ` + r,
		c + `    /'\_   _/` + "`" + `\   ` + r,
		c + `    \___)=(___/   ` + r,
	}
}

func getUbuntuLogo() []string {
	c := sysinfo.ColorRed
	r := sysinfo.ColorReset

	return []string{
		c + `         _        ` + r,
		c + `     ---(_)       ` + r,
		c + ` _/  ---  \_      ` + r,
		c + `(_) |     | (_)   ` + r,
		c + `   _\___/_        ` + r,
		c + `  /  ___  \       ` + r,
		c + `  \_/   \_/       ` + r,
	}
}

func getArchLogo() []string {
	c := sysinfo.ColorCyan
	r := sysinfo.ColorReset

	return []string{
		c + `       /\         ` + r,
		c + `      /  \        ` + r,
		c + `     /\   \       ` + r,
		c + `    /      \      ` + r,
		c + `   /   ,,   \     ` + r,
		c + `  /   |  |  -\    ` + r,
		c + ` /_-''    ''-_\   ` + r,
	}
}

func getDebianLogo() []string {
	c := sysinfo.ColorRed
	r := sysinfo.ColorReset

	return []string{
		c + `   ____           ` + r,
		c + `  / __ \___  ___  ` + r,
		c + ` / / / / _ \/ _ \ ` + r,
		c + `/ /_/ /  __/  __/ ` + r,
		c + `\____/\___/\___/  ` + r,
	}
}

func getFedoraLogo() []string {
	c := sysinfo.ColorBlue
	r := sysinfo.ColorReset

	return []string{
		c + `      _____       ` + r,
		c + `     /   __)\     ` + r,
		c + `     |  /  \ \    ` + r,
		c + `  ___|  |__/ /    ` + r,
		c + ` / (_    _)_/     ` + r,
		c + `/ /  |  |         ` + r,
		c + `\ \__/  |         ` + r,
		c + ` \(_____/         ` + r,
	}
}

func getAlpineLogo() []string {
	c := sysinfo.ColorBlue
	r := sysinfo.ColorReset

	return []string{
		c + `    /\ /\         ` + r,
		c + `   /  \  \        ` + r,
		c + `  /    \  \       ` + r,
		c + ` /      \  \      ` + r,
		c + `/        \  \     ` + r,
		c + `          \  \    ` + r,
	}
}

func getMacLogo() []string {
	c := sysinfo.ColorGreen
	r := sysinfo.ColorReset

	return []string{
		c + `       .:         ` + r,
		c + `     .::::.       ` + r,
		c + `   .::::::::.     ` + r,
		c + `  ::::::::::::    ` + r,
		c + `  ':::::::::'     ` + r,
		c + `    ':::::'       ` + r,
	}
}

// getWindowsLogo returns the four-pane Windows flag.
func getWindowsLogo() []string {
	c := sysinfo.ColorCyan
	r := sysinfo.ColorReset

	return []string{
		c + `llllllll  llllllll` + r,
		c + `llllllll  llllllll` + r,
		c + `llllllll  llllllll` + r,
		c + `llllllll  llllllll` + r,
		`                  `,
		c + `llllllll  llllllll` + r,
		c + `llllllll  llllllll` + r,
		c + `llllllll  llllllll` + r,
		c + `llllllll  llllllll` + r,
	}
}

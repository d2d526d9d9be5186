// Package sysinfo - installed package counting
package sysinfo

import (
	"fmt"
	"strings"
	"time"
)

// packageManager describes one supported package manager: the binary to
// invoke, its listing arguments, and how many header lines its output has.
type packageManager struct {
	name   string
	cmd    string
	args   []string
	header int
}

// packageManagers is probed in order; the order also fixes the display order.
var packageManagers = []packageManager{
	{name: "dpkg", cmd: "dpkg-query", args: []string{"-f", "${binary:Package}\n", "-W"}},
	{name: "pacman", cmd: "pacman", args: []string{"-Qq"}},
	{name: "rpm", cmd: "rpm", args: []string{"-qa"}},
	{name: "apk", cmd: "apk", args: []string{"info"}},
	{name: "brew", cmd: "brew", args: []string{"list", "--formula"}},
	{name: "flatpak", cmd: "flatpak", args: []string{"list", "--app"}},
	{name: "snap", cmd: "snap", args: []string{"list"}, header: 1},
}

// packageTimeout bounds each listing; a wedged manager must not stall the banner.
const packageTimeout = 4 * time.Second

type packageCount struct {
	manager string
	count   int
}

// getPackageCounts probes every known package manager and returns the
// detected counts as a single display string. Managers that are not
// installed, fail to list, or report zero packages are omitted.
func getPackageCounts() string {
	var counts []packageCount
	for _, pm := range packageManagers {
		out, err := runCommand(packageTimeout, pm.cmd, pm.args...)
		if err != nil {
			continue
		}
		if n := countLines(out) - pm.header; n > 0 {
			counts = append(counts, packageCount{pm.name, n})
		}
	}
	return formatPackageCounts(counts)
}

// formatPackageCounts renders detected managers as "name: count" pairs,
// comma-separated, in probe order, e.g. "dpkg: 2143, flatpak: 12".
func formatPackageCounts(counts []packageCount) string {
	parts := make([]string, 0, len(counts))
	for _, c := range counts {
		parts = append(parts, fmt.Sprintf("%s: %d", c.manager, c.count))
	}
	return strings.Join(parts, ", ")
}

// countLines counts non-blank lines in command output.
func countLines(s string) int {
	n := 0
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) != "" {
			n++
		}
	}
	return n
}

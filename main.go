// Package main provides the gofetch command-line tool for displaying local
// system information with ASCII art logos that vary based on the operating
// system.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/mattn/go-runewidth"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"gofetch/ascii"
	"gofetch/config"
	"gofetch/sysinfo"
)

// ansiRegex matches ANSI escape codes for removal/measurement purposes
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

type options struct {
	gap     int
	logo    string
	noColor bool
	jsonOut bool
	debug   bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "gofetch: %v\n", err)
		os.Exit(1)
	}
}

// newRootCommand builds the CLI surface: a single command with display flags.
func newRootCommand() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "gofetch",
		Short:         "Display local system information beside an ASCII logo",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	cmd.Flags().IntVar(&opts.gap, "gap", 4, "number of spaces between logo and info")
	cmd.Flags().StringVar(&opts.logo, "logo", "", "force a specific logo ("+strings.Join(ascii.Names(), ", ")+")")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "disable ANSI color output")
	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "print system information as JSON")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "enable probe diagnostics on stderr")

	return cmd
}

func run(cmd *cobra.Command, opts options) error {
	logrus.SetOutput(os.Stderr)
	if opts.debug {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.WarnLevel)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	// Flags win over the config file; config wins over built-in defaults.
	if !cmd.Flags().Changed("gap") {
		opts.gap = cfg.Gap
	}
	if opts.logo == "" {
		opts.logo = cfg.Logo
	}
	if opts.noColor || cfg.NoColor || !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}

	info, err := sysinfo.GetSystemInfo()
	if err != nil {
		return err
	}

	if opts.jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	}

	logo, ok := ascii.Named(opts.logo)
	if !ok {
		if opts.logo != "" {
			logrus.Warnf("unknown logo %q, detecting from OS", opts.logo)
		}
		logo = ascii.Pick(info.Platform, info.OS)
	}

	renderBanner(os.Stdout, logo, info, opts.gap, cfg.Hide)
	return nil
}

// row is one "Label: value" line of the info column.
type row struct {
	label string
	value string
}

// infoRows lists the displayed fields in their fixed order. Fields a probe
// could not populate are rendered with the Unknown placeholder rather than
// dropped, so the layout is stable across machines.
func infoRows(info *sysinfo.SystemInfo) []row {
	return []row{
		{"OS", info.OS},
		{"Host", info.Host},
		{"Kernel", info.Kernel},
		{"Uptime", info.Uptime},
		{"Packages", info.Packages},
		{"Shell", info.Shell},
		{"Resolution", info.Resolution},
		{"DE/WM", info.Desktop},
		{"Terminal", info.Terminal},
		{"CPU", info.CPU},
		{"GPU", info.GPU},
		{"Memory", info.Memory},
		{"Disk", info.Disk},
		{"Battery", info.Battery},
		{"Local IP", info.LocalIP},
	}
}

// normalizeLabel maps a row label or a config "hide" entry to a comparison
// key: lower-case with spaces removed, so "Local IP" and "localip" match.
func normalizeLabel(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "")
}

// renderBanner writes the ASCII art logo and system information side-by-side.
//
// Parameters:
//   - w: Destination writer (stdout in normal operation)
//   - logo: Slice of strings representing the ASCII art, one string per line
//   - info: Pointer to SystemInfo struct containing all system details
//   - gap: Number of spaces between the logo column and the info column
//   - hide: Row labels to omit, as configured by the user
//
// The function combines the logo and info lines, ensuring proper alignment
// and color formatting for an aesthetically pleasing terminal output.
func renderBanner(w io.Writer, logo []string, info *sysinfo.SystemInfo, gap int, hide []string) {
	titleColor := color.New(color.FgCyan, color.Bold)
	labelColor := color.New(color.FgBlue, color.Bold)

	hidden := make(map[string]bool, len(hide))
	for _, h := range hide {
		hidden[normalizeLabel(h)] = true
	}

	// Header: user@host with an underline matching its visible width.
	title := fmt.Sprintf("%s@%s", titleColor.Sprint(info.Username), titleColor.Sprint(info.Hostname))
	infoLines := []string{
		"",
		title,
		strings.Repeat("-", getVisibleWidth(title)),
	}

	for _, r := range infoRows(info) {
		if hidden[normalizeLabel(r.label)] {
			continue
		}
		val := r.value
		if strings.TrimSpace(val) == "" {
			val = sysinfo.Unknown
		}
		infoLines = append(infoLines, fmt.Sprintf("%s: %s", labelColor.Sprint(r.label), val))
	}

	if bar := colorBar(); bar != "" {
		infoLines = append(infoLines, "", bar)
	}
	infoLines = append(infoLines, "")

	if color.NoColor {
		logo = stripLogoColor(logo)
	}

	// Top-align logo and info: print from the top line downward. This keeps
	// ASCII art anchored at the top and prevents shifting when info lines
	// change length.
	// Calculate logo width for proper spacing (excluding ANSI codes)
	logoWidth := 0
	for _, line := range logo {
		if vw := getVisibleWidth(line); vw > logoWidth {
			logoWidth = vw
		}
	}

	maxLines := len(logo)
	if len(infoLines) > maxLines {
		maxLines = len(infoLines)
	}

	spacer := strings.Repeat(" ", gap)
	for i := 0; i < maxLines; i++ {
		var logoLine, infoLine string

		if i < len(logo) {
			logoLine = logo[i]
			if padding := logoWidth - getVisibleWidth(logoLine); padding > 0 {
				logoLine += strings.Repeat(" ", padding)
			}
		} else {
			logoLine = strings.Repeat(" ", logoWidth)
		}

		if i < len(infoLines) {
			infoLine = infoLines[i]
		}

		fmt.Fprintf(w, "%s%s%s\n", logoLine, spacer, infoLine)
	}
}

// getVisibleWidth calculates the visible width of a string excluding ANSI
// escape codes. This is essential for proper alignment when strings contain
// color codes.
func getVisibleWidth(s string) int {
	// Remove all ANSI escape sequences
	stripped := ansiRegex.ReplaceAllString(s, "")
	// Use runewidth to count display width (handles wide runes)
	return runewidth.StringWidth(stripped)
}

// stripLogoColor removes the embedded ANSI sequences from logo art for
// no-color output.
func stripLogoColor(logo []string) []string {
	out := make([]string, len(logo))
	for i, line := range logo {
		out[i] = ansiRegex.ReplaceAllString(line, "")
	}
	return out
}

// colorBar generates a visual representation of available terminal colors:
// the 16 basic background colors, 40-47 (standard) and 100-107 (bright).
// It returns "" when color output is disabled.
func colorBar() string {
	if color.NoColor {
		return ""
	}

	var bar strings.Builder
	for bg := 40; bg <= 47; bg++ {
		fmt.Fprintf(&bar, "\033[%dm   ", bg)
	}
	for bg := 100; bg <= 107; bg++ {
		fmt.Fprintf(&bar, "\033[%dm   ", bg)
	}
	bar.WriteString(sysinfo.ColorReset)

	return bar.String()
}

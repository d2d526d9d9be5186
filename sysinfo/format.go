// Package sysinfo - Formatting utilities
package sysinfo

import (
	"fmt"
	"strings"
	"time"
)

// FormatBytes converts a byte count to a human-readable string with appropriate units.
//
// Parameters:
//   - bytes: The number of bytes to format
//
// Returns:
//   - A formatted string with the most appropriate unit (B, KB, MB, GB, TB)
//
// Example: FormatBytes(1536) returns "1.5 KB"
func FormatBytes(bytes uint64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}

	div, exp := uint64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}

	units := []string{"KB", "MB", "GB", "TB", "PB"}
	return fmt.Sprintf("%.1f %s", float64(bytes)/float64(div), units[exp])
}

// FormatUptime renders a duration as days, hours and minutes, e.g.
// "3 days, 4 hours, 12 mins". The minutes part is always present when it is
// the only one, so a freshly booted machine shows "0 mins" rather than nothing.
func FormatUptime(uptime time.Duration) string {
	days := int(uptime.Hours() / 24)
	hours := int(uptime.Hours()) % 24
	mins := int(uptime.Minutes()) % 60

	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%d day%s", days, plural(days)))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%d hour%s", hours, plural(hours)))
	}
	if mins > 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%d min%s", mins, plural(mins)))
	}

	return strings.Join(parts, ", ")
}

// plural returns "s" for counts other than one.
func plural(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}

// TruncateString truncates a string to a maximum length and adds ellipsis if needed.
//
// Parameters:
//   - s: The string to truncate
//   - maxLen: Maximum length of the resulting string
//
// Returns:
//   - The original string if it's shorter than maxLen
//   - A truncated string with "..." appended if longer than maxLen
//
// Example: TruncateString("Hello World", 8) returns "Hello..."
func TruncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

// PadRight pads a string with spaces to reach a minimum width.
//
// Parameters:
//   - s: The string to pad
//   - width: The desired minimum width
//
// Returns:
//   - The padded string
//
// Example: PadRight("Hi", 5) returns "Hi   "
func PadRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

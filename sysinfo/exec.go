package sysinfo

import (
	"context"
	"os/exec"
	"strings"
	"time"
)

// runCommand executes a program with a timeout and returns trimmed stdout.
// Probes that shell out must stay snappy: a hung package manager or display
// tool should never stall the banner.
func runCommand(timeout time.Duration, name string, arg ...string) (string, error) {
	if _, err := exec.LookPath(name); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, name, arg...).Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

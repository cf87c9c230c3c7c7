// Package proc resolves which process holds a file open and which
// terminal that process is attached to.
//
// Both lookups shell out to standard Unix tools (lsof, ps). They are
// best-effort: a missing tool or a permission error surfaces as a normal
// error that callers degrade from.
package proc

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// OpenerOf returns the PID of the process holding path open.
// When several processes hold it (forked editors, pagers), the first
// reported PID is used.
func OpenerOf(ctx context.Context, path string) (int, error) {
	out, err := run(ctx, "lsof", "-t", path)
	if err != nil {
		return 0, fmt.Errorf("lsof -t %s: %w", path, err)
	}
	pids := parsePIDs(out)
	if len(pids) == 0 {
		return 0, fmt.Errorf("no process holds %s open", path)
	}
	return pids[0], nil
}

// TTYOf returns the controlling terminal device of pid as an absolute
// path (e.g. "/dev/ttys003"). Returns an error when the process has no
// controlling terminal.
func TTYOf(ctx context.Context, pid int) (string, error) {
	out, err := run(ctx, "ps", "-o", "tty=", "-p", strconv.Itoa(pid))
	if err != nil {
		return "", fmt.Errorf("ps -o tty= -p %d: %w", pid, err)
	}
	tty := normalizeTTY(out)
	if tty == "" {
		return "", fmt.Errorf("pid %d has no controlling terminal", pid)
	}
	return tty, nil
}

// run executes a command and returns its stdout.
func run(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	out, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return "", fmt.Errorf("%w: %s", err, string(exitErr.Stderr))
		}
		return "", err
	}
	return string(out), nil
}

// parsePIDs parses lsof -t output: one PID per line.
func parsePIDs(out string) []int {
	var pids []int
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		pid, err := strconv.Atoi(line)
		if err != nil || pid <= 0 {
			continue
		}
		pids = append(pids, pid)
	}
	return pids
}

// normalizeTTY canonicalizes ps tty output to a device path.
// ps prints the device relative to /dev ("ttys003", "pts/1") and "?"
// or "??" when the process has no controlling terminal.
func normalizeTTY(out string) string {
	tty := strings.TrimSpace(out)
	if tty == "" || tty == "?" || tty == "??" || tty == "-" {
		return ""
	}
	if strings.HasPrefix(tty, "/dev/") {
		return tty
	}
	return "/dev/" + tty
}

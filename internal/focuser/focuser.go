// Package focuser brings an already-located terminal window or pane to
// the foreground.
//
// Focus is strictly best-effort: by the time focus runs, the collision
// outcome is already decided, so a failed window switch must not change
// it. Callers log focus errors and move on.
package focuser

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"time"

	"github.com/timvw/swap-sentinel/internal/model"
)

// DefaultTimeout bounds each focus command.
const DefaultTimeout = 500 * time.Millisecond

// Focuser raises the window identified by a handle.
type Focuser interface {
	Focus(ctx context.Context, h model.Handle) error
}

// Exec focuses windows by shelling out to the platform tool matching
// the handle's strategy.
type Exec struct {
	timeout time.Duration
}

// New returns an Exec focuser. A zero timeout means DefaultTimeout.
func New(timeout time.Duration) *Exec {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Exec{timeout: timeout}
}

// Focus raises the window identified by h.
func (e *Exec) Focus(ctx context.Context, h model.Handle) error {
	if h.IsZero() {
		return fmt.Errorf("cannot focus empty handle")
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	switch h.Strategy {
	case model.StrategyTmux:
		for _, args := range tmuxFocusArgs(h) {
			if err := run(ctx, "tmux", args...); err != nil {
				return fmt.Errorf("tmux %s: %w", args[0], err)
			}
		}
		return nil

	case model.StrategyMacTerminal:
		if err := run(ctx, "osascript", "-e", focusScript(h.App, h.WindowID)); err != nil {
			return fmt.Errorf("osascript focus window: %w", err)
		}
		return nil

	case model.StrategyX11:
		if err := run(ctx, "wmctrl", "-i", "-a", h.WindowID); err != nil {
			return fmt.Errorf("wmctrl -i -a %s: %w", h.WindowID, err)
		}
		return nil
	}

	return fmt.Errorf("no focus mechanism for strategy %q", h.Strategy)
}

// tmuxFocusArgs returns the tmux command sequence that selects the
// handle's window, then its pane within that window.
func tmuxFocusArgs(h model.Handle) [][]string {
	window := strconv.Itoa(h.Window)
	return [][]string{
		{"select-window", "-t", ":" + window},
		{"select-pane", "-t", ":" + window + "." + strconv.Itoa(h.Pane)},
	}
}

// focusScript returns an AppleScript that activates the application and
// raises the window with the given id. iTerm2 exposes "select" on
// windows; Terminal.app raises by reordering the window index.
func focusScript(app, windowID string) string {
	if app == "iTerm2" {
		return fmt.Sprintf(`tell application %q
	activate
	select window id %s
end tell`, app, windowID)
	}
	return fmt.Sprintf(`tell application %q
	activate
	set index of window id %s to 1
end tell`, app, windowID)
}

// run executes a command, discarding stdout.
func run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	if _, err := cmd.Output(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return fmt.Errorf("%w: %s", err, string(exitErr.Stderr))
		}
		return err
	}
	return nil
}

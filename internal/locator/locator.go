// Package locator finds the terminal window or pane that is already
// editing a file, given the swap marker the editor left behind.
//
// Each platform strategy runs its own pipeline of external commands.
// All strategies share the same contract: a zero handle with a nil error
// means "no active session found", and errors are reserved for tool
// failures (missing binary, timeout, permission). Callers degrade both
// to the same conservative answer.
package locator

import (
	"context"
	"fmt"
	"os/exec"
	"time"

	"github.com/timvw/swap-sentinel/internal/model"
)

// DefaultTimeout bounds each strategy's external-command pipeline.
// Collision handling sits on the editor's file-open path, so a hung
// lsof or osascript must not stall the open indefinitely.
const DefaultTimeout = 500 * time.Millisecond

// Locator finds the window editing file, using marker as the anchor
// for process lookups.
type Locator interface {
	// Locate returns a handle for the window editing file.
	// A zero handle with nil error means no active session was found.
	Locate(ctx context.Context, file, marker string) (model.Handle, error)

	// Strategy returns the platform strategy this locator implements.
	Strategy() model.Strategy
}

// Options configures strategy construction.
type Options struct {
	// Timeout bounds the strategy's external-command pipeline.
	// Zero means DefaultTimeout.
	Timeout time.Duration
	// TerminalApp is the AppleScript application name for the macterm
	// strategy (e.g. "Terminal", "iTerm2").
	TerminalApp string
	// EditorTitles are the substrings that mark a window title as an
	// editor window (e.g. "VIM"). Used by the macterm and x11 strategies.
	EditorTitles []string
}

func (o Options) timeout() time.Duration {
	if o.Timeout > 0 {
		return o.Timeout
	}
	return DefaultTimeout
}

// ForStrategy returns the locator for the given platform strategy.
// StrategyNone (and unknown strategies) get a locator that never finds
// anything, so unsupported hosts follow the read-only path.
func ForStrategy(s model.Strategy, opts Options) Locator {
	switch s {
	case model.StrategyTmux:
		return &Tmux{timeout: opts.timeout()}
	case model.StrategyMacTerminal:
		return &MacTerminal{
			App:     opts.TerminalApp,
			Titles:  opts.EditorTitles,
			timeout: opts.timeout(),
		}
	case model.StrategyX11:
		return &X11{Titles: opts.EditorTitles, timeout: opts.timeout()}
	}
	return none{}
}

// none is the locator for hosts without a usable window interface.
type none struct{}

func (none) Locate(ctx context.Context, file, marker string) (model.Handle, error) {
	return model.Handle{}, nil
}

func (none) Strategy() model.Strategy {
	return model.StrategyNone
}

// runTool executes an external command and returns its stdout.
func runTool(ctx context.Context, name string, args ...string) (string, error) {
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

// Package platform decides which window-location strategy applies to the
// current process environment.
//
// The probe is recomputed on every collision rather than cached: the
// environment can change between editor invocations (a tmux session is
// attached or detached, DISPLAY appears after an SSH hop), and a stale
// answer would route the lookup to a dead strategy.
package platform

import (
	"os"
	"runtime"

	"github.com/timvw/swap-sentinel/internal/model"
)

// macTerminalPrograms are the TERM_PROGRAM values with a usable
// AppleScript window interface.
var macTerminalPrograms = map[string]string{
	"Apple_Terminal": "Terminal",
	"iTerm.app":      "iTerm2",
}

// Detect probes the environment and returns the strategy to use for
// locating the editing session. multiplexerEnabled gates the tmux
// strategy: even inside tmux the user may prefer the OS-level window
// strategies. terminalApp is the configured AppleScript application
// name; when set it activates the mac terminal strategy even for a
// TERM_PROGRAM value the probe does not recognize.
func Detect(multiplexerEnabled bool, terminalApp string) model.Strategy {
	return detect(multiplexerEnabled, terminalApp, runtime.GOOS, os.Getenv)
}

// detect is the testable core of Detect.
func detect(multiplexerEnabled bool, terminalApp, goos string, getenv func(string) string) model.Strategy {
	if multiplexerEnabled && getenv("TMUX") != "" {
		return model.StrategyTmux
	}

	switch goos {
	case "darwin":
		if terminalApp != "" {
			return model.StrategyMacTerminal
		}
		if _, ok := macTerminalPrograms[getenv("TERM_PROGRAM")]; ok {
			return model.StrategyMacTerminal
		}
	case "linux":
		if getenv("DISPLAY") != "" {
			return model.StrategyX11
		}
	}

	return model.StrategyNone
}

// TerminalApp maps a TERM_PROGRAM value to the application name used in
// AppleScript queries. Returns "" for unrecognized terminals.
func TerminalApp(termProgram string) string {
	return macTerminalPrograms[termProgram]
}

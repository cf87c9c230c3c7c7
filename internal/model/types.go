package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Strategy identifies the platform mechanism used to locate and focus
// the terminal window editing a file.
type Strategy string

const (
	// StrategyTmux locates the editing session through the tmux pane registry.
	StrategyTmux Strategy = "tmux"
	// StrategyMacTerminal locates the editing session through AppleScript
	// window title queries (Terminal.app, iTerm2).
	StrategyMacTerminal Strategy = "macterm"
	// StrategyX11 locates the editing session through wmctrl window listings.
	StrategyX11 Strategy = "x11"
	// StrategyNone means no location mechanism is available on this host.
	StrategyNone Strategy = ""
)

// Outcome is the directive returned to the editor after a swap-marker
// collision has been resolved.
type Outcome string

const (
	// SwitchAway: an active session owns the file; focus was handed to it
	// and the opening editor should abandon the open.
	SwitchAway Outcome = "switch"
	// DiscardAndEdit: the marker is stale and was deleted; the editor
	// should proceed with a normal writable open.
	DiscardAndEdit Outcome = "discard"
	// OpenReadOnly: ownership could not be established; the editor should
	// open the file read-only and leave the marker in place.
	OpenReadOnly Outcome = "readonly"
)

// Handle identifies a terminal window or pane that can receive focus.
// The zero value means "no window found". Only the fields relevant to
// the producing strategy are set.
type Handle struct {
	Strategy Strategy `json:"strategy"`

	// tmux
	PaneTTY string `json:"pane_tty,omitempty"`
	Window  int    `json:"window,omitempty"`
	Pane    int    `json:"pane,omitempty"`

	// macterm / x11
	App      string `json:"app,omitempty"`
	WindowID string `json:"window_id,omitempty"`
}

// IsZero reports whether the handle identifies no window.
func (h Handle) IsZero() bool {
	return h == Handle{}
}

// String encodes the handle as a single token suitable for passing back
// on the command line (see ParseHandle).
func (h Handle) String() string {
	switch h.Strategy {
	case StrategyTmux:
		return fmt.Sprintf("tmux:%s:%d.%d", h.PaneTTY, h.Window, h.Pane)
	case StrategyMacTerminal:
		return fmt.Sprintf("macterm:%s:%s", h.App, h.WindowID)
	case StrategyX11:
		return fmt.Sprintf("x11:%s", h.WindowID)
	}
	return ""
}

// ParseHandle decodes a handle token produced by Handle.String.
func ParseHandle(s string) (Handle, error) {
	if s == "" {
		return Handle{}, fmt.Errorf("empty handle")
	}
	idx := strings.IndexByte(s, ':')
	if idx < 0 {
		return Handle{}, fmt.Errorf("invalid handle %q: missing ':'", s)
	}
	kind, rest := s[:idx], s[idx+1:]

	switch Strategy(kind) {
	case StrategyTmux:
		// tmux:<tty>:<window>.<pane> — the tty path contains no colons,
		// so the last ':' separates it from the pane position.
		colonIdx := strings.LastIndex(rest, ":")
		if colonIdx < 0 {
			return Handle{}, fmt.Errorf("invalid tmux handle %q: missing pane position", s)
		}
		tty := rest[:colonIdx]
		pos := rest[colonIdx+1:]
		dotIdx := strings.LastIndex(pos, ".")
		if dotIdx < 0 {
			return Handle{}, fmt.Errorf("invalid tmux handle %q: missing '.'", s)
		}
		window, err := strconv.Atoi(pos[:dotIdx])
		if err != nil {
			return Handle{}, fmt.Errorf("invalid window index in %q: %w", s, err)
		}
		pane, err := strconv.Atoi(pos[dotIdx+1:])
		if err != nil {
			return Handle{}, fmt.Errorf("invalid pane index in %q: %w", s, err)
		}
		return Handle{Strategy: StrategyTmux, PaneTTY: tty, Window: window, Pane: pane}, nil

	case StrategyMacTerminal:
		colonIdx := strings.LastIndex(rest, ":")
		if colonIdx <= 0 {
			return Handle{}, fmt.Errorf("invalid macterm handle %q: want macterm:<app>:<window-id>", s)
		}
		return Handle{
			Strategy: StrategyMacTerminal,
			App:      rest[:colonIdx],
			WindowID: rest[colonIdx+1:],
		}, nil

	case StrategyX11:
		if rest == "" {
			return Handle{}, fmt.Errorf("invalid x11 handle %q: missing window id", s)
		}
		return Handle{Strategy: StrategyX11, WindowID: rest}, nil
	}

	return Handle{}, fmt.Errorf("unknown handle strategy %q", kind)
}

// Resolution is the result of handling a swap-marker collision for one file.
type Resolution struct {
	// File is the path the editor attempted to open.
	File string `json:"file"`
	// Marker is the swap-marker path that triggered the collision.
	Marker string `json:"marker"`
	// Outcome is the directive for the opening editor.
	Outcome Outcome `json:"outcome"`
	// Strategy is the platform mechanism that was consulted.
	Strategy Strategy `json:"strategy"`
	// Handle identifies the window that received focus. Zero unless
	// Outcome is SwitchAway.
	Handle Handle `json:"handle,omitzero"`
	// Message is the user-facing notification text.
	Message string `json:"message,omitempty"`
	// ResolvedAt is the timestamp when the collision was resolved.
	ResolvedAt time.Time `json:"resolved_at"`
	// DurationMs is the wall-clock time in milliseconds for the resolution.
	DurationMs int64 `json:"duration_ms"`
}

package model

import "testing"

func TestHandleStringRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		handle Handle
		want   string
	}{
		{
			name:   "tmux pane",
			handle: Handle{Strategy: StrategyTmux, PaneTTY: "/dev/ttys003", Window: 2, Pane: 1},
			want:   "tmux:/dev/ttys003:2.1",
		},
		{
			name:   "mac terminal window",
			handle: Handle{Strategy: StrategyMacTerminal, App: "Terminal", WindowID: "127"},
			want:   "macterm:Terminal:127",
		},
		{
			name:   "x11 window",
			handle: Handle{Strategy: StrategyX11, WindowID: "0x03c00041"},
			want:   "x11:0x03c00041",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.handle.String()
			if got != tt.want {
				t.Errorf("String(): got %q, want %q", got, tt.want)
			}

			parsed, err := ParseHandle(got)
			if err != nil {
				t.Fatalf("ParseHandle(%q): unexpected error: %v", got, err)
			}
			if parsed != tt.handle {
				t.Errorf("ParseHandle(%q): got %+v, want %+v", got, parsed, tt.handle)
			}
		})
	}
}

func TestParseHandleInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "no separator", input: "tmux"},
		{name: "unknown strategy", input: "screen:0"},
		{name: "tmux missing pane position", input: "tmux:/dev/ttys003"},
		{name: "tmux missing dot", input: "tmux:/dev/ttys003:2"},
		{name: "tmux non-numeric window", input: "tmux:/dev/ttys003:a.1"},
		{name: "tmux non-numeric pane", input: "tmux:/dev/ttys003:2.b"},
		{name: "macterm missing window id", input: "macterm:Terminal"},
		{name: "x11 missing window id", input: "x11:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseHandle(tt.input); err == nil {
				t.Errorf("ParseHandle(%q): expected error, got nil", tt.input)
			}
		})
	}
}

func TestHandleIsZero(t *testing.T) {
	if !(Handle{}).IsZero() {
		t.Error("zero handle: IsZero() = false, want true")
	}
	h := Handle{Strategy: StrategyTmux, PaneTTY: "/dev/ttys001"}
	if h.IsZero() {
		t.Error("populated handle: IsZero() = true, want false")
	}
}

package platform

import (
	"testing"

	"github.com/timvw/swap-sentinel/internal/model"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name        string
		multiplexer bool
		terminalApp string
		goos        string
		env         map[string]string
		want        model.Strategy
	}{
		{
			name:        "tmux enabled and attached",
			multiplexer: true,
			goos:        "linux",
			env:         map[string]string{"TMUX": "/tmp/tmux-501/default,1234,0", "DISPLAY": ":0"},
			want:        model.StrategyTmux,
		},
		{
			name:        "tmux disabled falls through to display",
			multiplexer: false,
			goos:        "linux",
			env:         map[string]string{"TMUX": "/tmp/tmux-501/default,1234,0", "DISPLAY": ":0"},
			want:        model.StrategyX11,
		},
		{
			name:        "tmux enabled but not attached",
			multiplexer: true,
			goos:        "linux",
			env:         map[string]string{"DISPLAY": ":0"},
			want:        model.StrategyX11,
		},
		{
			name:        "darwin apple terminal",
			multiplexer: false,
			goos:        "darwin",
			env:         map[string]string{"TERM_PROGRAM": "Apple_Terminal"},
			want:        model.StrategyMacTerminal,
		},
		{
			name:        "darwin iterm",
			multiplexer: false,
			goos:        "darwin",
			env:         map[string]string{"TERM_PROGRAM": "iTerm.app"},
			want:        model.StrategyMacTerminal,
		},
		{
			name:        "darwin unknown terminal",
			multiplexer: false,
			goos:        "darwin",
			env:         map[string]string{"TERM_PROGRAM": "vscode"},
			want:        model.StrategyNone,
		},
		{
			name:        "darwin configured app overrides unknown terminal",
			multiplexer: false,
			terminalApp: "Ghostty",
			goos:        "darwin",
			env:         map[string]string{"TERM_PROGRAM": "ghostty"},
			want:        model.StrategyMacTerminal,
		},
		{
			name:        "configured app is darwin-only",
			multiplexer: false,
			terminalApp: "Ghostty",
			goos:        "linux",
			env:         map[string]string{},
			want:        model.StrategyNone,
		},
		{
			name:        "tmux wins over darwin terminal",
			multiplexer: true,
			goos:        "darwin",
			env:         map[string]string{"TMUX": "/tmp/tmux-501/default,1234,0", "TERM_PROGRAM": "Apple_Terminal"},
			want:        model.StrategyTmux,
		},
		{
			name:        "linux without display",
			multiplexer: false,
			goos:        "linux",
			env:         map[string]string{},
			want:        model.StrategyNone,
		},
		{
			name:        "unsupported os",
			multiplexer: true,
			goos:        "windows",
			env:         map[string]string{},
			want:        model.StrategyNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			getenv := func(key string) string { return tt.env[key] }
			got := detect(tt.multiplexer, tt.terminalApp, tt.goos, getenv)
			if got != tt.want {
				t.Errorf("detect(): got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTerminalApp(t *testing.T) {
	if got := TerminalApp("Apple_Terminal"); got != "Terminal" {
		t.Errorf("TerminalApp(Apple_Terminal): got %q, want %q", got, "Terminal")
	}
	if got := TerminalApp("iTerm.app"); got != "iTerm2" {
		t.Errorf("TerminalApp(iTerm.app): got %q, want %q", got, "iTerm2")
	}
	if got := TerminalApp("alacritty"); got != "" {
		t.Errorf("TerminalApp(alacritty): got %q, want empty", got)
	}
}

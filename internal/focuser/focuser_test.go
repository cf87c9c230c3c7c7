package focuser

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/timvw/swap-sentinel/internal/model"
)

func TestTmuxFocusArgs(t *testing.T) {
	h := model.Handle{Strategy: model.StrategyTmux, PaneTTY: "/dev/ttys003", Window: 2, Pane: 1}
	got := tmuxFocusArgs(h)
	want := [][]string{
		{"select-window", "-t", ":2"},
		{"select-pane", "-t", ":2.1"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("tmuxFocusArgs(): got %v, want %v", got, want)
	}
}

func TestFocusScript(t *testing.T) {
	tests := []struct {
		name     string
		app      string
		windowID string
		contains []string
	}{
		{
			name:     "terminal raises by index",
			app:      "Terminal",
			windowID: "127",
			contains: []string{`tell application "Terminal"`, "activate", "set index of window id 127 to 1"},
		},
		{
			name:     "iterm uses select",
			app:      "iTerm2",
			windowID: "42",
			contains: []string{`tell application "iTerm2"`, "activate", "select window id 42"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			script := focusScript(tt.app, tt.windowID)
			for _, want := range tt.contains {
				if !strings.Contains(script, want) {
					t.Errorf("focusScript(%s): missing %q in:\n%s", tt.app, want, script)
				}
			}
		})
	}
}

func TestFocusRejectsEmptyHandle(t *testing.T) {
	f := New(0)
	if err := f.Focus(context.Background(), model.Handle{}); err == nil {
		t.Error("Focus(zero handle): expected error, got nil")
	}
}

func TestFocusRejectsUnknownStrategy(t *testing.T) {
	f := New(0)
	h := model.Handle{Strategy: model.Strategy("screen"), WindowID: "1"}
	if err := f.Focus(context.Background(), h); err == nil {
		t.Error("Focus(unknown strategy): expected error, got nil")
	}
}

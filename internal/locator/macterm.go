package locator

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/timvw/swap-sentinel/internal/model"
)

// defaultEditorTitles marks a window title as an editor window when no
// titles are configured. Vim puts "VIM" in the terminal title when
// 'title' is set.
var defaultEditorTitles = []string{"VIM"}

// MacTerminal locates the editing session by querying terminal window
// titles over AppleScript. Works for Terminal.app and iTerm2; other
// terminals have no scriptable window list.
type MacTerminal struct {
	// App is the AppleScript application name ("Terminal", "iTerm2").
	App string
	// Titles are the substrings that mark a title as an editor window.
	Titles []string

	timeout time.Duration
}

// Strategy returns model.StrategyMacTerminal.
func (m *MacTerminal) Strategy() model.Strategy {
	return model.StrategyMacTerminal
}

// Locate finds the terminal window whose title names the edited file.
func (m *MacTerminal) Locate(ctx context.Context, file, marker string) (model.Handle, error) {
	if m.App == "" {
		return model.Handle{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	out, err := runTool(ctx, "osascript", "-e", listWindowsScript(m.App))
	if err != nil {
		return model.Handle{}, fmt.Errorf("osascript list windows: %w", err)
	}

	id := matchWindowTitles(out, filepath.Base(file), m.titles())
	if id == "" {
		return model.Handle{}, nil
	}

	return model.Handle{
		Strategy: model.StrategyMacTerminal,
		App:      m.App,
		WindowID: id,
	}, nil
}

func (m *MacTerminal) titles() []string {
	if len(m.Titles) > 0 {
		return m.Titles
	}
	return defaultEditorTitles
}

// listWindowsScript returns an AppleScript that prints one line per
// window: "<id>\t<title>".
func listWindowsScript(app string) string {
	return fmt.Sprintf(`tell application %q
	set output to ""
	repeat with w in windows
		set output to output & (id of w as text) & tab & (name of w) & linefeed
	end repeat
	return output
end tell`, app)
}

// matchWindowTitles scans id\ttitle lines for a title containing both the
// file's base name and one of the editor title markers. The last match
// wins: when several windows mention the file, the most recently listed
// one is the likelier live session.
func matchWindowTitles(out, base string, titles []string) string {
	var matched string
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, "\t", 2)
		if len(parts) != 2 {
			continue
		}
		id, title := parts[0], parts[1]
		if id == "" || !strings.Contains(title, base) {
			continue
		}
		for _, t := range titles {
			if strings.Contains(title, t) {
				matched = id
				break
			}
		}
	}
	return matched
}

package locator

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/timvw/swap-sentinel/internal/model"
)

// X11 locates the editing session through the window manager's client
// list via wmctrl. Matching is case-insensitive: window managers and
// terminals disagree on title casing more than macOS terminals do.
type X11 struct {
	// Titles are the substrings that mark a title as an editor window.
	Titles []string

	timeout time.Duration
}

// Strategy returns model.StrategyX11.
func (x *X11) Strategy() model.Strategy {
	return model.StrategyX11
}

// Locate finds the X11 window whose title names the edited file.
func (x *X11) Locate(ctx context.Context, file, marker string) (model.Handle, error) {
	ctx, cancel := context.WithTimeout(ctx, x.timeout)
	defer cancel()

	out, err := runTool(ctx, "wmctrl", "-l")
	if err != nil {
		return model.Handle{}, fmt.Errorf("wmctrl -l: %w", err)
	}

	id := matchClientList(out, filepath.Base(file), x.titles())
	if id == "" {
		return model.Handle{}, nil
	}

	return model.Handle{Strategy: model.StrategyX11, WindowID: id}, nil
}

func (x *X11) titles() []string {
	if len(x.Titles) > 0 {
		return x.Titles
	}
	return defaultEditorTitles
}

// matchClientList scans wmctrl -l output for a window title containing
// both the file's base name and one of the editor title markers,
// case-insensitively. Lines look like:
//
//	0x03c00041  0 myhost .bashrc + (~) - VIM
//
// The last match wins.
func matchClientList(out, base string, titles []string) string {
	base = strings.ToLower(base)

	var matched string
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		fields := strings.Fields(line)
		if len(fields) < 4 {
			continue
		}
		id := fields[0]
		title := strings.ToLower(strings.Join(fields[3:], " "))
		if !strings.Contains(title, base) {
			continue
		}
		for _, t := range titles {
			if strings.Contains(title, strings.ToLower(t)) {
				matched = id
				break
			}
		}
	}
	return matched
}

package locator

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/timvw/swap-sentinel/internal/model"
	"github.com/timvw/swap-sentinel/internal/proc"
)

// Tmux locates the editing session inside a tmux server.
//
// Pipeline: the swap marker is held open by the editing process, so
// lsof on the marker yields the editor PID, ps yields its controlling
// terminal, and the tmux pane registry maps that terminal back to a
// window and pane.
type Tmux struct {
	timeout time.Duration
}

// Strategy returns model.StrategyTmux.
func (t *Tmux) Strategy() model.Strategy {
	return model.StrategyTmux
}

// Locate finds the tmux pane whose terminal belongs to the process
// holding marker open.
func (t *Tmux) Locate(ctx context.Context, file, marker string) (model.Handle, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	pid, err := proc.OpenerOf(ctx, marker)
	if err != nil {
		// Nothing holds the marker open: the editing process is gone.
		return model.Handle{}, nil
	}

	tty, err := proc.TTYOf(ctx, pid)
	if err != nil {
		// Headless or daemonized editor: no terminal to switch to.
		return model.Handle{}, nil
	}

	panes, err := t.listPanes(ctx)
	if err != nil {
		return model.Handle{}, err
	}

	for _, p := range panes {
		if p.tty == tty {
			return model.Handle{
				Strategy: model.StrategyTmux,
				PaneTTY:  p.tty,
				Window:   p.window,
				Pane:     p.pane,
			}, nil
		}
	}

	// The editor runs on a terminal outside this tmux server.
	return model.Handle{}, nil
}

// paneEntry is one row of the tmux pane registry.
type paneEntry struct {
	tty    string
	window int
	pane   int
}

// listPanes returns every pane of the tmux server with its terminal device.
func (t *Tmux) listPanes(ctx context.Context) ([]paneEntry, error) {
	format := "#{pane_tty}\t#{window_index}\t#{pane_index}"
	out, err := runTool(ctx, "tmux", "list-panes", "-a", "-F", format)
	if err != nil {
		return nil, fmt.Errorf("tmux list-panes: %w", err)
	}
	return parsePanes(out), nil
}

// parsePanes parses tmux list-panes output in the tty\twindow\tpane format.
// Malformed lines are skipped.
func parsePanes(out string) []paneEntry {
	var panes []paneEntry
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, "\t", 3)
		if len(parts) != 3 {
			continue
		}

		window, err := strconv.Atoi(parts[1])
		if err != nil {
			continue
		}
		pane, err := strconv.Atoi(parts[2])
		if err != nil {
			continue
		}

		panes = append(panes, paneEntry{tty: parts[0], window: window, pane: pane})
	}
	return panes
}

// Package history keeps a journal of past collision resolutions.
//
// Each resolution is appended as one JSON line. The journal is
// best-effort: a failed append never affects the resolution itself.
package history

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/timvw/swap-sentinel/internal/model"
)

// DefaultPath returns the journal location, following XDG conventions.
func DefaultPath() string {
	if stateDir := os.Getenv("XDG_STATE_HOME"); stateDir != "" {
		return filepath.Join(stateDir, "swap-sentinel", "history.jsonl")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "state", "swap-sentinel", "history.jsonl")
	}
	return filepath.Join(os.TempDir(), fmt.Sprintf("swap-sentinel-%d", os.Getuid()), "history.jsonl")
}

// Journal appends and reads resolution records.
type Journal struct {
	Path string
}

// Append writes one resolution to the journal, creating the parent
// directory on first use.
func (j *Journal) Append(r model.Resolution) error {
	if err := os.MkdirAll(filepath.Dir(j.Path), 0700); err != nil {
		return fmt.Errorf("creating journal dir: %w", err)
	}

	f, err := os.OpenFile(j.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("opening journal: %w", err)
	}
	defer f.Close()

	line, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encoding resolution: %w", err)
	}
	line = append(line, '\n')
	if _, err := f.Write(line); err != nil {
		return fmt.Errorf("writing journal: %w", err)
	}
	return nil
}

// Recent returns the last n resolutions, oldest first. A missing
// journal yields an empty slice. Malformed lines are skipped: a torn
// write from a crashed append must not poison the whole journal.
func (j *Journal) Recent(n int) ([]model.Resolution, error) {
	f, err := os.Open(j.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening journal: %w", err)
	}
	defer f.Close()

	var all []model.Resolution
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		var r model.Resolution
		if err := json.Unmarshal(scanner.Bytes(), &r); err != nil {
			continue
		}
		all = append(all, r)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading journal: %w", err)
	}

	if n > 0 && len(all) > n {
		all = all[len(all)-n:]
	}
	return all, nil
}

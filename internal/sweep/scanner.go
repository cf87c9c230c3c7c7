// Package sweep audits a directory tree for leftover swap markers and
// drives the interactive cleanup TUI.
package sweep

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/timvw/swap-sentinel/internal/locator"
	"github.com/timvw/swap-sentinel/internal/marker"
	"github.com/timvw/swap-sentinel/internal/model"
)

// Entry is one swap marker found during a sweep.
type Entry struct {
	// Marker is the marker path.
	Marker string `json:"marker"`
	// File is the edited file the marker belongs to.
	File string `json:"file"`
	// Active indicates a live editing session holds the marker.
	Active bool `json:"active"`
	// Handle identifies the session's window when Active.
	Handle model.Handle `json:"handle,omitzero"`
	// Stale indicates the file was saved after the marker was created.
	// Only meaningful when not Active.
	Stale bool `json:"stale"`
	// MarkerModTime and FileModTime are the compared timestamps.
	MarkerModTime time.Time `json:"marker_mod_time"`
	FileModTime   time.Time `json:"file_mod_time,omitzero"`
}

// ScanResult holds the markers found in one sweep.
type ScanResult struct {
	Root    string  `json:"root"`
	Entries []Entry `json:"entries"`
}

// Scanner walks a directory tree and classifies every swap marker it finds.
type Scanner struct {
	// Root is the directory to sweep.
	Root string
	// Extensions are the marker extensions to look for.
	Extensions []string
	// Locator checks each marker for a live editing session.
	Locator locator.Locator
}

// Scan walks the tree under Root. Unreadable subtrees are skipped, not
// fatal: a sweep over a home directory routinely crosses permission
// boundaries.
func (s *Scanner) Scan(ctx context.Context) (*ScanResult, error) {
	result := &ScanResult{Root: s.Root}

	err := filepath.WalkDir(s.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// An unreadable root means there is nothing to sweep at all.
			if path == s.Root {
				return err
			}
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		if !marker.IsMarker(d.Name(), s.Extensions) {
			return nil
		}

		file, ok := marker.FileFor(path, s.Extensions)
		if !ok {
			return nil
		}
		result.Entries = append(result.Entries, s.classify(ctx, path, file))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// classify checks a single marker for a live session and staleness.
func (s *Scanner) classify(ctx context.Context, markerPath, file string) Entry {
	e := Entry{Marker: markerPath, File: file}

	if info, err := os.Stat(markerPath); err == nil {
		e.MarkerModTime = info.ModTime()
	}
	if info, err := os.Stat(file); err == nil {
		e.FileModTime = info.ModTime()
	}

	if s.Locator != nil {
		if handle, err := s.Locator.Locate(ctx, file, markerPath); err == nil && !handle.IsZero() {
			e.Active = true
			e.Handle = handle
			return e
		}
	}

	e.Stale = !e.MarkerModTime.IsZero() && !e.FileModTime.IsZero() &&
		e.MarkerModTime.Before(e.FileModTime)
	return e
}

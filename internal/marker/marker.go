// Package marker maps between edited files and their swap-marker paths.
//
// Markers follow the Vim convention: editing "dir/name.ext" creates
// "dir/.name.ext.swp", with ".swo", ".swn" and so on as fallbacks when
// the first name is taken.
package marker

import (
	"path/filepath"
	"strings"
)

// For returns the primary marker path for an edited file.
func For(file string) string {
	dir := filepath.Dir(file)
	return filepath.Join(dir, "."+filepath.Base(file)+".swp")
}

// IsMarker reports whether a file name looks like a swap marker with
// one of the given extensions.
func IsMarker(name string, extensions []string) bool {
	if !strings.HasPrefix(name, ".") {
		return false
	}
	ext := filepath.Ext(name)
	if ext == "" || ext == name {
		return false
	}
	for _, e := range extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// FileFor reconstructs the edited file path from a marker path.
// Returns false when the path does not look like a marker.
func FileFor(markerPath string, extensions []string) (string, bool) {
	name := filepath.Base(markerPath)
	if !IsMarker(name, extensions) {
		return "", false
	}
	base := strings.TrimSuffix(name, filepath.Ext(name))
	base = strings.TrimPrefix(base, ".")
	if base == "" {
		return "", false
	}
	return filepath.Join(filepath.Dir(markerPath), base), true
}

package fsutil

import "time"

// Probe is the filesystem capability the core consumes, injected by the
// hosting process. It is deliberately tiny: exists/stat/read/readdir.
type Probe interface {
	// Exists reports whether path names a file or directory.
	Exists(path string) bool
	// ModTime returns path's last-modified time, or ok=false if path
	// does not exist or cannot be stat'd.
	ModTime(path string) (time.Time, bool)
	// ReadFile returns the full contents of path.
	ReadFile(path string) ([]byte, error)
	// ReadDir lists the entries directly inside path (not recursive),
	// names only, in no particular order.
	ReadDir(path string) ([]string, error)
	// Join joins path elements using the probe's native separator.
	Join(elem ...string) string
	// Dir returns the parent directory of path.
	Dir(path string) string
}

// OSProbe implements Probe against the real filesystem using os and
// filepath. It is the default used by cmd/skinlint and cmd/skinwatch;
// library code never constructs one directly.
type OSProbe struct{}

package docmanager

import "time"

// DocumentProvider is the injected editor-buffer capability: it answers
// "what text does this URI currently have open in the editor", distinct
// from whatever is on disk. A URI with no open buffer returns ok=false,
// in which case the Manager falls back to reading the file via its
// fsutil.Probe.
type DocumentProvider interface {
	Get(uri string) (text string, ok bool)
}

// Clock is the injected time source, swapped for a fake in tests that
// exercise the 500ms debounce without sleeping in real time.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the real wall clock.
type RealClock struct{}

// Now implements Clock.
func (RealClock) Now() time.Time { return time.Now() }

// NoProvider is a DocumentProvider with no open editor buffers, used by
// hosts (the CLI runner) that only ever read from disk.
type NoProvider struct{}

// Get implements DocumentProvider, always reporting no open buffer.
func (NoProvider) Get(string) (string, bool) { return "", false }

// FSProbe is the subset of fsutil.Probe the document manager needs to
// fall back to on-disk content and modification times for URIs that
// have no open editor buffer.
type FSProbe interface {
	Exists(path string) bool
	ModTime(path string) (time.Time, bool)
	ReadFile(path string) ([]byte, error)
}

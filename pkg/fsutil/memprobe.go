package fsutil

import (
	"errors"
	"path"
	"strings"
	"time"
)

// MemProbe is an in-memory Probe implementation, used by tests across the
// module (scope, skinindex, checker, analyzer) that need a fake skin
// repository without touching the real filesystem.
type MemProbe struct {
	files map[string][]byte
	mods  map[string]time.Time
}

// NewMemProbe creates an empty MemProbe.
func NewMemProbe() *MemProbe {
	return &MemProbe{files: map[string][]byte{}, mods: map[string]time.Time{}}
}

// SetFile registers a file's contents and modification time. Paths use "/"
// as the separator regardless of host OS.
func (p *MemProbe) SetFile(pathname, content string, mod time.Time) {
	p.files[pathname] = []byte(content)
	p.mods[pathname] = mod
}

// Touch updates mod without changing content, simulating an edit that
// doesn't change bytes (used to test the 500ms refresh debounce).
func (p *MemProbe) Touch(pathname string, mod time.Time) {
	p.mods[pathname] = mod
}

var errMemNotFound = errors.New("mem probe: file not found")

// Exists implements Probe.
func (p *MemProbe) Exists(pathname string) bool {
	if _, ok := p.files[pathname]; ok {
		return true
	}
	prefix := pathname
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	for k := range p.files {
		if strings.HasPrefix(k, prefix) {
			return true
		}
	}
	return false
}

// ModTime implements Probe.
func (p *MemProbe) ModTime(pathname string) (time.Time, bool) {
	t, ok := p.mods[pathname]
	return t, ok
}

// ReadFile implements Probe.
func (p *MemProbe) ReadFile(pathname string) ([]byte, error) {
	data, ok := p.files[pathname]
	if !ok {
		return nil, errMemNotFound
	}
	return data, nil
}

// ReadDir implements Probe. It fails (returns an error) when pathname
// names a file rather than a directory, mirroring os.ReadDir, so callers
// using ReadDir to distinguish files from directories behave the same as
// against a real filesystem.
func (p *MemProbe) ReadDir(pathname string) ([]string, error) {
	if _, ok := p.files[pathname]; ok {
		return nil, errMemNotFound
	}
	prefix := pathname
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	seen := map[string]bool{}
	var names []string
	for k := range p.files {
		if !strings.HasPrefix(k, prefix) {
			continue
		}
		rest := strings.TrimPrefix(k, prefix)
		if rest == "" {
			continue
		}
		name := strings.SplitN(rest, "/", 2)[0]
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return nil, errMemNotFound
	}
	return names, nil
}

// Join implements Probe using forward slashes regardless of host OS.
func (p *MemProbe) Join(elem ...string) string {
	return path.Join(elem...)
}

// Dir implements Probe.
func (p *MemProbe) Dir(pathname string) string {
	return path.Dir(pathname)
}

var _ Probe = (*MemProbe)(nil)

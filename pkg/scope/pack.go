package scope

import "github.com/dimelords/skinlang/pkg/fsutil"

// PackMarker is the filename whose presence identifies a directory as a
// skin pack's root — distinct from fsutil.RepoMarker (repo.json), which
// identifies the repository root one or more levels further up.
const PackMarker = "skin.xml"

// PackInfo is one registered skin pack: its name, root directory, and
// the names of every pack it <Import>s, in declaration order (later
// imports shadow earlier ones in LookupDefinition's override search).
type PackInfo struct {
	Name    string
	RootDir string
	Imports []string
}

// FindPackRoot walks up from startDir looking for PackMarker, returning
// the directory that contains it.
func FindPackRoot(probe fsutil.Probe, startDir string) (string, bool) {
	dir := startDir
	for {
		if probe.Exists(probe.Join(dir, PackMarker)) {
			return dir, true
		}
		parent := probe.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

package fsutil

// RepoConfig mirrors the decoded repo.json (spec.md §6): lists of
// candidate directories (relative to the repo root) for skins, class
// models, and translations. Missing entries default to "skins/",
// "classmodels/", "translations/".
type RepoConfig struct {
	Skins       []string
	ClassModels []string
	Translations []string
}

// DefaultRepoConfig returns the default location lists used when repo.json
// omits a key.
func DefaultRepoConfig() RepoConfig {
	return RepoConfig{
		Skins:        []string{"skins"},
		ClassModels:  []string{"classmodels"},
		Translations: []string{"translations"},
	}
}

// Normalize fills in any empty list with its default.
func (c RepoConfig) Normalize() RepoConfig {
	def := DefaultRepoConfig()
	if len(c.Skins) == 0 {
		c.Skins = def.Skins
	}
	if len(c.ClassModels) == 0 {
		c.ClassModels = def.ClassModels
	}
	if len(c.Translations) == 0 {
		c.Translations = def.Translations
	}
	return c
}

// Locator resolves repo-relative concerns (class model files, skins-pack
// locations) against a Probe and a RepoConfig.
type Locator struct {
	probe  Probe
	config RepoConfig
}

// NewLocator creates a Locator backed by probe, normalizing config.
func NewLocator(probe Probe, config RepoConfig) *Locator {
	return &Locator{probe: probe, config: config.Normalize()}
}

// RepoMarker is the filename whose presence in a directory identifies it
// as a skin repository root.
const RepoMarker = "repo.json"

// FindRepoRoot walks up from startDir looking for RepoMarker, returning
// the directory that contains it. Returns ok=false if no ancestor
// directory carries the marker (the walk stops when probe.Dir stops
// changing the path, i.e. at the filesystem root).
func (l *Locator) FindRepoRoot(startDir string) (string, bool) {
	dir := startDir
	for {
		if l.probe.Exists(l.probe.Join(dir, RepoMarker)) {
			return dir, true
		}
		parent := l.probe.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// ClassModelPath resolves the absolute path to filename (e.g.
// "Skin Elements.classModel") by checking each configured class-models
// directory under repoRoot in order; the first one that exists wins.
func (l *Locator) ClassModelPath(repoRoot, filename string) (string, bool) {
	for _, dir := range l.config.ClassModels {
		candidate := l.probe.Join(repoRoot, dir, filename)
		if l.probe.Exists(candidate) {
			return candidate, true
		}
	}
	return "", false
}

// SkinsLocations returns the absolute directories to search for
// importable skin packs (spec.md §4.2 "Imports": "the first existing
// <location>/<pack>/skin.xml wins").
func (l *Locator) SkinsLocations(repoRoot string) []string {
	locs := make([]string, 0, len(l.config.Skins))
	for _, dir := range l.config.Skins {
		locs = append(locs, l.probe.Join(repoRoot, dir))
	}
	return locs
}

// ResolveImportedPack finds the skin.xml of an imported pack by name,
// checking each skins location in order.
func (l *Locator) ResolveImportedPack(repoRoot, packName string) (string, bool) {
	for _, loc := range l.SkinsLocations(repoRoot) {
		candidate := l.probe.Join(loc, packName, "skin.xml")
		if l.probe.Exists(candidate) {
			return candidate, true
		}
	}
	return "", false
}

// AvailablePacks lists every pack name discoverable under the configured
// skins locations, used by Import.url completion ("@pack" suggestions).
func (l *Locator) AvailablePacks(repoRoot string) []string {
	seen := make(map[string]bool)
	var packs []string
	for _, loc := range l.SkinsLocations(repoRoot) {
		entries, err := l.probe.ReadDir(loc)
		if err != nil {
			continue
		}
		for _, name := range entries {
			if l.probe.Exists(l.probe.Join(loc, name, "skin.xml")) && !seen[name] {
				seen[name] = true
				packs = append(packs, name)
			}
		}
	}
	return packs
}

// WalkFiles lists every regular file beneath root matching suffix
// (typically ".xml"), recursively, used by the CLI runner to enumerate a
// skins directory and by find-references to scan the whole repository.
func (l *Locator) WalkFiles(root, suffix string) []string {
	var out []string
	l.walk(root, suffix, &out)
	return out
}

func (l *Locator) walk(dir, suffix string, out *[]string) {
	entries, err := l.probe.ReadDir(dir)
	if err != nil {
		return
	}
	for _, name := range entries {
		full := l.probe.Join(dir, name)
		if _, err := l.probe.ReadDir(full); err == nil {
			l.walk(full, suffix, out)
			continue
		}
		if hasSuffix(name, suffix) {
			*out = append(*out, full)
		}
	}
}

func hasSuffix(s, suffix string) bool {
	if len(s) < len(suffix) {
		return false
	}
	return s[len(s)-len(suffix):] == suffix
}

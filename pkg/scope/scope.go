package scope

import (
	"github.com/bmatcuk/doublestar/v4"

	"github.com/dimelords/skinlang/pkg/skinindex"
	"github.com/dimelords/skinlang/pkg/skinxml"
)

// FileEntry is one indexed file belonging to a registered pack.
type FileEntry struct {
	URI  string
	Pack string
	Info *skinindex.SkinFileInfo
	Root *skinxml.Node
}

// Scope aggregates every registered pack's files into the graph
// lookup_definition/is_defined/find_definitions search. It is built
// incrementally by the caller (pkg/analyzer) as files are indexed; it
// does no filesystem I/O or parsing of its own.
type Scope struct {
	packs map[string]*PackInfo
	files map[string][]*FileEntry // pack name -> its files
}

// New creates an empty Scope.
func New() *Scope {
	return &Scope{packs: map[string]*PackInfo{}, files: map[string][]*FileEntry{}}
}

// RegisterPack adds or replaces a pack's metadata.
func (s *Scope) RegisterPack(info *PackInfo) {
	s.packs[info.Name] = info
}

// AddFile records one indexed file as belonging to pack.
func (s *Scope) AddFile(entry *FileEntry) {
	s.files[entry.Pack] = append(s.files[entry.Pack], entry)
}

// FileInfo returns the indexed SkinFileInfo for uri within pack, or
// ok=false if uri has not been added to pack.
func (s *Scope) FileInfo(pack, uri string) (*skinindex.SkinFileInfo, bool) {
	for _, f := range s.files[pack] {
		if f.URI == uri {
			return f.Info, true
		}
	}
	return nil, false
}

// RemoveFile drops a previously added file (e.g. on document close),
// matched by URI.
func (s *Scope) RemoveFile(pack, uri string) {
	list := s.files[pack]
	for i, f := range list {
		if f.URI == uri {
			s.files[pack] = append(list[:i], list[i+1:]...)
			return
		}
	}
}

// importChain returns pack and every pack it transitively imports, in
// search order (pack itself first, then its direct imports in
// declaration order, breadth-first), never visiting a pack twice even
// if the import graph has a cycle.
func (s *Scope) importChain(pack string) []string {
	var order []string
	visited := map[string]bool{}
	queue := []string{pack}
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		if visited[name] {
			continue
		}
		visited[name] = true
		order = append(order, name)
		if info, ok := s.packs[name]; ok {
			queue = append(queue, info.Imports...)
		}
	}
	return order
}

// IsDefined reports whether name is defined in category, reachable from
// pack (itself or a transitively imported pack), including via an
// <External> glob pattern.
func (s *Scope) IsDefined(pack string, cat skinindex.Category, name string) bool {
	return s.IsDefinedStrict(pack, cat, name) || s.matchesExternalPattern(pack, name)
}

// IsDefinedStrict reports whether name has an explicit (non-glob)
// definition reachable from pack.
func (s *Scope) IsDefinedStrict(pack string, cat skinindex.Category, name string) bool {
	for _, p := range s.importChain(pack) {
		for _, f := range s.files[p] {
			if len(f.Info.Lookup(cat, name)) > 0 {
				return true
			}
		}
	}
	return false
}

// Candidate is one resolved definition, with the pack it was found in.
type Candidate struct {
	Pack       string
	Definition *skinindex.Definition
	URI        string
}

// LookupDefinition resolves name in category from pack's perspective:
// an override="true" definition anywhere in the reachable chain (own or
// imported pack) wins over a plain one, own-pack plain definitions take
// priority over imported ones, and failing any explicit match it falls back to a
// matching <External> glob pattern (returned with a nil Definition,
// URI set to the pattern's source file, Pack set to the pattern owner).
func (s *Scope) LookupDefinition(pack string, cat skinindex.Category, name string) (Candidate, bool) {
	var ownPlain *Candidate
	var importPlain *Candidate
	var override *Candidate

	for _, p := range s.importChain(pack) {
		for _, f := range s.files[p] {
			for _, def := range f.Info.Lookup(cat, name) {
				c := Candidate{Pack: p, Definition: def, URI: f.URI}
				switch {
				case def.Override:
					// Later declarations in chain order shadow earlier
					// overrides, matching "last override wins".
					override = &c
				case p == pack && ownPlain == nil:
					ownPlain = &c
				case p != pack && importPlain == nil:
					importPlain = &c
				}
			}
		}
	}

	switch {
	case override != nil:
		return *override, true
	case ownPlain != nil:
		return *ownPlain, true
	case importPlain != nil:
		return *importPlain, true
	}
	if ext, ok := s.externalPatternOwner(pack, name); ok {
		return Candidate{Pack: ext.Pack, URI: ext.URI}, true
	}
	return Candidate{}, false
}

// AllDefinitions returns every definition in category reachable from
// pack, regardless of name, deduplicated by source node. Used by
// completion to enumerate candidates (e.g. every Style name) rather
// than resolve one specific name.
func (s *Scope) AllDefinitions(pack string, cat skinindex.Category) []Candidate {
	var out []Candidate
	seen := map[*skinxml.Node]bool{}
	for _, p := range s.importChain(pack) {
		for _, f := range s.files[p] {
			for _, byName := range f.Info.Definitions[cat] {
				for _, def := range byName {
					if seen[def.Node] {
						continue
					}
					seen[def.Node] = true
					out = append(out, Candidate{Pack: p, Definition: def, URI: f.URI})
				}
			}
		}
	}
	return out
}

// FindDefinitions returns every definition of name in category reachable
// from pack, deduplicated by source node. Names are reported as indexed:
// no namespace prefix is added or stripped, for own-pack and cross-pack
// results alike.
func (s *Scope) FindDefinitions(pack string, cat skinindex.Category, name string) []Candidate {
	var out []Candidate
	seen := map[*skinxml.Node]bool{}
	for _, p := range s.importChain(pack) {
		for _, f := range s.files[p] {
			for _, def := range f.Info.Lookup(cat, name) {
				if seen[def.Node] {
					continue
				}
				seen[def.Node] = true
				out = append(out, Candidate{Pack: p, Definition: def, URI: f.URI})
			}
		}
	}
	return out
}

type externalPattern struct {
	Pack    string
	URI     string
	Pattern string
}

// matchesExternalPattern reports whether name matches any <External
// name="pat*"/> pattern reachable from pack.
func (s *Scope) matchesExternalPattern(pack, name string) bool {
	_, ok := s.externalPatternOwner(pack, name)
	return ok
}

func (s *Scope) externalPatternOwner(pack, name string) (externalPattern, bool) {
	for _, pattern := range s.externalPatterns(pack) {
		if ok, _ := doublestar.Match(pattern.Pattern, name); ok {
			return pattern, true
		}
	}
	return externalPattern{}, false
}

// externalPatterns scans every file reachable from pack for <External
// name="pattern"/> declarations.
func (s *Scope) externalPatterns(pack string) []externalPattern {
	var out []externalPattern
	for _, p := range s.importChain(pack) {
		for _, f := range s.files[p] {
			if f.Root == nil {
				continue
			}
			for _, ext := range f.Root.Descendants("External") {
				if pat := ext.AttrValue("name"); pat != "" {
					out = append(out, externalPattern{Pack: p, URI: f.URI, Pattern: pat})
				}
			}
		}
	}
	return out
}

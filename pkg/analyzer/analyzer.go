package analyzer

import (
	"strconv"
	"strings"

	"github.com/dimelords/skinlang/pkg/checker"
	"github.com/dimelords/skinlang/pkg/classmodel"
	"github.com/dimelords/skinlang/pkg/docmanager"
	"github.com/dimelords/skinlang/pkg/exprlang"
	"github.com/dimelords/skinlang/pkg/fsutil"
	"github.com/dimelords/skinlang/pkg/intellisense"
	"github.com/dimelords/skinlang/pkg/log"
	"github.com/dimelords/skinlang/pkg/scope"
	"github.com/dimelords/skinlang/pkg/skinerr"
	"github.com/dimelords/skinlang/pkg/skinindex"
	"github.com/dimelords/skinlang/pkg/variables"
	"go.uber.org/zap"
)

// Analyzer is the process-wide object a host (language server or CLI
// runner) drives: one class model, one cross-file scope graph, one
// document cache, shared for the process's lifetime (spec.md §5
// "Shared state").
type Analyzer struct {
	Classes  *classmodel.Manager
	Scope    *scope.Scope
	Locator  *fsutil.Locator
	FS       fsutil.Probe
	RepoRoot string

	Documents *docmanager.Manager
	Epoch     checker.EpochCounter

	packRootByURI   map[string]string
	registeredPacks map[string]bool
	colorsByURI     map[string][]ColorRange
}

// New creates an Analyzer rooted at repoRoot, with provider supplying
// editor-buffer text and clock the debounce time source.
func New(fs fsutil.Probe, locator *fsutil.Locator, repoRoot string, provider docmanager.DocumentProvider, clock docmanager.Clock) *Analyzer {
	return &Analyzer{
		Classes:         classmodel.NewManager(fs),
		Scope:           scope.New(),
		Locator:         locator,
		FS:              fs,
		RepoRoot:        repoRoot,
		Documents:       docmanager.NewManager(provider, fs, clock),
		packRootByURI:   map[string]string{},
		registeredPacks: map[string]bool{},
		colorsByURI:     map[string][]ColorRange{},
	}
}

// LoadClassModels loads "Skin Elements.classModel" and, best-effort,
// "Visual Styles.classModel" from the repository's configured
// classmodels directories. A missing Skin Elements model is the single
// global error spec.md §7 calls out; a missing Visual Styles model only
// narrows completion/hover (default colors, theme metrics, languages)
// and never blocks checking.
func (a *Analyzer) LoadClassModels() error {
	elementsPath, ok := a.Locator.ClassModelPath(a.RepoRoot, "Skin Elements.classModel")
	if !ok {
		return skinerr.Errorf("analyzer", "load-class-models", a.RepoRoot, "Skin Elements.classModel not found")
	}
	if err := a.Classes.LoadClassModel(elementsPath); err != nil {
		return err
	}
	if stylesPath, ok := a.Locator.ClassModelPath(a.RepoRoot, "Visual Styles.classModel"); ok {
		if err := a.Classes.LoadStyleModel(stylesPath); err != nil {
			log.L().Warn("visual styles model failed to load", zap.Error(err))
		}
	}
	return nil
}

// IndexRepository walks every configured skins location and indexes
// every pack found beneath it, so completion/references/checking work
// across the whole repository rather than only the currently open
// file's own pack.
func (a *Analyzer) IndexRepository() {
	for _, loc := range a.Locator.SkinsLocations(a.RepoRoot) {
		entries, err := a.FS.ReadDir(loc)
		if err != nil {
			continue
		}
		for _, name := range entries {
			packDir := a.FS.Join(loc, name)
			if !a.FS.Exists(a.FS.Join(packDir, scope.PackMarker)) {
				continue
			}
			a.indexPackDir(packDir)
		}
	}
}

func (a *Analyzer) indexPackDir(packDir string) {
	for _, file := range a.Locator.WalkFiles(packDir, ".xml") {
		a.IndexFile(file)
	}
}

// IndexFile parses uri (on demand, via the document cache) and adds it
// to the scope graph under its owning pack, registering the pack (and
// recursively indexing anything it imports) the first time that pack is
// seen.
func (a *Analyzer) IndexFile(uri string) bool {
	doc, ok := a.Documents.Get(uri)
	if !ok {
		return false
	}
	rootDir, ok := scope.FindPackRoot(a.FS, a.FS.Dir(uri))
	if !ok {
		return false
	}
	packName := baseName(rootDir)
	a.packRootByURI[uri] = rootDir
	a.ensurePackRegistered(packName, rootDir)

	info := skinindex.IndexFile(uri, doc.Root)
	a.Scope.RemoveFile(packName, uri)
	a.Scope.AddFile(&scope.FileEntry{URI: uri, Pack: packName, Info: info, Root: doc.Root})
	return true
}

// RefreshFile re-parses uri if its content has changed (subject to the
// document manager's 500 ms debounce) and, when it did, re-indexes it.
func (a *Analyzer) RefreshFile(uri string) bool {
	_, changed, ok := a.Documents.Refresh(uri)
	if !ok {
		return false
	}
	if changed {
		a.IndexFile(uri)
	}
	return true
}

func (a *Analyzer) ensurePackRegistered(packName, rootDir string) {
	if a.registeredPacks[rootDir] {
		return
	}
	a.registeredPacks[rootDir] = true

	rootURI := a.FS.Join(rootDir, scope.PackMarker)
	var imports []string
	if doc, ok := a.Documents.Get(rootURI); ok {
		imports = scope.ParseImports(doc.Root)
	}
	a.Scope.RegisterPack(&scope.PackInfo{Name: packName, RootDir: rootDir, Imports: imports})

	for _, imported := range imports {
		if importedSkinXML, ok := a.Locator.ResolveImportedPack(a.RepoRoot, imported); ok {
			a.indexPackDir(a.FS.Dir(importedSkinXML))
		}
	}
}

// isPackRoot reports whether uri is its pack's skin.xml root file, the
// only file for which the checker reports accumulated unresolved
// external-pattern requests (spec.md §4.5).
func (a *Analyzer) isPackRoot(uri string) bool {
	rootDir, ok := a.packRootByURI[uri]
	if !ok {
		return false
	}
	return a.FS.Join(rootDir, scope.PackMarker) == uri
}

// packFor returns the pack name uri was indexed under, or "" if it has
// not been indexed.
func (a *Analyzer) packFor(uri string) string {
	rootDir, ok := a.packRootByURI[uri]
	if !ok {
		return ""
	}
	return baseName(rootDir)
}

// baseName returns the final path component of p, tolerating both
// forward and backward slashes since fsutil.Probe implementations may
// use either.
func baseName(p string) string {
	p = strings.TrimRight(p, "/\\")
	if i := strings.LastIndexAny(p, "/\\"); i >= 0 {
		return p[i+1:]
	}
	return p
}

// Resolver builds a variables.Resolver scoped to uri's pack.
func (a *Analyzer) Resolver(uri string) *variables.Resolver {
	return variables.NewResolver(variableProvider{scope: a.Scope, classes: a.Classes, pack: a.packFor(uri)})
}

// variableProvider adapts the pack-scoped scope graph and the
// process-wide class model into variables.Provider.
type variableProvider struct {
	scope   *scope.Scope
	classes *classmodel.Manager
	pack    string
}

func (v variableProvider) LookupDefines(name string) []variables.DefineSite {
	return v.scope.LookupDefines(v.pack, name)
}

func (v variableProvider) ThemeMetric(name string) (float64, bool) {
	return v.classes.ThemeMetric(name)
}

// exprEnv adapts a variables.Resolver into exprlang.Env, so the
// checker's evaluation of @eval:/@select: values inside <define> can
// reference variables.
type exprEnv struct {
	resolver *variables.Resolver
}

func (e exprEnv) Lookup(name string) (exprlang.Value, bool) {
	tokens := e.resolver.ResolveVariable("$" + strings.TrimPrefix(name, "$"))
	for _, t := range tokens {
		if !t.IsConcrete {
			continue
		}
		if n, ok := parseNumber(t.Value); ok {
			return exprlang.Number(n), true
		}
		return exprlang.String(t.Value), true
	}
	return exprlang.Value{}, false
}

func parseNumber(s string) (float64, bool) {
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

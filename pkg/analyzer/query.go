package analyzer

import (
	"github.com/dimelords/skinlang/pkg/docmanager"
	"github.com/dimelords/skinlang/pkg/intellisense"
	"github.com/dimelords/skinlang/pkg/position"
)

// provider builds the intellisense.Provider for uri's pack. Query
// methods never mutate Analyzer state (spec.md §5 "Completion/hover
// queries never mutate state").
func (a *Analyzer) provider(uri string) *intellisense.Provider {
	return &intellisense.Provider{
		Classes:   a.Classes,
		Scope:     a.Scope,
		Pack:      a.packFor(uri),
		Resolver:  a.Resolver(uri),
		FS:        a.FS,
		Locator:   a.Locator,
		RepoRoot:  a.RepoRoot,
		Documents: a.Documents,
	}
}

// FindCompletions returns completion candidates for the cursor at
// offset in uri.
func (a *Analyzer) FindCompletions(uri string, offset int) []intellisense.Item {
	doc, ok := a.Documents.Get(uri)
	if !ok {
		return nil
	}
	return a.provider(uri).FindCompletions(doc, offset)
}

// FindHover returns hover content for the cursor at offset in uri.
func (a *Analyzer) FindHover(uri string, offset int) (intellisense.Hover, bool) {
	doc, ok := a.Documents.Get(uri)
	if !ok {
		return intellisense.Hover{}, false
	}
	return a.provider(uri).FindHover(doc, offset)
}

// FindDefinitions resolves the symbol at offset in uri to its defining
// location(s).
func (a *Analyzer) FindDefinitions(uri string, offset int) []position.Location {
	doc, ok := a.Documents.Get(uri)
	if !ok {
		return nil
	}
	return a.provider(uri).FindDefinitions(doc, offset)
}

// FindReferences resolves the symbol at offset in uri, then scans every
// already-indexed document reachable from the repository for
// occurrences that resolve back to the same definition(s).
func (a *Analyzer) FindReferences(uri string, offset int) []position.Location {
	doc, ok := a.Documents.Get(uri)
	if !ok {
		return nil
	}
	return a.provider(uri).FindReferences(doc, offset, a.allIndexedDocuments())
}

// PrepareRename reports the symbol at offset in uri and its range, or
// ok=false if the cursor isn't on a renameable token.
func (a *Analyzer) PrepareRename(uri string, offset int) (intellisense.RenameTarget, bool) {
	doc, ok := a.Documents.Get(uri)
	if !ok {
		return intellisense.RenameTarget{}, false
	}
	return a.provider(uri).PrepareRename(doc, offset)
}

// Rename computes every text edit renaming the symbol at offset in uri
// to newName.
func (a *Analyzer) Rename(uri string, offset int, newName string) []intellisense.Edit {
	doc, ok := a.Documents.Get(uri)
	if !ok {
		return nil
	}
	return a.provider(uri).Rename(doc, offset, newName, a.allIndexedDocuments())
}

func (a *Analyzer) allIndexedDocuments() []*docmanager.Document {
	out := make([]*docmanager.Document, 0, len(a.packRootByURI))
	for uri := range a.packRootByURI {
		if doc, ok := a.Documents.Get(uri); ok {
			out = append(out, doc)
		}
	}
	return out
}

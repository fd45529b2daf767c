package intellisense

import (
	"github.com/dimelords/skinlang/pkg/classmodel"
	"github.com/dimelords/skinlang/pkg/docmanager"
	"github.com/dimelords/skinlang/pkg/fsutil"
	"github.com/dimelords/skinlang/pkg/position"
	"github.com/dimelords/skinlang/pkg/scope"
	"github.com/dimelords/skinlang/pkg/variables"
)

// DocumentSource resolves a URI to its parsed Document, used to turn a
// byte-offset span recorded in the scope graph into a line/column
// position.Location. Satisfied by *docmanager.Manager.
type DocumentSource interface {
	Get(uri string) (*docmanager.Document, bool)
}

// Provider bundles the read-only collaborators every IntelliSense query
// needs. It is constructed once per analyzed repository (by
// pkg/analyzer) and handed to every query as a borrowed reference;
// nothing here is ever mutated by a query.
type Provider struct {
	Classes  *classmodel.Manager
	Scope    *scope.Scope
	Pack     string
	Resolver *variables.Resolver
	FS        fsutil.Probe
	Locator   *fsutil.Locator
	RepoRoot  string
	Documents DocumentSource
}

// locationForOffsets builds a position.Location for a node's byte-offset
// span in uri, resolved through Documents when available. Falls back to
// a zero Range when uri's Document isn't tracked (e.g. an external-glob
// fallback candidate with no concrete node).
func (p *Provider) locationForOffsets(uri string, start, end int) position.Location {
	if p.Documents == nil {
		return position.Location{URI: uri}
	}
	doc, ok := p.Documents.Get(uri)
	if !ok {
		return position.Location{URI: uri}
	}
	return position.Location{URI: uri, Range: doc.RangeFor(start, end)}
}

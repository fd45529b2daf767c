package analyzer

import (
	"github.com/dimelords/skinlang/pkg/checker"
)

// CheckDocument validates uri and returns the resulting diagnostics. The
// document is indexed first if it has not been seen before, so a
// check-only caller (the CLI) never needs to call IndexFile itself.
// budget is optional; pass nil to run to completion unconditionally.
func (a *Analyzer) CheckDocument(uri string, budget checker.Budget) (checker.Result, bool) {
	doc, ok := a.Documents.Get(uri)
	if !ok {
		return checker.Result{}, false
	}
	if _, seen := a.packRootByURI[uri]; !seen {
		a.IndexFile(uri)
	}

	pack := a.packFor(uri)
	info, _ := a.Scope.FileInfo(pack, uri)
	resolver := a.Resolver(uri)

	c := &checker.Checker{
		Classes:    a.Classes,
		Scope:      a.Scope,
		Pack:       pack,
		Env:        exprEnv{resolver: resolver},
		Variables:  resolver,
		FS:         a.FS,
		IsPackRoot: a.isPackRoot(uri),
	}
	if budget == nil {
		budget = checker.Unbounded{}
	}
	token := a.Epoch.Current()
	result := c.Check(doc, info, budget, &a.Epoch, token)
	a.colorsByURI[uri] = extractColors(doc, a.Classes)
	return result, true
}

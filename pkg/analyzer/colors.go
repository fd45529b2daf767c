package analyzer

import (
	"github.com/dimelords/skinlang/pkg/classmodel"
	"github.com/dimelords/skinlang/pkg/docmanager"
	"github.com/dimelords/skinlang/pkg/intellisense"
	"github.com/dimelords/skinlang/pkg/position"
	"github.com/dimelords/skinlang/pkg/skinxml"
)

// ColorRange is one resolved color literal found in a document, for the
// editor's inline color swatches (textDocument/documentColor).
type ColorRange struct {
	Range position.Range
	Color intellisense.Color
}

// DocumentColors returns the color ranges recorded the last time
// CheckDocument ran over uri; spec.md §5 describes this as "a per-URI
// replace-only store written by the checker" rather than computed
// freshly on each query.
func (a *Analyzer) DocumentColors(uri string) []ColorRange {
	return a.colorsByURI[uri]
}

// ColorPresentation renders c back to the hex literal a Color-typed
// attribute value should be replaced with, for the editor's color-picker
// "apply" action.
func ColorPresentation(c intellisense.Color) string {
	return c.String()
}

func extractColors(doc *docmanager.Document, classes *classmodel.Manager) []ColorRange {
	if classes == nil || !classes.IsClassModelLoaded() {
		return nil
	}
	var out []ColorRange
	rootElem, ok := doc.Root.RootElement()
	if !ok {
		return nil
	}
	rootElem.Walk(func(n *skinxml.Node) {
		if n.IsProcInst {
			return
		}
		for _, attr := range n.Attrs {
			at, ok := classes.FindAttributeType(n.Name, attr.Name)
			if !ok || !at.Type.Has(classmodel.Color) {
				continue
			}
			c, ok := intellisense.ResolveColor(attr.Value, classes)
			if !ok {
				continue
			}
			out = append(out, ColorRange{
				Range: doc.RangeFor(attr.ValueStart, attr.ValueEnd),
				Color: c,
			})
		}
	})
	return out
}

package intellisense

import (
	"regexp"
	"strings"

	"github.com/dimelords/skinlang/pkg/classmodel"
	"github.com/dimelords/skinlang/pkg/docmanager"
	"github.com/dimelords/skinlang/pkg/position"
	"github.com/dimelords/skinlang/pkg/skinindex"
)

// variableTokenPattern matches one "$name" reference embedded anywhere
// in an attribute value, mirroring pkg/variables' own token scan so
// go-to-definition resolves the specific token under the cursor rather
// than the whole attribute value.
var variableTokenPattern = regexp.MustCompile(`\$[A-Za-z_][A-Za-z0-9_]*(?:\.[A-Za-z_][A-Za-z0-9_]*)*`)

// variableTokenAt returns the "$name" token in value containing cursor
// (a byte offset relative to value's start), if any.
func variableTokenAt(value string, cursor int) (string, bool) {
	for _, loc := range variableTokenPattern.FindAllStringIndex(value, -1) {
		if cursor >= loc[0] && cursor <= loc[1] {
			return value[loc[0]:loc[1]], true
		}
	}
	return "", false
}

// FindDefinitions resolves the symbol at offset to its defining
// location(s) (spec.md §4.6). For a StyleArray value, only the
// whitespace-delimited entry under the cursor is resolved. A `<define>`
// attribute name resolves to itself, so "go to definition" on a define
// site is a no-op that still satisfies find-all-references.
func (p *Provider) FindDefinitions(doc *docmanager.Document, offset int) []position.Location {
	tok := doc.TokenAt(offset)

	if tok.Kind == docmanager.AttributeName && tok.Node.Name == "define" {
		return []position.Location{{URI: doc.URI, Range: doc.RangeFor(tok.Start, tok.End)}}
	}

	if tok.Kind != docmanager.AttributeValue {
		return nil
	}

	if strings.Contains(tok.Attr.Value, "$") {
		if name, ok := variableTokenAt(tok.Attr.Value, offset-tok.Start); ok {
			return p.resolveVariableDefinition(name)
		}
	}

	if p.Classes == nil || !p.Classes.IsClassModelLoaded() {
		return nil
	}
	at, ok := p.Classes.FindAttributeType(tok.Node.Name, tok.Attr.Name)
	if !ok {
		return nil
	}

	if at.Type.Has(classmodel.Uri) {
		return p.resolveURIDefinition(tok.Attr.Value)
	}

	name := tok.Attr.Value
	if at.Type.Has(classmodel.StyleArray) {
		name = wordUnderCursor(tok.Attr.Value, offset-tok.Start)
	}

	cat, ok := categoryFor(at.Type)
	if !ok {
		return nil
	}
	return p.resolveCategoryDefinition(cat, name)
}

func categoryFor(t classmodel.AttributeTypeMask) (skinindex.Category, bool) {
	switch {
	case t.Has(classmodel.Style), t.Has(classmodel.StyleArray):
		return skinindex.CategoryStyle, true
	case t.Has(classmodel.Image):
		return skinindex.CategoryImage, true
	case t.Has(classmodel.Shape):
		return skinindex.CategoryShape, true
	case t.Has(classmodel.Form):
		return skinindex.CategoryForm, true
	}
	return "", false
}

func (p *Provider) resolveCategoryDefinition(cat skinindex.Category, name string) []position.Location {
	if p.Scope == nil {
		return nil
	}
	var out []position.Location
	for _, cand := range p.Scope.FindDefinitions(p.Pack, cat, name) {
		if cand.Definition == nil || cand.Definition.Node == nil {
			continue
		}
		n := cand.Definition.Node
		out = append(out, p.locationForOffsets(cand.URI, n.Start, n.End))
	}
	return out
}

func (p *Provider) resolveURIDefinition(rel string) []position.Location {
	if p.FS == nil || p.RepoRoot == "" || rel == "" {
		return nil
	}
	abs := p.FS.Join(p.RepoRoot, rel)
	if !p.FS.Exists(abs) {
		return nil
	}
	return []position.Location{{URI: abs}}
}

func (p *Provider) resolveVariableDefinition(value string) []position.Location {
	if p.Resolver == nil {
		return nil
	}
	name := strings.TrimPrefix(value, "$")

	var out []position.Location
	for _, site := range p.Resolver.DefineSites(name) {
		out = append(out, p.locationForOffsets(site.URI, site.Offset, site.Offset+len(site.Name)))
	}
	return out
}

// wordUnderCursor returns the whitespace-delimited token in s containing
// byte offset cursor (used to resolve a single entry out of a
// space-separated StyleArray value).
func wordUnderCursor(s string, cursor int) string {
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(s) {
		cursor = len(s)
	}
	start := cursor
	for start > 0 && !isSpace(s[start-1]) {
		start--
	}
	end := cursor
	for end < len(s) && !isSpace(s[end]) {
		end++
	}
	return s[start:end]
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

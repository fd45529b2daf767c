package intellisense

import (
	"strings"

	"github.com/dimelords/skinlang/pkg/docmanager"
	"github.com/dimelords/skinlang/pkg/position"
)

// FindReferences implements spec.md §4.6's three-step algorithm: locate
// the symbol's own definition(s), scan every tracked document for the
// literal name, then keep only the occurrences that re-resolve back to
// one of those same definitions.
func (p *Provider) FindReferences(doc *docmanager.Document, offset int, allDocs []*docmanager.Document) []position.Location {
	tok := doc.TokenAt(offset)
	if tok.Kind != docmanager.AttributeValue && tok.Kind != docmanager.AttributeName {
		return nil
	}

	name := symbolNameAt(tok)
	if name == "" {
		return nil
	}

	defs := p.FindDefinitions(doc, offset)
	if len(defs) == 0 {
		// No concrete defining node (includes the <External name="pat*"/>
		// glob-fallback case, which has no node to anchor a definition
		// on) — nothing to anchor references to.
		return nil
	}
	defKey := make(map[string]bool, len(defs))
	for _, d := range defs {
		defKey[d.URI] = true
	}

	var out []position.Location
	for _, d := range allDocs {
		for _, occOffset := range findLiteralOccurrences(d.Text, name) {
			occTok := d.TokenAt(occOffset)
			if occTok.Kind == docmanager.Invalid {
				continue
			}
			occDefs := p.FindDefinitions(d, occOffset)
			if !resolvesToAny(occDefs, defKey) {
				continue
			}
			out = append(out, position.Location{URI: d.URI, Range: d.RangeFor(occTok.Start, occTok.End)})
		}
	}
	return out
}

// symbolNameAt extracts the bare name to search the repository for.
func symbolNameAt(tok docmanager.Token) string {
	switch tok.Kind {
	case docmanager.AttributeValue:
		fields := strings.Fields(tok.Attr.Value)
		if len(fields) == 0 {
			return ""
		}
		return fields[0]
	case docmanager.AttributeName:
		if tok.Node.Name == "define" {
			return tok.Attr.Name
		}
	}
	return ""
}

func resolvesToAny(occDefs []position.Location, defKey map[string]bool) bool {
	for _, d := range occDefs {
		if defKey[d.URI] {
			return true
		}
	}
	return false
}

// findLiteralOccurrences returns every byte offset in text at which name
// appears, including inside longer words; FindReferences drops the ones
// that do not re-resolve to the same definition.
func findLiteralOccurrences(text, name string) []int {
	if name == "" {
		return nil
	}
	var out []int
	from := 0
	for {
		idx := strings.Index(text[from:], name)
		if idx < 0 {
			break
		}
		pos := from + idx
		out = append(out, pos)
		from = pos + len(name)
	}
	return out
}

package intellisense

import (
	"strings"

	"github.com/dimelords/skinlang/pkg/classmodel"
	"github.com/dimelords/skinlang/pkg/docmanager"
	"github.com/dimelords/skinlang/pkg/position"
)

// Hover is the rendered content and anchor range for a hover request.
type Hover struct {
	Contents string
	Range    position.Range
}

// FindHover renders hover text for the token at offset in doc: tag
// documentation for a tag name, synthesized type documentation for an
// attribute name, and the inheritance chain for a style-valued
// attribute's value.
func (p *Provider) FindHover(doc *docmanager.Document, offset int) (Hover, bool) {
	tok := doc.TokenAt(offset)
	if p.Classes == nil {
		return Hover{}, false
	}

	switch tok.Kind {
	case docmanager.TagName:
		cd, ok := p.Classes.ClassDocumentation(tok.Node.Name)
		if !ok {
			return Hover{}, false
		}
		return Hover{Contents: renderClassDoc(cd.Brief, cd.Detailed), Range: doc.RangeFor(tok.Start, tok.End)}, true

	case docmanager.AttributeName:
		text, ok := p.Classes.AttributeDocumentation(tok.Node.Name, tok.Attr.Name)
		if !ok {
			return Hover{}, false
		}
		return Hover{Contents: text, Range: doc.RangeFor(tok.Start, tok.End)}, true

	case docmanager.AttributeValue:
		at, ok := p.Classes.FindAttributeType(tok.Node.Name, tok.Attr.Name)
		if !ok {
			return Hover{}, false
		}
		if at.Type.Has(classmodel.Style) || at.Type.Has(classmodel.StyleArray) {
			return Hover{Contents: p.Classes.StyleDocumentation(tok.Attr.Value), Range: doc.RangeFor(tok.Start, tok.End)}, true
		}
		return Hover{}, false
	}
	return Hover{}, false
}

func renderClassDoc(brief, detailed string) string {
	var b strings.Builder
	b.WriteString(brief)
	if detailed != "" {
		if brief != "" {
			b.WriteString("\n\n")
		}
		b.WriteString(detailed)
	}
	return b.String()
}

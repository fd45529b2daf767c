package intellisense

import (
	"strings"

	"github.com/dimelords/skinlang/pkg/classmodel"
	"github.com/dimelords/skinlang/pkg/docmanager"
	"github.com/dimelords/skinlang/pkg/skinindex"
)

// procInstVocabulary is the fixed set of processing-instruction targets
// recognized after "<?" (spec.md §4.6).
var procInstVocabulary = []string{
	"platform", "xstring", "language", "defined", "config",
	"desktop_platform", "not",
}

// defineValuePrefixes is the completion offered for a <define> attribute
// value (spec.md §4.6).
var defineValuePrefixes = []string{"@property:", "@select:", "@eval:"}

// FindCompletions returns every completion candidate for the cursor at
// offset in doc.
func (p *Provider) FindCompletions(doc *docmanager.Document, offset int) []Item {
	tok := doc.TokenAt(offset)

	switch tok.Kind {
	case docmanager.TagName:
		return p.tagNameCompletions(tok)
	case docmanager.AttributeName:
		return p.attributeNameCompletions(tok)
	case docmanager.AttributeValue:
		return p.attributeValueCompletions(tok, offset)
	default:
		if tok.Node != nil && tok.Node.IsProcInst {
			return textItems(KindTag, procInstVocabulary)
		}
		return p.tagInsertCompletions(tok)
	}
}

// tagInsertCompletions offers the closing-tag snippet for the nearest
// unclosed ancestor (preselected) plus every element class valid as a
// child of the enclosing element, per spec.md §4.6's autoclose rule.
func (p *Provider) tagInsertCompletions(tok docmanager.Token) []Item {
	var items []Item
	if tok.Node != nil {
		for _, anc := range tok.Node.Ancestors() {
			if anc.Unclosed {
				items = append(items, Item{
					Label:      "/" + anc.Name + ">",
					Kind:       KindSnippet,
					InsertText: "/" + anc.Name + ">",
					Preselect:  true,
				})
				break
			}
		}
	}
	if p.Classes != nil && p.Classes.IsClassModelLoaded() {
		for _, name := range p.Classes.FindSkinElementDefinitions("", true) {
			if tok.Node != nil && !p.Classes.IsSkinElementValidInScope(tok.Node.Name, name) {
				continue
			}
			items = append(items, Item{Label: name, Kind: KindTag})
		}
	}
	return items
}

func (p *Provider) tagNameCompletions(tok docmanager.Token) []Item {
	if p.Classes == nil || !p.Classes.IsClassModelLoaded() {
		return nil
	}
	prefix := tok.Node.Name
	return textItems(KindTag, p.Classes.FindSkinElementDefinitions(prefix, true))
}

// attributeNameCompletions filters candidates by substring (not prefix)
// match against what has been typed so far, preserving the legacy
// ambiguous `indexOf`-based filtering spec.md §9 calls out.
func (p *Provider) attributeNameCompletions(tok docmanager.Token) []Item {
	if p.Classes == nil || !p.Classes.IsClassModelLoaded() {
		return nil
	}
	valid := p.Classes.FindValidAttributes(tok.Node.Name)
	typed := tok.Attr.Name

	var items []Item
	for name := range valid {
		if typed == "" || strings.Contains(name, typed) {
			items = append(items, Item{Label: name, Kind: KindAttribute})
		}
	}
	return items
}

func (p *Provider) attributeValueCompletions(tok docmanager.Token, offset int) []Item {
	if tok.Node.Name == "define" && tok.Attr.Name == "value" {
		return textItems(KindSnippet, defineValuePrefixes)
	}

	typedValue := ""
	if offset >= tok.Start && offset <= tok.End {
		typedValue = tok.Attr.Value[:min(offset-tok.Start, len(tok.Attr.Value))]
	}
	if strings.Contains(typedValue, "$") {
		return p.variableCompletions()
	}

	if p.Classes == nil || !p.Classes.IsClassModelLoaded() {
		return nil
	}
	at, ok := p.Classes.FindAttributeType(tok.Node.Name, tok.Attr.Name)
	if !ok {
		return nil
	}

	siblings := map[string]string{}
	for _, a := range tok.Node.Attrs {
		siblings[a.Name] = a.Value
	}

	switch {
	case at.Type.Has(classmodel.Bool):
		return textItems(KindEnumMember, []string{"true", "false"})
	case at.Type.Has(classmodel.Enum):
		return textItems(KindEnumMember, p.Classes.FindValidEnumEntries(tok.Node.Name, tok.Attr.Name, siblings))
	case at.Type.Has(classmodel.Color):
		return p.colorCompletions()
	case at.Type.Has(classmodel.Style) || at.Type.Has(classmodel.StyleArray):
		return p.definitionCompletions(skinindex.CategoryStyle)
	case at.Type.Has(classmodel.Image):
		return p.definitionCompletions(skinindex.CategoryImage)
	case at.Type.Has(classmodel.Shape):
		return p.definitionCompletions(skinindex.CategoryShape)
	case at.Type.Has(classmodel.Form):
		return p.definitionCompletions(skinindex.CategoryForm)
	case at.Type.Has(classmodel.Uri):
		items := p.uriCompletions()
		if tok.Attr.Name == "url" && tok.Node.Name == "Import" {
			items = append(items, p.packCompletions()...)
		}
		return items
	}
	return nil
}

func (p *Provider) colorCompletions() []Item {
	var items []Item
	for _, name := range []string{"#000000", "#ffffff"} {
		items = append(items, Item{Label: name, Kind: KindColor})
	}
	if p.Classes != nil {
		for _, name := range p.Classes.DefaultColorNames() {
			items = append(items, Item{Label: name, Kind: KindColor})
		}
	}
	return items
}

func (p *Provider) definitionCompletions(cat skinindex.Category) []Item {
	if p.Scope == nil {
		return nil
	}
	var items []Item
	for _, cand := range p.Scope.AllDefinitions(p.Pack, cat) {
		if cand.Definition == nil {
			continue
		}
		items = append(items, Item{Label: cand.Definition.Name, Kind: KindText})
	}
	return items
}

func (p *Provider) packCompletions() []Item {
	if p.Locator == nil || p.RepoRoot == "" {
		return nil
	}
	var items []Item
	for _, name := range p.Locator.AvailablePacks(p.RepoRoot) {
		items = append(items, Item{Label: "@" + name, Kind: KindText})
	}
	return items
}

func (p *Provider) uriCompletions() []Item {
	if p.FS == nil || p.RepoRoot == "" {
		return nil
	}
	entries, err := p.FS.ReadDir(p.RepoRoot)
	if err != nil {
		return nil
	}
	return textItems(KindFile, entries)
}

func (p *Provider) variableCompletions() []Item {
	var items []Item
	if p.Classes != nil {
		for _, name := range p.Classes.ThemeMetricNames() {
			items = append(items, Item{Label: "Theme." + name, Kind: KindVariable})
		}
	}
	return items
}

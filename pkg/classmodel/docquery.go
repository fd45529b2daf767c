package classmodel

import "strings"

// ClassDocumentation returns the documentation for elem, falling back to
// the nearest ancestor that has one when elem's own Model.Documentation is
// empty. Used to render hover text for a tag name.
func (m *Manager) ClassDocumentation(elem string) (ClassDoc, bool) {
	for _, cd := range m.classChain(elem) {
		if cd.Doc.Brief != "" || cd.Doc.Detailed != "" || cd.Doc.Code != "" {
			return cd.Doc, true
		}
	}
	return ClassDoc{}, false
}

// AttributeDocumentation returns a short synthesized doc string for
// elem.attr: its resolved type, defining class, and valid enum entries
// when applicable. There is no per-attribute free-text documentation in
// the class model (only Model.Documentation at the class level), so hover
// for attributes is rendered from structured data instead of prose.
func (m *Manager) AttributeDocumentation(elem, attr string) (string, bool) {
	at, ok := m.FindAttributeType(elem, attr)
	if !ok {
		return "", false
	}

	var b strings.Builder
	b.WriteString(elem)
	b.WriteByte('.')
	b.WriteString(attr)
	b.WriteString(": ")
	b.WriteString(at.Type.String())
	if at.DefiningElem != elem {
		b.WriteString(" (inherited from ")
		b.WriteString(at.DefiningElem)
		b.WriteByte(')')
	}

	if at.Type.Has(Enum) {
		entries := m.FindValidEnumEntries(elem, attr, nil)
		if len(entries) > 0 {
			b.WriteString("\nvalues: ")
			b.WriteString(strings.Join(entries, ", "))
		}
	}

	return b.String(), true
}

// StyleDocumentation renders the inheritance chain for a style class name
// (e.g. "Button.Style"), used by hover on style references: the class
// itself followed by its class-model ancestors, joined by " -> ". Unlike
// ClassDocumentation it renders no brief/detailed text, only the chain.
func (m *Manager) StyleDocumentation(className string) string {
	chain := m.classChain(className)
	names := make([]string, 0, len(chain))
	for _, cd := range chain {
		names = append(names, cd.Name)
	}
	return strings.Join(names, " -> ")
}

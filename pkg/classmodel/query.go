package classmodel

import "strings"

// AttributeType pairs a resolved attribute type with the class that
// declared it, the result of find_attribute_type's parent-chain walk.
type AttributeType struct {
	Type         AttributeTypeMask
	DefiningElem string
}

// statementClasses lists the control-flow element classes whose "name"
// attribute is dropped from find_valid_attributes, except styleselector
// (spec.md §4.1).
var statementClasses = map[string]bool{
	"statement": true, "if": true, "switch": true, "case": true, "default": true, "foreach": true,
}

// classChain returns name followed by its ancestors, root first is NOT
// guaranteed; order is self, parent, grandparent, ... Stops at the first
// name it has already visited to guard against a malformed cyclic model.
func (m *Manager) classChain(name string) []*ClassDef {
	var chain []*ClassDef
	seen := make(map[string]bool)
	cur := name
	for cur != "" && !seen[cur] {
		seen[cur] = true
		cd, ok := m.classes[cur]
		if !ok {
			break
		}
		chain = append(chain, cd)
		cur = cd.Parent
	}
	return chain
}

// Class returns the ClassDef for name, if loaded.
func (m *Manager) Class(name string) (*ClassDef, bool) {
	cd, ok := m.classes[name]
	return cd, ok
}

// ClassNameCaseInsensitive looks up name ignoring case, returning the
// class's declared (correctly-cased) name. Used to distinguish "unknown
// element" (no match at all) from "incorrect casing" (a match exists
// under a different case) in the checker's element-name validation.
func (m *Manager) ClassNameCaseInsensitive(name string) (string, bool) {
	if _, ok := m.classes[name]; ok {
		return name, true
	}
	for k := range m.classes {
		if eqFold(k, name) {
			return k, true
		}
	}
	return "", false
}

// layoutClassSpecialCases implements the four hard-coded special cases for
// Layout.layout.class prefix queries (spec.md §4.1).
var layoutClassSpecialCases = map[string][]string{
	"box":         {"Horizontal", "Vertical"},
	"clipper":     {"Layout"},
	"sizevariant": {"SizeVariant"},
	"table":       {"Table"},
}

// FindSkinElementDefinitions returns element class names whose name begins
// with prefix, case-insensitively. When ignoreAbstract is true, abstract
// classes are excluded. The four Layout.layout.class special-case tokens
// are always consulted in addition to the ordinary class-name prefix scan.
func (m *Manager) FindSkinElementDefinitions(prefix string, ignoreAbstract bool) []string {
	lowerPrefix := strings.ToLower(prefix)

	seen := make(map[string]bool)
	var results []string

	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			results = append(results, name)
		}
	}

	for name, cd := range m.classes {
		if ignoreAbstract && cd.Abstract {
			continue
		}
		if strings.HasPrefix(strings.ToLower(name), lowerPrefix) {
			add(name)
		}
	}

	if extra, ok := layoutClassSpecialCases[lowerPrefix]; ok {
		for _, name := range extra {
			add(name)
		}
	}

	return results
}

// FindValidAttributes returns the full set of attributes valid on elem,
// merging elem's own declared attributes with every ancestor's, then
// applying the name-based guessType refinement to every entry.
// Control-flow statement classes (subclasses of "statement") have "name"
// removed unless elem is "styleselector".
func (m *Manager) FindValidAttributes(elemName string) map[string]AttributeTypeMask {
	result := make(map[string]AttributeTypeMask)

	chain := m.classChain(elemName)
	// Walk root-to-leaf so a more specific descendant's declaration wins
	// over an ancestor's for the same attribute name.
	for i := len(chain) - 1; i >= 0; i-- {
		for attr, typ := range chain[i].Attributes {
			result[attr] = typ
		}
	}

	for attr, typ := range result {
		result[attr] = guessType(elemName, attr, typ)
	}

	if isStatementClass(m, elemName) && elemName != "styleselector" {
		delete(result, "name")
	}

	return result
}

// isStatementClass reports whether elemName's ancestor chain includes one
// of the control-flow statement base classes.
func isStatementClass(m *Manager, elemName string) bool {
	if statementClasses[elemName] {
		return true
	}
	for _, cd := range m.classChain(elemName) {
		if statementClasses[cd.Name] {
			return true
		}
	}
	return false
}

// FindValidEnumEntries resolves the valid entries for elem's attr,
// following the enum inheritance chain via the conventional "Class.Attr"
// enum name and EnumDef.Parent links. siblingAttrs supports the
// Options.options special case, which redirects lookup through a sibling
// "type" attribute of the form "Class.Attribute".
func (m *Manager) FindValidEnumEntries(elem, attr string, siblingAttrs map[string]string) []string {
	enumName := elem + "." + attr

	if elem == "Options" && attr == "options" {
		if t, ok := siblingAttrs["type"]; ok && t != "" {
			enumName = t
		}
	} else {
		// Walk elem's ancestor chain looking for the first class that
		// declares an enum under "<ancestor>.<attr>".
		for _, cd := range m.classChain(elem) {
			candidate := cd.Name + "." + attr
			if _, ok := m.enums[candidate]; ok {
				enumName = candidate
				break
			}
		}
	}

	return m.resolveEnumChain(enumName, make(map[string]bool))
}

func (m *Manager) resolveEnumChain(enumName string, visited map[string]bool) []string {
	if visited[enumName] {
		return nil
	}
	visited[enumName] = true

	ed, ok := m.enums[enumName]
	if !ok {
		return nil
	}

	entries := append([]string(nil), ed.Entries...)
	if ed.Parent != "" {
		entries = append(entries, m.resolveEnumChain(ed.Parent, visited)...)
	}
	return entries
}

// FindAttributeType resolves attr's type by walking elem's parent chain for
// the first class that declares it, then applying guessType to the result.
func (m *Manager) FindAttributeType(elem, attr string) (AttributeType, bool) {
	for _, cd := range m.classChain(elem) {
		if typ, ok := cd.Attributes[attr]; ok {
			return AttributeType{Type: guessType(elem, attr, typ), DefiningElem: cd.Name}, true
		}
	}
	return AttributeType{}, false
}

// IsSkinElementValidInScope reports whether child is a valid child element
// of parent, by comparing child's (possibly inherited) schema groups
// against parent's (possibly inherited) children group. If no class in the
// loaded model carries any schema-group information at all, every
// parent/child pair is considered valid (schema gating is opt-in).
func (m *Manager) IsSkinElementValidInScope(parent, child string) bool {
	if !m.hasAnySchemaInfo() {
		return true
	}

	childGroups := m.resolveSchemaGroups(child)
	childGroups[child] = true

	parentGroup := m.resolveChildrenGroup(parent)
	if parentGroup == "" {
		return true
	}

	return childGroups[parentGroup]
}

func (m *Manager) hasAnySchemaInfo() bool {
	for _, cd := range m.classes {
		if len(cd.SchemaGroups) > 0 || cd.ChildrenGroup != "" {
			return true
		}
	}
	return false
}

func (m *Manager) resolveSchemaGroups(elem string) map[string]bool {
	groups := make(map[string]bool)
	for _, cd := range m.classChain(elem) {
		if len(cd.SchemaGroups) > 0 {
			for _, g := range cd.SchemaGroups {
				groups[g] = true
			}
			return groups
		}
	}
	return groups
}

func (m *Manager) resolveChildrenGroup(elem string) string {
	for _, cd := range m.classChain(elem) {
		if cd.ChildrenGroup != "" {
			return cd.ChildrenGroup
		}
	}
	return ""
}

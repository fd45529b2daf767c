package scope

import "github.com/dimelords/skinlang/pkg/skinxml"

// ParseImports reads the <Import pack="Name"/> children of a pack's
// skin.xml root element, in document order.
func ParseImports(root *skinxml.Node) []string {
	rootElem, ok := root.RootElement()
	if !ok {
		return nil
	}
	var names []string
	for _, imp := range rootElem.ChildrenNamed("Import") {
		if name := imp.AttrValue("pack"); name != "" {
			names = append(names, name)
		}
	}
	return names
}

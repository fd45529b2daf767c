package skinxml

// ChildWithAttr returns the first direct child named name whose attrName
// attribute equals attrValue, used for lookups like finding the
// <Style name="X"> sibling of a given element.
func (n *Node) ChildWithAttr(name, attrName, attrValue string) (*Node, bool) {
	for _, c := range n.Children {
		if c.Name != name {
			continue
		}
		if c.AttrValue(attrName) == attrValue {
			return c, true
		}
	}
	return nil, false
}

// Ancestors returns n's ancestor chain starting with its immediate
// parent and ending at the document root, not including n itself.
func (n *Node) Ancestors() []*Node {
	var out []*Node
	for p := n.Parent; p != nil; p = p.Parent {
		out = append(out, p)
	}
	return out
}

// Depth returns the number of ancestors n has (0 for the document root).
func (n *Node) Depth() int {
	d := 0
	for p := n.Parent; p != nil; p = p.Parent {
		d++
	}
	return d
}

// FirstDescendant returns the first node in a depth-first, pre-order
// walk of n's descendants (not including n) named name.
func (n *Node) FirstDescendant(name string) (*Node, bool) {
	for _, c := range n.Children {
		if c.Name == name {
			return c, true
		}
		if found, ok := c.FirstDescendant(name); ok {
			return found, true
		}
	}
	return nil, false
}

// Descendants returns every node in a depth-first, pre-order walk of
// n's descendants (not including n) named name.
func (n *Node) Descendants(name string) []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.Name == name {
			out = append(out, c)
		}
		out = append(out, c.Descendants(name)...)
	}
	return out
}

// IsRoot reports whether n is the synthetic document root returned by
// Parse, as opposed to a real element from the source.
func (n *Node) IsRoot() bool {
	return n.Parent == nil && n.Name == RootName
}

// RootElement returns the document's first real top-level element (the
// <Skin> or <Import> under the synthetic #document root), or ok=false
// for an empty document.
func (n *Node) RootElement() (*Node, bool) {
	root := n
	for root.Parent != nil {
		root = root.Parent
	}
	if len(root.Children) == 0 {
		return nil, false
	}
	return root.Children[0], true
}

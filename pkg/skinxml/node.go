package skinxml

// Attr is one attribute on a Node, carrying both its decoded value and the
// raw byte offsets of its name and value as they appear in source text
// (recovered by rescanTag, since encoding/xml's tokenizer does not expose
// per-attribute offsets).
type Attr struct {
	Name  string
	Value string

	NameStart, NameEnd   int
	ValueStart, ValueEnd int
}

// Node is one element in the lenient DOM. Start and End are byte offsets
// into the original source: Start is the offset of the '<' that opens the
// element, End is the offset just past its closing '>' (or, for an
// element left open at EOF, the offset of the end of input). NameStart is
// the offset of the first byte of the tag name itself, used to place
// "unknown element" diagnostics precisely on the name rather than on the
// opening bracket.
type Node struct {
	Name      string
	NameStart int
	Attrs     []Attr
	Children  []*Node
	Parent    *Node
	Text      string

	Start, End int

	// SelfClosed is true for <Foo/>, distinguishing it from <Foo></Foo>
	// for completion purposes (a self-closed element offers no "insert
	// closing tag" action).
	SelfClosed bool

	// Unclosed is true when the parser reached EOF or a mismatched
	// closing tag while this element was still open; the checker emits
	// an unclosed-tag diagnostic for any such node.
	Unclosed bool

	// IsProcInst is true for a pseudo-node synthesized from a processing
	// instruction such as <?platform mac?>, used by pkg/skinindex to
	// scan for platform-gating directives. Such a
	// node is always a leaf and always SelfClosed.
	IsProcInst bool
	ProcTarget string
	ProcInst   string

	// Dangling records every closing tag encountered with the element
	// stack already empty (no open element anywhere to match against),
	// distinct from Unclosed, which marks an element that opened but was
	// never properly closed. Only ever populated on the synthetic
	// document root returned by Parse.
	Dangling []DanglingClose
}

// DanglingClose is one closing tag with no corresponding open element.
type DanglingClose struct {
	Name       string
	Start, End int
}

// Attr looks up an attribute by name, case-sensitively (skin attribute
// names are case-sensitive per the class model).
func (n *Node) Attr(name string) (Attr, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a, true
		}
	}
	return Attr{}, false
}

// AttrValue returns an attribute's value, or "" if absent.
func (n *Node) AttrValue(name string) string {
	a, ok := n.Attr(name)
	if !ok {
		return ""
	}
	return a.Value
}

// HasAttr reports whether name is present on n.
func (n *Node) HasAttr(name string) bool {
	_, ok := n.Attr(name)
	return ok
}

// Child returns the first direct child named name.
func (n *Node) Child(name string) (*Node, bool) {
	for _, c := range n.Children {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// ChildrenNamed returns every direct child named name, in document order.
func (n *Node) ChildrenNamed(name string) []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// Walk visits n and every descendant, depth-first, pre-order.
func (n *Node) Walk(visit func(*Node)) {
	visit(n)
	for _, c := range n.Children {
		c.Walk(visit)
	}
}

// Contains reports whether offset falls within [Start, End).
func (n *Node) Contains(offset int) bool {
	return offset >= n.Start && offset < n.End
}

// NodeAtOffset returns the innermost descendant (or n itself) whose span
// contains offset, used to resolve hover/completion/go-to-definition
// requests anchored on a cursor position.
func (n *Node) NodeAtOffset(offset int) *Node {
	if !n.Contains(offset) {
		return nil
	}
	for _, c := range n.Children {
		if found := c.NodeAtOffset(offset); found != nil {
			return found
		}
	}
	return n
}

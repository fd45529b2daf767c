package docmanager

import "github.com/dimelords/skinlang/pkg/skinxml"

// TokenKind classifies what lexical role the cursor sits on, used to
// decide what kind of completion/hover to offer.
type TokenKind int

const (
	// Invalid means the offset falls outside any recognized token (plain
	// text content, whitespace between attributes, or past EOF).
	Invalid TokenKind = iota
	TagName
	AttributeName
	AttributeValue
)

// Token is the result of classifying a byte offset within a Document.
type Token struct {
	Kind  TokenKind
	Node  *skinxml.Node
	Attr  skinxml.Attr
	Start int
	End   int
}

// TokenAt classifies the token at offset, used to resolve completion and
// hover requests anchored on a cursor position.
func (d *Document) TokenAt(offset int) Token {
	n := d.Root.NodeAtOffset(offset)
	if n == nil || n.IsRoot() {
		return Token{Kind: Invalid}
	}
	if offset >= n.NameStart && offset <= n.NameStart+len(n.Name) {
		return Token{Kind: TagName, Node: n, Start: n.NameStart, End: n.NameStart + len(n.Name)}
	}
	for _, a := range n.Attrs {
		if a.NameStart == 0 && a.NameEnd == 0 {
			continue
		}
		if offset >= a.NameStart && offset <= a.NameEnd {
			return Token{Kind: AttributeName, Node: n, Attr: a, Start: a.NameStart, End: a.NameEnd}
		}
		if offset >= a.ValueStart && offset <= a.ValueEnd {
			return Token{Kind: AttributeValue, Node: n, Attr: a, Start: a.ValueStart, End: a.ValueEnd}
		}
	}
	return Token{Kind: Invalid, Node: n}
}

package skinxml

import (
	"bytes"
	"encoding/xml"
	"io"
)

// ParseError records a recovered syntax error: the parser logs it and
// resynchronizes at the next '<' rather than aborting, so a single
// malformed tag does not hide diagnostics for the rest of the document.
type ParseError struct {
	Offset  int
	Message string
}

// RootName is the synthetic name given to the document root Node that
// wraps whatever top-level elements were found (normally exactly one:
// <Skin> or <Import>, but the parser tolerates stray siblings so the
// checker can flag "multiple root elements" itself rather than the
// parser silently picking one).
const RootName = "#document"

// Parse builds a lenient DOM from source, returning the synthetic
// document root and any syntax errors recovered along the way. Parse
// never returns a nil root and never returns a fatal error: malformed
// input still yields whatever structure could be recovered, matching
// the "analyze the well-formed parts" requirement of an editor-facing
// parser (a strict encoding/xml.Unmarshal would reject the whole file).
func Parse(source []byte) (*Node, []ParseError) {
	root := &Node{Name: RootName, Start: 0, End: len(source)}
	p := &parser{source: source, stack: []*Node{root}}
	p.run()
	root.End = len(source)
	return root, p.errs
}

type parser struct {
	source    []byte
	base      int
	remaining []byte
	stack     []*Node
	errs      []ParseError
}

func (p *parser) top() *Node { return p.stack[len(p.stack)-1] }

// run drives decoders over p.source, restarting a fresh decoder at the
// next '<' each time one reports a syntax error, until input is
// exhausted.
func (p *parser) run() {
	p.remaining = p.source
	for {
		dec := xml.NewDecoder(bytes.NewReader(p.remaining))
		dec.Strict = false
		if !p.consume(dec) {
			return
		}
	}
}

// consume drives one decoder instance until it errors or reaches EOF.
// Returns true if run should start a fresh decoder over p.remaining
// (already advanced past the bad byte), false when parsing is finished.
func (p *parser) consume(dec *xml.Decoder) bool {
	for {
		before := dec.InputOffset()
		tok, err := dec.Token()
		if err != nil {
			if err == io.EOF {
				p.closeUnclosed()
				return false
			}
			abs := p.base + int(before)
			p.errs = append(p.errs, ParseError{Offset: abs, Message: err.Error()})
			return p.resync(int(before))
		}
		after := dec.InputOffset()
		p.handleToken(tok, p.base+int(before), p.base+int(after))
	}
}

// resync advances past the byte that triggered the error and looks for
// the next '<' within the current p.remaining window, updating p.base
// and p.remaining so the next decoder in run() starts there.
func (p *parser) resync(badOffset int) bool {
	skipFrom := badOffset + 1
	if skipFrom >= len(p.remaining) {
		p.closeUnclosed()
		return false
	}
	rel := bytes.IndexByte(p.remaining[skipFrom:], '<')
	if rel < 0 {
		p.closeUnclosed()
		return false
	}
	newStart := skipFrom + rel
	p.base += newStart
	p.remaining = p.remaining[newStart:]
	return true
}

func (p *parser) handleToken(tok xml.Token, start, end int) {
	switch t := tok.(type) {
	case xml.StartElement:
		n := &Node{
			Name:      t.Name.Local,
			NameStart: start + 1, // just past '<'
			Start:     start,
			End:       end,
			Parent:    p.top(),
		}
		for _, a := range t.Attr {
			n.Attrs = append(n.Attrs, Attr{Name: a.Name.Local, Value: a.Value})
		}
		rescanTag(p.source, n)
		if tagLen := selfClosingLen(p.source, start); tagLen > 0 && start+tagLen == end {
			n.SelfClosed = true
		}
		p.top().Children = append(p.top().Children, n)
		p.stack = append(p.stack, n)
	case xml.EndElement:
		if len(p.stack) > 1 {
			closed := p.stack[len(p.stack)-1]
			closed.End = end
			if closed.Name != t.Name.Local {
				// Mismatched closing tag: close the element anyway
				// (lenient), mark it, and let the checker report the
				// mismatch as a structural diagnostic.
				closed.Unclosed = true
			}
			p.stack = p.stack[:len(p.stack)-1]
		} else {
			// Closing tag with nothing open to match: record against
			// the root so the checker can report it separately from an
			// ordinary unclosed/mismatched open tag.
			p.stack[0].Dangling = append(p.stack[0].Dangling, DanglingClose{
				Name: t.Name.Local, Start: start, End: end,
			})
		}
	case xml.CharData:
		p.top().Text += string(t)
	case xml.ProcInst:
		n := &Node{
			Name:       "?" + t.Target,
			IsProcInst: true,
			ProcTarget: t.Target,
			ProcInst:   string(t.Inst),
			Start:      start,
			End:        end,
			Parent:     p.top(),
			SelfClosed: true,
		}
		p.top().Children = append(p.top().Children, n)
	}
}

// selfClosingLen reports the byte length of the tag starting at start if
// it is shaped like "<Name .../>", else 0. encoding/xml reports a
// self-closing element as a StartElement immediately followed by a
// zero-width EndElement, so comparing this length against the offset
// gap between the two tokens tells them apart from "<Name></Name>".
func selfClosingLen(source []byte, start int) int {
	rel := bytes.IndexByte(source[start:], '>')
	if rel < 0 {
		return 0
	}
	end := start + rel + 1
	if end-2 >= start && source[end-2] == '/' {
		return end - start
	}
	return 0
}

func (p *parser) closeUnclosed() {
	for len(p.stack) > 1 {
		n := p.stack[len(p.stack)-1]
		n.Unclosed = true
		n.End = len(p.source)
		p.stack = p.stack[:len(p.stack)-1]
	}
}

package docmanager

import (
	"github.com/dimelords/skinlang/pkg/position"
	"github.com/dimelords/skinlang/pkg/skinxml"
)

// Document is one parsed, cached source file: its text, its lenient DOM,
// any recovered syntax errors, and the line-start index used to convert
// between byte offsets and position.Position.
type Document struct {
	URI  string
	Text string
	Root *skinxml.Node

	ParseErrors []skinxml.ParseError

	lineStarts []int
}

func newDocument(uri, text string) *Document {
	root, errs := skinxml.Parse([]byte(text))
	return &Document{
		URI:         uri,
		Text:        text,
		Root:        root,
		ParseErrors: errs,
		lineStarts:  computeLineStarts(text),
	}
}

func computeLineStarts(text string) []int {
	starts := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

// PositionAt converts a byte offset into a line/column position. Offsets
// past the end of the text clamp to the final valid position.
func (d *Document) PositionAt(offset int) position.Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(d.Text) {
		offset = len(d.Text)
	}
	line := findLine(d.lineStarts, offset)
	col := offset - d.lineStarts[line]
	return position.New(line, col)
}

// OffsetAt converts a line/column position back into a byte offset.
func (d *Document) OffsetAt(pos position.Position) int {
	if pos.Line < 0 {
		return 0
	}
	if pos.Line >= len(d.lineStarts) {
		return len(d.Text)
	}
	offset := d.lineStarts[pos.Line] + pos.Col
	if offset > len(d.Text) {
		offset = len(d.Text)
	}
	return offset
}

func findLine(lineStarts []int, offset int) int {
	lo, hi := 0, len(lineStarts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if lineStarts[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

// RangeFor builds a position.Range from a [start, end) byte-offset span.
func (d *Document) RangeFor(start, end int) position.Range {
	return position.NewRange(d.PositionAt(start), d.PositionAt(end))
}

package intellisense

import (
	"github.com/dimelords/skinlang/pkg/docmanager"
	"github.com/dimelords/skinlang/pkg/position"
)

// RenameTarget is the range and text prepare-rename anchors on.
type RenameTarget struct {
	Range position.Range
	Text  string
}

// PrepareRename returns the symbol at offset and its range, or ok=false
// when the cursor isn't on a renameable token (spec.md §4.6).
func (p *Provider) PrepareRename(doc *docmanager.Document, offset int) (RenameTarget, bool) {
	tok := doc.TokenAt(offset)
	if tok.Kind != docmanager.AttributeValue && tok.Kind != docmanager.AttributeName {
		return RenameTarget{}, false
	}

	name := symbolNameAt(tok)
	if name == "" {
		return RenameTarget{}, false
	}

	return RenameTarget{
		Range: doc.RangeFor(tok.Start, tok.End),
		Text:  name,
	}, true
}

// Rename computes the full set of text edits for renaming the symbol at
// offset to newName: every location FindReferences returns, each paired
// with newName as a replacement for its current range. The definition
// site is included only when FindReferences returns it.
func (p *Provider) Rename(doc *docmanager.Document, offset int, newName string, allDocs []*docmanager.Document) []Edit {
	refs := p.FindReferences(doc, offset, allDocs)
	edits := make([]Edit, 0, len(refs))
	for _, ref := range refs {
		edits = append(edits, Edit{Location: ref, NewText: newName})
	}
	return edits
}

// Edit is one textual replacement produced by Rename.
type Edit struct {
	Location position.Location
	NewText  string
}

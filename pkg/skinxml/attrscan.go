package skinxml

import (
	"bytes"
	"regexp"
)

// attrPattern matches one name="value" or name='value' pair inside a raw
// start-tag. encoding/xml's tokenizer decodes attribute values (entity
// references, duplicate handling) but throws away the byte positions of
// each name/value; rescanTag recovers them by re-reading the tag's own
// source text, which is the only way to report "attribute name starts at
// column N" diagnostics precisely.
var attrPattern = regexp.MustCompile(`([^\s=/<>"']+)\s*=\s*(?:"([^"]*)"|'([^']*)')`)

// rescanTag fills in the NameStart/NameEnd/ValueStart/ValueEnd offsets on
// n.Attrs (already populated with Name/Value by the decoder) by scanning
// the raw tag text from n.Start to its closing '>'.
func rescanTag(source []byte, n *Node) {
	rel := bytes.IndexByte(source[n.Start:], '>')
	if rel < 0 {
		return
	}
	tagEnd := n.Start + rel + 1
	tag := source[n.Start:tagEnd]

	matches := attrPattern.FindAllSubmatchIndex(tag, -1)
	used := make([]bool, len(matches))

	for i := range n.Attrs {
		a := &n.Attrs[i]
		for m, idx := range matches {
			if used[m] {
				continue
			}
			name := string(tag[idx[2]:idx[3]])
			if name != a.Name {
				continue
			}
			used[m] = true
			a.NameStart = n.Start + idx[2]
			a.NameEnd = n.Start + idx[3]
			// idx[4]/idx[5] is the double-quoted group, idx[6]/idx[7]
			// the single-quoted group; exactly one is set.
			if idx[4] >= 0 {
				a.ValueStart = n.Start + idx[4]
				a.ValueEnd = n.Start + idx[5]
			} else if idx[6] >= 0 {
				a.ValueStart = n.Start + idx[6]
				a.ValueEnd = n.Start + idx[7]
			}
			break
		}
	}
}

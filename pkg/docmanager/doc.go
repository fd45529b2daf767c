// Package docmanager owns the per-URI parsed-document cache: the
// ParserRegistry described in spec.md §2 component 5. It converts
// between byte offsets and line/column positions, classifies the token
// under a cursor (tag name, attribute name, attribute value), and gates
// re-parsing behind a 500ms debounce so rapid edits don't re-walk the
// whole document on every keystroke. It consumes a DocumentProvider (for
// editor-owned buffers) and an fsutil.Probe (for on-disk fallback)
// rather than touching the filesystem or an editor API directly.
package docmanager

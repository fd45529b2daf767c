// Package checker implements the Skin Document Checker (spec.md §2
// component 11 / §4.5): a depth-first tree walk over a parsed document
// that emits diagnostics for structural problems (unclosed tags,
// duplicate definitions), scoping problems (undefined style/form/image
// references), attribute problems (unknown attribute name, value that
// doesn't match its declared type, undefined enum entry), and
// expression problems (syntax errors, undefined variables, the legacy
// divide/modulo-by-zero quirk) surfaced by pkg/exprlang.
//
// The walk is cooperative: every Budget.Exceeded() check is a chunk
// boundary the real editor-facing scheduler (outside this package's
// scope) can use to yield and resume, and every check carries the
// analyzer's current check epoch so a stale in-flight validation can
// tell it has been superseded and stop early rather than racing a
// newer one to completion.
package checker

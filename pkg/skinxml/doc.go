// Package skinxml is the XML Parser Layer and DOM Helper component: it
// turns raw skin-document bytes into a lenient DOM (a tree of *Node) that
// keeps byte offsets for every element and attribute, tolerating the kind
// of malformed markup (unclosed tags, stray top-level text) that a strict
// encoding/xml unmarshal would reject outright. Diagnostics for recovered
// syntax errors are returned alongside the tree rather than failing the
// whole parse, since the checker (pkg/checker) still wants to analyze the
// well-formed parts of a broken document.
package skinxml

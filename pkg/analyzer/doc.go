// Package analyzer is the top-level facade wiring the class model,
// cross-file scope graph, document cache, checker, and intellisense
// provider into one process-wide object, matching the single external
// entry point a language-server host or CLI runner drives (spec.md §2,
// §5, §6). It owns no protocol framing of its own: cmd/skinlint and
// cmd/skinwatch each translate their own surface (stdout lines, a
// terminal dashboard) on top of the operations exposed here.
package analyzer

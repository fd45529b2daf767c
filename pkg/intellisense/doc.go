// Package intellisense implements the IntelliSense Provider (spec.md
// §4.6): hover, attribute-type-directed completion, go-to-definition,
// find-references, and prepare-rename over a parsed skin document.
//
// Every entry point takes its collaborators (class model, scope,
// variable resolver) as constructor arguments rather than reaching for
// global state, grounded on the teacher's dependency-injection style in
// pkg/idml/interfaces.go: completion/hover/definition queries never
// mutate anything they are handed, matching spec.md §5's "Completion/
// hover queries never mutate state".
package intellisense

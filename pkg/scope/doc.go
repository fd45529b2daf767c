// Package scope implements the Skin Definition Parser (spec.md §2
// component 9): skin-pack root discovery (the nearest ancestor
// directory carrying a skin.xml, distinct from fsutil's repo.json
// marker), <Import> resolution across packs, and the cross-file
// definition lookups the checker and intellisense packages build on —
// is_defined, lookup_definition (override-wins, with a glob fallback
// for `<External name="pat*"/>`-declared wildcard definitions), and
// find_definitions (deduplicated by source node; names are returned as
// indexed, with no namespace prefix stripped or added).
package scope

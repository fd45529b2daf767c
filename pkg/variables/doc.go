// Package variables implements the `$name` Variable Resolver (spec.md
// §2/§4): given a value string, it scans for every embedded `$name`
// token (which may appear anywhere in the string, e.g. "Row_$i"), walks
// the enclosing scope for each token's reachable <Define>-shaped
// definition, recursively expands any nested `$name` tokens inside each
// definition's value text, and returns every resulting candidate
// expansion as a Token. Multiple definitions in scope (e.g. a base
// value overridden inside a <ViewInstantiation>) fan out into multiple
// candidate Tokens rather than picking one winner, mirroring the legacy
// resolver's "show every possibility" completion/hover behavior. Cycles
// (a definition that, directly or transitively, references itself) are
// broken via a visited-site guard keyed on (uri, element byte offset),
// and the resulting Token is marked non-concrete rather than the walk
// recursing forever.
package variables

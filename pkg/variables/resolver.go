package variables

import (
	"fmt"
	"regexp"
	"strconv"
)

// maxExpansions bounds the cross product of candidate expansions a
// single ResolveVariable call can produce, so a pathologically
// branching chain of definitions cannot blow up completion/hover
// latency. Exceeding it truncates rather than erroring.
const maxExpansions = 32

// tokenPattern matches one bare "$name" reference embedded anywhere in
// a value string (spec.md §4.3's "Row_$i" -> "Row_1" style tokens, not
// a "${...}" placeholder syntax). An identifier may carry ".member"
// segments for "$Theme.<metric>" lookups.
var tokenPattern = regexp.MustCompile(`\$[A-Za-z_][A-Za-z0-9_]*(?:\.[A-Za-z_][A-Za-z0-9_]*)*`)

// Resolver walks Provider to expand variable references into Tokens.
type Resolver struct {
	provider Provider
}

// NewResolver creates a Resolver backed by provider.
func NewResolver(provider Provider) *Resolver {
	return &Resolver{provider: provider}
}

// ResolveVariable scans text for every embedded "$name" token and
// returns the cross product of their candidate expansions. Text
// carrying no "$" token is returned unchanged as a single concrete
// Token.
func (r *Resolver) ResolveVariable(text string) []Token {
	return r.expand(text, map[string]bool{})
}

// DefineSites returns every site defining name directly, with no
// expansion of nested "$name" references, for go-to-definition and
// find-references (which need source locations, not expanded values).
func (r *Resolver) DefineSites(name string) []DefineSite {
	return r.provider.LookupDefines(name)
}

func (r *Resolver) resolveName(name string, visited map[string]bool) []Token {
	sites := r.provider.LookupDefines(name)
	if len(sites) == 0 {
		if v, ok := r.provider.ThemeMetric(name); ok {
			return []Token{{Value: strconv.FormatFloat(v, 'g', -1, 64), IsConcrete: true}}
		}
		return nil
	}

	var out []Token
	for _, site := range sites {
		key := fmt.Sprintf("%s:%d", site.URI, site.Offset)
		if visited[key] {
			// Cycle: the fallback value deliberately carries no further
			// "$name" tokens, so expand never re-enters this site and
			// the walk is guaranteed to terminate.
			out = append(out, Token{Value: "", IsConcrete: false})
			continue
		}
		child := cloneVisited(visited)
		child[key] = true
		out = append(out, r.expand(site.ValueText, child)...)
		if len(out) >= maxExpansions {
			break
		}
	}
	if len(out) > maxExpansions {
		out = out[:maxExpansions]
	}
	return out
}

// expand replaces every `$name` token in text with each of its
// candidate expansions, producing the cross product (bounded by
// maxExpansions). Text with no token is returned unchanged as a single
// concrete Token.
func (r *Resolver) expand(text string, visited map[string]bool) []Token {
	loc := tokenPattern.FindStringIndex(text)
	if loc == nil {
		return []Token{{Value: text, IsConcrete: true}}
	}

	refName := text[loc[0]+1 : loc[1]]
	prefix := text[:loc[0]]
	suffix := text[loc[1]:]

	inner := r.resolveName(refName, visited)
	if len(inner) == 0 {
		return []Token{{Value: prefix + suffix, IsConcrete: false}}
	}

	var out []Token
	for _, innerTok := range inner {
		rest := r.expand(prefix+innerTok.Value+suffix, visited)
		for _, restTok := range rest {
			out = append(out, Token{
				Value:      restTok.Value,
				IsConcrete: innerTok.IsConcrete && restTok.IsConcrete,
			})
			if len(out) >= maxExpansions {
				return out
			}
		}
	}
	return out
}

func cloneVisited(visited map[string]bool) map[string]bool {
	out := make(map[string]bool, len(visited)+1)
	for k, v := range visited {
		out[k] = v
	}
	return out
}

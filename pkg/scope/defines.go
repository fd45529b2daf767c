package scope

import (
	"strconv"
	"strings"

	"github.com/dimelords/skinlang/pkg/skinxml"
	"github.com/dimelords/skinlang/pkg/variables"
)

// LookupDefines returns every `<define>`, `<foreach>`, and
// `<styleselector>` site naming name, reachable from pack (itself and
// its transitive imports).
//
// This simplifies spec.md §4.3's full ancestor/form-boundary walk (which
// additionally orders candidates by proximity to one specific query
// element, and jumps across `<ViewInstantiation>` edges to a form's
// other call sites) down to a flat reachability search: every matching
// site anywhere in the pack's scope is a candidate. That is what
// completion and go-to-definition actually need; exact proximity
// ordering only matters for picking a single "best" resolution during
// type-checking, which pkg/checker does not attempt for variables.
func (s *Scope) LookupDefines(pack, name string) []variables.DefineSite {
	var out []variables.DefineSite
	for _, p := range s.importChain(pack) {
		for _, f := range s.files[p] {
			if f.Root == nil {
				continue
			}
			f.Root.Walk(func(n *skinxml.Node) {
				out = append(out, defineSitesFromNode(f.URI, n, name)...)
			})
		}
	}
	return out
}

func defineSitesFromNode(uri string, n *skinxml.Node, name string) []variables.DefineSite {
	switch n.Name {
	case "define":
		return defineAttributeSites(uri, n, name)
	case "foreach":
		return foreachSites(uri, n, name)
	case "styleselector":
		return styleSelectorSites(uri, n, name)
	}
	return nil
}

func defineAttributeSites(uri string, n *skinxml.Node, name string) []variables.DefineSite {
	var out []variables.DefineSite
	for _, a := range n.Attrs {
		if a.Name != name {
			continue
		}
		out = append(out, variables.DefineSite{
			URI: uri, Offset: a.NameStart, Name: a.Name, ValueText: a.Value,
		})
	}
	return out
}

func foreachSites(uri string, n *skinxml.Node, name string) []variables.DefineSite {
	varAttr, ok := n.Attr("variable")
	if !ok || strings.TrimPrefix(varAttr.Value, "$") != name {
		return nil
	}
	values := foreachValues(n)
	out := make([]variables.DefineSite, 0, len(values))
	for _, v := range values {
		out = append(out, variables.DefineSite{
			URI: uri, Offset: varAttr.NameStart, Name: name, ValueText: v,
		})
	}
	return out
}

// foreachValues resolves either the explicit "in" list or a numeric
// "start"/"count" range (unrolled up to 100 entries, spec.md §4.3).
func foreachValues(n *skinxml.Node) []string {
	if in, ok := n.Attr("in"); ok {
		return splitList(in.Value)
	}
	startAttr, hasStart := n.Attr("start")
	countAttr, hasCount := n.Attr("count")
	if !hasStart || !hasCount {
		return nil
	}
	start, err1 := strconv.Atoi(strings.TrimSpace(startAttr.Value))
	count, err2 := strconv.Atoi(strings.TrimSpace(countAttr.Value))
	if err1 != nil || err2 != nil || count <= 0 || count > 100 {
		return nil
	}
	out := make([]string, count)
	for i := 0; i < count; i++ {
		out[i] = strconv.Itoa(start + i)
	}
	return out
}

func styleSelectorSites(uri string, n *skinxml.Node, name string) []variables.DefineSite {
	varAttr, ok := n.Attr("variable")
	if !ok || strings.TrimPrefix(varAttr.Value, "$") != name {
		return nil
	}
	stylesAttr, ok := n.Attr("styles")
	if !ok {
		return nil
	}
	values := splitList(stylesAttr.Value)
	out := make([]variables.DefineSite, 0, len(values))
	for _, v := range values {
		out = append(out, variables.DefineSite{
			URI: uri, Offset: varAttr.NameStart, Name: name, ValueText: v,
		})
	}
	return out
}

// splitList splits a comma- or space-separated attribute value into its
// non-empty fields.
func splitList(s string) []string {
	s = strings.ReplaceAll(s, ",", " ")
	return strings.Fields(s)
}

package scope_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dimelords/skinlang/pkg/scope"
	"github.com/dimelords/skinlang/pkg/skinxml"
)

func parseAndIndex(t *testing.T, uri, src string) *skinxml.Node {
	t.Helper()
	root, _ := skinxml.Parse([]byte(src))
	return root
}

func TestLookupDefines_DefineAttribute(t *testing.T) {
	src := `<Skin><define color="#ff0000"/></Skin>`
	root := parseAndIndex(t, "a.xml", src)

	s := scope.New()
	s.RegisterPack(&scope.PackInfo{Name: "Main"})
	s.AddFile(&scope.FileEntry{URI: "a.xml", Pack: "Main", Root: root})

	sites := s.LookupDefines("Main", "color")
	require.Len(t, sites, 1)
	assert.Equal(t, "#ff0000", sites[0].ValueText)
}

func TestLookupDefines_ForeachInList(t *testing.T) {
	src := `<Skin><foreach variable="n" in="a,b,c"/></Skin>`
	root := parseAndIndex(t, "a.xml", src)

	s := scope.New()
	s.RegisterPack(&scope.PackInfo{Name: "Main"})
	s.AddFile(&scope.FileEntry{URI: "a.xml", Pack: "Main", Root: root})

	sites := s.LookupDefines("Main", "n")
	require.Len(t, sites, 3)
	var values []string
	for _, site := range sites {
		values = append(values, site.ValueText)
	}
	assert.Equal(t, []string{"a", "b", "c"}, values)
}

func TestLookupDefines_ForeachStartCount(t *testing.T) {
	src := `<Skin><foreach variable="i" start="2" count="3"/></Skin>`
	root := parseAndIndex(t, "a.xml", src)

	s := scope.New()
	s.RegisterPack(&scope.PackInfo{Name: "Main"})
	s.AddFile(&scope.FileEntry{URI: "a.xml", Pack: "Main", Root: root})

	sites := s.LookupDefines("Main", "i")
	require.Len(t, sites, 3)
	var values []string
	for _, site := range sites {
		values = append(values, site.ValueText)
	}
	assert.Equal(t, []string{"2", "3", "4"}, values)
}

func TestLookupDefines_StyleSelector(t *testing.T) {
	src := `<Skin><styleselector variable="$x" styles="A B C"/></Skin>`
	root := parseAndIndex(t, "a.xml", src)

	s := scope.New()
	s.RegisterPack(&scope.PackInfo{Name: "Main"})
	s.AddFile(&scope.FileEntry{URI: "a.xml", Pack: "Main", Root: root})

	sites := s.LookupDefines("Main", "x")
	require.Len(t, sites, 3)
}

func TestLookupDefines_AcrossImport(t *testing.T) {
	base := parseAndIndex(t, "base.xml", `<Skin><define token="shared"/></Skin>`)
	main := parseAndIndex(t, "main.xml", `<Skin><Import pack="Base"/></Skin>`)

	s := scope.New()
	s.RegisterPack(&scope.PackInfo{Name: "Base"})
	s.AddFile(&scope.FileEntry{URI: "base.xml", Pack: "Base", Root: base})
	s.RegisterPack(&scope.PackInfo{Name: "Main", Imports: []string{"Base"}})
	s.AddFile(&scope.FileEntry{URI: "main.xml", Pack: "Main", Root: main})

	sites := s.LookupDefines("Main", "token")
	require.Len(t, sites, 1)
	assert.Equal(t, "shared", sites[0].ValueText)
}

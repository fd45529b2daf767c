package variables_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dimelords/skinlang/pkg/variables"
)

type fakeProvider struct {
	defines map[string][]variables.DefineSite
	metrics map[string]float64
}

func (p *fakeProvider) LookupDefines(name string) []variables.DefineSite {
	return p.defines[name]
}

func (p *fakeProvider) ThemeMetric(name string) (float64, bool) {
	v, ok := p.metrics[name]
	return v, ok
}

func TestResolver_SimpleValue(t *testing.T) {
	p := &fakeProvider{defines: map[string][]variables.DefineSite{
		"width": {{URI: "a.xml", Offset: 10, Name: "width", ValueText: "100"}},
	}}
	r := variables.NewResolver(p)
	toks := r.ResolveVariable("$width")
	require.Len(t, toks, 1)
	assert.Equal(t, "100", toks[0].Value)
	assert.True(t, toks[0].IsConcrete)
}

func TestResolver_EmbeddedToken(t *testing.T) {
	p := &fakeProvider{defines: map[string][]variables.DefineSite{
		"i": {
			{URI: "a.xml", Offset: 10, Name: "i", ValueText: "1"},
			{URI: "a.xml", Offset: 20, Name: "i", ValueText: "2"},
			{URI: "a.xml", Offset: 30, Name: "i", ValueText: "3"},
		},
	}}
	r := variables.NewResolver(p)
	toks := r.ResolveVariable("Row_$i")
	require.Len(t, toks, 3)
	var values []string
	for _, tok := range toks {
		values = append(values, tok.Value)
		assert.True(t, tok.IsConcrete)
	}
	assert.ElementsMatch(t, []string{"Row_1", "Row_2", "Row_3"}, values)
}

func TestResolver_NoTokenReturnsLiteral(t *testing.T) {
	r := variables.NewResolver(&fakeProvider{})
	toks := r.ResolveVariable("plain text")
	require.Len(t, toks, 1)
	assert.Equal(t, "plain text", toks[0].Value)
	assert.True(t, toks[0].IsConcrete)
}

func TestResolver_NestedReference(t *testing.T) {
	p := &fakeProvider{defines: map[string][]variables.DefineSite{
		"margin": {{URI: "a.xml", Offset: 10, Name: "margin", ValueText: "$basepx"}},
		"basepx": {{URI: "a.xml", Offset: 20, Name: "basepx", ValueText: "8px"}},
	}}
	r := variables.NewResolver(p)
	toks := r.ResolveVariable("$margin")
	require.Len(t, toks, 1)
	assert.Equal(t, "8px", toks[0].Value)
	assert.True(t, toks[0].IsConcrete)
}

func TestResolver_MultipleDefinitionsFanOut(t *testing.T) {
	p := &fakeProvider{defines: map[string][]variables.DefineSite{
		"color": {
			{URI: "a.xml", Offset: 10, Name: "color", ValueText: "red"},
			{URI: "b.xml", Offset: 30, Name: "color", ValueText: "blue"},
		},
	}}
	r := variables.NewResolver(p)
	toks := r.ResolveVariable("$color")
	require.Len(t, toks, 2)
	var values []string
	for _, tok := range toks {
		values = append(values, tok.Value)
	}
	assert.ElementsMatch(t, []string{"red", "blue"}, values)
}

func TestResolver_CycleGuard(t *testing.T) {
	p := &fakeProvider{defines: map[string][]variables.DefineSite{
		"a": {{URI: "a.xml", Offset: 10, Name: "a", ValueText: "$b"}},
		"b": {{URI: "a.xml", Offset: 20, Name: "b", ValueText: "$a"}},
	}}
	r := variables.NewResolver(p)
	toks := r.ResolveVariable("$a")
	require.NotEmpty(t, toks)
	assert.False(t, toks[0].IsConcrete)
}

func TestResolver_ThemeMetricFallback(t *testing.T) {
	p := &fakeProvider{metrics: map[string]float64{"Theme.DefaultMargin": 12}}
	r := variables.NewResolver(p)
	toks := r.ResolveVariable("$Theme.DefaultMargin")
	require.Len(t, toks, 1)
	assert.Equal(t, "12", toks[0].Value)
}

func TestResolver_UndefinedReturnsNonConcrete(t *testing.T) {
	p := &fakeProvider{}
	r := variables.NewResolver(p)
	toks := r.ResolveVariable("$nothing")
	require.Len(t, toks, 1)
	assert.False(t, toks[0].IsConcrete)
}

package analyzer_test

import (
	"sort"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dimelords/skinlang/pkg/analyzer"
	"github.com/dimelords/skinlang/pkg/checker"
	"github.com/dimelords/skinlang/pkg/docmanager"
	"github.com/dimelords/skinlang/pkg/fsutil"
)

const elementsXML = `<Model>
	<Model.Class name="Skin"/>
	<Model.Class name="Styles"/>
	<Model.Class name="Style">
		<List x:id="members">
			<Model.Member name="name" type="String"/>
		</List>
	</Model.Class>
	<Model.Class name="Button">
		<List x:id="members">
			<Model.Member name="style" type="Style"/>
		</List>
	</Model.Class>
</Model>`

func buildRepo(t *testing.T) (*fsutil.MemProbe, *fsutil.Locator) {
	t.Helper()
	probe := fsutil.NewMemProbe()
	mod := time.Unix(1, 0)
	probe.SetFile("/repo/repo.json", `{}`, mod)
	probe.SetFile("/repo/classmodels/Skin Elements.classModel", elementsXML, mod)
	probe.SetFile("/repo/skins/Main/skin.xml",
		`<Skin><Styles><Style name="Base"/></Styles><Button style="Base"/></Skin>`, mod)
	locator := fsutil.NewLocator(probe, fsutil.DefaultRepoConfig())
	return probe, locator
}

func buildAnalyzer(t *testing.T) *analyzer.Analyzer {
	t.Helper()
	probe, locator := buildRepo(t)
	a := analyzer.New(probe, locator, "/repo", docmanager.NoProvider{}, docmanager.RealClock{})
	require.NoError(t, a.LoadClassModels())
	return a
}

func TestLoadClassModels_MissingElementsFails(t *testing.T) {
	probe := fsutil.NewMemProbe()
	probe.SetFile("/repo/repo.json", `{}`, time.Unix(1, 0))
	locator := fsutil.NewLocator(probe, fsutil.DefaultRepoConfig())
	a := analyzer.New(probe, locator, "/repo", docmanager.NoProvider{}, docmanager.RealClock{})
	assert.Error(t, a.LoadClassModels())
}

func TestCheckDocument_NoDiagnosticsForValidStyle(t *testing.T) {
	a := buildAnalyzer(t)
	a.IndexRepository()

	result, ok := a.CheckDocument("/repo/skins/Main/skin.xml", nil)
	require.True(t, ok)
	assert.False(t, result.Truncated)
	for _, d := range result.Diagnostics {
		t.Errorf("unexpected diagnostic: %s", d.Message)
	}
}

func TestCheckDocument_UndefinedStyleReported(t *testing.T) {
	probe, locator := buildRepo(t)
	probe.SetFile("/repo/skins/Main/skin.xml",
		`<Skin><Button style="Missing"/></Skin>`, time.Unix(1, 0))
	a := analyzer.New(probe, locator, "/repo", docmanager.NoProvider{}, docmanager.RealClock{})
	require.NoError(t, a.LoadClassModels())
	a.IndexRepository()

	result, ok := a.CheckDocument("/repo/skins/Main/skin.xml", nil)
	require.True(t, ok)

	var found bool
	for _, d := range result.Diagnostics {
		if d.Code == checker.CodeUndefinedReference {
			found = true
		}
	}
	assert.True(t, found, "expected an undefined-style diagnostic")
}

func TestCheckDocument_DiagnosticCodes_MatchExactly(t *testing.T) {
	probe, locator := buildRepo(t)
	probe.SetFile("/repo/skins/Main/skin.xml",
		`<Skin><Button style="Missing" color="purple"/></Skin>`, time.Unix(1, 0))
	a := analyzer.New(probe, locator, "/repo", docmanager.NoProvider{}, docmanager.RealClock{})
	require.NoError(t, a.LoadClassModels())
	a.IndexRepository()

	result, ok := a.CheckDocument("/repo/skins/Main/skin.xml", nil)
	require.True(t, ok)

	var got []string
	for _, d := range result.Diagnostics {
		got = append(got, string(d.Code))
	}
	sort.Strings(got)

	want := []string{string(checker.CodeUndefinedReference), string(checker.CodeUnknownAttribute)}
	sort.Strings(want)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("diagnostic codes mismatch (-want +got):\n%s", diff)
	}
}

func TestFindCompletions_StyleAttributeValue(t *testing.T) {
	a := buildAnalyzer(t)
	a.IndexRepository()

	uri := "/repo/skins/Main/skin.xml"
	text, _ := probeRead(a)
	offset := indexOf(text, `style="Base"`) + len(`style="`)

	items := a.FindCompletions(uri, offset)
	var labels []string
	for _, it := range items {
		labels = append(labels, it.Label)
	}
	assert.Contains(t, labels, "Base")
}

func probeRead(a *analyzer.Analyzer) (string, bool) {
	doc, ok := a.Documents.Get("/repo/skins/Main/skin.xml")
	if !ok {
		return "", false
	}
	return doc.Text, true
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}

func TestDocumentColors_ResolvesColorAttribute(t *testing.T) {
	probe, locator := buildRepo(t)
	probe.SetFile("/repo/classmodels/Skin Elements.classModel", `<Model>
		<Model.Class name="Skin"/>
		<Model.Class name="Button">
			<List x:id="members">
				<Model.Member name="color" type="Color"/>
			</List>
		</Model.Class>
	</Model>`, time.Unix(1, 0))
	probe.SetFile("/repo/skins/Main/skin.xml", `<Skin><Button color="#ff0000"/></Skin>`, time.Unix(1, 0))

	a := analyzer.New(probe, locator, "/repo", docmanager.NoProvider{}, docmanager.RealClock{})
	require.NoError(t, a.LoadClassModels())
	a.IndexRepository()

	_, ok := a.CheckDocument("/repo/skins/Main/skin.xml", nil)
	require.True(t, ok)

	colors := a.DocumentColors("/repo/skins/Main/skin.xml")
	require.Len(t, colors, 1)
	assert.Equal(t, "#ff0000ff", colors[0].Color.String())
}

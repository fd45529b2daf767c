package main

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dimelords/skinlang/pkg/analyzer"
	"github.com/dimelords/skinlang/pkg/docmanager"
	"github.com/dimelords/skinlang/pkg/fsutil"
)

func downKey() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyDown}
}

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

func buildTestAnalyzer(t *testing.T, skinXML string) (*analyzer.Analyzer, *fsutil.Locator) {
	t.Helper()
	probe := fsutil.NewMemProbe()
	mod := time.Unix(1, 0)
	probe.SetFile("/repo/repo.json", `{}`, mod)
	probe.SetFile("/repo/classmodels/Skin Elements.classModel", elementsXML, mod)
	probe.SetFile("/repo/skins/Main/skin.xml", skinXML, mod)
	locator := fsutil.NewLocator(probe, fsutil.DefaultRepoConfig())

	a := analyzer.New(probe, locator, "/repo", docmanager.NoProvider{}, docmanager.RealClock{})
	require.NoError(t, a.LoadClassModels())
	a.IndexRepository()
	return a, locator
}

func TestModel_CheckAll_NoDiagnostics(t *testing.T) {
	a, locator := buildTestAnalyzer(t, `<Skin><Styles><Style name="Base"/></Styles><Button style="Base"/></Skin>`)
	m := newModel(a, locator, "/repo", nil)
	assert.Empty(t, m.files)
}

func TestModel_CheckAll_ReportsUndefinedStyle(t *testing.T) {
	a, locator := buildTestAnalyzer(t, `<Skin><Button style="Missing"/></Skin>`)
	m := newModel(a, locator, "/repo", nil)
	require.Len(t, m.files, 1)
	assert.NotEmpty(t, m.files["/repo/skins/Main/skin.xml"])
}

func TestModel_CursorNavigation(t *testing.T) {
	a, locator := buildTestAnalyzer(t, `<Skin><Button style="Missing"/></Skin>`)
	m := newModel(a, locator, "/repo", nil)

	assert.Equal(t, 0, m.cursor)
	updated, _ := m.Update(downKey())
	m = updated.(*model)
	assert.Equal(t, 0, m.cursor, "single file: down should not move past the last row")
}

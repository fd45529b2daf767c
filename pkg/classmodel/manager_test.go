package classmodel_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dimelords/skinlang/pkg/classmodel"
)

// fakeFS is an in-memory classmodel.FileSource for tests.
type fakeFS struct {
	files map[string][]byte
	mods  map[string]time.Time
}

func newFakeFS() *fakeFS {
	return &fakeFS{files: map[string][]byte{}, mods: map[string]time.Time{}}
}

func (f *fakeFS) set(path, content string, mod time.Time) {
	f.files[path] = []byte(content)
	f.mods[path] = mod
}

func (f *fakeFS) ReadFile(path string) ([]byte, error) {
	if data, ok := f.files[path]; ok {
		return data, nil
	}
	return nil, assertErrNotFound
}

func (f *fakeFS) ModTime(path string) (time.Time, bool) {
	t, ok := f.mods[path]
	return t, ok
}

var assertErrNotFound = &os404{}

type os404 struct{}

func (*os404) Error() string { return "file not found" }

const elementsXML = `<Model>
  <Model.Class name="Layout" abstract="true">
    <List x:id="members">
      <Model.Member name="layout.class" type="Enum"/>
    </List>
  </Model.Class>
  <Model.Class name="View" parent="Layout">
    <Attributes x:id="attributes">
      <Class:SchemaGroups>Container</Class:SchemaGroups>
      <Class:ChildGroup>Layout</Class:ChildGroup>
    </Attributes>
    <List x:id="members">
      <Model.Member name="name" type="String"/>
      <Model.Member name="style" type="String"/>
      <Model.Member name="color" type="String"/>
    </List>
    <Model.Documentation>
      <String x:id="brief">A view element.</String>
    </Model.Documentation>
  </Model.Class>
  <Model.Class name="foreach">
    <List x:id="members">
      <Model.Member name="name" type="String"/>
      <Model.Member name="variable" type="String"/>
    </List>
  </Model.Class>
  <Model.Class name="Panel">
    <Attributes x:id="attributes">
      <Class:ChildGroup>PanelContent</Class:ChildGroup>
    </Attributes>
  </Model.Class>
  <Model.Class name="Button">
    <Attributes x:id="attributes">
      <Class:SchemaGroups>PanelContent</Class:SchemaGroups>
    </Attributes>
  </Model.Class>
  <Model.Class name="Image"/>
  <Model.Enumeration name="Layout.layout.class">
    <Model.Enumerator name="box"/>
    <Model.Enumerator name="clipper"/>
  </Model.Enumeration>
</Model>`

func TestFindValidAttributes_InheritsAndGuesses(t *testing.T) {
	fs := newFakeFS()
	fs.set("elements.xml", elementsXML, time.Unix(1, 0))

	mgr := classmodel.NewManager(fs)
	require.NoError(t, mgr.LoadClassModel("elements.xml"))

	attrs := mgr.FindValidAttributes("View")
	assert.Equal(t, classmodel.StyleArray, attrs["style"])
	assert.Equal(t, classmodel.Color, attrs["color"])
	assert.Equal(t, classmodel.Enum, attrs["layout.class"])
}

func TestFindValidAttributes_DropsNameForStatements(t *testing.T) {
	fs := newFakeFS()
	fs.set("elements.xml", elementsXML, time.Unix(1, 0))

	mgr := classmodel.NewManager(fs)
	require.NoError(t, mgr.LoadClassModel("elements.xml"))

	attrs := mgr.FindValidAttributes("foreach")
	_, hasName := attrs["name"]
	assert.False(t, hasName)
}

func TestLoadClassModel_NoOpWithoutModTimeChange(t *testing.T) {
	fs := newFakeFS()
	fs.set("elements.xml", elementsXML, time.Unix(1, 0))

	mgr := classmodel.NewManager(fs)
	require.NoError(t, mgr.LoadClassModel("elements.xml"))
	require.NoError(t, mgr.LoadClassModel("elements.xml"))

	assert.True(t, mgr.IsClassModelLoaded())
}

func TestFindSkinElementDefinitions_SpecialCases(t *testing.T) {
	fs := newFakeFS()
	fs.set("elements.xml", elementsXML, time.Unix(1, 0))

	mgr := classmodel.NewManager(fs)
	require.NoError(t, mgr.LoadClassModel("elements.xml"))

	names := mgr.FindSkinElementDefinitions("box", true)
	assert.Contains(t, names, "Horizontal")
	assert.Contains(t, names, "Vertical")
}

func TestIsSkinElementValidInScope(t *testing.T) {
	fs := newFakeFS()
	fs.set("elements.xml", elementsXML, time.Unix(1, 0))

	mgr := classmodel.NewManager(fs)
	require.NoError(t, mgr.LoadClassModel("elements.xml"))

	assert.True(t, mgr.IsSkinElementValidInScope("Panel", "Button"))
	assert.False(t, mgr.IsSkinElementValidInScope("Panel", "Image"))
}

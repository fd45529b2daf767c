package skinindex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dimelords/skinlang/pkg/skinindex"
	"github.com/dimelords/skinlang/pkg/skinxml"
)

func TestIndexFile_BasicCategories(t *testing.T) {
	src := `<SkinPack>
		<Styles><Style name="Base"/></Styles>
		<Images><Image name="Icon" frames="a b c"/></Images>
		<Forms><Form name="Main"><ViewInstantiation form="Dialog"/></Form></Forms>
	</SkinPack>`
	root, errs := skinxml.Parse([]byte(src))
	require.Empty(t, errs)

	info := skinindex.IndexFile("a.xml", root)

	require.Len(t, info.Lookup(skinindex.CategoryStyle, "Base"), 1)
	require.Len(t, info.Lookup(skinindex.CategoryImage, "Icon"), 1)
	require.Len(t, info.Lookup(skinindex.CategoryImage, "Icon.a"), 1)
	require.Len(t, info.Lookup(skinindex.CategoryImage, "Icon.c"), 1)

	assert.ElementsMatch(t, []string{"Dialog"}, info.FormDependencies["Main"])
}

func TestIndexFile_DuplicateDetection(t *testing.T) {
	src := `<SkinPack><Styles>
		<Style name="Base"/>
		<Style name="Base"/>
	</Styles></SkinPack>`
	root, _ := skinxml.Parse([]byte(src))
	info := skinindex.IndexFile("a.xml", root)
	require.Len(t, info.Duplicates, 1)
	assert.Equal(t, "Base", info.Duplicates[0].Name)
}

func TestIndexFile_OverrideSkipsDuplicate(t *testing.T) {
	src := `<SkinPack><Styles>
		<Style name="Base"/>
		<Style name="Base" override="true"/>
	</Styles></SkinPack>`
	root, _ := skinxml.Parse([]byte(src))
	info := skinindex.IndexFile("a.xml", root)
	assert.Empty(t, info.Duplicates)
}

func TestIndexFile_DelegatesNoDuplicateCheck(t *testing.T) {
	src := `<SkinPack><Delegates>
		<Delegate name="Row" size="Large"/>
		<Delegate name="Row" size="Small"/>
	</Delegates></SkinPack>`
	root, _ := skinxml.Parse([]byte(src))
	info := skinindex.IndexFile("a.xml", root)
	assert.Len(t, info.Delegates["Row"], 2)
	assert.Empty(t, info.Duplicates)
}

func TestIndexFile_PlatformGating(t *testing.T) {
	src := `<SkinPack><Styles>
		<?platform mac?>
		<Style name="Base"/>
		<?platform?>
		<?platform win?>
		<Style name="Base"/>
		<?platform?>
	</Styles></SkinPack>`
	root, errs := skinxml.Parse([]byte(src))
	require.Empty(t, errs)
	info := skinindex.IndexFile("a.xml", root)

	defs := info.Lookup(skinindex.CategoryStyle, "Base")
	require.Len(t, defs, 2)
	assert.ElementsMatch(t, []skinindex.Platform{skinindex.PlatformMac, skinindex.PlatformWin},
		[]skinindex.Platform{defs[0].Platform, defs[1].Platform})
	assert.Empty(t, info.Duplicates, "platform variants are not duplicates")
}

func TestIndexFile_FormDependencySkipsConditionalBody(t *testing.T) {
	src := `<SkinPack><Forms><Form name="Main">
		<If><ViewInstantiation form="Hidden"/></If>
		<ViewInstantiation form="Visible"/>
	</Form></Forms></SkinPack>`
	root, _ := skinxml.Parse([]byte(src))
	info := skinindex.IndexFile("a.xml", root)
	assert.ElementsMatch(t, []string{"Visible"}, info.FormDependencies["Main"])
}

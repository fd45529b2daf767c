package fsutil_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dimelords/skinlang/pkg/fsutil"
)

func TestFindRepoRoot(t *testing.T) {
	probe := fsutil.NewMemProbe()
	probe.SetFile("repo.json", `{}`, time.Unix(1, 0))
	probe.SetFile("skins/MyPack/skin.xml", "<Skin/>", time.Unix(1, 0))

	loc := fsutil.NewLocator(probe, fsutil.RepoConfig{})
	root, ok := loc.FindRepoRoot("skins/MyPack")
	require.True(t, ok)
	assert.Equal(t, ".", root)
}

func TestFindRepoRoot_NotFound(t *testing.T) {
	probe := fsutil.NewMemProbe()
	probe.SetFile("skins/MyPack/skin.xml", "<Skin/>", time.Unix(1, 0))

	loc := fsutil.NewLocator(probe, fsutil.RepoConfig{})
	_, ok := loc.FindRepoRoot("skins/MyPack")
	assert.False(t, ok)
}

func TestClassModelPath(t *testing.T) {
	probe := fsutil.NewMemProbe()
	probe.SetFile("classmodels/Skin Elements.classModel", "<Model/>", time.Unix(1, 0))

	loc := fsutil.NewLocator(probe, fsutil.RepoConfig{})
	path, ok := loc.ClassModelPath(".", "Skin Elements.classModel")
	require.True(t, ok)
	assert.Equal(t, "classmodels/Skin Elements.classModel", path)
}

func TestResolveImportedPack(t *testing.T) {
	probe := fsutil.NewMemProbe()
	probe.SetFile("skins/Shared/skin.xml", "<Skin/>", time.Unix(1, 0))

	loc := fsutil.NewLocator(probe, fsutil.RepoConfig{})
	path, ok := loc.ResolveImportedPack(".", "Shared")
	require.True(t, ok)
	assert.Equal(t, "skins/Shared/skin.xml", path)

	_, ok = loc.ResolveImportedPack(".", "Missing")
	assert.False(t, ok)
}

func TestAvailablePacks(t *testing.T) {
	probe := fsutil.NewMemProbe()
	probe.SetFile("skins/Shared/skin.xml", "<Skin/>", time.Unix(1, 0))
	probe.SetFile("skins/Other/skin.xml", "<Skin/>", time.Unix(1, 0))

	loc := fsutil.NewLocator(probe, fsutil.RepoConfig{})
	packs := loc.AvailablePacks(".")
	assert.ElementsMatch(t, []string{"Shared", "Other"}, packs)
}

func TestWalkFiles(t *testing.T) {
	probe := fsutil.NewMemProbe()
	probe.SetFile("skins/MyPack/skin.xml", "<Skin/>", time.Unix(1, 0))
	probe.SetFile("skins/MyPack/sub/forms.xml", "<Skin/>", time.Unix(1, 0))
	probe.SetFile("skins/MyPack/notes.txt", "hi", time.Unix(1, 0))

	loc := fsutil.NewLocator(probe, fsutil.RepoConfig{})
	files := loc.WalkFiles("skins/MyPack", ".xml")
	assert.ElementsMatch(t, []string{"skins/MyPack/skin.xml", "skins/MyPack/sub/forms.xml"}, files)
}

// Package main is skinwatch, an interactive terminal dashboard that
// revalidates a skin repository as files change on disk and shows the
// live diagnostic count (spec.md §5 "Shared state" driven from a
// filesystem-notification loop instead of an editor's didChangeContent).
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"github.com/dimelords/skinlang/pkg/analyzer"
	"github.com/dimelords/skinlang/pkg/docmanager"
	"github.com/dimelords/skinlang/pkg/fsutil"

	"github.com/dimelords/skinlang/internal/repoconfig"
)

func main() {
	repoRoot := "."
	if len(os.Args) > 1 {
		repoRoot = os.Args[1]
	}

	probe := fsutil.OSProbe{}
	cfg, err := repoconfig.Load(probe, probe.Join(repoRoot, fsutil.RepoMarker))
	if err != nil {
		fmt.Fprintf(os.Stderr, "skinwatch: loading %s: %v\n", fsutil.RepoMarker, err)
		os.Exit(1)
	}
	locator := fsutil.NewLocator(probe, cfg)

	a := analyzer.New(probe, locator, repoRoot, docmanager.NoProvider{}, docmanager.RealClock{})
	if err := a.LoadClassModels(); err != nil {
		fmt.Fprintf(os.Stderr, "skinwatch: %v\n", err)
		os.Exit(1)
	}
	a.IndexRepository()

	watcher, err := newRepoWatcher(repoRoot, locator)
	if err != nil {
		fmt.Fprintf(os.Stderr, "skinwatch: %v\n", err)
		os.Exit(1)
	}
	defer watcher.Close()

	m := newModel(a, locator, repoRoot, watcher)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "skinwatch: %v\n", err)
		os.Exit(1)
	}
}

// newRepoWatcher creates an fsnotify.Watcher watching every configured
// skins location and every pack directory beneath it (fsnotify watches
// are not recursive on their own).
func newRepoWatcher(repoRoot string, locator *fsutil.Locator) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}
	for _, loc := range locator.SkinsLocations(repoRoot) {
		addRecursive(watcher, loc)
	}
	return watcher, nil
}

func addRecursive(watcher *fsnotify.Watcher, dir string) {
	probe := fsutil.OSProbe{}
	if err := watcher.Add(dir); err != nil {
		return
	}
	entries, err := probe.ReadDir(dir)
	if err != nil {
		return
	}
	for _, name := range entries {
		full := probe.Join(dir, name)
		if _, err := probe.ReadDir(full); err == nil {
			addRecursive(watcher, full)
		}
	}
}

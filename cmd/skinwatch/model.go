package main

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"github.com/dimelords/skinlang/pkg/analyzer"
	"github.com/dimelords/skinlang/pkg/checker"
	"github.com/dimelords/skinlang/pkg/fsutil"
)

// fileEventMsg wraps one fsnotify event for bubbletea's message loop.
type fileEventMsg struct {
	event fsnotify.Event
	ok    bool
}

// watchErrMsg wraps an error read off the watcher's error channel.
type watchErrMsg struct{ err error }

// model is the skinwatch dashboard: one row per file with diagnostics,
// a running error/warning total, refreshed as fsnotify events arrive.
type model struct {
	analyzer *analyzer.Analyzer
	locator  *fsutil.Locator
	repoRoot string
	watcher  *fsnotify.Watcher

	files    map[string][]checker.Diagnostic
	cursor   int
	quitting bool
}

func newModel(a *analyzer.Analyzer, locator *fsutil.Locator, repoRoot string, watcher *fsnotify.Watcher) *model {
	m := &model{
		analyzer: a,
		locator:  locator,
		repoRoot: repoRoot,
		watcher:  watcher,
		files:    map[string][]checker.Diagnostic{},
	}
	m.checkAll()
	return m
}

func (m *model) Init() tea.Cmd {
	return waitForEvent(m.watcher)
}

// waitForEvent blocks on the watcher's channels and wraps whatever
// arrives first into a tea.Msg, the standard bubbletea bridge for an
// externally driven channel (spec.md §5's filesystem-notification loop
// has no native tea.Cmd equivalent).
func waitForEvent(watcher *fsnotify.Watcher) tea.Cmd {
	return func() tea.Msg {
		select {
		case event, ok := <-watcher.Events:
			return fileEventMsg{event: event, ok: ok}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return watchErrMsg{err: err}
		}
	}
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.sortedPaths())-1 {
				m.cursor++
			}
		case "r":
			m.checkAll()
		}
		return m, nil

	case fileEventMsg:
		if !msg.ok {
			return m, nil
		}
		if strings.HasSuffix(msg.event.Name, ".xml") {
			m.checkOne(msg.event.Name)
		}
		return m, waitForEvent(m.watcher)

	case watchErrMsg:
		return m, waitForEvent(m.watcher)
	}

	return m, nil
}

func (m *model) checkAll() {
	for _, loc := range m.locator.SkinsLocations(m.repoRoot) {
		for _, file := range m.locator.WalkFiles(loc, ".xml") {
			m.checkOne(file)
		}
	}
}

func (m *model) checkOne(uri string) {
	m.analyzer.RefreshFile(uri)
	result, ok := m.analyzer.CheckDocument(uri, checker.Unbounded{})
	if !ok {
		delete(m.files, uri)
		return
	}
	if len(result.Diagnostics) == 0 {
		delete(m.files, uri)
		return
	}
	m.files[uri] = result.Diagnostics
}

func (m *model) sortedPaths() []string {
	paths := make([]string, 0, len(m.files))
	for p := range m.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

func (m *model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render(fmt.Sprintf("skinwatch — %s", m.repoRoot)))
	b.WriteString("\n\n")

	paths := m.sortedPaths()
	if len(paths) == 0 {
		b.WriteString(SuccessStyle.Render("No diagnostics."))
		b.WriteString("\n")
	}

	for i, path := range paths {
		diags := m.files[path]
		style := UnselectedStyle
		if i == m.cursor {
			style = SelectedStyle
		}
		b.WriteString(style.Render(fmt.Sprintf("%s (%d)", path, len(diags))))
		b.WriteString("\n")
		if i == m.cursor {
			for _, d := range diags {
				line := fmt.Sprintf("  %s at %s", d.Message, d.Range.Start)
				if d.Severity == checker.SeverityError {
					b.WriteString(ErrorStyle.Render(line))
				} else {
					b.WriteString(WarningStyle.Render(line))
				}
				b.WriteString("\n")
			}
		}
	}

	var errs, warns int
	for _, diags := range m.files {
		for _, d := range diags {
			if d.Severity == checker.SeverityError {
				errs++
			} else {
				warns++
			}
		}
	}

	b.WriteString(FormatHelp(
		fmt.Sprintf("%d errors", errs),
		fmt.Sprintf("%d warnings", warns),
		"j/k: select",
		"r: recheck all",
		"q: quit",
	))

	return b.String()
}

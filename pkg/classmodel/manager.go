package classmodel

import (
	"time"

	"github.com/dimelords/skinlang/pkg/log"
	"github.com/dimelords/skinlang/pkg/skinerr"
	"go.uber.org/zap"
)

// FileSource is the minimal filesystem capability the Manager needs to load
// a class-model file. It is satisfied by fsutil.Probe; declared locally to
// avoid a dependency from classmodel onto fsutil.
type FileSource interface {
	// ReadFile returns the full contents of path.
	ReadFile(path string) ([]byte, error)
	// ModTime returns the last-modified time of path.
	ModTime(path string) (time.Time, bool)
}

// Manager loads and queries the two class-model files. It is process-wide
// and long-lived: Load* only re-parses when the backing file's modification
// time has changed, grounded on the teacher's ResourceManager caching
// pattern (pkg/idml/resourcemgr.go).
type Manager struct {
	fs FileSource

	elementsPath string
	elementsMod  time.Time
	elementsOK   bool

	stylesPath string
	stylesMod  time.Time
	stylesOK   bool

	classes map[string]*ClassDef
	enums   map[string]*EnumDef

	defaultColors map[string]string
	themeMetrics  map[string]float64
	languages     []string
}

// NewManager creates an empty Manager backed by fs.
func NewManager(fs FileSource) *Manager {
	return &Manager{
		fs:            fs,
		classes:       make(map[string]*ClassDef),
		enums:         make(map[string]*EnumDef),
		defaultColors: make(map[string]string),
		themeMetrics:  make(map[string]float64),
	}
}

// LoadClassModel (re-)loads the "Skin Elements" class model from path,
// re-parsing only if path's modification time has advanced since the last
// successful load.
func (m *Manager) LoadClassModel(path string) error {
	mod, ok := m.fs.ModTime(path)
	if ok && path == m.elementsPath && !mod.After(m.elementsMod) && m.elementsOK {
		return nil
	}

	data, err := m.fs.ReadFile(path)
	if err != nil {
		log.L().Warn("class model file unreadable", zap.String("path", path), zap.Error(err))
		return skinerr.WrapPath("classmodel", "load", path, err)
	}

	classes, enums, err := parseModel(data)
	if err != nil {
		log.L().Warn("class model file malformed", zap.String("path", path), zap.Error(err))
		return skinerr.WrapPath("classmodel", "parse", path, err)
	}

	for name, cd := range classes {
		m.classes[name] = cd
	}
	for name, ed := range enums {
		m.enums[name] = ed
	}

	m.elementsPath = path
	m.elementsMod = mod
	m.elementsOK = true
	return nil
}

// LoadStyleModel (re-)loads the "Visual Styles" class model from path,
// including default colors, theme metrics, and the localized language list
// that only the Visual Styles document carries.
func (m *Manager) LoadStyleModel(path string) error {
	mod, ok := m.fs.ModTime(path)
	if ok && path == m.stylesPath && !mod.After(m.stylesMod) && m.stylesOK {
		return nil
	}

	data, err := m.fs.ReadFile(path)
	if err != nil {
		log.L().Warn("visual styles file unreadable", zap.String("path", path), zap.Error(err))
		return skinerr.WrapPath("classmodel", "load-styles", path, err)
	}

	classes, enums, err := parseModel(data)
	if err != nil {
		log.L().Warn("visual styles file malformed", zap.String("path", path), zap.Error(err))
		return skinerr.WrapPath("classmodel", "parse-styles", path, err)
	}

	for name, cd := range classes {
		m.classes[name] = cd
	}
	for name, ed := range enums {
		m.enums[name] = ed
	}

	colors, metrics, langs := parseStyleExtras(data)
	for k, v := range colors {
		m.defaultColors[k] = v
	}
	for k, v := range metrics {
		m.themeMetrics[k] = v
	}
	if len(langs) > 0 {
		m.languages = langs
	}

	m.stylesPath = path
	m.stylesMod = mod
	m.stylesOK = true
	return nil
}

// IsClassModelLoaded reports whether the Skin Elements model has been
// successfully loaded at least once.
func (m *Manager) IsClassModelLoaded() bool {
	return m.elementsOK
}

// IsStyleModelLoaded reports whether the Visual Styles model has been
// successfully loaded at least once.
func (m *Manager) IsStyleModelLoaded() bool {
	return m.stylesOK
}

// DefaultColorNames returns the known default-color names (case-preserving),
// used by the Color value-type check and completion.
func (m *Manager) DefaultColorNames() []string {
	names := make([]string, 0, len(m.defaultColors))
	for name := range m.defaultColors {
		names = append(names, name)
	}
	return names
}

// DefaultColor returns the hex/functional value registered for a known
// default color name, case-insensitively.
func (m *Manager) DefaultColor(name string) (string, bool) {
	for k, v := range m.defaultColors {
		if eqFold(k, name) {
			return v, true
		}
	}
	return "", false
}

// ThemeMetric resolves "$Theme.<metric>" by longest-name match against the
// loaded theme metrics table, as required by the variable resolver
// (spec.md §4.3).
func (m *Manager) ThemeMetric(name string) (float64, bool) {
	best := ""
	var bestVal float64
	found := false
	for k, v := range m.themeMetrics {
		if len(k) <= len(best) {
			continue
		}
		if name == k || hasSuffixDot(name, k) {
			best, bestVal, found = k, v, true
		}
	}
	return bestVal, found
}

// Languages returns the localized language list from the Visual Styles
// model.
func (m *Manager) Languages() []string {
	return append([]string(nil), m.languages...)
}

// ThemeMetricNames returns every known theme-metric key, used to build
// the "Theme.<metric>" completion tree; ThemeMetric itself only answers
// longest-suffix lookups, not enumeration.
func (m *Manager) ThemeMetricNames() []string {
	names := make([]string, 0, len(m.themeMetrics))
	for k := range m.themeMetrics {
		names = append(names, k)
	}
	return names
}

func hasSuffixDot(name, suffix string) bool {
	if len(name) < len(suffix) {
		return false
	}
	return name[len(name)-len(suffix):] == suffix
}

func eqFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if 'A' <= ca && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if 'A' <= cb && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}

package docmanager

import "time"

// RefreshInterval is the minimum spacing between re-parses of the same
// URI: a document is refreshed no more than once per 500 ms.
const RefreshInterval = 500 * time.Millisecond

// Manager is the ParserRegistry: it owns every Document lazily created
// for a touched URI, for the registry's lifetime.
type Manager struct {
	provider    DocumentProvider
	probe       FSProbe
	clock       Clock
	docs        map[string]*Document
	lastRefresh map[string]time.Time
}

// NewManager creates a Manager backed by provider (editor buffers),
// probe (on-disk fallback), and clock (the debounce time source).
func NewManager(provider DocumentProvider, probe FSProbe, clock Clock) *Manager {
	return &Manager{
		provider:    provider,
		probe:       probe,
		clock:       clock,
		docs:        map[string]*Document{},
		lastRefresh: map[string]time.Time{},
	}
}

// Get returns the cached Document for uri, parsing it for the first time
// if it has never been touched. It does not apply the debounce gate —
// that only governs re-parses on Refresh.
func (m *Manager) Get(uri string) (*Document, bool) {
	if doc, ok := m.docs[uri]; ok {
		return doc, true
	}
	text, ok := m.readSource(uri)
	if !ok {
		return nil, false
	}
	doc := newDocument(uri, text)
	m.docs[uri] = doc
	m.lastRefresh[uri] = m.clock.Now()
	return doc, true
}

// Refresh re-reads uri's source and re-parses it if, and only if, both
// the 500ms debounce window has elapsed since the last refresh and the
// content actually changed. It returns the (possibly stale) cached
// Document, whether a re-parse happened, and whether uri resolves to
// any source at all.
func (m *Manager) Refresh(uri string) (doc *Document, changed bool, ok bool) {
	text, ok := m.readSource(uri)
	if !ok {
		return nil, false, false
	}

	cached, hasCached := m.docs[uri]
	if hasCached {
		if last, seen := m.lastRefresh[uri]; seen && m.clock.Now().Sub(last) < RefreshInterval {
			return cached, false, true
		}
		if cached.Text == text {
			m.lastRefresh[uri] = m.clock.Now()
			return cached, false, true
		}
	}

	fresh := newDocument(uri, text)
	m.docs[uri] = fresh
	m.lastRefresh[uri] = m.clock.Now()
	return fresh, true, true
}

// Invalidate drops uri from the cache, used when an editor closes a
// buffer the registry should no longer keep around.
func (m *Manager) Invalidate(uri string) {
	delete(m.docs, uri)
	delete(m.lastRefresh, uri)
}

// All returns every Document currently cached, in no particular order.
// Used by find-references and the CLI runner to enumerate every
// already-touched document without the caller tracking its own list.
func (m *Manager) All() []*Document {
	out := make([]*Document, 0, len(m.docs))
	for _, doc := range m.docs {
		out = append(out, doc)
	}
	return out
}

func (m *Manager) readSource(uri string) (string, bool) {
	if text, ok := m.provider.Get(uri); ok {
		return text, true
	}
	if m.probe == nil || !m.probe.Exists(uri) {
		return "", false
	}
	data, err := m.probe.ReadFile(uri)
	if err != nil {
		return "", false
	}
	return string(data), true
}

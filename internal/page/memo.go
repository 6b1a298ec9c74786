package page

import "sync"

// MemoParser caches Parse results per line index so that unchanged lines are
// not re-parsed on every read. The cache is invalidated entry-by-entry: a
// lookup whose input string differs from the cached key re-parses and
// replaces that entry.
//
// Lookup and update happen under one lock so a cache hit is a single atomic
// step even if a MemoParser is ever shared across goroutines.
type MemoParser struct {
	mu    sync.Mutex
	keys  []string
	items []Item
}

// Parse returns the Item for line at index i, reusing the cached result when
// the input is identical to the last parse at that index.
func (m *MemoParser) Parse(i int, line string) Item {
	m.mu.Lock()
	defer m.mu.Unlock()

	if i >= 0 && i < len(m.keys) && m.keys[i] == line {
		return m.items[i]
	}

	it := Parse(line)
	if i < 0 {
		return it
	}
	for len(m.keys) <= i {
		m.keys = append(m.keys, "")
		m.items = append(m.items, Item{})
	}
	m.keys[i] = line
	m.items[i] = it
	return it
}

// Reset drops every cached entry.
func (m *MemoParser) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.keys = m.keys[:0]
	m.items = m.items[:0]
}

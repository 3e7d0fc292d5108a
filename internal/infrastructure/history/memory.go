// Package history provides an in-memory back/forward location stack.
package history

import "sync"

// DefaultLimit bounds the number of entries kept when no limit is given.
const DefaultLimit = 100

// Memory is a bounded browser-style history. Pushing drops any forward
// entries; once the limit is reached the oldest entry is evicted.
type Memory struct {
	mu      sync.Mutex
	entries []string
	cursor  int
	limit   int
}

// NewMemory creates an empty history keeping at most limit entries.
func NewMemory(limit int) *Memory {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Memory{cursor: -1, limit: limit}
}

// Push records path as the current entry.
func (m *Memory) Push(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = append(m.entries[:m.cursor+1], path)
	if len(m.entries) > m.limit {
		m.entries = append(m.entries[:0], m.entries[len(m.entries)-m.limit:]...)
	}
	m.cursor = len(m.entries) - 1
}

// Back moves to the previous entry.
func (m *Memory) Back() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cursor <= 0 {
		return "", false
	}
	m.cursor--
	return m.entries[m.cursor], true
}

// Forward moves to the next entry.
func (m *Memory) Forward() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cursor >= len(m.entries)-1 {
		return "", false
	}
	m.cursor++
	return m.entries[m.cursor], true
}

// Current returns the current entry, or "" if nothing was pushed.
func (m *Memory) Current() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cursor < 0 {
		return ""
	}
	return m.entries[m.cursor]
}

// Len returns the number of stored entries.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

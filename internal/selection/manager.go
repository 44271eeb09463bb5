package selection

import "sync"

// Manager holds the current index selection of a data source.
//
// Live previews are combined against the selection committed by the last
// final update, so repeated non-final updates during one drag do not
// compound on each other.
type Manager struct {
	mu sync.RWMutex

	// committed is the selection as of the last final update or restore.
	committed Indices

	// current is what is displayed, including any live preview.
	current Indices
}

// NewManager creates an empty selection manager.
func NewManager() *Manager {
	return &Manager{}
}

// Update combines hits with the committed selection and returns the result.
// A final update commits it.
func (m *Manager) Update(hits Indices, final bool, mode Mode) Indices {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := m.committed.Combine(mode, hits)
	m.current = result
	if final {
		m.committed = result
	}
	return result.Clone()
}

// Indices returns a copy of the displayed selection.
func (m *Manager) Indices() Indices {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current.Clone()
}

// Committed returns a copy of the committed selection.
func (m *Manager) Committed() Indices {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.committed.Clone()
}

// Restore replaces both the committed and displayed selection.
func (m *Manager) Restore(s Indices) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.committed = s.Clone()
	m.current = s.Clone()
}

// Discard drops any uncommitted preview.
func (m *Manager) Discard() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.committed.Clone()
}

// Clear empties the selection.
func (m *Manager) Clear() {
	m.Restore(nil)
}

// Contains returns true if index i is currently selected.
func (m *Manager) Contains(i int) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current.Contains(i)
}

// Count returns the number of selected indices.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.current)
}

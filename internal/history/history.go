package history

import (
	"errors"
	"sync"
	"time"
)

// Common errors for history operations.
var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// TypeInitial is the type of the entry before anything was pushed.
const TypeInitial = "initial"

// DefaultMaxEntries bounds the stack when no limit is given.
const DefaultMaxEntries = 1000

// Entry is one recorded state.
type Entry struct {
	// Type names the action that produced the state, e.g. "box_select".
	Type string

	// State is the opaque snapshot.
	State any

	// Timestamp is when the entry was pushed.
	Timestamp time.Time
}

// Manager manages the undo/redo stack.
type Manager struct {
	mu sync.Mutex

	entries []Entry

	// index points at the current entry; -1 is the initial state.
	index int

	initial    any
	maxEntries int
}

// NewManager creates a history with the given bound and initial state.
func NewManager(maxEntries int, initial any) *Manager {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &Manager{
		index:      -1,
		initial:    initial,
		maxEntries: maxEntries,
	}
}

// Push records a new state and discards the redo tail.
func (h *Manager) Push(entryType string, state any) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.entries = append(h.entries[:h.index+1], Entry{
		Type:      entryType,
		State:     state,
		Timestamp: time.Now(),
	})
	h.index = len(h.entries) - 1

	if excess := len(h.entries) - h.maxEntries; excess > 0 {
		// The oldest dropped state becomes the new floor for undo.
		h.initial = h.entries[excess-1].State
		h.entries = h.entries[excess:]
		h.index -= excess
	}
}

// Undo steps back and returns the entry that is now current.
func (h *Manager) Undo() (Entry, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.index < 0 {
		return Entry{}, ErrNothingToUndo
	}
	h.index--
	return h.currentLocked(), nil
}

// Redo steps forward and returns the entry that is now current.
func (h *Manager) Redo() (Entry, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.index >= len(h.entries)-1 {
		return Entry{}, ErrNothingToRedo
	}
	h.index++
	return h.currentLocked(), nil
}

// Current returns the current entry.
func (h *Manager) Current() Entry {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.currentLocked()
}

func (h *Manager) currentLocked() Entry {
	if h.index < 0 {
		return Entry{Type: TypeInitial, State: h.initial}
	}
	return h.entries[h.index]
}

// CanUndo returns true if undo is available.
func (h *Manager) CanUndo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.index >= 0
}

// CanRedo returns true if redo is available.
func (h *Manager) CanRedo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.index < len(h.entries)-1
}

// UndoCount returns the number of undo steps available.
func (h *Manager) UndoCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.index + 1
}

// RedoCount returns the number of redo steps available.
func (h *Manager) RedoCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries) - 1 - h.index
}

// Len returns the number of recorded entries.
func (h *Manager) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// Clear removes all entries. The initial state is kept.
func (h *Manager) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = nil
	h.index = -1
}

// SetMaxEntries changes the bound, dropping the oldest entries if needed.
func (h *Manager) SetMaxEntries(max int) {
	if max <= 0 {
		max = DefaultMaxEntries
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.maxEntries = max
	if excess := len(h.entries) - max; excess > 0 {
		h.initial = h.entries[excess-1].State
		h.entries = h.entries[excess:]
		h.index -= excess
		if h.index < -1 {
			h.index = -1
		}
	}
}

// MaxEntries returns the bound.
func (h *Manager) MaxEntries() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.maxEntries
}

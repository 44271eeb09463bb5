package overlay

import (
	"sync"

	"github.com/dshills/boxselect/internal/geometry"
)

// ChangeFunc is called after a box's edges change.
type ChangeFunc func(u BoxUpdate)

// Box is a screen-space box overlay. It is visible when all four edges
// are set.
type Box struct {
	mu sync.RWMutex

	edges    BoxUpdate
	style    Style
	revision uint64
	onChange []ChangeFunc
}

// NewBox creates a hidden box with the given style.
func NewBox(style Style) *Box {
	return &Box{style: style}
}

// Update replaces the edges. Updates that change nothing are ignored,
// so listeners and the revision only observe real changes.
func (b *Box) Update(u BoxUpdate) {
	b.mu.Lock()
	if b.edges == u {
		b.mu.Unlock()
		return
	}
	b.edges = u
	b.revision++
	listeners := make([]ChangeFunc, len(b.onChange))
	copy(listeners, b.onChange)
	b.mu.Unlock()

	for _, fn := range listeners {
		fn(u)
	}
}

// OnChange registers a listener.
func (b *Box) OnChange(fn ChangeFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.onChange = append(b.onChange, fn)
}

// Edges returns the current edges.
func (b *Box) Edges() BoxUpdate {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.edges
}

// Bounds returns the box rectangle when visible.
func (b *Box) Bounds() (geometry.Rect, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.edges.Rect()
}

// IsVisible returns true if all four edges are set.
func (b *Box) IsVisible() bool {
	_, ok := b.Bounds()
	return ok
}

// Style returns the box style.
func (b *Box) Style() Style {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.style
}

// Revision counts the changes applied so far.
func (b *Box) Revision() uint64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.revision
}

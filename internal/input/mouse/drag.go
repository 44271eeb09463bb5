package mouse

import "github.com/dshills/boxselect/internal/geometry"

// dragTracker tracks the active gesture.
type dragTracker struct {
	// active indicates a gesture is in progress.
	active bool

	// button is the button holding the gesture.
	button Button

	// startPos is where the gesture started.
	startPos geometry.Point

	// currentPos is the last reported position.
	currentPos geometry.Point

	// modifiers are the modifiers reported with the last event.
	modifiers Modifier
}

func newDragTracker() *dragTracker {
	return &dragTracker{}
}

func (t *dragTracker) start(pos geometry.Point, button Button, mods Modifier) {
	t.active = true
	t.button = button
	t.startPos = pos
	t.currentPos = pos
	t.modifiers = mods
}

func (t *dragTracker) update(pos geometry.Point, mods Modifier) {
	if t.active {
		t.currentPos = pos
		t.modifiers = mods
	}
}

func (t *dragTracker) end() {
	t.active = false
	t.button = ButtonNone
	t.startPos = geometry.Point{}
	t.currentPos = geometry.Point{}
	t.modifiers = ModNone
}

// DragState is a snapshot of the active gesture.
type DragState struct {
	Active     bool
	Button     Button
	StartPos   geometry.Point
	CurrentPos geometry.Point
}

func (t *dragTracker) state() DragState {
	return DragState{
		Active:     t.active,
		Button:     t.button,
		StartPos:   t.startPos,
		CurrentPos: t.currentPos,
	}
}

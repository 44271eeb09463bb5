package mouse

import (
	"sync"
	"time"

	"github.com/dshills/boxselect/internal/geometry"
)

// Button represents a mouse button.
type Button uint8

const (
	// ButtonNone indicates no button.
	ButtonNone Button = iota
	// ButtonLeft is the primary (left) mouse button.
	ButtonLeft
	// ButtonMiddle is the middle mouse button.
	ButtonMiddle
	// ButtonRight is the secondary (right) mouse button.
	ButtonRight
)

// String returns a string representation of the button.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	default:
		return "none"
	}
}

// Action represents the type of raw mouse action.
type Action uint8

const (
	// ActionNone indicates no action.
	ActionNone Action = iota
	// ActionPress indicates a button press.
	ActionPress
	// ActionRelease indicates a button release.
	ActionRelease
	// ActionMove indicates motion with no button held.
	ActionMove
	// ActionDrag indicates motion with a button held.
	ActionDrag
)

// String returns a string representation of the action.
func (a Action) String() string {
	switch a {
	case ActionPress:
		return "press"
	case ActionRelease:
		return "release"
	case ActionMove:
		return "move"
	case ActionDrag:
		return "drag"
	default:
		return "none"
	}
}

// Event is a raw mouse event reported by a backend.
type Event struct {
	// Position is the screen position.
	Position geometry.Point

	// Button is the button involved.
	Button Button

	// Modifiers are the keyboard modifiers held during the event.
	Modifiers Modifier

	// Action is the type of mouse action.
	Action Action

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// Phase is a step of a pan gesture.
type Phase uint8

const (
	// PhaseNone indicates no gesture step.
	PhaseNone Phase = iota
	// PhaseStart begins a gesture.
	PhaseStart
	// PhaseMove reports motion within a gesture.
	PhaseMove
	// PhaseEnd finishes a gesture.
	PhaseEnd
)

// String returns a string representation of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhaseMove:
		return "move"
	case PhaseEnd:
		return "end"
	default:
		return "none"
	}
}

// Gesture is one step of a pan gesture.
type Gesture struct {
	Phase     Phase
	Position  geometry.Point
	Modifiers Modifier
}

// Config configures the handler.
type Config struct {
	// Button is the button that drives gestures.
	Button Button

	// SkipDuplicateMoves drops motion that reports the same position as
	// the previous step of the gesture.
	SkipDuplicateMoves bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Button:             ButtonLeft,
		SkipDuplicateMoves: true,
	}
}

// Handler folds raw mouse events into gesture phases.
type Handler struct {
	mu     sync.Mutex
	config Config
	drag   *dragTracker
}

// NewHandler creates a new handler with the given configuration.
func NewHandler(config Config) *Handler {
	if config.Button == ButtonNone {
		config.Button = ButtonLeft
	}
	return &Handler{
		config: config,
		drag:   newDragTracker(),
	}
}

// Handle processes a raw event. The boolean is false when the event does
// not advance a gesture.
func (h *Handler) Handle(event Event) (Gesture, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	switch event.Action {
	case ActionPress:
		return h.handlePress(event)
	case ActionRelease:
		return h.handleRelease(event)
	case ActionMove, ActionDrag:
		return h.handleMotion(event)
	}

	return Gesture{}, false
}

func (h *Handler) handlePress(event Event) (Gesture, bool) {
	if event.Button != h.config.Button || h.drag.active {
		return Gesture{}, false
	}

	h.drag.start(event.Position, event.Button, event.Modifiers)
	return Gesture{
		Phase:     PhaseStart,
		Position:  event.Position,
		Modifiers: event.Modifiers,
	}, true
}

func (h *Handler) handleRelease(event Event) (Gesture, bool) {
	if !h.drag.active {
		return Gesture{}, false
	}
	// Some backends report the release without naming the button.
	if event.Button != ButtonNone && event.Button != h.drag.button {
		return Gesture{}, false
	}

	h.drag.end()
	return Gesture{
		Phase:     PhaseEnd,
		Position:  event.Position,
		Modifiers: event.Modifiers,
	}, true
}

func (h *Handler) handleMotion(event Event) (Gesture, bool) {
	if !h.drag.active {
		return Gesture{}, false
	}
	if h.config.SkipDuplicateMoves && event.Position.Equal(h.drag.currentPos) &&
		event.Modifiers == h.drag.modifiers {
		return Gesture{}, false
	}

	h.drag.update(event.Position, event.Modifiers)
	return Gesture{
		Phase:     PhaseMove,
		Position:  event.Position,
		Modifiers: event.Modifiers,
	}, true
}

// Cancel ends the active gesture at its last known position. The boolean
// is false when no gesture was active.
func (h *Handler) Cancel() (Gesture, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.drag.active {
		return Gesture{}, false
	}

	g := Gesture{
		Phase:     PhaseEnd,
		Position:  h.drag.currentPos,
		Modifiers: h.drag.modifiers,
	}
	h.drag.end()
	return g, true
}

// Reset drops any active gesture without reporting it.
func (h *Handler) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.drag.end()
}

// IsDragging returns true if a gesture is in progress.
func (h *Handler) IsDragging() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.drag.active
}

// State returns a snapshot of the active gesture.
func (h *Handler) State() DragState {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.drag.state()
}

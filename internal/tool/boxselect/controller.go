package boxselect

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dshills/boxselect/internal/geometry"
	"github.com/dshills/boxselect/internal/input/mouse"
	"github.com/dshills/boxselect/internal/overlay"
	"github.com/dshills/boxselect/internal/selection"
)

// HistoryPusher records completed gestures.
type HistoryPusher interface {
	Push(entryType string, state any)
}

// SelectionSource provides the snapshot recorded in history.
type SelectionSource interface {
	Selection() any
}

// Deps are the collaborators a Controller drives.
type Deps struct {
	Frame   Frame
	Overlay overlay.Target
	Applier selection.Applier
	History HistoryPusher
	Source  SelectionSource
}

func (d Deps) validate() error {
	switch {
	case d.Frame == nil:
		return fmt.Errorf("%w: frame", ErrMissingDependency)
	case d.Overlay == nil:
		return fmt.Errorf("%w: overlay", ErrMissingDependency)
	case d.Applier == nil:
		return fmt.Errorf("%w: applier", ErrMissingDependency)
	case d.History == nil:
		return fmt.Errorf("%w: history", ErrMissingDependency)
	case d.Source == nil:
		return fmt.Errorf("%w: selection source", ErrMissingDependency)
	}
	return nil
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the controller's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// dragState is either idleState or draggingState.
type dragState interface {
	isDragState()
}

type idleState struct{}

type draggingState struct {
	anchor geometry.Point
	id     uuid.UUID
	moves  int
}

func (idleState) isDragState()      {}
func (*draggingState) isDragState() {}

// Controller is the box select gesture state machine.
//
// Events must be delivered serially; the controller holds no lock.
type Controller struct {
	config     Config
	frame      Frame
	feedback   *overlay.Feedback
	dispatcher *Dispatcher
	history    HistoryPusher
	source     SelectionSource
	logger     *slog.Logger

	state dragState
	last  uuid.UUID
}

// NewController validates cfg and deps and returns an idle controller.
func NewController(cfg Config, deps Deps, opts ...Option) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := deps.validate(); err != nil {
		return nil, err
	}

	c := &Controller{
		config:     cfg,
		frame:      deps.Frame,
		feedback:   overlay.NewFeedback(deps.Overlay),
		dispatcher: NewDispatcher(deps.Applier),
		history:    deps.History,
		source:     deps.Source,
		logger:     slog.Default(),
		state:      idleState{},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With(slog.String("component", "boxselect"))
	return c, nil
}

// Config returns the active configuration.
func (c *Controller) Config() Config {
	return c.config
}

// SetConfig replaces the configuration between gestures.
func (c *Controller) SetConfig(cfg Config) error {
	if c.IsDragging() {
		return ErrConfigBusy
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.config = cfg
	return nil
}

// IsDragging returns true between press and release.
func (c *Controller) IsDragging() bool {
	_, ok := c.state.(*draggingState)
	return ok
}

// Anchor returns the press point of the active gesture.
func (c *Controller) Anchor() (geometry.Point, bool) {
	if d, ok := c.state.(*draggingState); ok {
		return d.anchor, true
	}
	return geometry.Point{}, false
}

// GestureID returns the identifier of the active gesture.
func (c *Controller) GestureID() (uuid.UUID, bool) {
	if d, ok := c.state.(*draggingState); ok {
		return d.id, true
	}
	return uuid.Nil, false
}

// LastGestureID returns the identifier of the active gesture or, when
// idle, of the most recent one. It is uuid.Nil before the first press.
func (c *Controller) LastGestureID() uuid.UUID {
	return c.last
}

// Limits computes the box intervals for current. It panics when no
// gesture is active.
func (c *Controller) Limits(current geometry.Point) (x, y geometry.Interval) {
	d := c.mustDrag("limits")
	return c.limits(d, current)
}

func (c *Controller) limits(d *draggingState, current geometry.Point) (x, y geometry.Interval) {
	return ComputeLimits(d.anchor, current, c.config.Dimensions, c.config.Origin, c.frame)
}

// Press starts a gesture anchored at p.
func (c *Controller) Press(p geometry.Point) {
	if c.IsDragging() {
		panic(&PreconditionError{Op: "press", Err: ErrAlreadyDragging})
	}

	d := &draggingState{anchor: p, id: uuid.New()}
	c.state = d
	c.last = d.id
	c.logger.Debug("gesture started",
		slog.String("gesture", d.id.String()),
		slog.String("anchor", p.String()),
		slog.String("dimensions", c.config.Dimensions.String()),
		slog.String("origin", c.config.Origin.String()))
}

// Move updates the overlay for the pointer at p and, when configured,
// applies a preview selection.
func (c *Controller) Move(p geometry.Point, mods mouse.Modifier) error {
	d := c.mustDrag("move")
	d.moves++

	x, y := c.limits(d, p)
	c.feedback.Show(x, y)

	if !c.config.SelectEveryMouseMove {
		return nil
	}
	mode := selection.ModeFromModifiers(mods, c.config.DefaultMode)
	return c.dispatcher.Apply(x, y, false, mode)
}

// Release finishes the gesture at p: it applies the final selection,
// hides the overlay, returns to idle and records a history entry. When
// the final selection fails the controller still returns to idle but no
// history entry is pushed.
func (c *Controller) Release(p geometry.Point, mods mouse.Modifier) error {
	d := c.mustDrag("release")

	x, y := c.limits(d, p)
	mode := selection.ModeFromModifiers(mods, c.config.DefaultMode)
	applyErr := c.dispatcher.Apply(x, y, true, mode)

	c.feedback.Hide()
	c.state = idleState{}

	log := c.logger.With(slog.String("gesture", d.id.String()))
	if applyErr != nil {
		log.Warn("final selection failed", slog.Any("error", applyErr))
		return applyErr
	}

	c.history.Push(EntryType, c.source.Selection())
	log.Debug("gesture finished",
		slog.String("x", x.String()),
		slog.String("y", y.String()),
		slog.String("mode", mode.String()),
		slog.Int("moves", d.moves))
	return nil
}

// Handle routes a gesture phase to Press, Move or Release.
func (c *Controller) Handle(g mouse.Gesture) error {
	switch g.Phase {
	case mouse.PhaseStart:
		c.Press(g.Position)
		return nil
	case mouse.PhaseMove:
		return c.Move(g.Position, g.Modifiers)
	case mouse.PhaseEnd:
		return c.Release(g.Position, g.Modifiers)
	}
	return nil
}

func (c *Controller) mustDrag(op string) *draggingState {
	d, ok := c.state.(*draggingState)
	if !ok {
		panic(&PreconditionError{Op: op, Err: ErrNotDragging})
	}
	return d
}

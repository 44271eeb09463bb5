package plot

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/dshills/boxselect/internal/event"
	"github.com/dshills/boxselect/internal/frame"
	"github.com/dshills/boxselect/internal/geometry"
	"github.com/dshills/boxselect/internal/plugin/lua"
	"github.com/dshills/boxselect/internal/selection"
)

// SelectHook observes every applied selection.
type SelectHook interface {
	OnSelect(ctx context.Context, info lua.SelectInfo) (string, error)
}

// Option configures a Plot.
type Option func(*Plot)

// WithBus publishes selection.geometry events on bus.
func WithBus(bus *event.Bus) Option {
	return func(p *Plot) {
		p.bus = bus
	}
}

// WithHook calls hook after each applied selection.
func WithHook(hook SelectHook) Option {
	return func(p *Plot) {
		p.hook = hook
	}
}

// WithGesture sets the function that names the gesture behind each
// selection in published events.
func WithGesture(fn func() uuid.UUID) Option {
	return func(p *Plot) {
		p.gesture = fn
	}
}

// WithLogger sets the plot's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Plot) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// Plot applies selections over a source drawn in a frame.
type Plot struct {
	source  *Source
	frame   *frame.Frame
	sel     *selection.Manager
	bus     *event.Bus
	hook    SelectHook
	gesture func() uuid.UUID
	logger  *slog.Logger

	mu      sync.Mutex
	message string
}

// New creates a plot over source drawn in f.
func New(source *Source, f *frame.Frame, opts ...Option) *Plot {
	p := &Plot{
		source: source,
		frame:  f,
		sel:    selection.NewManager(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.logger = p.logger.With(slog.String("component", "plot"))
	return p
}

// Source returns the plotted data.
func (p *Plot) Source() *Source {
	return p.source
}

// Frame returns the plot frame.
func (p *Plot) Frame() *frame.Frame {
	return p.frame
}

// Selected returns the displayed selection, including any live preview.
func (p *Plot) Selected() selection.Indices {
	return p.sel.Indices()
}

// HitTest returns the indices of points whose screen position lies in r.
// Edges are inclusive.
func (p *Plot) HitTest(r geometry.Rect) selection.Indices {
	var hits selection.Indices
	for i := 0; i < p.source.Len(); i++ {
		if r.Contains(p.frame.DataToScreen(p.source.Point(i))) {
			hits = append(hits, i)
		}
	}
	return hits
}

// Select applies a rect geometry with mode. Non-final selections are
// previews combined against the last committed selection.
func (p *Plot) Select(geom selection.Geometry, final bool, mode selection.Mode) error {
	rect, ok := geom.(selection.RectGeometry)
	if !ok {
		return fmt.Errorf("%w: %s", selection.ErrUnsupportedGeometry, geom.Kind())
	}

	result := p.sel.Update(p.HitTest(rect.Rect()), final, mode)
	ctx := context.Background()

	if p.bus != nil {
		payload := event.SelectionGeometry{Geometry: rect, Final: final, Mode: mode, Count: result.Len()}
		if p.gesture != nil {
			payload.Gesture = p.gesture()
		}
		if err := p.bus.Publish(ctx, event.New(event.TopicSelectionGeometry, payload, "plot")); err != nil {
			p.logger.Warn("publish selection failed", slog.Any("error", err))
		}
	}

	if p.hook != nil {
		msg, err := p.hook.OnSelect(ctx, lua.SelectInfo{Geometry: rect, Final: final, Mode: mode, Count: result.Len()})
		if err != nil {
			p.logger.Warn("selection hook failed", slog.Any("error", err))
			msg = err.Error()
		}
		if msg != "" {
			p.setMessage(msg)
		}
	}
	return nil
}

// Selection returns the committed selection for history snapshots.
func (p *Plot) Selection() any {
	return p.sel.Committed()
}

// Restore replaces the selection with a snapshot taken by Selection. A
// nil state clears it.
func (p *Plot) Restore(state any) error {
	switch s := state.(type) {
	case nil:
		p.sel.Clear()
	case selection.Indices:
		for _, i := range s {
			if i < 0 || i >= p.source.Len() {
				return fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
			}
		}
		p.sel.Restore(s)
	default:
		return fmt.Errorf("restore selection: unexpected state %T", state)
	}
	return nil
}

// Discard drops any uncommitted preview.
func (p *Plot) Discard() {
	p.sel.Discard()
}

// Export renders the committed selection as JSON.
func (p *Plot) Export() ([]byte, error) {
	return p.source.ExportSelection(p.sel.Committed())
}

// Message returns the last status message produced by the hook.
func (p *Plot) Message() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.message
}

func (p *Plot) setMessage(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.message = msg
}

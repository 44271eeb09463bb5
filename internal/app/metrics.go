package app

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/dshills/boxselect/internal/event"
)

// Metrics counts what the application has done since start. Gestures,
// history moves and reloads are counted from bus events; see Subscribe.
type Metrics struct {
	gestures    atomic.Uint64
	failed      atomic.Uint64
	undos       atomic.Uint64
	redos       atomic.Uint64
	reloads     atomic.Uint64
	frameCount  atomic.Uint64
	lastFrameNs atomic.Int64

	startTime time.Time
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{startTime: time.Now()}
}

// Subscribe counts gesture.end, history.undo, history.redo and applied
// config.reload events published on bus.
func (m *Metrics) Subscribe(bus *event.Bus) error {
	subs := []struct {
		pattern event.Topic
		fn      event.HandlerFunc
	}{
		{event.TopicGestureEnd, m.onGestureEnd},
		{"history.*", m.onHistory},
		{event.TopicConfigReload, m.onConfigReload},
	}
	for _, s := range subs {
		if _, err := bus.Subscribe(s.pattern, s.fn, event.WithPriority(event.PriorityLow)); err != nil {
			return err
		}
	}
	return nil
}

func (m *Metrics) onGestureEnd(_ context.Context, ev event.Event) error {
	end, _ := ev.Payload.(event.GestureEnd)
	m.RecordGesture(end.Err)
	return nil
}

func (m *Metrics) onHistory(_ context.Context, ev event.Event) error {
	switch ev.Topic {
	case event.TopicHistoryUndo:
		m.undos.Add(1)
	case event.TopicHistoryRedo:
		m.redos.Add(1)
	}
	return nil
}

func (m *Metrics) onConfigReload(_ context.Context, ev event.Event) error {
	if r, ok := ev.Payload.(event.ConfigReload); ok && r.Applied {
		m.reloads.Add(1)
	}
	return nil
}

// RecordGesture records a finished gesture.
func (m *Metrics) RecordGesture(err error) {
	if err != nil {
		m.failed.Add(1)
		return
	}
	m.gestures.Add(1)
}

// RecordFrame records one draw.
func (m *Metrics) RecordFrame(d time.Duration) {
	m.frameCount.Add(1)
	m.lastFrameNs.Store(d.Nanoseconds())
}

// MetricsSnapshot is a point-in-time copy of Metrics.
type MetricsSnapshot struct {
	Gestures       uint64
	FailedGestures uint64
	Undos          uint64
	Redos          uint64
	Reloads        uint64
	Frames         uint64
	LastFrame      time.Duration
	Uptime         time.Duration
}

// Snapshot returns the current counters.
func (m *Metrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		Gestures:       m.gestures.Load(),
		FailedGestures: m.failed.Load(),
		Undos:          m.undos.Load(),
		Redos:          m.redos.Load(),
		Reloads:        m.reloads.Load(),
		Frames:         m.frameCount.Load(),
		LastFrame:      time.Duration(m.lastFrameNs.Load()),
		Uptime:         time.Since(m.startTime),
	}
}

// LogValue groups the snapshot for structured logging.
func (s MetricsSnapshot) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Uint64("gestures", s.Gestures),
		slog.Uint64("failed_gestures", s.FailedGestures),
		slog.Uint64("undos", s.Undos),
		slog.Uint64("redos", s.Redos),
		slog.Uint64("reloads", s.Reloads),
		slog.Uint64("frames", s.Frames),
		slog.Duration("last_frame", s.LastFrame),
		slog.Duration("uptime", s.Uptime),
	)
}

package app

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/boxselect/internal/event"
)

func TestMetricsSubscribe(t *testing.T) {
	bus := event.NewBus()
	m := NewMetrics()
	require.NoError(t, m.Subscribe(bus))

	ctx := context.Background()
	publish := func(topic event.Topic, payload any) {
		require.NoError(t, bus.Publish(ctx, event.New(topic, payload, "test")))
	}

	publish(event.TopicGestureEnd, event.GestureEnd{Gesture: uuid.New()})
	publish(event.TopicGestureEnd, event.GestureEnd{Gesture: uuid.New(), Err: errors.New("boom")})
	publish(event.TopicHistoryPush, event.HistoryChange{UndoCount: 1})
	publish(event.TopicHistoryUndo, event.HistoryChange{RedoCount: 1})
	publish(event.TopicHistoryRedo, event.HistoryChange{UndoCount: 1})
	publish(event.TopicHistoryUndo, event.HistoryChange{RedoCount: 1})
	publish(event.TopicConfigReload, event.ConfigReload{Applied: true})
	publish(event.TopicConfigReload, event.ConfigReload{Err: errors.New("bad")})

	snap := m.Snapshot()
	assert.Equal(t, uint64(1), snap.Gestures)
	assert.Equal(t, uint64(1), snap.FailedGestures)
	assert.Equal(t, uint64(2), snap.Undos)
	assert.Equal(t, uint64(1), snap.Redos)
	assert.Equal(t, uint64(1), snap.Reloads)
	assert.Equal(t, 3, bus.Stats().Subscriptions)
}

func TestAppMetricsFollowBus(t *testing.T) {
	a, _ := newTestApp(t)

	drag(t, a, 3, 3, 12, 6, tcell.ModNone)
	require.NoError(t, a.HandleEvent(key('u')))
	require.NoError(t, a.HandleEvent(key('r')))
	require.NoError(t, a.HandleEvent(key('u')))

	snap := a.Metrics().Snapshot()
	assert.Equal(t, uint64(1), snap.Gestures)
	assert.Equal(t, uint64(2), snap.Undos)
	assert.Equal(t, uint64(1), snap.Redos)
	assert.Positive(t, snap.Frames)
}

func TestGestureIDInEvents(t *testing.T) {
	a, _ := newTestApp(t)

	var geoms []event.SelectionGeometry
	var changes []event.HistoryChange
	var ends []event.GestureEnd
	_, err := a.Bus().Subscribe(event.TopicSelectionGeometry, func(_ context.Context, ev event.Event) error {
		geoms = append(geoms, ev.Payload.(event.SelectionGeometry))
		return nil
	})
	require.NoError(t, err)
	_, err = a.Bus().Subscribe("history.*", func(_ context.Context, ev event.Event) error {
		changes = append(changes, ev.Payload.(event.HistoryChange))
		return nil
	})
	require.NoError(t, err)
	_, err = a.Bus().Subscribe(event.TopicGestureEnd, func(_ context.Context, ev event.Event) error {
		ends = append(ends, ev.Payload.(event.GestureEnd))
		return nil
	})
	require.NoError(t, err)

	drag(t, a, 3, 3, 12, 6, tcell.ModNone)
	first := a.Controller().LastGestureID()
	require.NotEqual(t, uuid.Nil, first)

	drag(t, a, 28, 3, 32, 5, tcell.ModShift)
	second := a.Controller().LastGestureID()
	require.NotEqual(t, first, second)

	require.NoError(t, a.HandleEvent(key('u')))

	require.Len(t, geoms, 2)
	assert.Equal(t, first, geoms[0].Gesture)
	assert.Equal(t, second, geoms[1].Gesture)

	require.Len(t, changes, 3)
	assert.Equal(t, first, changes[0].Gesture)
	assert.Equal(t, second, changes[1].Gesture)
	assert.Equal(t, uuid.Nil, changes[2].Gesture)

	require.Len(t, ends, 2)
	assert.Equal(t, first, ends[0].Gesture)
	assert.NoError(t, ends[0].Err)
	assert.Equal(t, second, ends[1].Gesture)
}

func newBufferLogger(t *testing.T) (*slog.Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger, _, err := NewLogger(LoggerConfig{Level: slog.LevelInfo, Output: &buf})
	require.NoError(t, err)
	return logger, &buf
}

func TestRunLogsSummary(t *testing.T) {
	logger, buf := newBufferLogger(t)
	a, _ := newLoggedTestApp(t, logger)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, a.Run(ctx))

	out := buf.String()
	assert.Contains(t, out, `msg="session ended"`)
	assert.Contains(t, out, "metrics.gestures=0")
	assert.Contains(t, out, "metrics.frames=1")
	assert.Contains(t, out, "bus.published=0")
}

func TestReplayLogsSummary(t *testing.T) {
	logger, buf := newBufferLogger(t)
	a, _ := newLoggedTestApp(t, logger)

	s, err := ParseScript([]byte(`
steps:
  - {action: press, x: 3, y: 3}
  - {action: drag, x: 12, y: 6}
  - {action: release, x: 12, y: 6}
  - {action: undo}
`))
	require.NoError(t, err)
	require.NoError(t, a.Replay(context.Background(), s))

	out := buf.String()
	assert.Contains(t, out, `msg="replay finished"`)
	assert.Contains(t, out, "metrics.gestures=1")
	assert.Contains(t, out, "metrics.undos=1")
	assert.Contains(t, out, "bus.handler_errors=0")
}

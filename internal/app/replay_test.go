package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/boxselect/internal/config"
	"github.com/dshills/boxselect/internal/history"
	"github.com/dshills/boxselect/internal/selection"
)

func TestParseScript(t *testing.T) {
	s, err := ParseScript([]byte(`
tool:
  preset: xbox_select
  select_every_mousemove: true
steps:
  - {action: press, x: 3, y: 3}
  - {action: Drag, x: 12, y: 6, mods: shift}
  - {action: release, x: 12, y: 6}
`))
	require.NoError(t, err)

	assert.Equal(t, DefaultReplayWidth, s.Width)
	assert.Equal(t, DefaultReplayHeight, s.Height)
	require.Len(t, s.Steps, 3)
	assert.Equal(t, StepDrag, s.Steps[1].Action)
	assert.Equal(t, "shift", s.Steps[1].Mods)

	cfg := config.Default()
	cfg.Tool.Dimensions = "height"
	s.Apply(&cfg)
	assert.Equal(t, "xbox_select", cfg.Tool.Preset)
	assert.Empty(t, cfg.Tool.Dimensions)
	assert.True(t, cfg.Tool.SelectEveryMouseMove)
}

func TestParseScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"bad yaml", "steps: [\n"},
		{"unknown action", "steps:\n  - {action: jump}\n"},
		{"preset without name", "steps:\n  - {action: preset}\n"},
		{"tiny screen", "width: 2\nheight: 2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScript([]byte(tt.src))
			assert.ErrorIs(t, err, ErrInvalidScript)
		})
	}
}

func TestLoadScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.yaml")
	require.NoError(t, os.WriteFile(path, []byte("steps:\n  - {action: undo}\n"), 0o644))

	s, err := LoadScript(path)
	require.NoError(t, err)
	require.Len(t, s.Steps, 1)

	_, err = LoadScript(filepath.Join(t.TempDir(), "nope.yaml"))
	var opErr *OperationError
	assert.ErrorAs(t, err, &opErr)
}

func TestReplay(t *testing.T) {
	a, _ := newTestApp(t)

	s, err := ParseScript([]byte(`
steps:
  - {action: press, x: 3, y: 3}
  - {action: drag, x: 12, y: 6}
  - {action: release, x: 12, y: 6}
  - {action: press, x: 28, y: 3}
  - {action: drag, x: 32, y: 5, mods: shift}
  - {action: release, x: 32, y: 5, mods: shift}
  - {action: undo}
  - {action: redo}
  - {action: preset, preset: ybox_select}
  - {action: origin}
`))
	require.NoError(t, err)
	require.NoError(t, a.Replay(context.Background(), s))

	assert.Equal(t, selection.NewIndices(0, 2), a.Plot().Selected())
	assert.Equal(t, 2, a.History().UndoCount())
	assert.Equal(t, "ybox_select", a.Config().Tool.Preset)
	assert.Equal(t, "center", a.Config().Tool.Origin)
}

func TestReplayReleasesOpenGesture(t *testing.T) {
	a, _ := newTestApp(t)

	s, err := ParseScript([]byte(`
steps:
  - {action: press, x: 3, y: 3}
  - {action: drag, x: 12, y: 6}
`))
	require.NoError(t, err)
	require.NoError(t, a.Replay(context.Background(), s))

	assert.False(t, a.Controller().IsDragging())
	assert.Equal(t, selection.NewIndices(0), a.Plot().Selected())
}

func TestReplayStepError(t *testing.T) {
	a, _ := newTestApp(t)

	s, err := ParseScript([]byte("steps:\n  - {action: undo}\n"))
	require.NoError(t, err)

	err = a.Replay(context.Background(), s)
	require.Error(t, err)
	assert.ErrorIs(t, err, history.ErrNothingToUndo)
	assert.Contains(t, err.Error(), "step 1 (undo)")
}

func TestReplayCancelled(t *testing.T) {
	a, _ := newTestApp(t)

	s, err := ParseScript([]byte("steps:\n  - {action: press, x: 3, y: 3}\n"))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, a.Replay(ctx, s), context.Canceled)
}

package history

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManagerDefaults(t *testing.T) {
	h := NewManager(0, "empty")
	assert.Equal(t, DefaultMaxEntries, h.MaxEntries())
	assert.False(t, h.CanUndo())
	assert.False(t, h.CanRedo())

	cur := h.Current()
	assert.Equal(t, TypeInitial, cur.Type)
	assert.Equal(t, "empty", cur.State)
}

func TestPushUndoRedo(t *testing.T) {
	h := NewManager(10, "s0")
	h.Push("box_select", "s1")
	h.Push("box_select", "s2")

	assert.Equal(t, 2, h.UndoCount())
	assert.Equal(t, 0, h.RedoCount())
	assert.Equal(t, "s2", h.Current().State)
	assert.False(t, h.Current().Timestamp.IsZero())

	e, err := h.Undo()
	require.NoError(t, err)
	assert.Equal(t, "s1", e.State)

	e, err = h.Undo()
	require.NoError(t, err)
	assert.Equal(t, TypeInitial, e.Type)
	assert.Equal(t, "s0", e.State)

	_, err = h.Undo()
	assert.True(t, errors.Is(err, ErrNothingToUndo))

	e, err = h.Redo()
	require.NoError(t, err)
	assert.Equal(t, "s1", e.State)
	assert.Equal(t, "box_select", e.Type)

	e, err = h.Redo()
	require.NoError(t, err)
	assert.Equal(t, "s2", e.State)

	_, err = h.Redo()
	assert.True(t, errors.Is(err, ErrNothingToRedo))
}

func TestPushDiscardsRedoTail(t *testing.T) {
	h := NewManager(10, nil)
	h.Push("a", 1)
	h.Push("a", 2)
	h.Push("a", 3)

	_, _ = h.Undo()
	_, _ = h.Undo()
	assert.Equal(t, 2, h.RedoCount())

	h.Push("b", 4)
	assert.False(t, h.CanRedo())
	assert.Equal(t, 2, h.Len())
	assert.Equal(t, 4, h.Current().State)

	e, err := h.Undo()
	require.NoError(t, err)
	assert.Equal(t, 1, e.State)
}

func TestMaxEntries(t *testing.T) {
	h := NewManager(2, 0)
	h.Push("a", 1)
	h.Push("a", 2)
	h.Push("a", 3)

	assert.Equal(t, 2, h.Len())
	assert.Equal(t, 2, h.UndoCount())

	_, _ = h.Undo()
	e, err := h.Undo()
	require.NoError(t, err)
	assert.Equal(t, TypeInitial, e.Type)
	assert.Equal(t, 1, e.State, "dropped entry becomes the undo floor")
}

func TestSetMaxEntries(t *testing.T) {
	h := NewManager(10, 0)
	for i := 1; i <= 5; i++ {
		h.Push("a", i)
	}

	h.SetMaxEntries(3)
	assert.Equal(t, 3, h.MaxEntries())
	assert.Equal(t, 3, h.Len())
	assert.Equal(t, 5, h.Current().State)

	h.SetMaxEntries(-1)
	assert.Equal(t, DefaultMaxEntries, h.MaxEntries())
}

func TestClear(t *testing.T) {
	h := NewManager(10, "init")
	h.Push("a", 1)
	h.Clear()

	assert.Equal(t, 0, h.Len())
	assert.False(t, h.CanUndo())
	assert.Equal(t, "init", h.Current().State)
}

package event

import (
	"github.com/google/uuid"

	"github.com/dshills/boxselect/internal/selection"
)

// Topics published by the application.
const (
	TopicSelectionGeometry Topic = "selection.geometry"
	TopicHistoryPush       Topic = "history.push"
	TopicHistoryUndo       Topic = "history.undo"
	TopicHistoryRedo       Topic = "history.redo"
	TopicConfigReload      Topic = "config.reload"
	TopicGestureEnd        Topic = "gesture.end"
)

// SelectionGeometry is published for each applied selection.
type SelectionGeometry struct {
	// Gesture identifies the drag that produced the selection.
	Gesture uuid.UUID

	Geometry selection.RectGeometry
	Final    bool
	Mode     selection.Mode

	// Count is the number of selected points after the update.
	Count int
}

// HistoryChange is published when the history stack moves.
type HistoryChange struct {
	// Type is the entry type now current.
	Type string

	// Gesture is the drag that pushed the entry. It is uuid.Nil for undo
	// and redo.
	Gesture uuid.UUID

	UndoCount int
	RedoCount int
}

// ConfigReload is published after a watched configuration file changes.
type ConfigReload struct {
	Path string

	// Applied is false when the reload was rejected or deferred.
	Applied bool

	// Err holds the load or apply error, if any.
	Err error
}

// GestureEnd is published when a drag is released or cancelled.
type GestureEnd struct {
	Gesture uuid.UUID

	// Err is the final selection error, if any.
	Err error
}

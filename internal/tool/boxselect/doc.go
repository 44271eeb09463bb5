// Package boxselect implements the box select tool: a drag gesture that
// marks an axis-aligned screen rectangle and turns it into a selection.
//
// # Components
//
// ComputeLimits converts the drag's anchor and current point into one
// normalized screen interval per axis, honouring the dimension
// restriction and the anchor origin. Dispatcher packages the intervals
// into a rect geometry for a selection.Applier. Controller is the
// press/move/release state machine that drives both, keeps the overlay
// box in sync and records a history entry per completed gesture.
//
// # Configuration
//
// A Config is validated once and read-only during a gesture. Presets
// cover the registered aliases:
//
//	box_select   both axes
//	xbox_select  width only, full frame height
//	ybox_select  height only, full frame width
//
// # Preconditions
//
// The controller trusts its event source to deliver at most one gesture
// at a time. A press while dragging, or a move or release while idle,
// panics with a *PreconditionError; mouse.Handler never produces such
// sequences.
package boxselect

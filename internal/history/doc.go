// Package history provides an undo/redo stack of tool states.
//
// Tools push a named entry carrying an opaque state snapshot each time a
// gesture completes:
//
//	h := history.NewManager(100, selection.Indices(nil))
//	h.Push("box_select", sel.Indices())
//
// Undo and Redo move through the stack and return the entry that is now
// current; callers restore its State. Undoing past the first pushed entry
// yields the initial entry, whose State is the value given to NewManager.
//
// Pushing after an undo discards the redo tail.
package history

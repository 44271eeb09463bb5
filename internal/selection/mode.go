// Package selection provides selection combination modes, geometry
// descriptors and the index selection model.
package selection

import (
	"fmt"
	"strings"

	"github.com/dshills/boxselect/internal/input/mouse"
)

// Mode is how a new selection merges with the existing one.
type Mode uint8

const (
	// ModeReplace discards the existing selection.
	ModeReplace Mode = iota
	// ModeAppend adds to the existing selection.
	ModeAppend
	// ModeIntersect keeps only what both selections contain.
	ModeIntersect
	// ModeSubtract removes from the existing selection.
	ModeSubtract
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeReplace:
		return "replace"
	case ModeAppend:
		return "append"
	case ModeIntersect:
		return "intersect"
	case ModeSubtract:
		return "subtract"
	default:
		return "unknown"
	}
}

// ParseMode converts a name into a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "replace":
		return ModeReplace, nil
	case "append", "union":
		return ModeAppend, nil
	case "intersect":
		return ModeIntersect, nil
	case "subtract", "difference":
		return ModeSubtract, nil
	default:
		return ModeReplace, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// ModeFromModifiers derives the mode from the modifier keys held during
// an event. Shift appends, Ctrl intersects, Shift+Ctrl subtracts and no
// modifier yields def.
func ModeFromModifiers(mods mouse.Modifier, def Mode) Mode {
	shift, ctrl := mods.HasShift(), mods.HasCtrl()
	switch {
	case shift && ctrl:
		return ModeSubtract
	case shift:
		return ModeAppend
	case ctrl:
		return ModeIntersect
	default:
		return def
	}
}

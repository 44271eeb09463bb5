// Package overlay provides the transient box shown while a region is
// dragged out, and the feedback adapter that drives it.
package overlay

import (
	"strconv"

	"github.com/dshills/boxselect/internal/geometry"
)

// Coord is a screen coordinate that may be unset.
type Coord struct {
	value float64
	set   bool
}

// Unset is the sentinel for a coordinate with no value.
var Unset = Coord{}

// At returns a set coordinate.
func At(v float64) Coord {
	return Coord{value: v, set: true}
}

// Value returns the coordinate and whether it is set.
func (c Coord) Value() (float64, bool) {
	return c.value, c.set
}

// IsSet returns true if the coordinate has a value.
func (c Coord) IsSet() bool {
	return c.set
}

// String returns the value, or "unset".
func (c Coord) String() string {
	if !c.set {
		return "unset"
	}
	return strconv.FormatFloat(c.value, 'g', -1, 64)
}

// BoxUpdate carries the four edges of a box in screen units.
type BoxUpdate struct {
	Left   Coord
	Right  Coord
	Top    Coord
	Bottom Coord
}

// Cleared is the update that hides a box.
var Cleared = BoxUpdate{Left: Unset, Right: Unset, Top: Unset, Bottom: Unset}

// UpdateFromIntervals returns the update showing the given intervals.
func UpdateFromIntervals(x, y geometry.Interval) BoxUpdate {
	return BoxUpdate{
		Left:   At(x.Low),
		Right:  At(x.High),
		Top:    At(y.Low),
		Bottom: At(y.High),
	}
}

// IsCleared returns true if every edge is unset.
func (u BoxUpdate) IsCleared() bool {
	return !u.Left.set && !u.Right.set && !u.Top.set && !u.Bottom.set
}

// Rect returns the box as a rectangle when all four edges are set.
func (u BoxUpdate) Rect() (geometry.Rect, bool) {
	if !u.Left.set || !u.Right.set || !u.Top.set || !u.Bottom.set {
		return geometry.Rect{}, false
	}
	return geometry.Rect{
		X: geometry.NewInterval(u.Left.value, u.Right.value),
		Y: geometry.NewInterval(u.Top.value, u.Bottom.value),
	}, true
}

// Target is an overlay object whose edges can be updated.
type Target interface {
	Update(u BoxUpdate)
}

// Style describes how a box overlay is drawn.
type Style struct {
	FillColor string
	FillAlpha float64
	LineColor string
	LineAlpha float64
	LineWidth int
	LineDash  []int
}

// DefaultStyle returns the default box style: translucent light grey
// fill with a dashed black outline.
func DefaultStyle() Style {
	return Style{
		FillColor: "lightgrey",
		FillAlpha: 0.5,
		LineColor: "black",
		LineAlpha: 1.0,
		LineWidth: 2,
		LineDash:  []int{4, 4},
	}
}

// Dashed reports whether position i along an edge is drawn under the
// style's dash pattern.
func (s Style) Dashed(i int) bool {
	total := 0
	for _, d := range s.LineDash {
		total += d
	}
	if total <= 0 {
		return true
	}
	pos := i % total
	if pos < 0 {
		pos += total
	}
	on := true
	for _, d := range s.LineDash {
		if pos < d {
			return on
		}
		pos -= d
		on = !on
	}
	return on
}

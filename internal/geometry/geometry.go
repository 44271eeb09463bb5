// Package geometry provides screen-space points, intervals and rectangles
// used by the selection tools.
package geometry

import (
	"fmt"
	"math"
)

// Point is a position in screen space.
type Point struct {
	X float64
	Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Equal returns true if two points are equal.
func (p Point) Equal(other Point) bool {
	return p.X == other.X && p.Y == other.Y
}

// ReflectAbout returns the point mirrored through center.
func (p Point) ReflectAbout(center Point) Point {
	return Point{
		X: 2*center.X - p.X,
		Y: 2*center.Y - p.Y,
	}
}

// String returns a string representation like "(10,20)".
func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// Interval is a closed range on one axis. Intervals built with
// NewInterval always satisfy Low <= High.
type Interval struct {
	Low  float64
	High float64
}

// NewInterval returns the interval spanning a and b in either order.
func NewInterval(a, b float64) Interval {
	if a > b {
		a, b = b, a
	}
	return Interval{Low: a, High: b}
}

// IsNormalized returns true if Low <= High.
func (i Interval) IsNormalized() bool {
	return i.Low <= i.High
}

// Length returns High - Low.
func (i Interval) Length() float64 {
	return i.High - i.Low
}

// IsEmpty returns true if the interval has zero length.
func (i Interval) IsEmpty() bool {
	return i.Length() == 0
}

// Contains returns true if v lies within the interval, inclusive.
func (i Interval) Contains(v float64) bool {
	return v >= i.Low && v <= i.High
}

// Clamp restricts the interval to bounds. An interval lying entirely
// outside bounds collapses onto the nearest edge.
func (i Interval) Clamp(bounds Interval) Interval {
	low := math.Min(math.Max(i.Low, bounds.Low), bounds.High)
	high := math.Max(math.Min(i.High, bounds.High), bounds.Low)
	return Interval{Low: low, High: high}
}

// Mid returns the midpoint.
func (i Interval) Mid() float64 {
	return (i.Low + i.High) / 2
}

// String returns a string representation like "[10,20]".
func (i Interval) String() string {
	return fmt.Sprintf("[%g,%g]", i.Low, i.High)
}

// Rect is an axis-aligned rectangle described by one interval per axis.
type Rect struct {
	X Interval
	Y Interval
}

// RectFromPoints returns the normalized rectangle spanning a and b.
func RectFromPoints(a, b Point) Rect {
	return Rect{
		X: NewInterval(a.X, b.X),
		Y: NewInterval(a.Y, b.Y),
	}
}

// Contains returns true if p lies within the rectangle, inclusive.
func (r Rect) Contains(p Point) bool {
	return r.X.Contains(p.X) && r.Y.Contains(p.Y)
}

// IsEmpty returns true if the rectangle has zero area.
func (r Rect) IsEmpty() bool {
	return r.X.IsEmpty() || r.Y.IsEmpty()
}

// Center returns the rectangle's midpoint.
func (r Rect) Center() Point {
	return Point{X: r.X.Mid(), Y: r.Y.Mid()}
}

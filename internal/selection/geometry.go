package selection

import "github.com/dshills/boxselect/internal/geometry"

// Geometry describes the region a selection is made over.
type Geometry interface {
	// Kind names the geometry, e.g. "rect".
	Kind() string
}

// KindRect is the kind of RectGeometry.
const KindRect = "rect"

// RectGeometry is a screen-space axis-aligned rectangle.
type RectGeometry struct {
	SX0 float64
	SX1 float64
	SY0 float64
	SY1 float64
}

// NewRectGeometry packages a pair of screen intervals.
func NewRectGeometry(x, y geometry.Interval) RectGeometry {
	return RectGeometry{SX0: x.Low, SX1: x.High, SY0: y.Low, SY1: y.High}
}

// Kind returns KindRect.
func (RectGeometry) Kind() string {
	return KindRect
}

// Rect returns the rectangle as normalized intervals.
func (g RectGeometry) Rect() geometry.Rect {
	return geometry.Rect{
		X: geometry.NewInterval(g.SX0, g.SX1),
		Y: geometry.NewInterval(g.SY0, g.SY1),
	}
}

// Applier performs a selection over the underlying data.
type Applier interface {
	// Select applies geom with the given combination mode. final is false
	// for live previews during a drag and true for the committed result.
	Select(geom Geometry, final bool, mode Mode) error
}

// ApplierFunc adapts a function to the Applier interface.
type ApplierFunc func(geom Geometry, final bool, mode Mode) error

// Select calls f.
func (f ApplierFunc) Select(geom Geometry, final bool, mode Mode) error {
	return f(geom, final, mode)
}

// Package frame maps between the screen-space plot area and data space.
//
// A Frame owns the screen bounding box of the plot region and the data
// ranges shown along each axis. Screen y grows downward, so the top edge
// of the box corresponds to the high end of the data y range.
package frame

import (
	"math"
	"sync"

	"github.com/dshills/boxselect/internal/geometry"
)

// Frame is the plot area of a scene.
type Frame struct {
	mu sync.RWMutex

	// bbox is the screen-space box; X spans left..right, Y spans top..bottom.
	bbox geometry.Rect

	xRange geometry.Interval
	yRange geometry.Interval
}

// New creates a frame for the given screen box and data ranges.
func New(bbox geometry.Rect, xRange, yRange geometry.Interval) *Frame {
	return &Frame{
		bbox:   normalizeRect(bbox),
		xRange: xRange,
		yRange: yRange,
	}
}

// HRange returns the full horizontal screen extent of the frame.
func (f *Frame) HRange() geometry.Interval {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.bbox.X
}

// VRange returns the full vertical screen extent of the frame.
func (f *Frame) VRange() geometry.Interval {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.bbox.Y
}

// BBox returns the screen bounding box.
func (f *Frame) BBox() geometry.Rect {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.bbox
}

// SetBBox replaces the screen bounding box, e.g. after a resize.
func (f *Frame) SetBBox(bbox geometry.Rect) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bbox = normalizeRect(bbox)
}

// DataRanges returns the x and y data ranges.
func (f *Frame) DataRanges() (x, y geometry.Interval) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.xRange, f.yRange
}

// SetDataRanges replaces the data ranges.
func (f *Frame) SetDataRanges(x, y geometry.Interval) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.xRange = x
	f.yRange = y
}

// ScreenToData maps a screen point into data space.
func (f *Frame) ScreenToData(p geometry.Point) geometry.Point {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return geometry.Point{
		X: scale(p.X, f.bbox.X.Low, f.bbox.X.High, f.xRange.Low, f.xRange.High),
		Y: scale(p.Y, f.bbox.Y.High, f.bbox.Y.Low, f.yRange.Low, f.yRange.High),
	}
}

// DataToScreen maps a data point into screen space.
func (f *Frame) DataToScreen(p geometry.Point) geometry.Point {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return geometry.Point{
		X: scale(p.X, f.xRange.Low, f.xRange.High, f.bbox.X.Low, f.bbox.X.High),
		Y: scale(p.Y, f.yRange.Low, f.yRange.High, f.bbox.Y.High, f.bbox.Y.Low),
	}
}

// ScreenRectToData maps a screen rectangle into a normalized data rectangle.
func (f *Frame) ScreenRectToData(r geometry.Rect) geometry.Rect {
	lo := f.ScreenToData(geometry.Point{X: r.X.Low, Y: r.Y.Low})
	hi := f.ScreenToData(geometry.Point{X: r.X.High, Y: r.Y.High})
	return geometry.RectFromPoints(lo, hi)
}

// RangeOf returns the interval covering values, widened on each side by
// pad times its length. Empty input yields [0,1]; a single distinct
// value yields a unit interval around it.
func RangeOf(values []float64, pad float64) geometry.Interval {
	if len(values) == 0 {
		return geometry.Interval{Low: 0, High: 1}
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo == hi {
		return geometry.Interval{Low: lo - 0.5, High: hi + 0.5}
	}
	d := (hi - lo) * pad
	return geometry.Interval{Low: lo - d, High: hi + d}
}

// scale maps v linearly from [a0,a1] onto [b0,b1]. A zero-width source
// maps everything to the midpoint of the target.
func scale(v, a0, a1, b0, b1 float64) float64 {
	if a1 == a0 {
		return (b0 + b1) / 2
	}
	return b0 + (v-a0)/(a1-a0)*(b1-b0)
}

func normalizeRect(r geometry.Rect) geometry.Rect {
	return geometry.Rect{
		X: geometry.NewInterval(r.X.Low, r.X.High),
		Y: geometry.NewInterval(r.Y.Low, r.Y.High),
	}
}

package boxselect

import "github.com/dshills/boxselect/internal/geometry"

// Frame reports the screen extent of the plot area.
type Frame interface {
	// HRange returns the frame's full horizontal screen extent.
	HRange() geometry.Interval

	// VRange returns the frame's full vertical screen extent.
	VRange() geometry.Interval
}

// ComputeLimits returns the normalized screen intervals of the box for a
// drag from anchor to current.
//
// With OriginCenter the anchor is the box centre: the far corner is
// current reflected through anchor. A restricted axis spans the frame's
// full extent; a controlled axis is clamped to it.
func ComputeLimits(anchor, current geometry.Point, dims Dimensions, origin Origin, frame Frame) (x, y geometry.Interval) {
	base := anchor
	if origin == OriginCenter {
		base = current.ReflectAbout(anchor)
	}

	hr, vr := frame.HRange(), frame.VRange()

	x = geometry.NewInterval(hr.Low, hr.High)
	if dims == DimensionsBoth || dims == DimensionsWidth {
		x = geometry.NewInterval(base.X, current.X).Clamp(x)
	}

	y = geometry.NewInterval(vr.Low, vr.High)
	if dims == DimensionsBoth || dims == DimensionsHeight {
		y = geometry.NewInterval(base.Y, current.Y).Clamp(y)
	}

	return x, y
}

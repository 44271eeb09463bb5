package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dshills/boxselect/internal/geometry"
)

func newTestFrame() *Frame {
	return New(
		geometry.Rect{X: geometry.Interval{Low: 0, High: 800}, Y: geometry.Interval{Low: 0, High: 600}},
		geometry.Interval{Low: 0, High: 8},
		geometry.Interval{Low: 0, High: 6},
	)
}

func TestFrameRanges(t *testing.T) {
	f := newTestFrame()
	assert.Equal(t, geometry.Interval{Low: 0, High: 800}, f.HRange())
	assert.Equal(t, geometry.Interval{Low: 0, High: 600}, f.VRange())

	f.SetBBox(geometry.Rect{X: geometry.Interval{Low: 100, High: 10}, Y: geometry.Interval{Low: 50, High: 5}})
	assert.Equal(t, geometry.Interval{Low: 10, High: 100}, f.HRange())
	assert.Equal(t, geometry.Interval{Low: 5, High: 50}, f.VRange())
}

func TestFrameScreenToData(t *testing.T) {
	f := newTestFrame()

	tests := []struct {
		screen geometry.Point
		data   geometry.Point
	}{
		{geometry.Pt(0, 600), geometry.Pt(0, 0)},
		{geometry.Pt(800, 0), geometry.Pt(8, 6)},
		{geometry.Pt(400, 300), geometry.Pt(4, 3)},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.data.X, f.ScreenToData(tt.screen).X, 1e-9)
		assert.InDelta(t, tt.data.Y, f.ScreenToData(tt.screen).Y, 1e-9)
		assert.InDelta(t, tt.screen.X, f.DataToScreen(tt.data).X, 1e-9)
		assert.InDelta(t, tt.screen.Y, f.DataToScreen(tt.data).Y, 1e-9)
	}
}

func TestFrameScreenRectToData(t *testing.T) {
	f := newTestFrame()
	r := f.ScreenRectToData(geometry.Rect{
		X: geometry.Interval{Low: 100, High: 200},
		Y: geometry.Interval{Low: 0, High: 300},
	})
	assert.InDelta(t, 1, r.X.Low, 1e-9)
	assert.InDelta(t, 2, r.X.High, 1e-9)
	assert.InDelta(t, 3, r.Y.Low, 1e-9)
	assert.InDelta(t, 6, r.Y.High, 1e-9)
}

func TestRangeOf(t *testing.T) {
	assert.Equal(t, geometry.Interval{Low: 0, High: 1}, RangeOf(nil, 0.1))
	assert.Equal(t, geometry.Interval{Low: 1.5, High: 2.5}, RangeOf([]float64{2, 2}, 0.1))

	r := RangeOf([]float64{0, 10, 5}, 0.1)
	assert.InDelta(t, -1, r.Low, 1e-9)
	assert.InDelta(t, 11, r.High, 1e-9)
}

func TestScaleZeroWidthSource(t *testing.T) {
	f := New(
		geometry.Rect{X: geometry.Interval{Low: 0, High: 100}, Y: geometry.Interval{Low: 0, High: 100}},
		geometry.Interval{Low: 5, High: 5},
		geometry.Interval{Low: 0, High: 10},
	)
	assert.Equal(t, 50.0, f.DataToScreen(geometry.Pt(5, 0)).X)
}

package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIntervalNormalizes(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		want Interval
	}{
		{"ascending", 10, 50, Interval{10, 50}},
		{"descending", 50, 10, Interval{10, 50}},
		{"degenerate", 30, 30, Interval{30, 30}},
		{"negative", -5, -20, Interval{-20, -5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewInterval(tt.a, tt.b)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.IsNormalized())
		})
	}
}

func TestIntervalClamp(t *testing.T) {
	bounds := Interval{Low: 0, High: 100}

	tests := []struct {
		name string
		in   Interval
		want Interval
	}{
		{"inside", Interval{10, 20}, Interval{10, 20}},
		{"overlaps low", Interval{-10, 20}, Interval{0, 20}},
		{"overlaps high", Interval{90, 120}, Interval{90, 100}},
		{"covers", Interval{-50, 150}, Interval{0, 100}},
		{"below", Interval{-50, -10}, Interval{0, 0}},
		{"above", Interval{110, 150}, Interval{100, 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Clamp(bounds)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.IsNormalized())
		})
	}
}

func TestIntervalContains(t *testing.T) {
	i := Interval{Low: 10, High: 20}
	assert.True(t, i.Contains(10))
	assert.True(t, i.Contains(20))
	assert.True(t, i.Contains(15))
	assert.False(t, i.Contains(9.99))
	assert.False(t, i.Contains(20.01))
}

func TestPointReflectAbout(t *testing.T) {
	got := Pt(120, 110).ReflectAbout(Pt(100, 100))
	assert.Equal(t, Pt(80, 90), got)
}

func TestRectFromPoints(t *testing.T) {
	r := RectFromPoints(Pt(50, 50), Pt(10, 10))
	assert.Equal(t, Interval{10, 50}, r.X)
	assert.Equal(t, Interval{10, 50}, r.Y)
	assert.True(t, r.Contains(Pt(30, 30)))
	assert.False(t, r.Contains(Pt(5, 30)))
	assert.Equal(t, Pt(30, 30), r.Center())
	assert.False(t, r.IsEmpty())
	assert.True(t, RectFromPoints(Pt(1, 1), Pt(1, 5)).IsEmpty())
}

package plot

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/dshills/boxselect/internal/frame"
	"github.com/dshills/boxselect/internal/geometry"
	"github.com/dshills/boxselect/internal/selection"
)

// Source is a set of data-space points.
type Source struct {
	Name string
	X    []float64
	Y    []float64
}

// NewSource creates a source from columns of equal length.
func NewSource(name string, x, y []float64) (*Source, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: x has %d values, y has %d", ErrInvalidData, len(x), len(y))
	}
	return &Source{Name: name, X: x, Y: y}, nil
}

// ParseSource reads a source from JSON.
func ParseSource(data []byte) (*Source, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: malformed json", ErrInvalidData)
	}

	root := gjson.ParseBytes(data)
	var xs, ys gjson.Result
	var name string
	switch {
	case root.IsArray():
		xs, ys = root.Get("#.x"), root.Get("#.y")
		if len(xs.Array()) != len(root.Array()) || len(ys.Array()) != len(root.Array()) {
			return nil, fmt.Errorf("%w: every point needs x and y", ErrInvalidData)
		}
	case root.IsObject():
		xs, ys = root.Get("x"), root.Get("y")
		if !xs.IsArray() || !ys.IsArray() {
			return nil, fmt.Errorf("%w: x and y must be arrays", ErrInvalidData)
		}
		name = root.Get("name").String()
	default:
		return nil, fmt.Errorf("%w: expected object or array", ErrInvalidData)
	}

	x, err := numbers("x", xs)
	if err != nil {
		return nil, err
	}
	y, err := numbers("y", ys)
	if err != nil {
		return nil, err
	}
	return NewSource(name, x, y)
}

func numbers(field string, r gjson.Result) ([]float64, error) {
	values := r.Array()
	out := make([]float64, len(values))
	for i, v := range values {
		if v.Type != gjson.Number {
			return nil, fmt.Errorf("%w: %s[%d] is %s", ErrInvalidData, field, i, v.Type)
		}
		out[i] = v.Float()
	}
	return out, nil
}

// LoadSource reads a source from a JSON file.
func LoadSource(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	src, err := ParseSource(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if src.Name == "" {
		src.Name = path
	}
	return src, nil
}

// Len returns the number of points.
func (s *Source) Len() int {
	return len(s.X)
}

// Point returns point i in data space.
func (s *Source) Point(i int) geometry.Point {
	return geometry.Point{X: s.X[i], Y: s.Y[i]}
}

// Ranges returns padded data ranges covering every point.
func (s *Source) Ranges(pad float64) (x, y geometry.Interval) {
	return frame.RangeOf(s.X, pad), frame.RangeOf(s.Y, pad)
}

type exportPoint struct {
	Index int     `json:"index"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

// ExportSelection renders the selected indices and their points as JSON:
//
//	{"source":"...","selected":{"indices":[...],"count":n},"points":[{"index":i,"x":..,"y":..}]}
func (s *Source) ExportSelection(sel selection.Indices) ([]byte, error) {
	indices := make([]int, 0, sel.Len())
	for _, i := range sel {
		if i < 0 || i >= s.Len() {
			return nil, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, s.Len())
		}
		indices = append(indices, i)
	}

	out := []byte(`{}`)
	var err error
	set := func(path string, value any) {
		if err == nil {
			out, err = sjson.SetBytes(out, path, value)
		}
	}

	set("source", s.Name)
	set("selected.indices", indices)
	set("selected.count", len(indices))
	points := make([]exportPoint, 0, len(indices))
	for _, i := range indices {
		points = append(points, exportPoint{Index: i, X: s.X[i], Y: s.Y[i]})
	}
	set("points", points)
	if err != nil {
		return nil, fmt.Errorf("export selection: %w", err)
	}
	return out, nil
}

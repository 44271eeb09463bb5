package renderer

import (
	"math"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/boxselect/internal/frame"
	"github.com/dshills/boxselect/internal/geometry"
	"github.com/dshills/boxselect/internal/overlay"
	"github.com/dshills/boxselect/internal/plot"
	"github.com/dshills/boxselect/internal/selection"
)

// Status is the content of the status line.
type Status struct {
	Tooltip   string
	Mode      selection.Mode
	Origin    string
	Selected  int
	Total     int
	UndoDepth int
	Dragging  bool
	Message   string
}

// String renders the status line text.
func (s Status) String() string {
	var b strings.Builder
	b.WriteString(s.Tooltip)
	b.WriteString(" | mode: ")
	b.WriteString(s.Mode.String())
	if s.Origin != "" {
		b.WriteString(" | origin: ")
		b.WriteString(s.Origin)
	}
	b.WriteString(" | selected: ")
	b.WriteString(strconv.Itoa(s.Selected))
	b.WriteString("/")
	b.WriteString(strconv.Itoa(s.Total))
	b.WriteString(" | undo: ")
	b.WriteString(strconv.Itoa(s.UndoDepth))
	if s.Dragging {
		b.WriteString(" | dragging")
	}
	if s.Message != "" {
		b.WriteString(" | ")
		b.WriteString(s.Message)
	}
	return b.String()
}

// Scene is everything drawn in one frame.
type Scene struct {
	Frame    *frame.Frame
	Source   *plot.Source
	Selected selection.Indices
	Box      overlay.BoxUpdate
	Status   Status
}

// Renderer draws scenes on a tcell screen.
type Renderer struct {
	screen tcell.Screen
	theme  Theme
	style  overlay.Style
}

// New creates a renderer for screen; the box is drawn with style.
func New(screen tcell.Screen, style overlay.Style) *Renderer {
	return &Renderer{
		screen: screen,
		theme:  DefaultTheme(style),
		style:  style,
	}
}

// Screen returns the underlying screen.
func (r *Renderer) Screen() tcell.Screen {
	return r.screen
}

// PlotArea returns the frame bbox for a screen of w by h cells: inside a
// one-cell border, above the status line.
func PlotArea(w, h int) geometry.Rect {
	right := math.Max(1, float64(w-2))
	bottom := math.Max(1, float64(h-3))
	return geometry.Rect{
		X: geometry.Interval{Low: 1, High: right},
		Y: geometry.Interval{Low: 1, High: bottom},
	}
}

// Draw renders scene and shows it.
func (r *Renderer) Draw(scene Scene) {
	r.screen.Clear()
	w, h := r.screen.Size()

	if scene.Frame != nil {
		r.drawBorder(scene.Frame.BBox())
		box, visible := scene.Box.Rect()
		if visible {
			r.drawBox(box)
		}
		if scene.Source != nil {
			r.drawPoints(scene.Frame, scene.Source, scene.Selected, box, visible)
		}
	}
	r.drawStatus(w, h, scene.Status.String())
	r.screen.Show()
}

func (r *Renderer) drawBorder(bbox geometry.Rect) {
	x0, x1 := int(bbox.X.Low)-1, int(bbox.X.High)+1
	y0, y1 := int(bbox.Y.Low)-1, int(bbox.Y.High)+1
	for x := x0; x <= x1; x++ {
		r.set(x, y0, GlyphBoxHorizontal, r.theme.Border)
		r.set(x, y1, GlyphBoxHorizontal, r.theme.Border)
	}
	for y := y0; y <= y1; y++ {
		r.set(x0, y, GlyphBoxVertical, r.theme.Border)
		r.set(x1, y, GlyphBoxVertical, r.theme.Border)
	}
	r.set(x0, y0, GlyphBoxCorner, r.theme.Border)
	r.set(x1, y0, GlyphBoxCorner, r.theme.Border)
	r.set(x0, y1, GlyphBoxCorner, r.theme.Border)
	r.set(x1, y1, GlyphBoxCorner, r.theme.Border)
}

// drawBox shades the box interior and draws its dashed outline.
func (r *Renderer) drawBox(rect geometry.Rect) {
	x0, x1 := cell(rect.X.Low), cell(rect.X.High)
	y0, y1 := cell(rect.Y.Low), cell(rect.Y.High)

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			r.set(x, y, ' ', r.theme.BoxFill)
		}
	}
	for i, x := 0, x0; x <= x1; i, x = i+1, x+1 {
		if r.style.Dashed(i) {
			r.set(x, y0, GlyphBoxHorizontal, r.theme.BoxLine)
			r.set(x, y1, GlyphBoxHorizontal, r.theme.BoxLine)
		}
	}
	for i, y := 0, y0; y <= y1; i, y = i+1, y+1 {
		if r.style.Dashed(i) {
			r.set(x0, y, GlyphBoxVertical, r.theme.BoxLine)
			r.set(x1, y, GlyphBoxVertical, r.theme.BoxLine)
		}
	}
}

// drawPoints draws every point inside the frame. Points under a visible
// box keep the box shading.
func (r *Renderer) drawPoints(f *frame.Frame, src *plot.Source, sel selection.Indices, box geometry.Rect, visible bool) {
	bbox := f.BBox()
	for i := 0; i < src.Len(); i++ {
		p := f.DataToScreen(src.Point(i))
		if !bbox.Contains(p) {
			continue
		}
		glyph, style := GlyphPoint, r.theme.Point
		if sel.Contains(i) {
			glyph, style = GlyphSelectedPoint, r.theme.Selected
		}
		if visible && box.Contains(p) {
			style = style.Background(bg(r.theme.BoxFill))
		}
		r.set(cell(p.X), cell(p.Y), glyph, style)
	}
}

func (r *Renderer) drawStatus(w, h int, text string) {
	y := h - 1
	for x := 0; x < w; x++ {
		r.set(x, y, ' ', r.theme.Status)
	}
	x := 0
	for _, ch := range text {
		if x >= w {
			break
		}
		r.set(x, y, ch, r.theme.Status)
		x++
	}
}

func (r *Renderer) set(x, y int, ch rune, style tcell.Style) {
	r.screen.SetContent(x, y, ch, nil, style)
}

func cell(v float64) int {
	return int(math.Round(v))
}

func bg(s tcell.Style) tcell.Color {
	_, b, _ := s.Decompose()
	return b
}

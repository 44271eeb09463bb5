package renderer

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/boxselect/internal/frame"
	"github.com/dshills/boxselect/internal/geometry"
	"github.com/dshills/boxselect/internal/overlay"
	"github.com/dshills/boxselect/internal/plot"
	"github.com/dshills/boxselect/internal/selection"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func runeAt(screen tcell.Screen, x, y int) rune {
	r, _, _, _ := screen.GetContent(x, y) //nolint:staticcheck // GetContent is the correct API
	return r
}

func rowText(screen tcell.Screen, y, w int) string {
	var b strings.Builder
	for x := 0; x < w; x++ {
		b.WriteRune(runeAt(screen, x, y))
	}
	return strings.TrimRight(b.String(), " ")
}

// testScene lays out a 40x12 screen: plot area [1,38]x[1,9] showing
// data [0,37]x[0,8], so data (x,y) lands on cell (1+x, 9-y).
func testScene(t *testing.T) (Scene, *frame.Frame) {
	t.Helper()
	src, err := plot.NewSource("t", []float64{4, 10}, []float64{4, 2})
	require.NoError(t, err)
	f := frame.New(PlotArea(40, 12), geometry.Interval{Low: 0, High: 37}, geometry.Interval{Low: 0, High: 8})
	return Scene{
		Frame:    f,
		Source:   src,
		Selected: selection.NewIndices(1),
		Box:      overlay.Cleared,
		Status: Status{
			Tooltip:  "Box Select",
			Mode:     selection.ModeReplace,
			Selected: 1,
			Total:    2,
		},
	}, f
}

func TestPlotArea(t *testing.T) {
	area := PlotArea(40, 12)
	assert.Equal(t, geometry.Interval{Low: 1, High: 38}, area.X)
	assert.Equal(t, geometry.Interval{Low: 1, High: 9}, area.Y)

	tiny := PlotArea(2, 2)
	assert.True(t, tiny.X.IsNormalized())
	assert.True(t, tiny.Y.IsNormalized())
}

func TestRendererDrawsPointsAndStatus(t *testing.T) {
	screen := newSimScreen(t, 40, 12)
	r := New(screen, overlay.DefaultStyle())
	scene, _ := testScene(t)

	r.Draw(scene)

	assert.Equal(t, GlyphPoint, runeAt(screen, 5, 5))
	assert.Equal(t, GlyphSelectedPoint, runeAt(screen, 11, 7))
	assert.Equal(t, GlyphBoxCorner, runeAt(screen, 0, 0))
	assert.Equal(t, GlyphBoxCorner, runeAt(screen, 39, 10))
	assert.Equal(t, GlyphBoxHorizontal, runeAt(screen, 10, 0))
	assert.Equal(t, GlyphBoxVertical, runeAt(screen, 0, 4))
	assert.Equal(t, "Box Select | mode: replace | selected: 1", rowText(screen, 11, 40), "status is clipped to the screen")
}

func TestRendererDrawsDashedBox(t *testing.T) {
	screen := newSimScreen(t, 40, 12)
	r := New(screen, overlay.DefaultStyle())
	scene, _ := testScene(t)
	scene.Box = overlay.UpdateFromIntervals(
		geometry.Interval{Low: 3, High: 12},
		geometry.Interval{Low: 3, High: 8},
	)

	r.Draw(scene)

	assert.Equal(t, GlyphBoxVertical, runeAt(screen, 3, 3), "vertical edge drawn over the corner")
	assert.Equal(t, GlyphBoxHorizontal, runeAt(screen, 4, 3))
	assert.Equal(t, ' ', runeAt(screen, 7, 3), "dash gap")
	assert.Equal(t, GlyphBoxHorizontal, runeAt(screen, 11, 8))
	assert.Equal(t, GlyphPoint, runeAt(screen, 5, 5), "points stay visible inside the box")

	_, _, style, _ := screen.GetContent(6, 5) //nolint:staticcheck // GetContent is the correct API
	_, bgColor, _ := style.Decompose()
	assert.Equal(t, tcell.ColorLightGray, bgColor)
}

func TestRendererHiddenBox(t *testing.T) {
	screen := newSimScreen(t, 40, 12)
	r := New(screen, overlay.DefaultStyle())
	scene, _ := testScene(t)

	r.Draw(scene)
	assert.Equal(t, ' ', runeAt(screen, 4, 3))
}

func TestStatusString(t *testing.T) {
	s := Status{
		Tooltip:   "Box Select (x-axis)",
		Mode:      selection.ModeAppend,
		Origin:    "center",
		Selected:  3,
		Total:     10,
		UndoDepth: 2,
		Dragging:  true,
		Message:   "hook says hi",
	}
	assert.Equal(t,
		"Box Select (x-axis) | mode: append | origin: center | selected: 3/10 | undo: 2 | dragging | hook says hi",
		s.String())
}

package renderer

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/boxselect/internal/overlay"
)

// Glyphs used when drawing.
const (
	GlyphPoint         = '·'
	GlyphSelectedPoint = '●'
	GlyphBoxHorizontal = '─'
	GlyphBoxVertical   = '│'
	GlyphBoxCorner     = '+'
)

// Theme holds the styles the renderer draws with.
type Theme struct {
	Base     tcell.Style
	Border   tcell.Style
	Point    tcell.Style
	Selected tcell.Style
	Status   tcell.Style
	BoxFill  tcell.Style
	BoxLine  tcell.Style
}

// DefaultTheme returns the default theme with the box styled by s.
func DefaultTheme(s overlay.Style) Theme {
	base := tcell.StyleDefault
	return Theme{
		Base:     base,
		Border:   base.Foreground(tcell.ColorGray),
		Point:    base.Foreground(tcell.ColorSteelBlue),
		Selected: base.Foreground(tcell.ColorOrange).Bold(true),
		Status:   base.Reverse(true),
		BoxFill:  boxFill(base, s),
		BoxLine:  boxLine(base, s),
	}
}

// boxFill shades the fill when the style's alpha is visible.
func boxFill(base tcell.Style, s overlay.Style) tcell.Style {
	if s.FillAlpha <= 0 {
		return base
	}
	st := base.Background(colorOrDefault(s.FillColor, tcell.ColorLightGray))
	if s.FillAlpha < 1 {
		st = st.Dim(true)
	}
	return st
}

func boxLine(base tcell.Style, s overlay.Style) tcell.Style {
	st := base.Foreground(colorOrDefault(s.LineColor, tcell.ColorWhite))
	if s.LineWidth > 1 {
		st = st.Bold(true)
	}
	return st
}

func colorOrDefault(name string, def tcell.Color) tcell.Color {
	if c := tcell.GetColor(name); c != tcell.ColorDefault {
		return c
	}
	return def
}

package renderer

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/boxselect/internal/geometry"
	"github.com/dshills/boxselect/internal/input/mouse"
)

// MouseConverter turns tcell mouse reports into press, drag, release and
// move events. tcell reports button state rather than transitions, so
// the previous state is tracked.
type MouseConverter struct {
	prev tcell.ButtonMask
}

// Convert converts ev. The boolean is false for wheel and other reports
// with no mouse.Event equivalent.
func (c *MouseConverter) Convert(ev *tcell.EventMouse) (mouse.Event, bool) {
	buttons := ev.Buttons() & (tcell.Button1 | tcell.Button2 | tcell.Button3)
	if ev.Buttons()&(tcell.WheelUp|tcell.WheelDown|tcell.WheelLeft|tcell.WheelRight) != 0 && buttons == 0 {
		return mouse.Event{}, false
	}

	x, y := ev.Position()
	out := mouse.Event{
		Position:  geometry.Pt(float64(x), float64(y)),
		Modifiers: ConvertModifiers(ev.Modifiers()),
		Timestamp: ev.When(),
	}
	if out.Timestamp.IsZero() {
		out.Timestamp = time.Now()
	}

	prev := c.prev
	c.prev = buttons
	pressed := buttons &^ prev
	released := prev &^ buttons

	// Transitions of the primary button are always reported; another
	// button joining or leaving mid-drag is motion of the buttons held.
	switch {
	case prev == 0 && buttons == 0:
		out.Action = mouse.ActionMove
	case pressed != 0 && (prev == 0 || pressed&tcell.Button1 != 0):
		out.Action = mouse.ActionPress
		out.Button = convertButton(pressed)
	case released != 0 && (buttons == 0 || released&tcell.Button1 != 0):
		out.Action = mouse.ActionRelease
		out.Button = convertButton(released)
	default:
		out.Action = mouse.ActionDrag
		out.Button = convertButton(buttons)
	}
	return out, true
}

// Reset forgets the tracked button state, e.g. after focus loss.
func (c *MouseConverter) Reset() {
	c.prev = 0
}

func convertButton(b tcell.ButtonMask) mouse.Button {
	switch {
	case b&tcell.Button1 != 0:
		return mouse.ButtonLeft
	case b&tcell.Button3 != 0:
		return mouse.ButtonMiddle
	case b&tcell.Button2 != 0:
		return mouse.ButtonRight
	default:
		return mouse.ButtonNone
	}
}

// ConvertModifiers converts tcell modifiers.
func ConvertModifiers(m tcell.ModMask) mouse.Modifier {
	var out mouse.Modifier
	if m&tcell.ModShift != 0 {
		out |= mouse.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		out |= mouse.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		out |= mouse.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		out |= mouse.ModMeta
	}
	return out
}

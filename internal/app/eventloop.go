package app

import (
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/boxselect/internal/event"
	"github.com/dshills/boxselect/internal/input/mouse"
	"github.com/dshills/boxselect/internal/renderer"
	"github.com/dshills/boxselect/internal/tool/boxselect"
)

// HandleEvent processes one terminal event and redraws. It returns ErrQuit
// when the user asks to exit.
func (a *App) HandleEvent(ev tcell.Event) error {
	var err error
	switch e := ev.(type) {
	case *tcell.EventMouse:
		if me, ok := a.converter.Convert(e); ok {
			err = a.HandleMouse(me)
		}

	case *tcell.EventKey:
		err = a.handleKey(e)

	case *tcell.EventResize:
		w, h := e.Size()
		a.handleResize(w, h)

	case *tcell.EventFocus:
		if !e.Focused {
			err = a.CancelGesture()
		}
	}

	if err != nil {
		return err
	}
	a.Draw()
	return nil
}

// HandleMouse feeds a mouse event through the gesture handler into the
// controller.
func (a *App) HandleMouse(ev mouse.Event) error {
	g, ok := a.handler.Handle(ev)
	if !ok {
		return nil
	}
	return a.handleGesture(g)
}

// CancelGesture finishes an active gesture at its last position, as if
// the button had been released there.
func (a *App) CancelGesture() error {
	g, ok := a.handler.Cancel()
	if !ok {
		return nil
	}
	a.converter.Reset()
	a.logger.Debug("gesture cancelled")
	return a.handleGesture(g)
}

func (a *App) handleGesture(g mouse.Gesture) error {
	if g.Phase == mouse.PhaseStart {
		a.setMessage("")
	}

	err := a.controller.Handle(g)
	if g.Phase == mouse.PhaseEnd {
		a.publish(event.TopicGestureEnd, event.GestureEnd{Gesture: a.controller.LastGestureID(), Err: err})
	}
	if err != nil {
		a.logger.Warn("selection failed",
			slog.String("phase", g.Phase.String()),
			slog.Any("error", err))
	}
	return err
}

func (a *App) handleKey(ev *tcell.EventKey) error {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ErrQuit
	case tcell.KeyRune:
	default:
		return nil
	}

	switch ev.Rune() {
	case 'q':
		return ErrQuit
	case 'u':
		return a.Undo()
	case 'r':
		return a.Redo()
	case '1':
		return a.SetPreset(boxselect.PresetBoxSelect)
	case '2':
		return a.SetPreset(boxselect.PresetXBoxSelect)
	case '3':
		return a.SetPreset(boxselect.PresetYBoxSelect)
	case 'c':
		return a.ToggleOrigin()
	case 'e':
		return a.Export()
	}
	return nil
}

func (a *App) handleResize(w, h int) {
	a.screen.Sync()
	a.frame.SetBBox(renderer.PlotArea(w, h))
	a.logger.Debug("resized", slog.Int("width", w), slog.Int("height", h))
}

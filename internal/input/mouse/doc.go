// Package mouse turns raw pointer events into pan gestures.
//
// Backends report presses, releases and motion as Event values. The
// Handler folds them into a strictly serial sequence of gesture phases
// for one configured button:
//
//	handler := mouse.NewHandler(mouse.DefaultConfig())
//	if g, ok := handler.Handle(ev); ok {
//	    switch g.Phase {
//	    case mouse.PhaseStart:
//	        tool.Press(g.Position)
//	    case mouse.PhaseMove:
//	        tool.Move(g.Position, g.Modifiers)
//	    case mouse.PhaseEnd:
//	        tool.Release(g.Position, g.Modifiers)
//	    }
//	}
//
// # Guarantees
//
// At most one gesture is active at a time. A press while a gesture is
// active is ignored, and motion or release with no active gesture is
// dropped, so consumers never observe an end without a start or a
// second start before an end.
//
// # Cancellation
//
// Backends that lose focus mid-drag call Cancel, which ends the active
// gesture at its last known position.
//
// # Thread Safety
//
// Handler is safe for concurrent use. All state mutations are
// synchronized with a mutex.
package mouse

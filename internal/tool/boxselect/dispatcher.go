package boxselect

import (
	"fmt"

	"github.com/dshills/boxselect/internal/geometry"
	"github.com/dshills/boxselect/internal/selection"
)

// Dispatcher forwards box geometry to a selection applier.
type Dispatcher struct {
	applier selection.Applier
}

// NewDispatcher creates a dispatcher for applier.
func NewDispatcher(applier selection.Applier) *Dispatcher {
	return &Dispatcher{applier: applier}
}

// Apply packages x and y as a rect geometry and hands it to the applier.
// Identical consecutive calls are forwarded as-is.
func (d *Dispatcher) Apply(x, y geometry.Interval, final bool, mode selection.Mode) error {
	geom := selection.NewRectGeometry(x, y)
	if err := d.applier.Select(geom, final, mode); err != nil {
		phase := "preview"
		if final {
			phase = "final"
		}
		return fmt.Errorf("apply %s %s selection: %w", phase, mode, err)
	}
	return nil
}

package overlay

import "github.com/dshills/boxselect/internal/geometry"

// Feedback pushes computed selection intervals to an overlay target.
type Feedback struct {
	target Target
}

// NewFeedback creates a feedback adapter for target.
func NewFeedback(target Target) *Feedback {
	return &Feedback{target: target}
}

// Show displays the box spanning x and y.
func (f *Feedback) Show(x, y geometry.Interval) {
	f.target.Update(UpdateFromIntervals(x, y))
}

// Hide clears all four edges so the overlay renders nothing.
func (f *Feedback) Hide() {
	f.target.Update(Cleared)
}

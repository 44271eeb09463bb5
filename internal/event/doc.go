// Package event provides a synchronous publish/subscribe bus keyed by
// hierarchical dot-separated topics.
//
// # Topics
//
//	selection.geometry
//	history.push
//	history.undo
//	history.redo
//	config.reload
//	gesture.end
//
// Subscriptions may use wildcards:
//
//   - "*" matches exactly one segment
//   - "**" matches zero or more segments
//
// # Delivery
//
// Publish runs matching handlers in the publisher's goroutine, ordered by
// priority (lower first) and then by subscription order. A handler that
// panics is recovered and logged; the remaining handlers still run.
//
// # Usage
//
//	bus := event.NewBus(event.WithLogger(logger))
//	sub, _ := bus.Subscribe("selection.*", func(ctx context.Context, ev event.Event) error {
//		geom := ev.Payload.(event.SelectionGeometry)
//		...
//		return nil
//	})
//	defer sub.Cancel()
package event

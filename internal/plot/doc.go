// Package plot holds the scatter data a box selection is made over.
//
// A Source is loaded from JSON, either columnar
//
//	{"x": [1, 2, 3], "y": [4, 5, 6]}
//
// or as a list of points
//
//	[{"x": 1, "y": 4}, {"x": 2, "y": 5}]
//
// A Plot hit-tests rectangle geometries against the source through a
// frame and keeps the resulting indices in a selection.Manager.
package plot

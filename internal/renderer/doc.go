// Package renderer draws a box select scene on a tcell screen and
// converts tcell mouse events into mouse.Event values.
//
// Screen coordinates are terminal cells. The plot frame occupies the
// screen minus a one-cell border and a status line at the bottom.
package renderer

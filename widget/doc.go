/*
Package widget shows braille canvases on a tcell screen.

Render copies braille rows into any views.View, clipping to whichever of the
view and the source is smaller. Widget wraps that as a views.Widget, and
Animation runs a full screen redraw loop around a canvas sized to the
terminal.
*/
package widget

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'braillix.widget'.
func tracer() tracing.Trace {
	return tracing.Select("braillix.widget")
}

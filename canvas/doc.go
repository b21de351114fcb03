/*
Package canvas draws shapes onto a braille dot buffer.

A Canvas owns one braille.Buffer. Shapes (Line, Rect, Circle, Triangle)
rasterize themselves onto a canvas with a Style, which says at what
brightness to draw the outline and the fill of the shape, if at all.
Brightness is realized with ordered dithering: a dot requested at brightness
b is on when b exceeds the dither threshold at that dot.

	c := canvas.WithDotSize(60, 60)
	c.Draw(canvas.NewCircle(point.Pt(30, 30), 24), canvas.Outlined())
	fmt.Println(c)

A Canvas is not safe for concurrent use; callers serialize access, typically
drawing one frame at a time.
*/
package canvas

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'braillix.canvas'.
func tracer() tracing.Trace {
	return tracing.Select("braillix.canvas")
}

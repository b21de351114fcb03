package canvas

import (
	"image"
	"iter"

	"github.com/borkshop/braillix/bitmap"
	"github.com/borkshop/braillix/braille"
	"github.com/borkshop/braillix/dither"
	"github.com/borkshop/braillix/internal/moremath"
	"github.com/borkshop/braillix/point"
)

// Shape is anything that can rasterize itself onto a canvas.
type Shape interface {
	Rasterize(c *Canvas, s Style)
}

// Canvas draws shapes onto a braille buffer it owns.
type Canvas struct {
	buf *braille.Buffer
}

// WithDotSize returns a canvas of width x height dots. Panics unless width is
// a multiple of 2 and height a multiple of 4; see braille.CheckDotSize.
func WithDotSize(width, height int) *Canvas {
	return &Canvas{buf: braille.WithDotSize(width, height)}
}

// WithOutputSize returns a canvas of width x height braille characters.
func WithOutputSize(width, height int) *Canvas {
	return &Canvas{buf: braille.WithOutputSize(width, height)}
}

// Buffer returns the buffer the canvas draws on.
func (c *Canvas) Buffer() *braille.Buffer { return c.buf }

// OutputSize returns the size of the canvas in characters.
func (c *Canvas) OutputSize() (width, height int) { return c.buf.OutputSize() }

// DotSize returns the size of the canvas in dots.
func (c *Canvas) DotSize() (width, height int) { return c.buf.DotSize() }

// Bounds returns the dot rectangle of the canvas.
func (c *Canvas) Bounds() image.Rectangle { return c.buf.Bounds() }

// Clear turns off every dot.
func (c *Canvas) Clear() { c.buf.Clear() }

// Lines returns a sequence of the canvas rows as braille text.
func (c *Canvas) Lines() iter.Seq[string] { return c.buf.Lines() }

// String returns the canvas rows joined by newlines.
func (c *Canvas) String() string { return c.buf.String() }

// Draw rasterizes a shape with the given style.
func (c *Canvas) Draw(shape Shape, s Style) {
	shape.Rasterize(c, s)
}

// DrawLine draws a line between two points, endpoints included.
func (c *Canvas) DrawLine(from, to point.Coords, s Style) {
	c.Draw(NewLine(from, to), s)
}

// DrawRect draws the rectangle spanning corner to corner+dim.
func (c *Canvas) DrawRect(corner, dim point.Coords, s Style) {
	c.Draw(NewRect(corner, dim), s)
}

// DrawCircle draws a circle about center.
func (c *Canvas) DrawCircle(center point.Coords, radius int, s Style) {
	c.Draw(NewCircle(center, radius), s)
}

// DrawTriangle draws the triangle with the given vertices.
func (c *Canvas) DrawTriangle(p0, p1, p2 point.Coords, s Style) {
	c.Draw(NewTriangle(p0, p1, p2), s)
}

// SetWithBrightness sets or clears the dot at p as the dither dictates for
// the given brightness. Dots outside the canvas are ignored.
func (c *Canvas) SetWithBrightness(p point.Coords, brightness int) {
	pt := p.Round()
	c.plot(pt.X, pt.Y, brightness)
}

func (c *Canvas) plot(x, y, brightness int) {
	if !image.Pt(x, y).In(c.buf.Bounds()) {
		return
	}
	if dither.On(x, y, brightness) {
		c.buf.Set(x, y)
	} else {
		c.buf.Unset(x, y)
	}
}

// Shade resolves every dot of the canvas through SetWithBrightness, at the
// brightness f returns for it.
func (c *Canvas) Shade(f func(pt point.Point) int) {
	w, h := c.DotSize()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c.plot(x, y, f(point.Pt(x, y)))
		}
	}
}

// Blit turns on the dots under every on bit of src, with the top-left of src
// placed at at. Off bits leave the canvas untouched.
func (c *Canvas) Blit(src bitmap.Reader, at point.Point) {
	r := src.Bounds()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if src.At(x, y) {
				c.buf.Set(at.X+x-r.Min.X, at.Y+y-r.Min.Y)
			}
		}
	}
}

func (c *Canvas) drawHorLine(y, x0, x1, brightness int) {
	x0, x1 = moremath.MinMax(x0, x1)
	for x := x0; x <= x1; x++ {
		c.plot(x, y, brightness)
	}
}

func (c *Canvas) drawVerLine(x, y0, y1, brightness int) {
	y0, y1 = moremath.MinMax(y0, y1)
	for y := y0; y <= y1; y++ {
		c.plot(x, y, brightness)
	}
}

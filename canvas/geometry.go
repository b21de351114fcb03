package canvas

import (
	"github.com/borkshop/braillix/internal/moremath"
	"github.com/borkshop/braillix/point"
)

// Line is a segment between two dots, both included.
type Line struct {
	From, To point.Point
}

// NewLine returns the line from one point to another.
func NewLine(from, to point.Coords) Line {
	return Line{from.Round(), to.Round()}
}

// Rasterize draws the line at the style's outline brightness; the fill plays
// no part in a line.
func (l Line) Rasterize(c *Canvas, s Style) {
	b, ok := s.Outline()
	if !ok {
		return
	}

	x0, y0 := l.From.X, l.From.Y
	x1, y1 := l.To.X, l.To.Y

	switch {
	case x0 == x1 && y0 == y1:
		c.plot(x0, y0, b)
	case y0 == y1:
		c.drawHorLine(y0, x0, x1, b)
	case x0 == x1:
		c.drawVerLine(x0, y0, y1, b)
	default:
		// https://en.wikipedia.org/wiki/Bresenham%27s_line_algorithm#All_cases
		dx, sx := moremath.AbsInt(x1-x0), moremath.IntSign(x1-x0)
		dy, sy := -moremath.AbsInt(y1-y0), moremath.IntSign(y1-y0)
		e := dx + dy
		for {
			c.plot(x0, y0, b)
			e2 := 2 * e
			if e2 >= dy {
				if x0 == x1 {
					break
				}
				e += dy
				x0 += sx
			}
			if e2 <= dx {
				if y0 == y1 {
					break
				}
				e += dx
				y0 += sy
			}
		}
	}
}

// Rect is the rectangle spanning Corner to Corner+Dim, exclusive of the far
// edges. Dim may be negative on either axis.
type Rect struct {
	Corner, Dim point.Point
}

// NewRect returns the rectangle at corner with extent dim.
func NewRect(corner, dim point.Coords) Rect {
	return Rect{corner.Round(), dim.Round()}
}

// Rasterize fills the rectangle row by row, then draws its outline unless it
// would match the fill.
func (r Rect) Rasterize(c *Canvas, s Style) {
	box := point.Span(r.Corner, r.Dim)
	if box.Empty() {
		tracer().Debugf("canvas: empty rect %v+%v", r.Corner, r.Dim)
		return
	}
	p0, last := box.TopLeft, box.BottomRight.Sub(point.Pt(1, 1))

	if b, ok := s.Fill(); ok {
		row := OutlinedWithBrightness(b)
		for y := p0.Y; y <= last.Y; y++ {
			c.Draw(Line{point.Pt(p0.X, y), point.Pt(last.X, y)}, row)
		}
	}

	b, ok := s.DistinguishableOutline()
	if !ok {
		return
	}
	edge := OutlinedWithBrightness(b)
	sz := box.Size()
	switch {
	case sz.X == 1 && sz.Y == 1:
		c.plot(p0.X, p0.Y, b)
	case sz.X == 1 || sz.Y == 1:
		c.Draw(Line{p0, last}, edge)
	default:
		c.Draw(Line{p0, point.Pt(last.X, p0.Y)}, edge)
		c.Draw(Line{point.Pt(p0.X, last.Y), last}, edge)
		// corners belong to the top and bottom edges
		if sz.Y > 2 {
			c.Draw(Line{point.Pt(p0.X, p0.Y+1), point.Pt(p0.X, last.Y-1)}, edge)
			c.Draw(Line{point.Pt(last.X, p0.Y+1), point.Pt(last.X, last.Y-1)}, edge)
		}
	}
}

// Circle is a circle of Radius dots about Center.
type Circle struct {
	Center point.Point
	Radius int
}

// NewCircle returns the circle about center.
func NewCircle(center point.Coords, radius int) Circle {
	return Circle{center.Round(), radius}
}

// Rasterize traces the circle with the midpoint algorithm. The fill is
// approximated by lines from each outline point to the vertical through the
// matching octant point, not by scanlines.
func (ci Circle) Rasterize(c *Canvas, s Style) {
	// https://en.wikipedia.org/wiki/Midpoint_circle_algorithm#Jesko's_Method
	cx, cy := ci.Center.X, ci.Center.Y
	x, y := ci.Radius, 0
	t1 := x / 16

	fillB, fill := s.Fill()
	outB, outline := s.DistinguishableOutline()
	slice := OutlinedWithBrightness(fillB)

	for x >= y {
		for _, qx := range [2]int{-1, 1} {
			for _, qy := range [2]int{-1, 1} {
				o1 := point.Pt(cx+qx*x, cy+qy*y)
				o2 := point.Pt(cx+qx*y, cy+qy*x)

				if fill {
					d := point.Pt(o2.X, o1.Y)
					c.Draw(Line{d, o1}, slice)
					c.Draw(Line{d, o2}, slice)
				}

				if outline {
					c.plot(o1.X, o1.Y, outB)
					c.plot(o2.X, o2.Y, outB)
				}
			}
		}

		y++
		t1 += y
		if t2 := t1 - x; t2 >= 0 {
			t1 = t2
			x--
		}
	}
}

// Triangle is the outline of three vertices.
type Triangle struct {
	P0, P1, P2 point.Point
}

// NewTriangle returns the triangle with the given vertices.
func NewTriangle(p0, p1, p2 point.Coords) Triangle {
	return Triangle{p0.Round(), p1.Round(), p2.Round()}
}

// Rasterize draws the three edges at the outline brightness. Triangles are
// never filled.
func (t Triangle) Rasterize(c *Canvas, s Style) {
	b, ok := s.Outline()
	if !ok {
		return
	}
	edge := OutlinedWithBrightness(b)
	c.Draw(Line{t.P0, t.P1}, edge)
	c.Draw(Line{t.P1, t.P2}, edge)
	c.Draw(Line{t.P2, t.P0}, edge)
}

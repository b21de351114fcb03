package point

import "math"

// Ptf is a convenience constructor for PointF.
func Ptf(x, y float64) PointF { return PointF{x, y} }

// PointF is a fractional coordinate.
type PointF struct{ X, Y float64 }

// Round returns the nearest dot, rounding half away from zero.
func (pt PointF) Round() Point {
	return Point{int(math.Round(pt.X)), int(math.Round(pt.Y))}
}

// Add adds another point's values to a copy of this point, returning the copy.
func (pt PointF) Add(other PointF) PointF {
	pt.X += other.X
	pt.Y += other.Y
	return pt
}

// Scale multiplies a copy of this point's values by s.
func (pt PointF) Scale(s float64) PointF {
	pt.X *= s
	pt.Y *= s
	return pt
}

// Rotate turns a copy of this point about the origin by theta radians.
func (pt PointF) Rotate(theta float64) PointF {
	sin, cos := math.Sincos(theta)
	return PointF{
		X: pt.X*cos - pt.Y*sin,
		Y: pt.Y*cos + pt.X*sin,
	}
}

// Package hilbert maps between dot coordinates and distances along a Hilbert
// space filling curve.
package hilbert

import (
	"iter"

	"github.com/borkshop/braillix/point"
)

// Scale is the width and height of a Hilbert curve; it must be a power of two.
type Scale int

// Len returns the number of points on the curve.
func (scale Scale) Len() int { return int(scale) * int(scale) }

// Encode returns the distance of pt along the curve.
func (scale Scale) Encode(pt point.Point) int {
	n := int(scale)
	d := 0
	for s := n >> 1; s > 0; s >>= 1 {
		rx, ry := bit(pt.X&s), bit(pt.Y&s)
		d += s * s * ((3 * rx) ^ ry)
		pt = rotate(pt, n, rx, ry)
	}
	return d
}

// Decode returns the point at distance d along the curve.
func (scale Scale) Decode(d int) (pt point.Point) {
	for s := 1; s < int(scale); s <<= 1 {
		rx := 1 & (d >> 1)
		ry := 1 & (d ^ rx)
		pt = rotate(pt, s, rx, ry)
		pt = pt.Add(point.Pt(s*rx, s*ry))
		d >>= 2
	}
	return pt
}

// Curve yields the points of the curve in order, each one dot away from the
// last.
func (scale Scale) Curve() iter.Seq[point.Point] {
	return func(yield func(point.Point) bool) {
		for d := 0; d < scale.Len(); d++ {
			if !yield(scale.Decode(d)) {
				return
			}
		}
	}
}

func bit(v int) int {
	if v != 0 {
		return 1
	}
	return 0
}

// rotate flips the quadrant of size s that pt lies in.
func rotate(pt point.Point, s, rx, ry int) point.Point {
	if ry == 0 {
		if rx != 0 {
			pt = point.Pt(s-1-pt.X, s-1-pt.Y)
		}
		pt.X, pt.Y = pt.Y, pt.X
	}
	return pt
}

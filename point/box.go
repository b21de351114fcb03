package point

import "image"

// Bx is a convenience constructor for Box; the corners are normalized.
func Bx(tlx, tly int, brx, bry int) Box {
	return Box{Point{tlx, tly}, Point{brx, bry}}.Canon()
}

// Span returns the box covering corner and corner+dim, whatever the sign of
// either component of dim. BottomRight is exclusive.
func Span(corner, dim Point) Box {
	return Box{corner, corner.Add(dim)}.Canon()
}

// Box represents a bounding box defined by a top-left and bottom-right point.
type Box struct {
	TopLeft     Point
	BottomRight Point
}

// Canon returns a copy of the box with its corners swapped as needed so that
// TopLeft holds the minimum of each axis.
func (b Box) Canon() Box {
	return Box{b.TopLeft.Min(b.BottomRight), b.TopLeft.Max(b.BottomRight)}
}

// Size returns the width and height of the box as a point.
func (b Box) Size() Point {
	return b.BottomRight.Sub(b.TopLeft).Abs()
}

// Empty reports whether the box has zero width or height.
func (b Box) Empty() bool {
	sz := b.Size()
	return sz.X == 0 || sz.Y == 0
}

// Rect returns the box as an image.Rectangle.
func (b Box) Rect() image.Rectangle {
	return image.Rectangle{b.TopLeft.Image(), b.BottomRight.Image()}.Canon()
}

// Contains returns true if a given point is inside the half-open box.
func (b Box) Contains(pt Point) bool {
	return pt.In(b.Rect())
}

// Add returns a copy of the box with the given point added to the corners.
func (b Box) Add(pt Point) Box {
	b.TopLeft = b.TopLeft.Add(pt)
	b.BottomRight = b.BottomRight.Add(pt)
	return b
}

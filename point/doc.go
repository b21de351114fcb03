/*
Package point provides the coordinate types shapes are described with.

Point is an exact dot coordinate, and is cast-compatible with the standard
image.Point. PointF is a fractional coordinate that resolves to the nearest
dot. Both satisfy Coords, which is what shape constructors accept, so callers
doing trigonometry need not round by hand.

Box is a pair of corners normalized so that TopLeft is never right of or
below BottomRight.
*/
package point

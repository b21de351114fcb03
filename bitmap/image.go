package bitmap

import (
	"image"
	"image/color"
)

// Reader is a view into a bitmap.
type Reader interface {
	At(x, y int) bool
	Bounds() image.Rectangle
}

// Writer is a writable view into a bitmap.
type Writer interface {
	SetBit(x, y int, b bool)
	Bounds() image.Rectangle
}

// ReaderWriter is a readable/writable view into a bitmap.
type ReaderWriter interface {
	At(x, y int) bool
	SetBit(x, y int, b bool)
	Bounds() image.Rectangle
}

// FromImage produces a bitmap view of an image, where bits are on or off
// depending on whether they more closely match the on or off color.
func FromImage(i image.Image, on, off color.Color) Reader {
	return &imageReader{
		Image:   i,
		Palette: color.Palette{on, off},
	}
}

// imageReader is a bitmap Reader that provides a bitmap view into an image.
type imageReader struct {
	Image   image.Image
	Palette color.Palette
}

// At returns whether the bit at a point more closely resembles the "on"
// color in the palette.
func (r *imageReader) At(x, y int) bool {
	c := r.Image.At(x, y)
	return r.Palette.Index(c) == 0
}

// Bounds returns the bounds of the underlying image.
func (r *imageReader) Bounds() image.Rectangle {
	return r.Image.Bounds()
}

// ToImage produces a view of a bitmap with colors corresponding to on and off
// bits. When the bitmap is also a Writer, setting colors on the view writes
// through.
func ToImage(b Reader, on, off color.Color) image.Image {
	return &toImage{
		Reader:  b,
		Palette: color.Palette{on, off},
	}
}

// toImage provides an image interpretation of a bitmap.
type toImage struct {
	Reader
	Palette color.Palette
}

// At returns the color at a point.
func (i *toImage) At(x, y int) color.Color {
	if i.Reader.At(x, y) {
		return i.Palette[0]
	}
	return i.Palette[1]
}

// Set sets the color at a point, if the underlying bitmap is writable.
func (i *toImage) Set(x, y int, c color.Color) {
	if w, ok := i.Reader.(Writer); ok {
		w.SetBit(x, y, i.Palette.Index(c) == 0)
	}
}

// ColorModel returns the bitmap's palette.
func (i *toImage) ColorModel() color.Model {
	return i.Palette
}

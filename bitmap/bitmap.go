// Package bitmap provides one-bit-per-pixel images and views between them and
// the standard image package.
package bitmap

import "image"

// Bitmap is a compact bitmap image.
type Bitmap struct {
	Bytes  []byte
	Stride int
	Rect   image.Rectangle
}

// New returns a bitmap with the given rectangle, all bits off.
func New(r image.Rectangle) *Bitmap {
	w, h := r.Dx(), r.Dy()
	stride := (w + 7) / 8
	count := stride * h
	return &Bitmap{
		Bytes:  make([]byte, count),
		Stride: stride,
		Rect:   r,
	}
}

// Bounds returns the bounds of the bitmap
func (b *Bitmap) Bounds() image.Rectangle {
	return b.Rect
}

// maskIndex returns the bit mask and byte index for the bit at a given point.
func (b *Bitmap) maskIndex(x, y int) (byte, int) {
	x -= b.Rect.Min.X
	y -= b.Rect.Min.Y
	return 1 << uint(x&07), y*b.Stride + x>>3
}

// At returns whether the bit is set at a point.
func (b *Bitmap) At(x, y int) bool {
	if !image.Pt(x, y).In(b.Rect) {
		return false
	}

	mask, index := b.maskIndex(x, y)
	bits := b.Bytes[index]
	return bits&mask != 0
}

// SetBit sets or resets the bit at a point.
func (b *Bitmap) SetBit(x, y int, bit bool) {
	if !image.Pt(x, y).In(b.Rect) {
		return
	}

	mask, index := b.maskIndex(x, y)
	if bit {
		b.Bytes[index] |= mask
	} else {
		b.Bytes[index] &^= mask
	}
}

// Parse builds a bitmap from rows of text, where any rune other than ' ',
// '.', '_' or '0' is an on bit. Short rows are padded with off bits.
func Parse(rows ...string) *Bitmap {
	w := 0
	for _, row := range rows {
		if n := len([]rune(row)); n > w {
			w = n
		}
	}
	b := New(image.Rect(0, 0, w, len(rows)))
	for y, row := range rows {
		for x, r := range []rune(row) {
			b.SetBit(x, y, r != ' ' && r != '.' && r != '_' && r != '0')
		}
	}
	return b
}

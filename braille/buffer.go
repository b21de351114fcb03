package braille

import (
	"errors"
	"fmt"
	"image"
	"iter"
	"strings"
)

// ErrInvalidDimensions is wrapped by the panic raised when a buffer is sized
// with dimensions that do not tile into whole cells.
var ErrInvalidDimensions = errors.New("braille: invalid dimensions")

// CheckDotSize returns an error wrapping ErrInvalidDimensions unless width is
// a multiple of 2 and height a multiple of 4.
func CheckDotSize(width, height int) error {
	if width < 0 || height < 0 {
		return fmt.Errorf("%w: negative dot size %dx%d", ErrInvalidDimensions, width, height)
	}
	if width%2 != 0 {
		return fmt.Errorf("%w: width %d must be a multiple of 2", ErrInvalidDimensions, width)
	}
	if height%4 != 0 {
		return fmt.Errorf("%w: height %d must be a multiple of 4", ErrInvalidDimensions, height)
	}
	return nil
}

// Buffer is a grid of braille cells addressed by dot coordinates.
type Buffer struct {
	width  int
	height int
	cells  []byte
}

// WithDotSize returns a buffer covering width x height dots.
//
// Panics unless width is a multiple of 2 and height a multiple of 4; see
// CheckDotSize.
func WithDotSize(width, height int) *Buffer {
	if err := CheckDotSize(width, height); err != nil {
		panic(err)
	}
	return WithOutputSize(width/2, height/4)
}

// WithOutputSize returns a buffer of width x height characters.
// Panics if either dimension is negative.
func WithOutputSize(width, height int) *Buffer {
	if width < 0 || height < 0 {
		panic(fmt.Errorf("%w: negative output size %dx%d", ErrInvalidDimensions, width, height))
	}
	tracer().Debugf("braille buffer %dx%d cells", width, height)
	return &Buffer{
		width:  width,
		height: height,
		cells:  make([]byte, width*height),
	}
}

// OutputSize returns the size of the buffer in characters.
func (b *Buffer) OutputSize() (width, height int) { return b.width, b.height }

// DotSize returns the size of the buffer in dots.
func (b *Buffer) DotSize() (width, height int) { return b.width * 2, b.height * 4 }

// Bounds returns the dot rectangle of the buffer, anchored at the origin.
func (b *Buffer) Bounds() image.Rectangle {
	w, h := b.DotSize()
	return image.Rect(0, 0, w, h)
}

// Cell returns the byte of the cell at character position (x, y), or 0 when
// outside the buffer.
func (b *Buffer) Cell(x, y int) byte {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return 0
	}
	return b.cells[y*b.width+x]
}

// maskIndex returns the bit mask and cell index for the dot at a given point,
// with ok false when the dot is outside the buffer.
func (b *Buffer) maskIndex(x, y int) (mask byte, index int, ok bool) {
	if x < 0 || y < 0 || x >= b.width*2 || y >= b.height*4 {
		return 0, 0, false
	}
	return Mask(x%2, y%4), (y/4)*b.width + x/2, true
}

// Set turns on the dot at (x, y). Dots outside the buffer are ignored.
func (b *Buffer) Set(x, y int) {
	if mask, i, ok := b.maskIndex(x, y); ok {
		b.cells[i] |= mask
	}
}

// Unset turns off the dot at (x, y). Dots outside the buffer are ignored.
func (b *Buffer) Unset(x, y int) {
	if mask, i, ok := b.maskIndex(x, y); ok {
		b.cells[i] &^= mask
	}
}

// IsSet reports whether the dot at (x, y) is on; dots outside the buffer are
// never on.
func (b *Buffer) IsSet(x, y int) bool {
	mask, i, ok := b.maskIndex(x, y)
	return ok && b.cells[i]&mask != 0
}

// At is IsSet, so that a buffer may be read as a bitmap.
func (b *Buffer) At(x, y int) bool { return b.IsSet(x, y) }

// SetBit sets or resets the dot at (x, y).
func (b *Buffer) SetBit(x, y int, bit bool) {
	if bit {
		b.Set(x, y)
	} else {
		b.Unset(x, y)
	}
}

// Clear turns off every dot.
func (b *Buffer) Clear() {
	clear(b.cells)
}

// Line returns row y of the buffer as braille text, or "" when y is not a
// row of the buffer.
func (b *Buffer) Line(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	var sb strings.Builder
	sb.Grow(b.width * 3)
	row := b.cells[y*b.width : (y+1)*b.width]
	for _, c := range row {
		sb.WriteRune(Glyph(c))
	}
	return sb.String()
}

// Lines returns a sequence of the buffer's rows as braille text. Each
// iteration reads the buffer afresh.
func (b *Buffer) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		for y := 0; y < b.height; y++ {
			if !yield(b.Line(y)) {
				return
			}
		}
	}
}

// String returns every row of the buffer joined by newlines.
func (b *Buffer) String() string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(b.Line(y))
	}
	return sb.String()
}

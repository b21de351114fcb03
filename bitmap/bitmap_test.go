package bitmap_test

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/borkshop/braillix/bitmap"
)

func TestBitmap_setAt(t *testing.T) {
	b := New(image.Rect(-4, -2, 13, 3))
	assert.Equal(t, 3, b.Stride)
	for y := -2; y < 3; y++ {
		for x := -4; x < 13; x++ {
			b.SetBit(x, y, (x+y)%3 == 0)
		}
	}
	for y := -2; y < 3; y++ {
		for x := -4; x < 13; x++ {
			assert.Equal(t, (x+y)%3 == 0, b.At(x, y), "(%d, %d)", x, y)
		}
	}
	assert.False(t, b.At(13, 0))
	assert.NotPanics(t, func() { b.SetBit(100, 100, true) })
}

func TestParse(t *testing.T) {
	b := Parse(
		"#..#",
		".##",
	)
	assert.Equal(t, image.Rect(0, 0, 4, 2), b.Bounds())
	assert.True(t, b.At(0, 0))
	assert.False(t, b.At(1, 0))
	assert.True(t, b.At(3, 0))
	assert.True(t, b.At(2, 1))
	assert.False(t, b.At(3, 1))
}

func TestImageRoundTrip(t *testing.T) {
	src := Parse(
		"#.#.",
		".#.#",
	)
	img := ToImage(src, color.White, color.Black)
	assert.Equal(t, color.White, img.At(0, 0))
	assert.Equal(t, color.Black, img.At(1, 0))

	back := FromImage(img, color.White, color.Black)
	dst := New(src.Bounds())
	dimg := ToImage(dst, color.White, color.Black).(draw.Image)
	draw.Draw(dimg, dimg.Bounds(), img, image.Point{}, draw.Src)
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			assert.Equal(t, src.At(x, y), back.At(x, y))
			assert.Equal(t, src.At(x, y), dst.At(x, y))
		}
	}
}

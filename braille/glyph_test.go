package braille

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGlyph_layout(t *testing.T) {
	for i := 0; i < 256; i++ {
		r := Glyph(byte(i))
		assert.True(t, r >= 0x2800 && r <= 0x28ff, "glyph %d out of range: %U", i, r)
		for j := 0; j < 8; j++ {
			want := i&(1<<j) != 0
			got := (r-Base)&dotOffsets[j] != 0
			assert.Equal(t, want, got, "glyph %#08b bit %d", i, j)
		}
	}
}

func TestGlyph_known(t *testing.T) {
	assert.Equal(t, '⣷', Glyph(0b1110_1111))
	assert.Equal(t, '⠀', Glyph(0))
	assert.Equal(t, '⣿', Glyph(0xff))
	assert.Equal(t, '⡇', Glyph(15))

	i := byte(15)
	i |= Mask(1, 2)
	assert.Equal(t, '⡧', Glyph(i))

	i &^= Mask(0, 1)
	i &^= Mask(0, 2)
	assert.Equal(t, '⡡', Glyph(i))
}

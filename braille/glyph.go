package braille

// Base is the codepoint of the empty braille pattern.
const Base rune = 0x2800

// dotOffsets maps bit j of a cell byte to its codepoint offset. Unicode
// numbers the dots down the left column, down the right column, and then the
// bottom row, so the fourth row lands out of order.
var dotOffsets = [8]rune{0x01, 0x02, 0x04, 0x40, 0x08, 0x10, 0x20, 0x80}

var glyphs = genGlyphs()

func genGlyphs() (table [256]rune) {
	for i := range table {
		r := Base
		for j, off := range dotOffsets {
			if i&(1<<j) != 0 {
				r += off
			}
		}
		table[i] = r
	}
	return table
}

// Glyph returns the braille character for a cell byte.
func Glyph(b byte) rune {
	return glyphs[b]
}

// Mask returns the cell bit for the dot at (subX, subY) within a cell; subX
// must be in [0,2) and subY in [0,4).
func Mask(subX, subY int) byte {
	return 1 << uint(4*subX+subY)
}

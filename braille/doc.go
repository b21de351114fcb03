/*
Package braille stores monochrome dots and serializes them as Unicode braille.

Every braille pattern character (U+2800 to U+28FF) is a 2 wide by 4 tall
block of dots. A Buffer keeps one byte per character cell, one bit per dot,
with the bit layout

	0 4
	1 5
	2 6
	3 7

so that bit 4*subX+subY addresses the dot at (subX, subY) within the cell.
Glyph maps such a byte to its character through a table built once at
package initialization.
*/
package braille

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'braillix.braille'.
func tracer() tracing.Trace {
	return tracing.Select("braillix.braille")
}

package canvas

import (
	"fmt"
	"math"

	"github.com/borkshop/braillix/dither"
	"github.com/borkshop/braillix/internal/moremath"
)

// level is an optional brightness.
type level struct {
	value int
	ok    bool
}

func some(b int) level {
	return level{moremath.ClampInt(b, 0, dither.MaxBrightness()), true}
}

func somef(b float64) level {
	b = math.Max(0, math.Min(1, b))
	return some(int(math.Round(b * float64(dither.MaxBrightness()))))
}

func (l level) String() string {
	if !l.ok {
		return "-"
	}
	return fmt.Sprint(l.value)
}

// Style says how to draw the outline and the fill of a shape. Each is either
// absent, leaving those dots untouched, or a brightness in
// [0, dither.MaxBrightness()], where 0 clears every dot drawn.
//
// Styles are values; every method returns an updated copy.
type Style struct {
	outline level
	fill    level
}

// None returns a style with neither outline nor fill; drawing with it does
// nothing.
func None() Style { return Style{} }

// Filled returns a style with the fill at full brightness.
func Filled() Style { return None().FillOn() }

// FilledWithBrightness returns a style with the given fill brightness.
func FilledWithBrightness(b int) Style { return None().FillBrightness(b) }

// FilledWithBrightnessF returns a style with a fill brightness given as a
// fraction of full brightness.
func FilledWithBrightnessF(b float64) Style { return None().FillBrightnessF(b) }

// Outlined returns a style with the outline at full brightness.
func Outlined() Style { return None().OutlineOn() }

// OutlinedWithBrightness returns a style with the given outline brightness.
func OutlinedWithBrightness(b int) Style { return None().OutlineBrightness(b) }

// OutlinedWithBrightnessF returns a style with an outline brightness given as
// a fraction of full brightness.
func OutlinedWithBrightnessF(b float64) Style { return None().OutlineBrightnessF(b) }

// FillOn sets the fill to full brightness, every dot on.
func (s Style) FillOn() Style {
	s.fill = some(dither.MaxBrightness())
	return s
}

// FillOff sets the fill to zero brightness, every dot drawn cleared.
func (s Style) FillOff() Style {
	s.fill = some(0)
	return s
}

// NoFill disables the fill; dots inside the shape are left as they are.
func (s Style) NoFill() Style {
	s.fill = level{}
	return s
}

// FillBrightness sets the fill brightness, clamped to
// [0, dither.MaxBrightness()].
func (s Style) FillBrightness(b int) Style {
	s.fill = some(b)
	return s
}

// FillBrightnessF sets the fill brightness from a fraction, clamped to
// [0, 1] and rounded to the nearest level.
func (s Style) FillBrightnessF(b float64) Style {
	s.fill = somef(b)
	return s
}

// OutlineOn sets the outline to full brightness, every dot on.
func (s Style) OutlineOn() Style {
	s.outline = some(dither.MaxBrightness())
	return s
}

// OutlineOff sets the outline to zero brightness, every dot drawn cleared.
func (s Style) OutlineOff() Style {
	s.outline = some(0)
	return s
}

// NoOutline disables the outline.
func (s Style) NoOutline() Style {
	s.outline = level{}
	return s
}

// OutlineBrightness sets the outline brightness, clamped to
// [0, dither.MaxBrightness()].
func (s Style) OutlineBrightness(b int) Style {
	s.outline = some(b)
	return s
}

// OutlineBrightnessF sets the outline brightness from a fraction, clamped to
// [0, 1] and rounded to the nearest level.
func (s Style) OutlineBrightnessF(b float64) Style {
	s.outline = somef(b)
	return s
}

// Outline returns the outline brightness, and whether there is an outline.
func (s Style) Outline() (int, bool) { return s.outline.value, s.outline.ok }

// Fill returns the fill brightness, and whether there is a fill.
func (s Style) Fill() (int, bool) { return s.fill.value, s.fill.ok }

// DistinguishableOutline returns the outline brightness unless the outline
// is absent or is drawn at the same brightness as the fill, in which case it
// could not be told apart from the fill and ok is false.
func (s Style) DistinguishableOutline() (int, bool) {
	if !s.outline.ok {
		return 0, false
	}
	if s.fill.ok && s.fill.value == s.outline.value {
		return 0, false
	}
	return s.outline.value, true
}

func (s Style) String() string {
	return fmt.Sprintf("outline:%v fill:%v", s.outline, s.fill)
}

// Package dither computes ordered-dither thresholds without storing the matrix.
//
// The order-M Bayer matrix entry at (x, y) equals the bits of x and x^y
// interleaved in reverse order, so the whole matrix is a pure function of the
// coordinates. See https://bisqwit.iki.fi/story/howto/dither/jy/.
package dither

import "github.com/borkshop/braillix/internal/moremath"

// Order is the default Bayer matrix order; the matrix is 2^Order square.
const Order = 3

// Default is the Bayer matrix used by the package-level functions.
var Default = Bayer(Order)

// Bayer is a Bayer threshold matrix of the given order.
type Bayer uint

// Size returns the width and height of the matrix.
func (m Bayer) Size() int { return 1 << m }

// MaxBrightness returns the number of entries in the matrix; thresholds range
// over [0, MaxBrightness).
func (m Bayer) MaxBrightness() int {
	n := m.Size()
	return n * n
}

// Threshold returns the matrix entry for (x, y), repeating the matrix in both
// directions.
func (m Bayer) Threshold(x, y int) int {
	n := m.Size()
	x, y = moremath.Mod(x, n), moremath.Mod(y, n)
	return int(moremath.ReverseShuffle(uint(x), uint(x^y), uint(m)))
}

// Threshold returns the Default matrix entry for (x, y).
func Threshold(x, y int) int { return Default.Threshold(x, y) }

// MaxBrightness returns Default.MaxBrightness.
func MaxBrightness() int { return Default.MaxBrightness() }

// On reports whether a dot at (x, y) requested at the given brightness should
// be on: never at 0, always at or above MaxBrightness, otherwise only where
// the brightness exceeds the threshold.
func On(x, y, brightness int) bool {
	switch {
	case brightness <= 0:
		return false
	case brightness >= MaxBrightness():
		return true
	default:
		return brightness > Threshold(x, y)
	}
}

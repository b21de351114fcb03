package moremath

// ReverseShuffle interleaves the low n bits of x and y in reverse order: the
// most significant of those bits lands lowest in the result. Each step takes
// one bit of x followed by one bit of y, so bit n-1 of x becomes bit 0 of z
// and bit n-1 of y becomes bit 1.
func ReverseShuffle(x, y uint, n uint) (z uint) {
	var bit uint
	for i := n; i > 0; i-- {
		z |= ((x >> (i - 1)) & 1) << bit
		bit++
		z |= ((y >> (i - 1)) & 1) << bit
		bit++
	}
	return z
}

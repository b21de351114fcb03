package moremath

// MinMax returns its two arguments in ascending order.
func MinMax(a, b int) (int, int) {
	if a < b {
		return a, b
	}
	return b, a
}

// IntSign returns -1, 1, or 0 if n is less than, greater
// than, or equal to 0 respectively.
func IntSign(n int) int {
	if n < 0 {
		return -1
	}
	if n > 0 {
		return 1
	}
	return 0
}

// AbsInt returns the magnitude of n.
func AbsInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Mod returns n modulo m, always in [0, m) for positive m.
func Mod(n, m int) int {
	n %= m
	if n < 0 {
		n += m
	}
	return n
}

// ClampInt limits n to the closed range [lo, hi].
func ClampInt(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

package dither_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/borkshop/braillix/dither"
)

var bayer3 = [8][8]int{
	{0, 48, 12, 60, 3, 51, 15, 63},
	{32, 16, 44, 28, 35, 19, 47, 31},
	{8, 56, 4, 52, 11, 59, 7, 55},
	{40, 24, 36, 20, 43, 27, 39, 23},
	{2, 50, 14, 62, 1, 49, 13, 61},
	{34, 18, 46, 30, 33, 17, 45, 29},
	{10, 58, 6, 54, 9, 57, 5, 53},
	{42, 26, 38, 22, 41, 25, 37, 21},
}

func TestThreshold_bayer3(t *testing.T) {
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			assert.Equal(t, bayer3[y][x], Threshold(x, y), "(%d, %d)", x, y)
		}
	}
	assert.Equal(t, 64, MaxBrightness())
}

func TestThreshold_periodic(t *testing.T) {
	for _, pt := range [][2]int{{8, 0}, {13, 21}, {-1, -1}, {-9, 3}, {1000, 77}} {
		x, y := pt[0], pt[1]
		mx, my := ((x%8)+8)%8, ((y%8)+8)%8
		assert.Equal(t, bayer3[my][mx], Threshold(x, y), "(%d, %d)", x, y)
	}
}

func TestBayer_orders(t *testing.T) {
	for _, tc := range []struct {
		order    Bayer
		expected [][]int
	}{
		{0, [][]int{{0}}},
		{1, [][]int{{0, 3}, {2, 1}}},
		{2, [][]int{
			{0, 12, 3, 15},
			{8, 4, 11, 7},
			{2, 14, 1, 13},
			{10, 6, 9, 5},
		}},
	} {
		n := tc.order.Size()
		assert.Equal(t, n*n, tc.order.MaxBrightness())
		seen := make(map[int]bool, n*n)
		for y := 0; y < n; y++ {
			for x := 0; x < n; x++ {
				v := tc.order.Threshold(x, y)
				assert.Equal(t, tc.expected[y][x], v, "order %d (%d, %d)", tc.order, x, y)
				seen[v] = true
			}
		}
		assert.Len(t, seen, n*n, "order %d thresholds are a permutation", tc.order)
	}
}

func TestOn(t *testing.T) {
	assert.False(t, On(0, 0, 0))
	assert.True(t, On(7, 7, 64))
	assert.True(t, On(7, 0, 100))
	assert.False(t, On(0, 0, -5))
	// threshold at (0, 0) is 0, at (1, 0) is 48
	assert.True(t, On(0, 0, 1))
	assert.False(t, On(1, 0, 48))
	assert.True(t, On(1, 0, 49))
}

// Command gradient prints every dither brightness level side by side.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/borkshop/braillix/braille"
	"github.com/borkshop/braillix/canvas"
	"github.com/borkshop/braillix/dither"
	"github.com/borkshop/braillix/point"
)

func main() {
	segment := flag.Int("segment", 3, "dot width of each brightness band")
	height := flag.Int("height", 24, "dot height, a multiple of 4")
	flag.Parse()

	if err := run(*segment, *height); err != nil {
		log.Fatalln(err)
	}
}

func run(segment, height int) error {
	if segment <= 0 {
		return fmt.Errorf("gradient: segment width must be positive, got %d", segment)
	}
	levels := dither.MaxBrightness() + 1
	width := levels*segment + 1
	width += width % 2
	if err := braille.CheckDotSize(width, height); err != nil {
		return fmt.Errorf("gradient: %w", err)
	}

	c := canvas.WithDotSize(width, height)
	for b := 0; b < levels; b++ {
		c.DrawRect(point.Pt(b*segment, 0), point.Pt(segment, height), canvas.FilledWithBrightness(b))
	}
	fmt.Println(c)
	return nil
}

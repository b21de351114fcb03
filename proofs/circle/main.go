// Command circle prints an outlined circle.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"

	"github.com/borkshop/braillix/bitmap"
	"github.com/borkshop/braillix/braille"
	"github.com/borkshop/braillix/canvas"
	"github.com/borkshop/braillix/point"
)

func main() {
	size := flag.Int("size", 60, "dot width and height, a multiple of 4")
	radius := flag.Int("r", 24, "radius in dots")
	fill := flag.Float64("fill", -1, "fill brightness in [0, 1]; negative for none")
	out := flag.String("png", "", "also write the dots to this PNG file")
	flag.Parse()

	if err := run(*size, *radius, *fill, *out); err != nil {
		log.Fatalln(err)
	}
}

func run(size, radius int, fill float64, out string) error {
	if err := braille.CheckDotSize(size, size); err != nil {
		return err
	}
	style := canvas.Outlined()
	if fill >= 0 {
		style = style.FillBrightnessF(fill)
	}
	c := canvas.WithDotSize(size, size)
	c.DrawCircle(point.Pt(size/2, size/2), radius, style)
	fmt.Println(c)
	if out == "" {
		return nil
	}
	return writePNG(out, bitmap.ToImage(c.Buffer(), color.White, color.Black))
}

func writePNG(name string, img image.Image) (rerr error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); rerr == nil {
			rerr = cerr
		}
	}()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("circle: encoding %s: %w", name, err)
	}
	log.Printf("wrote %v dots to %s", img.Bounds().Size(), name)
	return nil
}

// Command picture prints an image file as dithered braille.
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"

	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/borkshop/braillix/canvas"
	"github.com/borkshop/braillix/picture"
)

func main() {
	width := flag.Int("w", 60, "width in characters")
	height := flag.Int("h", 0, "height in characters; 0 keeps the image aspect")
	invert := flag.Bool("invert", false, "light dots for dark pixels")
	nearest := flag.Bool("nearest", false, "nearest neighbour scaling")
	mono := flag.Bool("mono", false, "threshold pixels instead of dithering them")
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalln("usage: picture [flags] FILE")
	}
	opts := &picture.Options{Invert: *invert}
	if *nearest {
		opts.Scaler = xdraw.NearestNeighbor
	}
	if err := run(flag.Arg(0), *width, *height, *mono, opts); err != nil {
		log.Fatalln(err)
	}
}

func run(name string, width, height int, mono bool, opts *picture.Options) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("picture: decoding %s: %w", name, err)
	}
	log.Printf("decoded %s image of %v", format, img.Bounds().Size())

	if width <= 0 {
		return fmt.Errorf("picture: width must be positive, got %d", width)
	}
	if height <= 0 {
		sz := img.Bounds().Size()
		if sz.X == 0 {
			return fmt.Errorf("picture: %s is empty", name)
		}
		// 2 dots across and 4 down per character
		dots := width * 2 * sz.Y / sz.X
		height = max(1, (dots+3)/4)
	}

	c := canvas.WithOutputSize(width, height)
	if mono {
		picture.DrawMono(c, c.Bounds(), img, opts)
	} else {
		picture.Draw(c, img, opts)
	}
	fmt.Println(c)
	return nil
}

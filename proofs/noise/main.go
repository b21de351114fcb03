// Command noise shades a canvas with simplex noise, printed once or drifting
// on the full terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell"
	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/borkshop/braillix/canvas"
	"github.com/borkshop/braillix/dither"
	"github.com/borkshop/braillix/point"
	"github.com/borkshop/braillix/widget"
)

type field struct {
	noise opensimplex.Noise
	scale float64
	speed float64
	t     time.Duration
}

func (f *field) brightness(pt point.Point) int {
	v := f.noise.Eval3(float64(pt.X)/f.scale, float64(pt.Y)/f.scale, f.speed*f.t.Seconds())
	return int(math.Round(v * float64(dither.MaxBrightness())))
}

func (f *field) Update(dt time.Duration) { f.t += dt }

func (f *field) Paint(c *canvas.Canvas) { c.Shade(f.brightness) }

func main() {
	width := flag.Int("w", 40, "width in characters, when printing")
	height := flag.Int("h", 12, "height in characters, when printing")
	seed := flag.Int64("seed", 0, "noise seed")
	scale := flag.Float64("scale", 16, "dots per noise feature")
	animate := flag.Bool("animate", false, "drift the field full screen until q is pressed")
	fps := flag.Float64("fps", 30, "frames per second when animating")
	flag.Parse()

	f := &field{
		noise: opensimplex.NewNormalized(*seed),
		scale: *scale,
		speed: 0.3,
	}
	var err error
	if *animate {
		err = animateField(f, *fps)
	} else {
		c := canvas.WithOutputSize(*width, *height)
		f.Paint(c)
		fmt.Println(c)
	}
	if err != nil {
		log.Fatalln(err)
	}
}

func animateField(f *field, fps float64) error {
	scr, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("noise: %w", err)
	}
	if err := scr.Init(); err != nil {
		return fmt.Errorf("noise: %w", err)
	}
	defer scr.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = widget.NewAnimation(scr, f).Run(ctx, fps)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

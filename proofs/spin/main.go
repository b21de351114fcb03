// Command spin animates a triangle turning about the middle of the terminal.
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

	"github.com/borkshop/braillix/canvas"
	"github.com/borkshop/braillix/point"
	"github.com/borkshop/braillix/widget"
)

// spinner turns at a fixed rate in radians per second.
type spinner struct {
	rate  float64
	theta float64
}

func (s *spinner) Update(dt time.Duration) {
	s.theta = math.Mod(s.theta+s.rate*dt.Seconds(), 2*math.Pi)
}

func (s *spinner) Paint(c *canvas.Canvas) {
	c.Clear()

	w, h := c.DotSize()
	center := point.Ptf(float64(w/2), float64(h/2))
	size := 0.4 * float64(min(w, h))

	var verts [3]point.PointF
	for i, v := range []point.PointF{
		point.Ptf(0, -1),
		point.Ptf(math.Cos(math.Pi/6), math.Sin(math.Pi/6)),
		point.Ptf(math.Cos(5*math.Pi/6), math.Sin(5*math.Pi/6)),
	} {
		verts[i] = v.Rotate(s.theta).Scale(size).Add(center)
		c.DrawLine(center, verts[i], canvas.Outlined())
	}
	c.DrawTriangle(verts[0], verts[1], verts[2], canvas.Outlined())
}

func main() {
	fps := flag.Float64("fps", 60, "frames per second")
	rate := flag.Float64("rate", 1.4, "radians per second")
	flag.Parse()

	if err := run(*fps, *rate); err != nil {
		log.Fatalln(err)
	}
}

func run(fps, rate float64) error {
	scr, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("spin: %w", err)
	}
	if err := scr.Init(); err != nil {
		return fmt.Errorf("spin: %w", err)
	}
	defer scr.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = widget.NewAnimation(scr, &spinner{rate: rate}).Run(ctx, fps)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

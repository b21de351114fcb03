// Command wave scrolls a sine wave across the terminal.
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

type wave struct {
	periods   float64
	amplitude float64
	thickness int
	t         time.Duration
}

func (w *wave) Update(dt time.Duration) { w.t += dt }

func (w *wave) Paint(c *canvas.Canvas) {
	c.Clear()
	dw, dh := c.DotSize()
	if dw == 0 {
		return
	}
	phase := w.t.Seconds() * 2 * math.Pi
	prev := point.Zero
	for x := 0; x < dw; x++ {
		y := float64(dh) * (0.5 + w.amplitude*math.Sin(phase+float64(x)*2*math.Pi*w.periods/float64(dw)))
		pt := point.Ptf(float64(x), y).Round()
		if x == 0 {
			prev = pt
		}
		for d := -w.thickness / 2; d <= w.thickness/2; d++ {
			off := point.Pt(0, d)
			c.DrawLine(prev.Add(off), pt.Add(off), canvas.Outlined())
		}
		prev = pt
	}
}

func main() {
	fps := flag.Float64("fps", 60, "frames per second")
	periods := flag.Float64("periods", 2, "wave periods across the screen")
	thickness := flag.Int("thickness", 3, "line thickness in dots")
	flag.Parse()

	if err := run(*fps, &wave{periods: *periods, amplitude: 0.3, thickness: *thickness}); err != nil {
		log.Fatalln(err)
	}
}

func run(fps float64, w *wave) error {
	scr, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("wave: %w", err)
	}
	if err := scr.Init(); err != nil {
		return fmt.Errorf("wave: %w", err)
	}
	defer scr.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	anim := widget.NewAnimation(scr, w)
	anim.SetStyle(tcell.StyleDefault.Foreground(tcell.NewRGBColor(191, 191, 127)))
	err = anim.Run(ctx, fps)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// Command cutout pulses a dithered disc over a solid square.
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

type pulse struct {
	t time.Duration
}

func (p *pulse) Update(dt time.Duration) { p.t += dt }

func (p *pulse) Paint(c *canvas.Canvas) {
	w, h := c.DotSize()
	side := min(w, h) * 4 / 5
	center := point.Pt(w/2, h/2)

	b := (math.Cos(2*p.t.Seconds()) + 1) / 2
	c.DrawRect(center.Sub(point.Pt(side/2, side/2)), point.Pt(side, side), canvas.Filled())
	c.DrawCircle(center, side*3/8, canvas.FilledWithBrightnessF(b))
}

func main() {
	fps := flag.Float64("fps", 60, "frames per second")
	flag.Parse()

	if err := run(*fps); err != nil {
		log.Fatalln(err)
	}
}

func run(fps float64) error {
	scr, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("cutout: %w", err)
	}
	if err := scr.Init(); err != nil {
		return fmt.Errorf("cutout: %w", err)
	}
	defer scr.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	anim := widget.NewAnimation(scr, &pulse{})
	anim.SetStyle(tcell.StyleDefault.Foreground(tcell.ColorLightGreen))
	err = anim.Run(ctx, fps)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

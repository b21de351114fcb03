// Command hilbert prints a Hilbert curve drawn with lines.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/borkshop/braillix/canvas"
	"github.com/borkshop/braillix/internal/hilbert"
	"github.com/borkshop/braillix/point"
)

func main() {
	order := flag.Int("order", 4, "curve order; the curve visits 4^order points")
	step := flag.Int("step", 3, "dots between adjacent curve points")
	flag.Parse()

	if err := run(*order, *step); err != nil {
		log.Fatalln(err)
	}
}

func run(order, step int) error {
	if order < 0 || order > 8 {
		return fmt.Errorf("hilbert: order %d out of range [0, 8]", order)
	}
	if step <= 0 {
		return fmt.Errorf("hilbert: step must be positive, got %d", step)
	}
	scale := hilbert.Scale(1 << order)
	span := (int(scale)-1)*step + 1

	c := canvas.WithDotSize(roundUp(span, 2), roundUp(span, 4))
	prev := point.Zero
	for pt := range scale.Curve() {
		pt = pt.Mul(step)
		c.DrawLine(prev, pt, canvas.Outlined())
		prev = pt
	}
	fmt.Println(c)
	return nil
}

func roundUp(n, m int) int {
	return (n + m - 1) / m * m
}

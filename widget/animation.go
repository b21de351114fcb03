package widget

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell"

	"github.com/borkshop/braillix/canvas"
)

// State is the model behind an Animation.
type State interface {
	// Update advances the state by the time since the previous tick.
	Update(dt time.Duration)
	// Paint draws the current state; the canvas keeps whatever was drawn
	// on it last frame.
	Paint(c *canvas.Canvas)
}

// Animation redraws a full screen canvas from a State at a fixed rate until
// the user presses q, Esc or Ctrl-C.
type Animation struct {
	screen tcell.Screen
	state  State
	canvas *canvas.Canvas
	widget *Widget
}

// NewAnimation returns an animation on an initialized screen. The canvas
// starts out sized to the screen.
func NewAnimation(screen tcell.Screen, state State) *Animation {
	a := &Animation{screen: screen, state: state}
	a.widget = NewWidget(nil)
	a.widget.SetView(screen)
	a.resize()
	return a
}

// Canvas returns the canvas currently being painted.
func (a *Animation) Canvas() *canvas.Canvas { return a.canvas }

// SetStyle sets the style the canvas is shown in.
func (a *Animation) SetStyle(style tcell.Style) { a.widget.SetStyle(style) }

// Run paints and updates the state at fps frames per second. It returns nil
// once the user quits, or the context's error if that ends first. Painting
// happens on the calling goroutine only; a second goroutine waits on screen
// events and exits once Run has returned and the screen yields another
// event or is finalized.
func (a *Animation) Run(ctx context.Context, fps float64) error {
	if fps <= 0 {
		return fmt.Errorf("widget: invalid frame rate %v", fps)
	}
	tick := time.Duration(float64(time.Second) / fps)

	events := make(chan tcell.Event)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(tick)
	defer ticker.Stop()
	last := time.Now()
	a.draw()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuit(ev) {
					return nil
				}
			case *tcell.EventResize:
				a.resize()
				a.screen.Sync()
				a.draw()
			}

		case now := <-ticker.C:
			a.state.Update(now.Sub(last))
			last = now
			a.draw()
		}
	}
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

func (a *Animation) resize() {
	w, h := a.screen.Size()
	a.canvas = canvas.WithOutputSize(max(w, 0), max(h, 0))
	a.widget.SetSource(a.canvas)
	tracer().Debugf("widget: canvas resized to %dx%d cells", w, h)
}

func (a *Animation) draw() {
	a.state.Paint(a.canvas)
	a.screen.Clear()
	a.widget.Draw()
	a.screen.Show()
}

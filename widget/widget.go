package widget

import (
	"iter"

	"github.com/gdamore/tcell"
	"github.com/gdamore/tcell/views"
)

// Source is anything that renders to rows of braille text, such as a
// canvas.Canvas or a braille.Buffer.
type Source interface {
	OutputSize() (width, height int)
	Lines() iter.Seq[string]
}

// Render draws the leading rows and columns of src into dst at its origin.
// Output that does not fit the view is cut off, never wrapped or scaled.
func Render(dst views.View, src Source, style tcell.Style) {
	vw, vh := dst.Size()
	sw, sh := src.OutputSize()
	w, h := min(vw, sw), min(vh, sh)
	if w <= 0 || h <= 0 {
		return
	}
	y := 0
	for line := range src.Lines() {
		if y >= h {
			break
		}
		x := 0
		for _, r := range line {
			if x >= w {
				break
			}
			dst.SetContent(x, y, r, nil, style)
			x++
		}
		y++
	}
}

// Widget is a views.Widget that displays a Source.
type Widget struct {
	views.WidgetWatchers
	view  views.View
	src   Source
	style tcell.Style
}

var _ views.Widget = (*Widget)(nil)

// NewWidget returns a widget showing src in the default style.
func NewWidget(src Source) *Widget {
	return &Widget{src: src, style: tcell.StyleDefault}
}

// SetSource replaces what the widget shows.
func (w *Widget) SetSource(src Source) {
	w.src = src
	w.PostEventWidgetContent(w)
}

// SetStyle sets the style braille cells are drawn with.
func (w *Widget) SetStyle(style tcell.Style) {
	w.style = style
	w.PostEventWidgetContent(w)
}

func (w *Widget) Draw() {
	if w.view == nil || w.src == nil {
		return
	}
	Render(w.view, w.src, w.style)
}

func (w *Widget) Resize() {
	w.PostEventWidgetResize(w)
}

func (w *Widget) HandleEvent(ev tcell.Event) bool {
	return false
}

func (w *Widget) SetView(view views.View) {
	w.view = view
}

func (w *Widget) Size() (int, int) {
	if w.src == nil {
		return 0, 0
	}
	return w.src.OutputSize()
}

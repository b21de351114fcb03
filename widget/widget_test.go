package widget_test

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/borkshop/braillix/canvas"
	"github.com/borkshop/braillix/point"
	. "github.com/borkshop/braillix/widget"
)

func screenLines(scr tcell.SimulationScreen) []string {
	scr.Show()
	cells, width, height := scr.GetContents()
	lines := make([]string, 0, height)
	var sb strings.Builder
	for i, cell := range cells {
		if i > 0 && i%width == 0 {
			lines = append(lines, sb.String())
			sb.Reset()
		}
		if len(cell.Runes) == 0 || cell.Runes[0] == 0 {
			sb.WriteRune(' ')
		} else {
			sb.WriteString(string(cell.Runes))
		}
	}
	return append(lines, sb.String())
}

func newScreen(t *testing.T, width, height int) tcell.SimulationScreen {
	scr := tcell.NewSimulationScreen("")
	require.NoError(t, scr.Init())
	scr.SetSize(width, height)
	scr.Clear()
	return scr
}

func boxCanvas() *canvas.Canvas {
	c := canvas.WithDotSize(4, 4)
	c.DrawRect(point.Pt(0, 0), point.Pt(4, 4), canvas.Outlined())
	return c
}

func TestRender(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "braillix.widget")
	defer teardown()

	for _, tc := range []struct {
		name          string
		width, height int
		expected      []string
	}{
		{"exact", 2, 1, []string{"⣏⣹"}},
		{"cropped", 1, 1, []string{"⣏"}},
		{"larger view", 3, 2, []string{"⣏⣹ ", "   "}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			scr := newScreen(t, tc.width, tc.height)
			defer scr.Fini()
			Render(scr, boxCanvas(), tcell.StyleDefault)
			assert.Equal(t, tc.expected, screenLines(scr))
		})
	}
}

func TestWidget(t *testing.T) {
	scr := newScreen(t, 4, 2)
	defer scr.Fini()

	w := NewWidget(boxCanvas())
	width, height := w.Size()
	assert.Equal(t, 2, width)
	assert.Equal(t, 1, height)

	w.Draw()
	assert.Equal(t, []string{"    ", "    "}, screenLines(scr), "no view yet")

	w.SetView(scr)
	w.Draw()
	assert.Equal(t, []string{"⣏⣹  ", "    "}, screenLines(scr))
	assert.False(t, w.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)))

	c := canvas.WithOutputSize(4, 2)
	c.DrawLine(point.Pt(0, 7), point.Pt(7, 7), canvas.Outlined())
	w.SetSource(c)
	w.Draw()
	assert.Equal(t, []string{"⠀⠀⠀⠀", "⣀⣀⣀⣀"}, screenLines(scr), "braille blanks are drawn over")
}

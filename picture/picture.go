package picture

import (
	"image"
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
	xdraw "golang.org/x/image/draw"

	"github.com/borkshop/braillix/bitmap"
	"github.com/borkshop/braillix/canvas"
	"github.com/borkshop/braillix/dither"
	"github.com/borkshop/braillix/point"
)

// Options tune how an image is drawn. The zero value is usable.
type Options struct {
	// Scaler resamples the image to the dot grid; nil means ApproxBiLinear.
	Scaler xdraw.Scaler
	// Invert draws dark pixels as lit dots.
	Invert bool
}

func (o *Options) scaler() xdraw.Scaler {
	if o == nil || o.Scaler == nil {
		return xdraw.ApproxBiLinear
	}
	return o.Scaler
}

func (o *Options) invert() bool { return o != nil && o.Invert }

// Brightness returns the dither brightness of a colour: its L* lightness
// scaled to [0, dither.MaxBrightness()]. Fully transparent colours are dark.
func Brightness(c color.Color) int {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return 0
	}
	l, _, _ := cf.Lab()
	l = math.Max(0, math.Min(1, l))
	return int(math.Round(l * float64(dither.MaxBrightness())))
}

// Draw scales src over the whole canvas.
func Draw(c *canvas.Canvas, src image.Image, opts *Options) {
	DrawIn(c, c.Bounds(), src, opts)
}

// DrawIn scales src to cover the dot rectangle r of the canvas. Dots of r
// that fall outside the canvas are dropped.
func DrawIn(c *canvas.Canvas, r image.Rectangle, src image.Image, opts *Options) {
	r = r.Canon()
	if r.Empty() || src.Bounds().Empty() {
		return
	}
	scaled := scale(r, src, opts)

	full := dither.MaxBrightness()
	visible := r.Intersect(c.Bounds())
	for y := visible.Min.Y; y < visible.Max.Y; y++ {
		for x := visible.Min.X; x < visible.Max.X; x++ {
			b := Brightness(scaled.At(x, y))
			if opts.invert() {
				b = full - b
			}
			c.SetWithBrightness(point.Pt(x, y), b)
		}
	}
}

// DrawMono scales src over the dot rectangle r and lights each dot whose
// pixel is nearer white than black, without dithering. Dots under darker
// pixels keep whatever they held.
func DrawMono(c *canvas.Canvas, r image.Rectangle, src image.Image, opts *Options) {
	r = r.Canon()
	if r.Empty() || src.Bounds().Empty() {
		return
	}
	on, off := color.Color(color.White), color.Color(color.Black)
	if opts.invert() {
		on, off = off, on
	}
	c.Blit(bitmap.FromImage(scale(r, src, opts), on, off), point.Pt(r.Min.X, r.Min.Y))
}

func scale(r image.Rectangle, src image.Image, opts *Options) *image.RGBA {
	dst := image.NewRGBA(r)
	opts.scaler().Scale(dst, r, src, src.Bounds(), xdraw.Src, nil)
	return dst
}

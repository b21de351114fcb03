/*
Package picture draws raster images onto a braille canvas.

An image is scaled to the dot rectangle it should cover, every scaled pixel
is reduced to its perceptual lightness (CIE L*), and that lightness becomes
the brightness handed to the canvas dither. Colour is discarded.
*/
package picture

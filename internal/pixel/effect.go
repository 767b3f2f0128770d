package pixel

import (
	"image"

	"github.com/anthonynsimon/bild/adjust"
	"github.com/anthonynsimon/bild/effect"
)

// Grayscale replaces each cell's R, G and B with its luminance,
// in place. Alpha is untouched.
func (g *Grid) Grayscale() {
	g.applyRGB(effect.Grayscale(g.Image()))
}

// Brightness scales each cell's R, G and B by 1+change, in place:
// -1 is black, 0 is a no-op, 1 doubles the channels (clamped to 255).
// Alpha is untouched.
func (g *Grid) Brightness(change float64) {
	g.applyRGB(adjust.Brightness(g.Image(), change))
}

// applyRGB copies the R, G and B planes of img back into the grid.
// img must have the grid's dimensions and is premultiplied (bild
// filters work on RGBA), so channels are un-premultiplied against the
// filter output's alpha before storing. Grid alpha itself is untouched.
func (g *Grid) applyRGB(img *image.RGBA) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			o := img.PixOffset(x, y)
			a := uint32(img.Pix[o+3])
			if a == 0 {
				// Fully transparent premultiplied pixels carry no
				// channel information; keep the cell as it was.
				continue
			}
			c := &g.cells[y*g.width+x]
			c.R = unpremultiply(img.Pix[o], a)
			c.G = unpremultiply(img.Pix[o+1], a)
			c.B = unpremultiply(img.Pix[o+2], a)
		}
	}
}

// unpremultiply converts a premultiplied channel back to straight
// alpha, saturating at 255. Filters may clamp a premultiplied channel
// above the pixel's alpha, in which case the quotient exceeds the
// channel range and must not wrap around.
func unpremultiply(p uint8, a uint32) uint8 {
	v := (uint32(p)*255 + a/2) / a
	if v > 255 {
		v = 255
	}
	return uint8(v)
}

package surface

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/pixel-grid-mcp/internal/pixel"
)

// ImageProvider creates surfaces backed by in-memory NRGBA images.
// It implements pixel.SurfaceProvider.
//
// NRGBA is non-premultiplied, so the surface's pixel buffer is
// byte-for-byte the flat straight-alpha RGBA format the grid decodes.
type ImageProvider struct{}

// NewImageProvider returns a provider ready for injection into
// pixel.FromImage or server construction.
func NewImageProvider() *ImageProvider {
	return &ImageProvider{}
}

// NewSurface creates a transparent width x height surface.
func (*ImageProvider) NewSurface(width, height int) (pixel.Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid surface dimensions %dx%d", width, height)
	}
	return &imageSurface{
		canvas: image.NewNRGBA(image.Rect(0, 0, width, height)),
	}, nil
}

// imageSurface is an off-screen NRGBA canvas.
type imageSurface struct {
	canvas *image.NRGBA
}

// Draw pastes img onto the canvas with its top-left corner at (x, y),
// clipping anything that falls outside.
func (s *imageSurface) Draw(img image.Image, x, y int) {
	s.canvas = imaging.Paste(s.canvas, img, image.Pt(x, y))
}

// Pixels returns a copy of the canvas as a flat interleaved RGBA
// buffer in row-major order.
func (s *imageSurface) Pixels() []byte {
	out := make([]byte, len(s.canvas.Pix))
	copy(out, s.canvas.Pix)
	return out
}

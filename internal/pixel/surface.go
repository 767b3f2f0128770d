package pixel

import "image"

// Surface is an off-screen drawing target that exposes its raw pixels
// in the flat interleaved RGBA format Decode expects.
type Surface interface {
	// Draw renders img onto the surface with its top-left corner at
	// (x, y). Pixels falling outside the surface are clipped.
	Draw(img image.Image, x, y int)

	// Pixels returns the surface contents as a flat RGBA buffer in
	// row-major order. The caller owns the returned slice.
	Pixels() []byte
}

// SurfaceProvider creates drawing surfaces. Implementations live
// outside the core and are injected by the caller; the grid never
// inspects its host environment to pick one.
type SurfaceProvider interface {
	NewSurface(width, height int) (Surface, error)
}

// FromImage rasterizes an arbitrary image onto a fresh surface of
// matching dimensions and decodes the read-back buffer into a Grid.
func FromImage(img image.Image, p SurfaceProvider) (*Grid, error) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	surf, err := p.NewSurface(width, height)
	if err != nil {
		return nil, err
	}
	surf.Draw(img, 0, 0)

	return Decode(surf.Pixels(), width, height)
}

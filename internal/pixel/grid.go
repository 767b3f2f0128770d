package pixel

import (
	"errors"
	"fmt"
	"image"
)

// ErrShapeMismatch is returned by Decode when the buffer length does
// not equal width*height*4.
var ErrShapeMismatch = errors.New("buffer length does not match grid dimensions")

// Grid is a randomly addressable 2-D view over a flat interleaved RGBA
// buffer. Dimensions are fixed at construction; every cell always holds
// exactly one Color.
type Grid struct {
	width  int
	height int
	cells  []Color // row-major, cells[y*width+x]
}

// Decode builds a Grid from a flat interleaved RGBA buffer, reading
// four consecutive bytes per pixel in row-major order.
//
// The buffer length must be exactly width*height*4; anything else is
// rejected with ErrShapeMismatch rather than mis-decoded.
func Decode(buf []byte, width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid grid dimensions %dx%d", width, height)
	}
	if len(buf) != width*height*4 {
		return nil, fmt.Errorf("%w: got %d bytes, want %d for %dx%d",
			ErrShapeMismatch, len(buf), width*height*4, width, height)
	}

	cells := make([]Color, width*height)
	for i := range cells {
		o := i * 4
		cells[i] = Color{R: buf[o], G: buf[o+1], B: buf[o+2], A: buf[o+3]}
	}

	return &Grid{width: width, height: height, cells: cells}, nil
}

// NewGrid returns a width x height grid with every cell set to
// transparent black.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid grid dimensions %dx%d", width, height)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Color, width*height),
	}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// At returns the live Color at (x, y), or nil when the coordinate is
// out of bounds. The returned pointer aliases the grid cell: writing a
// channel through it mutates the grid.
func (g *Grid) At(x, y int) *Color {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return nil
	}
	return &g.cells[y*g.width+x]
}

// Set overwrites the cell at (x, y) with c. Out-of-bounds writes are
// silently dropped.
func (g *Grid) Set(x, y int, c Color) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return
	}
	g.cells[y*g.width+x] = c
}

// Fill overwrites every cell with an independent copy of c. A later
// write through At touches only its own cell, never the whole grid.
func (g *Grid) Fill(c Color) {
	for i := range g.cells {
		g.cells[i] = c
	}
}

// Clear resets every cell to fully transparent black (0,0,0,0).
func (g *Grid) Clear() {
	g.Fill(Color{})
}

// Invert replaces each cell's R, G and B with their 255-complement,
// in place. Alpha is untouched. Applying Invert twice restores the
// original grid.
func (g *Grid) Invert() {
	for i := range g.cells {
		c := &g.cells[i]
		c.R = 255 - c.R
		c.G = 255 - c.G
		c.B = 255 - c.B
	}
}

// Encode writes the grid into a freshly allocated flat RGBA buffer of
// length width*height*4, the exact inverse of Decode. Feeding the
// result back into Decode reconstructs an equal grid.
func (g *Grid) Encode() []byte {
	buf := make([]byte, len(g.cells)*4)
	for i, c := range g.cells {
		o := i * 4
		buf[o] = c.R
		buf[o+1] = c.G
		buf[o+2] = c.B
		buf[o+3] = c.A
	}
	return buf
}

// Image copies the grid into a non-premultiplied RGBA image. NRGBA's
// pixel layout is byte-for-byte the grid's buffer contract.
func (g *Grid) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, g.width, g.height))
	copy(img.Pix, g.Encode())
	return img
}

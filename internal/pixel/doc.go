// Package pixel converts flat interleaved RGBA byte buffers into
// randomly addressable two-dimensional grids of color values and back.
//
// # Buffer Contract
//
// The single wire format is a flat byte sequence of length
// width*height*4 holding one R,G,B,A byte quadruple per pixel, pixels
// in row-major order (all of row 0 left-to-right, then row 1, and so
// on). Decode and Encode are exact inverses over this format.
//
// # Coordinate System
//
// Cells are addressed (x, y) with a 0-based origin at the top-left:
// X grows rightward, Y grows downward. Reads and writes are bounds
// checked and fail soft: At returns nil and Set silently drops the
// write when a coordinate is outside the grid. Nothing in this package
// panics on bad coordinates.
//
// # Color Representation
//
// Channels are [0,255] integers everywhere, including the hex and HSV
// conversions. Hex parsing fails open: an unparseable string becomes
// opaque black rather than an error (ParseHex is the strict variant).
//
// # Concurrency
//
// Grids are plain in-memory state with no internal locking. Callers
// that share a grid across goroutines must provide their own mutual
// exclusion.
package pixel

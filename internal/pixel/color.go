package pixel

import (
	"fmt"
	"strconv"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is a single RGBA pixel value with 8-bit channels.
//
// Channels range 0-255. Two Colors are equal under == exactly when all
// four channels match; copying is by value.
type Color struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
	A uint8 `json:"a"` // Alpha/opacity component (0-255, 255 = opaque)
}

// RGB returns a fully opaque Color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// FromHex parses a hex color string like "#FF0000" or "#FF000080" into
// a Color. The leading '#' is optional; six digits leave alpha at 255.
//
// Parsing fails open: any string that is not 6 or 8 hex digits yields
// opaque black (0,0,0,255) instead of an error. Callers that need to
// reject bad input should use ParseHex.
func FromHex(hex string) Color {
	c, err := ParseHex(hex)
	if err != nil {
		return Color{A: 255}
	}
	return c
}

// ParseHex is the strict variant of FromHex: same accepted forms, but
// malformed input returns an error instead of the black fallback.
func ParseHex(hex string) (Color, error) {
	if len(hex) == 0 {
		return Color{}, fmt.Errorf("empty color string")
	}
	if hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint8 = 0, 0, 0, 255

	switch len(hex) {
	case 6:
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return Color{}, err
		}
		r = uint8(val >> 16)
		g = uint8(val >> 8)
		b = uint8(val)
	case 8:
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return Color{}, err
		}
		r = uint8(val >> 24)
		g = uint8(val >> 16)
		b = uint8(val >> 8)
		a = uint8(val)
	default:
		return Color{}, fmt.Errorf("invalid hex color length %d", len(hex))
	}

	return Color{R: r, G: g, B: b, A: a}, nil
}

// Hex renders the color as "#RRGGBBAA" with uppercase digits.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

// FromHSV converts an HSV triple to a fully opaque Color.
//
// h is in degrees [0,360); the single value 360 wraps to 0. s is in
// [0,1]. v shares the [0,255] scale of the output channels. s <= 0
// degenerates to the gray with all channels equal to v.
func FromHSV(h, s, v float64) Color {
	if h == 360 {
		h = 0
	}
	if s < 0 {
		s = 0
	}
	r, g, b := colorful.Hsv(h, s, v/255.0).Clamped().RGB255()
	return Color{R: r, G: g, B: b, A: 255}
}

// HSV returns the hue in degrees [0,360), the saturation in [0,1] and
// the value on the [0,255] channel scale. Inverse of FromHSV for
// opaque colors, within rounding.
func (c Color) HSV() (h, s, v float64) {
	h, s, v = colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}.Hsv()
	return h, s, v * 255.0
}

// HSVValue is the HSV portion of a ColorResult.
type HSVValue struct {
	H float64 `json:"h"` // Hue: 0-360 degrees
	S float64 `json:"s"` // Saturation: 0-1
	V float64 `json:"v"` // Value: 0-255, same scale as the RGB channels
}

// ColorResult reports one color in the formats clients usually want.
type ColorResult struct {
	Hex  string   `json:"hex"`  // "#RRGGBBAA"
	RGBA Color    `json:"rgba"` // Channel values
	HSV  HSVValue `json:"hsv"`  // HSV representation (ignores alpha)
}

// Describe builds the multi-format report for a color.
func Describe(c Color) ColorResult {
	h, s, v := c.HSV()
	return ColorResult{
		Hex:  c.Hex(),
		RGBA: c,
		HSV:  HSVValue{H: h, S: s, V: v},
	}
}

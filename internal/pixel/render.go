package pixel

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/png"
)

// RenderResult contains a grid rendered to an inline PNG.
type RenderResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// RenderPNG encodes the grid as a base64 PNG so clients can look at it
// without going through the raw buffer format.
func RenderPNG(g *Grid) (*RenderResult, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, g.Image()); err != nil {
		return nil, fmt.Errorf("failed to encode grid: %w", err)
	}

	return &RenderResult{
		Width:       g.width,
		Height:      g.height,
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

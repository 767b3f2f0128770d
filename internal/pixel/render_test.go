package pixel

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"testing"
)

func TestRenderPNG(t *testing.T) {
	g, err := Decode([]byte{
		255, 0, 0, 255,
		0, 255, 0, 255,
		0, 0, 255, 255,
		255, 255, 255, 255,
		0, 0, 0, 255,
		128, 128, 128, 255,
	}, 3, 2)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	result, err := RenderPNG(g)
	if err != nil {
		t.Fatalf("RenderPNG failed: %v", err)
	}

	if result.Width != 3 || result.Height != 2 {
		t.Errorf("dimensions: got %dx%d, want 3x2", result.Width, result.Height)
	}
	if result.MimeType != "image/png" {
		t.Errorf("mime type: got %s, want image/png", result.MimeType)
	}

	raw, err := base64.StdEncoding.DecodeString(result.ImageBase64)
	if err != nil {
		t.Fatalf("result is not valid base64: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("result is not a decodable PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Errorf("decoded PNG bounds: got %dx%d, want 3x2", b.Dx(), b.Dy())
	}

	r, gr, b, a := img.At(0, 0).RGBA()
	if r>>8 != 255 || gr>>8 != 0 || b>>8 != 0 || a>>8 != 255 {
		t.Errorf("decoded pixel (0,0): got (%d,%d,%d,%d), want red",
			r>>8, gr>>8, b>>8, a>>8)
	}
}

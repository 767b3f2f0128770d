package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"testing"

	"github.com/ironsheep/pixel-grid-mcp/internal/pixel"
)

func mustJSON(t *testing.T, v interface{}) json.RawMessage {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to marshal args: %v", err)
	}
	return b
}

func encodeBuffer(buf []byte) string {
	return base64.StdEncoding.EncodeToString(buf)
}

// makeGrid registers a grid from raw buffer bytes and returns its id.
func makeGrid(t *testing.T, s *Server, buf []byte, width, height int) string {
	t.Helper()
	res, err := s.executeTool("grid_from_buffer", mustJSON(t, map[string]interface{}{
		"buffer_base64": encodeBuffer(buf),
		"width":         width,
		"height":        height,
	}))
	if err != nil {
		t.Fatalf("grid_from_buffer failed: %v", err)
	}
	return res.(*GridResult).ID
}

// createTestImageFile creates a uniform test PNG and returns its path.
func createTestImageFile(t *testing.T, width, height int, c color.Color) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}

	f, err := os.CreateTemp(t.TempDir(), "handler-test-*.png")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}

	return f.Name()
}

func TestGridFromBuffer(t *testing.T) {
	s := newTestServer()

	res, err := s.executeTool("grid_from_buffer", mustJSON(t, map[string]interface{}{
		"buffer_base64": encodeBuffer([]byte{255, 0, 0, 255, 0, 255, 0, 128}),
		"width":         2,
		"height":        1,
	}))
	if err != nil {
		t.Fatalf("grid_from_buffer failed: %v", err)
	}

	gr := res.(*GridResult)
	if gr.Width != 2 || gr.Height != 1 {
		t.Errorf("dimensions: got %dx%d, want 2x1", gr.Width, gr.Height)
	}
	if gr.ID == "" {
		t.Error("missing grid id")
	}
}

func TestGridFromBuffer_ShapeMismatch(t *testing.T) {
	s := newTestServer()

	_, err := s.executeTool("grid_from_buffer", mustJSON(t, map[string]interface{}{
		"buffer_base64": encodeBuffer([]byte{1, 2, 3}),
		"width":         2,
		"height":        1,
	}))
	if err == nil {
		t.Error("grid_from_buffer should reject a mis-sized buffer")
	}
}

func TestGridFromBuffer_BadBase64(t *testing.T) {
	s := newTestServer()

	_, err := s.executeTool("grid_from_buffer", mustJSON(t, map[string]interface{}{
		"buffer_base64": "!!! not base64 !!!",
		"width":         1,
		"height":        1,
	}))
	if err == nil {
		t.Error("grid_from_buffer should reject invalid base64")
	}
}

func TestGridGetPixel(t *testing.T) {
	s := newTestServer()
	id := makeGrid(t, s, []byte{255, 0, 0, 255, 0, 255, 0, 128}, 2, 1)

	res, err := s.executeTool("grid_get_pixel", mustJSON(t, map[string]interface{}{
		"id": id, "x": 1, "y": 0,
	}))
	if err != nil {
		t.Fatalf("grid_get_pixel failed: %v", err)
	}

	pr := res.(*PixelResult)
	if !pr.InBounds || pr.Color == nil {
		t.Fatalf("expected in-bounds pixel, got %+v", pr)
	}
	if pr.Color.Hex != "#00FF0080" {
		t.Errorf("hex: got %s, want #00FF0080", pr.Color.Hex)
	}
}

func TestGridGetPixel_OutOfBounds(t *testing.T) {
	s := newTestServer()
	id := makeGrid(t, s, make([]byte, 2*2*4), 2, 2)

	tests := []struct {
		name string
		x, y int
	}{
		{"negative x", -1, 0},
		{"negative y", 0, -1},
		{"x at width", 2, 0},
		{"y at height", 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := s.executeTool("grid_get_pixel", mustJSON(t, map[string]interface{}{
				"id": id, "x": tt.x, "y": tt.y,
			}))
			if err != nil {
				t.Fatalf("grid_get_pixel failed: %v", err)
			}
			pr := res.(*PixelResult)
			if pr.InBounds || pr.Color != nil {
				t.Errorf("expected null color for (%d,%d), got %+v", tt.x, tt.y, pr)
			}
		})
	}
}

func TestGridGetPixel_NullColorInJSON(t *testing.T) {
	// The JSON rendering of an out-of-bounds read carries an explicit
	// null, not a zero-value color.
	pr := PixelResult{X: 9, Y: 9}
	b, err := json.Marshal(pr)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if !bytes.Contains(b, []byte(`"color":null`)) {
		t.Errorf("expected \"color\":null in %s", b)
	}
}

func TestGridSetPixel(t *testing.T) {
	s := newTestServer()
	id := makeGrid(t, s, make([]byte, 2*1*4), 2, 1)

	if _, err := s.executeTool("grid_set_pixel", mustJSON(t, map[string]interface{}{
		"id": id, "x": 1, "y": 0, "color": "#FF008080",
	})); err != nil {
		t.Fatalf("grid_set_pixel failed: %v", err)
	}

	g, err := s.grid(id)
	if err != nil {
		t.Fatalf("grid lookup failed: %v", err)
	}
	if c := g.At(1, 0); *c != (pixel.Color{R: 255, G: 0, B: 128, A: 128}) {
		t.Errorf("cell after set: got %+v", *c)
	}
}

func TestGridSetPixel_OutOfBoundsIsNoOp(t *testing.T) {
	s := newTestServer()
	buf := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	id := makeGrid(t, s, buf, 2, 1)

	if _, err := s.executeTool("grid_set_pixel", mustJSON(t, map[string]interface{}{
		"id": id, "x": 9, "y": 9, "color": "#FFFFFF",
	})); err != nil {
		t.Fatalf("grid_set_pixel failed: %v", err)
	}

	g, _ := s.grid(id)
	if !bytes.Equal(g.Encode(), buf) {
		t.Error("out-of-bounds set_pixel mutated the grid")
	}
}

func TestGridFill(t *testing.T) {
	s := newTestServer()
	id := makeGrid(t, s, make([]byte, 2*2*4), 2, 2)

	if _, err := s.executeTool("grid_fill", mustJSON(t, map[string]interface{}{
		"id": id, "color": "#336699",
	})); err != nil {
		t.Fatalf("grid_fill failed: %v", err)
	}

	g, _ := s.grid(id)
	want := pixel.Color{R: 0x33, G: 0x66, B: 0x99, A: 255}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if c := g.At(x, y); *c != want {
				t.Fatalf("cell (%d,%d): got %+v, want %+v", x, y, *c, want)
			}
		}
	}
}

func TestGridClear(t *testing.T) {
	s := newTestServer()
	id := makeGrid(t, s, []byte{9, 9, 9, 9, 9, 9, 9, 9}, 2, 1)

	if _, err := s.executeTool("grid_clear", mustJSON(t, map[string]interface{}{"id": id})); err != nil {
		t.Fatalf("grid_clear failed: %v", err)
	}

	g, _ := s.grid(id)
	for x := 0; x < 2; x++ {
		if c := g.At(x, 0); *c != (pixel.Color{}) {
			t.Fatalf("cell (%d,0) after clear: got %+v", x, *c)
		}
	}
}

func TestGridInvert_RoundTripThroughEncode(t *testing.T) {
	s := newTestServer()
	buf := []byte{255, 0, 0, 255, 0, 255, 0, 128}
	id := makeGrid(t, s, buf, 2, 1)

	if _, err := s.executeTool("grid_invert", mustJSON(t, map[string]interface{}{"id": id})); err != nil {
		t.Fatalf("grid_invert failed: %v", err)
	}

	res, err := s.executeTool("grid_encode", mustJSON(t, map[string]interface{}{"id": id}))
	if err != nil {
		t.Fatalf("grid_encode failed: %v", err)
	}
	er := res.(*EncodeResult)
	got, err := base64.StdEncoding.DecodeString(er.BufferBase64)
	if err != nil {
		t.Fatalf("invalid base64 in encode result: %v", err)
	}

	want := []byte{0, 255, 255, 255, 255, 0, 255, 128}
	if !bytes.Equal(got, want) {
		t.Errorf("inverted buffer: got %v, want %v", got, want)
	}
	if er.Length != len(want) {
		t.Errorf("length: got %d, want %d", er.Length, len(want))
	}

	// A second invert restores the original buffer.
	if _, err := s.executeTool("grid_invert", mustJSON(t, map[string]interface{}{"id": id})); err != nil {
		t.Fatalf("second grid_invert failed: %v", err)
	}
	res, _ = s.executeTool("grid_encode", mustJSON(t, map[string]interface{}{"id": id}))
	got, _ = base64.StdEncoding.DecodeString(res.(*EncodeResult).BufferBase64)
	if !bytes.Equal(got, buf) {
		t.Errorf("double invert: got %v, want original %v", got, buf)
	}
}

func TestGridGrayscale(t *testing.T) {
	s := newTestServer()
	id := makeGrid(t, s, []byte{255, 0, 0, 255}, 1, 1)

	if _, err := s.executeTool("grid_grayscale", mustJSON(t, map[string]interface{}{"id": id})); err != nil {
		t.Fatalf("grid_grayscale failed: %v", err)
	}

	g, _ := s.grid(id)
	c := g.At(0, 0)
	if c.R != c.G || c.G != c.B {
		t.Errorf("cell not gray after grayscale: %+v", *c)
	}
	if c.A != 255 {
		t.Errorf("grayscale modified alpha: %+v", *c)
	}
}

func TestGridBrightness(t *testing.T) {
	s := newTestServer()
	id := makeGrid(t, s, []byte{100, 100, 100, 255}, 1, 1)

	if _, err := s.executeTool("grid_brightness", mustJSON(t, map[string]interface{}{
		"id": id, "change": 0.5,
	})); err != nil {
		t.Fatalf("grid_brightness failed: %v", err)
	}

	g, _ := s.grid(id)
	c := g.At(0, 0)
	if c.R < 148 || c.R > 152 {
		t.Errorf("brightness: got %+v, want channels near 150", *c)
	}
}

func TestGridRender(t *testing.T) {
	s := newTestServer()
	id := makeGrid(t, s, []byte{255, 0, 0, 255, 0, 0, 255, 255}, 2, 1)

	res, err := s.executeTool("grid_render", mustJSON(t, map[string]interface{}{"id": id}))
	if err != nil {
		t.Fatalf("grid_render failed: %v", err)
	}

	rr := res.(*pixel.RenderResult)
	if rr.Width != 2 || rr.Height != 1 {
		t.Errorf("dimensions: got %dx%d, want 2x1", rr.Width, rr.Height)
	}

	raw, err := base64.StdEncoding.DecodeString(rr.ImageBase64)
	if err != nil {
		t.Fatalf("invalid base64: %v", err)
	}
	if _, err := png.Decode(bytes.NewReader(raw)); err != nil {
		t.Errorf("render result is not a decodable PNG: %v", err)
	}
}

func TestGridFromImage(t *testing.T) {
	s := newTestServer()
	path := createTestImageFile(t, 3, 2, color.RGBA{255, 0, 0, 255})

	res, err := s.executeTool("grid_from_image", mustJSON(t, map[string]interface{}{"path": path}))
	if err != nil {
		t.Fatalf("grid_from_image failed: %v", err)
	}

	gr := res.(*GridResult)
	if gr.Width != 3 || gr.Height != 2 {
		t.Errorf("dimensions: got %dx%d, want 3x2", gr.Width, gr.Height)
	}

	g, err := s.grid(gr.ID)
	if err != nil {
		t.Fatalf("grid lookup failed: %v", err)
	}
	if c := g.At(0, 0); *c != (pixel.Color{R: 255, G: 0, B: 0, A: 255}) {
		t.Errorf("pixel (0,0): got %+v, want opaque red", *c)
	}
}

func TestGridFromImage_MissingFile(t *testing.T) {
	s := newTestServer()

	if _, err := s.executeTool("grid_from_image", mustJSON(t, map[string]interface{}{
		"path": "/nonexistent/image.png",
	})); err == nil {
		t.Error("grid_from_image should fail for a missing file")
	}
}

func TestGridRelease(t *testing.T) {
	s := newTestServer()
	id := makeGrid(t, s, make([]byte, 4), 1, 1)

	res, err := s.executeTool("grid_release", mustJSON(t, map[string]interface{}{"id": id}))
	if err != nil {
		t.Fatalf("grid_release failed: %v", err)
	}
	if !res.(*ReleaseResult).Released {
		t.Error("first release should report true")
	}

	res, _ = s.executeTool("grid_release", mustJSON(t, map[string]interface{}{"id": id}))
	if res.(*ReleaseResult).Released {
		t.Error("second release should report false")
	}

	if _, err := s.executeTool("grid_invert", mustJSON(t, map[string]interface{}{"id": id})); err == nil {
		t.Error("operations on a released grid should fail")
	}
}

func TestColorFromHex(t *testing.T) {
	s := newTestServer()

	res, err := s.executeTool("color_from_hex", mustJSON(t, map[string]interface{}{"hex": "#FF008080"}))
	if err != nil {
		t.Fatalf("color_from_hex failed: %v", err)
	}

	cr := res.(pixel.ColorResult)
	want := pixel.Color{R: 255, G: 0, B: 128, A: 128}
	if cr.RGBA != want {
		t.Errorf("rgba: got %+v, want %+v", cr.RGBA, want)
	}
}

func TestColorFromHex_LenientFallback(t *testing.T) {
	s := newTestServer()

	res, err := s.executeTool("color_from_hex", mustJSON(t, map[string]interface{}{"hex": "not-a-color"}))
	if err != nil {
		t.Fatalf("color_from_hex should not fail on bad input: %v", err)
	}

	cr := res.(pixel.ColorResult)
	if cr.RGBA != (pixel.Color{R: 0, G: 0, B: 0, A: 255}) {
		t.Errorf("fallback: got %+v, want opaque black", cr.RGBA)
	}
}

func TestColorFromHSV(t *testing.T) {
	s := newTestServer()

	res, err := s.executeTool("color_from_hsv", mustJSON(t, map[string]interface{}{
		"h": 0, "s": 1, "v": 255,
	}))
	if err != nil {
		t.Fatalf("color_from_hsv failed: %v", err)
	}

	cr := res.(pixel.ColorResult)
	if cr.Hex != "#FF0000FF" {
		t.Errorf("hex: got %s, want #FF0000FF (pure red)", cr.Hex)
	}
}

func TestExecuteTool_Unknown(t *testing.T) {
	s := newTestServer()

	if _, err := s.executeTool("no_such_tool", []byte(`{}`)); err == nil {
		t.Error("unknown tool should fail")
	}
}

func TestHandleToolsCall_EndToEnd(t *testing.T) {
	s := newTestServer()

	params := map[string]interface{}{
		"name": "grid_from_buffer",
		"arguments": map[string]interface{}{
			"buffer_base64": encodeBuffer([]byte{255, 0, 0, 255}),
			"width":         1,
			"height":        1,
		},
	}

	req := &MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "tools/call",
		Params:  mustJSON(t, params),
	}

	resp := s.handleRequest(req)
	if resp == nil {
		t.Fatal("handleRequest returned nil")
	}
	if resp.Error != nil {
		t.Fatalf("unexpected error: %v", resp.Error)
	}
}

func TestHandleToolsCall_ToolError(t *testing.T) {
	s := newTestServer()

	req := &MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "tools/call",
		Params: mustJSON(t, map[string]interface{}{
			"name":      "grid_invert",
			"arguments": map[string]interface{}{"id": "bogus"},
		}),
	}

	resp := s.handleRequest(req)
	if resp == nil || resp.Error == nil {
		t.Fatal("expected a tool execution error")
	}
	if resp.Error.Code != -32000 {
		t.Errorf("error code: got %d, want -32000", resp.Error.Code)
	}
}

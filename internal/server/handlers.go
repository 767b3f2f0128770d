package server

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/ironsheep/pixel-grid-mcp/internal/pixel"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "grid_from_buffer").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Grid Construction
	case "grid_from_buffer":
		return s.handleGridFromBuffer(args)
	case "grid_from_image":
		return s.handleGridFromImage(args)

	// Cell Access
	case "grid_get_pixel":
		return s.handleGridGetPixel(args)
	case "grid_set_pixel":
		return s.handleGridSetPixel(args)

	// Grid-wide Operations
	case "grid_fill":
		return s.handleGridFill(args)
	case "grid_clear":
		return s.handleGridClear(args)
	case "grid_invert":
		return s.handleGridInvert(args)
	case "grid_grayscale":
		return s.handleGridGrayscale(args)
	case "grid_brightness":
		return s.handleGridBrightness(args)

	// Output
	case "grid_encode":
		return s.handleGridEncode(args)
	case "grid_render":
		return s.handleGridRender(args)

	// Lifecycle
	case "grid_release":
		return s.handleGridRelease(args)

	// Color Conversions
	case "color_from_hex":
		return s.handleColorFromHex(args)
	case "color_from_hsv":
		return s.handleColorFromHSV(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// GridResult identifies a registered grid and reports its dimensions.
type GridResult struct {
	ID     string `json:"id"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// PixelResult reports a bounds-checked read. Color is null when the
// coordinate was out of bounds; InBounds makes the distinction explicit.
type PixelResult struct {
	X        int                `json:"x"`
	Y        int                `json:"y"`
	InBounds bool               `json:"in_bounds"`
	Color    *pixel.ColorResult `json:"color"`
}

// EncodeResult carries a grid's flat RGBA buffer.
type EncodeResult struct {
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	Length       int    `json:"length"`
	BufferBase64 string `json:"buffer_base64"`
}

// ReleaseResult reports whether a grid_release call removed anything.
type ReleaseResult struct {
	Released bool `json:"released"`
}

func (s *Server) gridResult(id string, g *pixel.Grid) *GridResult {
	return &GridResult{ID: id, Width: g.Width(), Height: g.Height()}
}

// === Grid Construction Handlers ===

type gridFromBufferArgs struct {
	BufferBase64 string `json:"buffer_base64"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
}

func (s *Server) handleGridFromBuffer(args json.RawMessage) (interface{}, error) {
	var a gridFromBufferArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	buf, err := base64.StdEncoding.DecodeString(a.BufferBase64)
	if err != nil {
		return nil, fmt.Errorf("invalid buffer encoding: %w", err)
	}
	g, err := pixel.Decode(buf, a.Width, a.Height)
	if err != nil {
		return nil, err
	}
	return s.gridResult(s.register(g), g), nil
}

type gridFromImageArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleGridFromImage(args json.RawMessage) (interface{}, error) {
	var a gridFromImageArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	g, err := pixel.FromImage(img, s.provider)
	if err != nil {
		return nil, err
	}
	return s.gridResult(s.register(g), g), nil
}

// === Cell Access Handlers ===

type gridPixelArgs struct {
	ID string `json:"id"`
	X  int    `json:"x"`
	Y  int    `json:"y"`
}

func (s *Server) handleGridGetPixel(args json.RawMessage) (interface{}, error) {
	var a gridPixelArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	g, err := s.grid(a.ID)
	if err != nil {
		return nil, err
	}

	result := &PixelResult{X: a.X, Y: a.Y}
	if c := g.At(a.X, a.Y); c != nil {
		result.InBounds = true
		described := pixel.Describe(*c)
		result.Color = &described
	}
	return result, nil
}

type gridSetPixelArgs struct {
	ID    string `json:"id"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Color string `json:"color"`
}

func (s *Server) handleGridSetPixel(args json.RawMessage) (interface{}, error) {
	var a gridSetPixelArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	g, err := s.grid(a.ID)
	if err != nil {
		return nil, err
	}
	// Out-of-bounds writes are dropped, matching the grid contract.
	g.Set(a.X, a.Y, pixel.FromHex(a.Color))
	return s.gridResult(a.ID, g), nil
}

// === Grid-wide Operation Handlers ===

type gridFillArgs struct {
	ID    string `json:"id"`
	Color string `json:"color"`
}

func (s *Server) handleGridFill(args json.RawMessage) (interface{}, error) {
	var a gridFillArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	g, err := s.grid(a.ID)
	if err != nil {
		return nil, err
	}
	g.Fill(pixel.FromHex(a.Color))
	return s.gridResult(a.ID, g), nil
}

type gridIDArgs struct {
	ID string `json:"id"`
}

func (s *Server) handleGridClear(args json.RawMessage) (interface{}, error) {
	var a gridIDArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	g, err := s.grid(a.ID)
	if err != nil {
		return nil, err
	}
	g.Clear()
	return s.gridResult(a.ID, g), nil
}

func (s *Server) handleGridInvert(args json.RawMessage) (interface{}, error) {
	var a gridIDArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	g, err := s.grid(a.ID)
	if err != nil {
		return nil, err
	}
	g.Invert()
	return s.gridResult(a.ID, g), nil
}

func (s *Server) handleGridGrayscale(args json.RawMessage) (interface{}, error) {
	var a gridIDArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	g, err := s.grid(a.ID)
	if err != nil {
		return nil, err
	}
	g.Grayscale()
	return s.gridResult(a.ID, g), nil
}

type gridBrightnessArgs struct {
	ID     string  `json:"id"`
	Change float64 `json:"change"`
}

func (s *Server) handleGridBrightness(args json.RawMessage) (interface{}, error) {
	var a gridBrightnessArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	g, err := s.grid(a.ID)
	if err != nil {
		return nil, err
	}
	g.Brightness(a.Change)
	return s.gridResult(a.ID, g), nil
}

// === Output Handlers ===

func (s *Server) handleGridEncode(args json.RawMessage) (interface{}, error) {
	var a gridIDArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	g, err := s.grid(a.ID)
	if err != nil {
		return nil, err
	}
	buf := g.Encode()
	return &EncodeResult{
		Width:        g.Width(),
		Height:       g.Height(),
		Length:       len(buf),
		BufferBase64: base64.StdEncoding.EncodeToString(buf),
	}, nil
}

func (s *Server) handleGridRender(args json.RawMessage) (interface{}, error) {
	var a gridIDArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	g, err := s.grid(a.ID)
	if err != nil {
		return nil, err
	}
	return pixel.RenderPNG(g)
}

// === Lifecycle Handlers ===

func (s *Server) handleGridRelease(args json.RawMessage) (interface{}, error) {
	var a gridIDArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return &ReleaseResult{Released: s.release(a.ID)}, nil
}

// === Color Conversion Handlers ===

type colorFromHexArgs struct {
	Hex string `json:"hex"`
}

func (s *Server) handleColorFromHex(args json.RawMessage) (interface{}, error) {
	var a colorFromHexArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	// Lenient by contract: unparseable input reports opaque black.
	return pixel.Describe(pixel.FromHex(a.Hex)), nil
}

type colorFromHSVArgs struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	V float64 `json:"v"`
}

func (s *Server) handleColorFromHSV(args json.RawMessage) (interface{}, error) {
	var a colorFromHSVArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return pixel.Describe(pixel.FromHSV(a.H, a.S, a.V)), nil
}

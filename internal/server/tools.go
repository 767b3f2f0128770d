package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// gridIDProperty is the schema fragment shared by every tool that
// operates on a registered grid.
func gridIDProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Grid id returned by grid_from_buffer or grid_from_image",
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Grid Construction
		{
			Name:        "grid_from_buffer",
			Description: "Decode a flat interleaved RGBA byte buffer (base64) into a new pixel grid and return its id. The buffer must be exactly width*height*4 bytes, row-major, R,G,B,A per pixel.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"buffer_base64": map[string]interface{}{
						"type":        "string",
						"description": "Base64-encoded RGBA buffer",
					},
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Grid width in pixels (positive)",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Grid height in pixels (positive)",
					},
				},
				"required": []string{"buffer_base64", "width", "height"},
			},
		},
		{
			Name:        "grid_from_image",
			Description: "Rasterize an image file (PNG, JPEG or GIF) onto an off-screen surface and decode the result into a new pixel grid.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},

		// Cell Access
		{
			Name:        "grid_get_pixel",
			Description: "Read the color at a coordinate. Out-of-bounds coordinates return a null color rather than an error.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"id": gridIDProperty(),
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
				},
				"required": []string{"id", "x", "y"},
			},
		},
		{
			Name:        "grid_set_pixel",
			Description: "Write a color at a coordinate. Out-of-bounds writes are silently ignored.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"id": gridIDProperty(),
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
					"color": map[string]interface{}{
						"type":        "string",
						"description": "Hex color \"#RRGGBB\" or \"#RRGGBBAA\". Unparseable values fall back to opaque black.",
					},
				},
				"required": []string{"id", "x", "y", "color"},
			},
		},

		// Grid-wide Operations
		{
			Name:        "grid_fill",
			Description: "Overwrite every cell with the given color. Each cell gets an independent copy.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"id": gridIDProperty(),
					"color": map[string]interface{}{
						"type":        "string",
						"description": "Hex color \"#RRGGBB\" or \"#RRGGBBAA\". Unparseable values fall back to opaque black.",
					},
				},
				"required": []string{"id", "color"},
			},
		},
		{
			Name:        "grid_clear",
			Description: "Reset every cell to fully transparent black (0,0,0,0).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"id": gridIDProperty(),
				},
				"required": []string{"id"},
			},
		},
		{
			Name:        "grid_invert",
			Description: "Replace each cell's R, G and B with their 255-complement, leaving alpha unchanged.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"id": gridIDProperty(),
				},
				"required": []string{"id"},
			},
		},
		{
			Name:        "grid_grayscale",
			Description: "Replace each cell's R, G and B with its luminance, leaving alpha unchanged.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"id": gridIDProperty(),
				},
				"required": []string{"id"},
			},
		},
		{
			Name:        "grid_brightness",
			Description: "Scale each cell's R, G and B by 1+change (-1 = black, 0 = no-op, 1 = double), leaving alpha unchanged.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"id": gridIDProperty(),
					"change": map[string]interface{}{
						"type":        "number",
						"description": "Brightness change factor, typically in [-1, 1]. Default 0",
						"default":     0,
					},
				},
				"required": []string{"id"},
			},
		},

		// Output
		{
			Name:        "grid_encode",
			Description: "Encode the grid back into a flat interleaved RGBA byte buffer (base64), the exact inverse of grid_from_buffer.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"id": gridIDProperty(),
				},
				"required": []string{"id"},
			},
		},
		{
			Name:        "grid_render",
			Description: "Render the grid as a base64-encoded PNG for visual inspection.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"id": gridIDProperty(),
				},
				"required": []string{"id"},
			},
		},

		// Lifecycle
		{
			Name:        "grid_release",
			Description: "Remove a grid from the registry, freeing its memory.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"id": gridIDProperty(),
				},
				"required": []string{"id"},
			},
		},

		// Color Conversions
		{
			Name:        "color_from_hex",
			Description: "Parse a hex color string and report it as hex, RGBA channels and HSV. Unparseable input yields opaque black (lenient parsing).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"hex": map[string]interface{}{
						"type":        "string",
						"description": "Hex color, optional leading '#', 6 or 8 digits",
					},
				},
				"required": []string{"hex"},
			},
		},
		{
			Name:        "color_from_hsv",
			Description: "Convert an HSV triple (hue in degrees, saturation 0-1, value 0-255) to a color reported as hex, RGBA channels and HSV.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"h": map[string]interface{}{
						"type":        "number",
						"description": "Hue in degrees [0,360); 360 wraps to 0",
					},
					"s": map[string]interface{}{
						"type":        "number",
						"description": "Saturation in [0,1]",
					},
					"v": map[string]interface{}{
						"type":        "number",
						"description": "Value on the 0-255 channel scale",
					},
				},
				"required": []string{"h", "s", "v"},
			},
		},
	}
}

package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	pathProperty := map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}

	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format and whether it carries an alpha channel.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
				},
				"required": []string{"path"},
			},
		},

		// Color Operations
		{
			Name:        "image_sample_color",
			Description: "Get the RGB color of one pixel as hex, RGB and HSL. Alpha is ignored.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, 0 = leftmost column)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, 0 = top row)",
					},
					"expected": map[string]interface{}{
						"type":        "string",
						"description": "Optional hex color (#RRGGBB or #RGB). When set, the result includes whether the pixel matches it exactly.",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},

		// Match Scan
		{
			Name: "image_find_matches",
			Description: "Find pixels that have the exact same color as their horizontal or vertical neighbor " +
				"and paint every such pixel white. Returns the number of marked pixels and either saves " +
				"the result to output_path or returns it as base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"output_path": map[string]interface{}{
						"type":        "string",
						"description": "Optional path to save the result. The extension selects the format. If omitted, the result is returned inline as PNG.",
					},
					"parallel": map[string]interface{}{
						"type":        "boolean",
						"description": "Scan bands of rows concurrently. The result is identical. Default false",
						"default":     false,
					},
				},
				"required": []string{"path"},
			},
		},
	}
}

func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return s.resultResponse(req.ID, map[string]interface{}{
		"tools": GetToolDefinitions(),
	})
}

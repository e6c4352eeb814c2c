package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func emptySchema() map[string]interface{} {
	return map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{},
	}
}

func transformSchema(withSecondImage bool) map[string]interface{} {
	props := map[string]interface{}{
		"transform": map[string]interface{}{
			"type":        "string",
			"description": "Transform id from transform_list (e.g. \"add\", \"butterworth_lowpass\", \"watershed\")",
		},
		"params": map[string]interface{}{
			"type":                 "object",
			"description":          "Numeric parameters by name. Omitted parameters take their defaults",
			"additionalProperties": map[string]interface{}{"type": "number"},
		},
		"seed": map[string]interface{}{
			"type":        "integer",
			"description": "Seed for noise transforms. 0 uses the configured seed",
			"default":     0,
		},
	}
	if withSecondImage {
		props["second_path"] = map[string]interface{}{
			"type":        "string",
			"description": "Absolute path to the second operand of and/or/xor; it is resampled to the loaded image size",
		}
	}
	return map[string]interface{}{
		"type":       "object",
		"properties": props,
		"required":   []string{"transform"},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Image I/O
		{
			Name:        "image_load",
			Description: "Load an image file into the edit session. Replaces the current image and discards any pending preview.",
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
		{
			Name:        "image_save",
			Description: "Write the processed image. The format follows the file extension (png, jpg, gif, tif, bmp).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Output path. Defaults to the path the image was loaded from",
					},
				},
			},
		},
		{
			Name:        "image_view",
			Description: "Return one of the session images as base64-encoded PNG, scaled by the view zoom.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"slot": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"original", "processed", "preview"},
						"description": "Which image to return",
						"default":     "processed",
					},
					"zoom": map[string]interface{}{
						"type":        "number",
						"description": "Set the view zoom (0.1 to 8) before rendering. Omit to keep the current zoom",
					},
				},
			},
		},
		{
			Name:        "image_inspect",
			Description: "Report per-channel statistics and histograms of a session image, and sample pixel values at the given points.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"slot": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"original", "processed", "preview"},
						"description": "Which image to inspect",
						"default":     "processed",
					},
					"points": map[string]interface{}{
						"type":        "array",
						"description": "Pixels to sample (at most 256)",
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"x":     map[string]interface{}{"type": "integer"},
								"y":     map[string]interface{}{"type": "integer"},
								"label": map[string]interface{}{"type": "string"},
							},
							"required": []string{"x", "y"},
						},
					},
				},
			},
		},
		{
			Name:        "image_reset",
			Description: "Discard all processing and any preview; the processed image becomes a copy of the original.",
			InputSchema: emptySchema(),
		},

		// Session
		{
			Name:        "session_state",
			Description: "Report the session state (empty, loaded or previewing), image size, zoom and pending preview.",
			InputSchema: emptySchema(),
		},

		// Transforms
		{
			Name:        "transform_list",
			Description: "List the available transforms with their parameters, ranges and defaults.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"category": map[string]interface{}{
						"type": "string",
						"enum": []string{
							"arithmetic", "boolean", "geometric", "color", "enhancement", "threshold",
							"frequency", "spatial", "edge", "segmentation", "noise",
						},
						"description": "Only list transforms of this category",
					},
				},
			},
		},
		{
			Name:        "transform_preview",
			Description: "Compute a preview of a preview-capable transform on the original image. The processed image is unchanged until transform_confirm.",
			InputSchema: transformSchema(false),
		},
		{
			Name:        "transform_confirm",
			Description: "Make the current preview the processed image.",
			InputSchema: emptySchema(),
		},
		{
			Name:        "transform_cancel",
			Description: "Discard the current preview. The processed image is left untouched.",
			InputSchema: emptySchema(),
		},
		{
			Name:        "transform_apply",
			Description: "Apply a transform to the original image in one step and store the result as the processed image.",
			InputSchema: transformSchema(true),
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}

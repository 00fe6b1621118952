package server

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ironsheep/rhinozelfant/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_find_matches").
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
// Tool execution errors return a JSON-RPC error response with code -32000
// and are always logged. Successful calls are logged with their duration at
// the debug level.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
	}

	start := time.Now()
	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.logger.Printf("Tool %s failed: %v", params.Name, err)
		return s.errorResponse(req.ID, codeToolFailed, "Tool execution failed", err.Error())
	}
	s.debugf("tool %s completed in %s", params.Name, time.Since(start))

	return s.resultResponse(req.ID, map[string]interface{}{
		"content": []map[string]interface{}{
			{
				"type": "text",
				"text": mustMarshalJSON(result),
			},
		},
	})
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)
	case "image_sample_color":
		return s.handleImageSampleColor(args)
	case "image_find_matches":
		return s.handleImageFindMatches(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response. A nil data is omitted.
func (s *Server) errorResponse(id interface{}, code int, message string, data interface{}) *MCPResponse {
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
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

type imageSampleColorArgs struct {
	Path     string `json:"path"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Expected string `json:"expected"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	grid, err := s.cache.LoadGrid(a.Path)
	if err != nil {
		return nil, err
	}
	if a.Expected != "" {
		return imaging.CompareColor(grid, a.Y, a.X, a.Expected)
	}
	return imaging.SampleColor(grid, a.Y, a.X)
}

type imageFindMatchesArgs struct {
	Path       string `json:"path"`
	OutputPath string `json:"output_path"`
	Parallel   bool   `json:"parallel"`
}

// FindMatchesResult describes the outcome of image_find_matches.
type FindMatchesResult struct {
	Width         int    `json:"width"`
	Height        int    `json:"height"`
	MatchedPixels int    `json:"matched_pixels"`
	TotalPixels   int    `json:"total_pixels"`
	OutputPath    string `json:"output_path,omitempty"`
	ImageBase64   string `json:"image_base64,omitempty"`
	MimeType      string `json:"mime_type,omitempty"`
}

// handleImageFindMatches scans the image at path and either saves the result
// to output_path or returns it inline as base64 PNG. A saved path is evicted
// from the cache so that later calls read the new file.
func (s *Server) handleImageFindMatches(args json.RawMessage) (interface{}, error) {
	var a imageFindMatchesArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	grid, err := s.cache.LoadGrid(a.Path)
	if err != nil {
		return nil, err
	}

	var out *imaging.Grid
	if a.Parallel {
		out = grid.ScanForMatchesParallel()
	} else {
		out = grid.ScanForMatches()
	}

	result := &FindMatchesResult{
		Width:         out.Width(),
		Height:        out.Height(),
		MatchedPixels: grid.MatchCount(),
		TotalPixels:   grid.Len(),
	}

	if a.OutputPath != "" {
		if err := imaging.SaveGrid(out, a.OutputPath); err != nil {
			return nil, err
		}
		s.cache.Evict(a.OutputPath)
		s.debugf("saved %dx%d result to %s", out.Width(), out.Height(), a.OutputPath)
		result.OutputPath = a.OutputPath
		return result, nil
	}

	data, err := imaging.EncodeGridPNG(out)
	if err != nil {
		return nil, err
	}
	result.ImageBase64 = base64.StdEncoding.EncodeToString(data)
	result.MimeType = "image/png"
	return result, nil
}

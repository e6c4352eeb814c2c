package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ironsheep/image-workbench-mcp/internal/catalog"
	"github.com/ironsheep/image-workbench-mcp/internal/inspect"
	"github.com/ironsheep/image-workbench-mcp/internal/raster"
	"github.com/ironsheep/image-workbench-mcp/internal/session"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "transform_preview").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// argumentError marks malformed tool arguments so they map to -32602.
type argumentError struct {
	err error
}

func (e *argumentError) Error() string { return "invalid arguments: " + e.err.Error() }
func (e *argumentError) Unwrap() error { return e.err }

// decodeArgs unmarshals tool arguments. Missing arguments decode as {}.
func decodeArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 || string(args) == "null" {
		return nil
	}
	if err := json.Unmarshal(args, v); err != nil {
		return &argumentError{err: err}
	}
	return nil
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool failures return a JSON-RPC error with code -32000. The message is the
// error text and data.class names the error class: "io", "range", "state"
// or "superseded".
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, CodeInvalidParams, "Invalid params", map[string]string{"detail": err.Error()})
	}

	start := time.Now()
	result, err := s.executeTool(params.Name, params.Arguments)
	entry := s.log.WithFields(logrus.Fields{
		"tool":     params.Name,
		"duration": time.Since(start).String(),
	})
	if err != nil {
		entry.WithError(err).Warn("tool failed")
		var argErr *argumentError
		if errors.As(err, &argErr) {
			return s.errorResponse(req.ID, CodeInvalidParams, err.Error(), nil)
		}
		return s.errorResponse(req.ID, CodeToolFailed, err.Error(), errorData(err))
	}
	entry.Debug("tool completed")

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

// errorClass names the class of a tool error.
func errorClass(err error) string {
	if errors.Is(err, session.ErrSuperseded) {
		return "superseded"
	}
	return raster.Class(err)
}

func errorData(err error) interface{} {
	if class := errorClass(err); class != "" {
		return map[string]string{"class": class}
	}
	return nil
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Image I/O
	case "image_load":
		return s.handleImageLoad(args)
	case "image_save":
		return s.handleImageSave(args)
	case "image_view":
		return s.handleImageView(args)
	case "image_reset":
		return s.handleImageReset(args)
	case "image_inspect":
		return s.handleImageInspect(args)

	// Session
	case "session_state":
		return s.session.Status(), nil

	// Transforms
	case "transform_list":
		return s.handleTransformList(args)
	case "transform_preview":
		return s.handleTransformPreview(args)
	case "transform_confirm":
		return s.handleTransformConfirm(args)
	case "transform_cancel":
		return s.handleTransformCancel(args)
	case "transform_apply":
		return s.handleTransformApply(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
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
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Image I/O Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

// LoadResult describes a freshly loaded image.
type LoadResult struct {
	*raster.Info
	State string `json:"state"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, &argumentError{err: errors.New("path is required")}
	}
	if err := s.session.Load(a.Path); err != nil {
		return nil, err
	}
	im, err := s.session.Image(session.SlotOriginal)
	if err != nil {
		return nil, err
	}
	info, err := raster.Describe(im, a.Path)
	if err != nil {
		return nil, err
	}
	return &LoadResult{Info: info, State: s.session.State().String()}, nil
}

type imageSaveArgs struct {
	Path string `json:"path"`
}

// SaveResult reports where the processed image was written.
type SaveResult struct {
	Path   string `json:"path"`
	Format string `json:"format"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

func (s *Server) handleImageSave(args json.RawMessage) (interface{}, error) {
	var a imageSaveArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	path, err := s.session.Save(a.Path)
	if err != nil {
		return nil, err
	}
	st := s.session.Status()
	return &SaveResult{Path: path, Format: raster.FormatName(path), Width: st.Width, Height: st.Height}, nil
}

type imageViewArgs struct {
	Slot string  `json:"slot"`
	Zoom float64 `json:"zoom"`
}

func (s *Server) handleImageView(args json.RawMessage) (interface{}, error) {
	var a imageViewArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	slot, err := session.ParseSlot(a.Slot)
	if err != nil {
		return nil, err
	}
	if a.Zoom != 0 {
		if err := s.session.SetZoom(a.Zoom); err != nil {
			return nil, err
		}
	}
	im, err := s.session.View(slot)
	if err != nil {
		return nil, err
	}
	return newImageResult(im, slot, s.session.Zoom())
}

func (s *Server) handleImageReset(_ json.RawMessage) (interface{}, error) {
	if err := s.session.Reset(); err != nil {
		return nil, err
	}
	return s.session.Status(), nil
}

type imageInspectArgs struct {
	Slot   string          `json:"slot"`
	Points []inspect.Point `json:"points"`
}

// InspectResult reports statistics and pixel samples of a session image.
type InspectResult struct {
	Slot     string                 `json:"slot"`
	Width    int                    `json:"width"`
	Height   int                    `json:"height"`
	Channels int                    `json:"channels"`
	Stats    []inspect.ChannelStats `json:"stats"`
	Samples  []inspect.Sample       `json:"samples,omitempty"`
}

func (s *Server) handleImageInspect(args json.RawMessage) (interface{}, error) {
	var a imageInspectArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	slot, err := session.ParseSlot(a.Slot)
	if err != nil {
		return nil, err
	}
	im, err := s.session.Image(slot)
	if err != nil {
		return nil, err
	}
	samples, err := inspect.SamplePoints(im, a.Points)
	if err != nil {
		return nil, err
	}
	return &InspectResult{
		Slot:     string(slot),
		Width:    im.Width,
		Height:   im.Height,
		Channels: im.Channels,
		Stats:    inspect.Stats(im),
		Samples:  samples,
	}, nil
}

// === Transform Handlers ===

type transformListArgs struct {
	Category string `json:"category"`
}

func (s *Server) handleTransformList(args json.RawMessage) (interface{}, error) {
	var a transformListArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	all := s.catalog.List()
	if a.Category == "" {
		return map[string]interface{}{"transforms": all}, nil
	}
	var matched []catalog.Descriptor
	for _, d := range all {
		if string(d.Category) == a.Category {
			matched = append(matched, d)
		}
	}
	if len(matched) == 0 {
		return nil, raster.RangeErrorf("unknown category %q", a.Category)
	}
	return map[string]interface{}{"transforms": matched}, nil
}

type transformArgs struct {
	Transform  string             `json:"transform"`
	Params     map[string]float64 `json:"params"`
	SecondPath string             `json:"second_path"`
	Seed       uint64             `json:"seed"`
}

func (a *transformArgs) spec() (catalog.Spec, error) {
	if a.Transform == "" {
		return catalog.Spec{}, &argumentError{err: errors.New("transform is required")}
	}
	spec := catalog.Spec{ID: a.Transform, Params: a.Params, Seed: a.Seed}
	if a.SecondPath != "" {
		second, err := raster.Load(a.SecondPath)
		if err != nil {
			return catalog.Spec{}, err
		}
		spec.Secondary = second
	}
	return spec, nil
}

func (s *Server) handleTransformPreview(args json.RawMessage) (interface{}, error) {
	var a transformArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	spec, err := a.spec()
	if err != nil {
		return nil, err
	}
	preview, err := s.session.ParameterChange(spec)
	if err != nil {
		return nil, err
	}
	return newImageResult(preview, session.SlotPreview, 1)
}

func (s *Server) handleTransformConfirm(_ json.RawMessage) (interface{}, error) {
	if err := s.session.Confirm(); err != nil {
		return nil, err
	}
	return s.session.Status(), nil
}

func (s *Server) handleTransformCancel(_ json.RawMessage) (interface{}, error) {
	if err := s.session.Cancel(); err != nil {
		return nil, err
	}
	return s.session.Status(), nil
}

func (s *Server) handleTransformApply(args json.RawMessage) (interface{}, error) {
	var a transformArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	spec, err := a.spec()
	if err != nil {
		return nil, err
	}
	processed, err := s.session.Apply(spec)
	if err != nil {
		return nil, err
	}
	return newImageResult(processed, session.SlotProcessed, 1)
}

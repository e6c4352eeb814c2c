package server

import (
	"testing"
)

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()

	expected := []string{
		"image_load", "image_save", "image_view", "image_inspect", "image_reset",
		"session_state",
		"transform_list", "transform_preview", "transform_confirm", "transform_cancel", "transform_apply",
	}
	if len(tools) != len(expected) {
		t.Errorf("tool count: got %d, want %d", len(tools), len(expected))
	}

	names := make(map[string]bool)
	for _, tool := range tools {
		if names[tool.Name] {
			t.Errorf("duplicate tool %q", tool.Name)
		}
		names[tool.Name] = true
	}
	for _, name := range expected {
		if !names[name] {
			t.Errorf("missing tool %q", name)
		}
	}
}

func TestToolDefinitions_Structure(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		t.Run(tool.Name, func(t *testing.T) {
			if tool.Description == "" {
				t.Error("Description should not be empty")
			}
			if tool.InputSchema["type"] != "object" {
				t.Errorf("InputSchema.type: got %v, want object", tool.InputSchema["type"])
			}
			if _, ok := tool.InputSchema["properties"].(map[string]interface{}); !ok {
				t.Error("InputSchema.properties should be a map")
			}
		})
	}
}

func TestToolDefinitions_Required(t *testing.T) {
	want := map[string][]string{
		"image_load":        {"path"},
		"transform_preview": {"transform"},
		"transform_apply":   {"transform"},
	}
	for _, tool := range GetToolDefinitions() {
		required, _ := tool.InputSchema["required"].([]string)
		expected := want[tool.Name]
		if len(required) != len(expected) {
			t.Errorf("%s: required got %v, want %v", tool.Name, required, expected)
			continue
		}
		for i := range expected {
			if required[i] != expected[i] {
				t.Errorf("%s: required got %v, want %v", tool.Name, required, expected)
			}
		}
	}
}

func TestToolDefinitions_SecondPathOnlyOnApply(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		props := tool.InputSchema["properties"].(map[string]interface{})
		_, has := props["second_path"]
		if has != (tool.Name == "transform_apply") {
			t.Errorf("%s: second_path present = %v", tool.Name, has)
		}
	}
}

func TestHandleToolsList(t *testing.T) {
	s := newTestServer(t)
	resp := s.handleToolsList(&MCPRequest{JSONRPC: "2.0", ID: 1})

	if resp == nil || resp.Error != nil {
		t.Fatalf("unexpected response: %+v", resp)
	}
	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatal("Result should be a map")
	}
	tools, ok := result["tools"].([]Tool)
	if !ok {
		t.Fatal("tools should be a slice of Tool")
	}
	if len(tools) != len(GetToolDefinitions()) {
		t.Errorf("tool count: got %d, want %d", len(tools), len(GetToolDefinitions()))
	}
}

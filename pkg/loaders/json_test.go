package loaders

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleScene = `{
	"name": "Two Spheres",
	"description": "A sphere over a ground plane",
	"width": 320,
	"height": 240,
	"fov": 90,
	"elements": [
		{"type": "sphere", "center": [0, 0, -5], "radius": 1, "color": [0.4, 1, 0.4], "albedo": 0.18},
		{"type": "plane", "origin": [0, -2, 0], "normal": [0, -1, 0], "color": [0.5, 0.5, 0.5], "albedo": 0.5}
	],
	"lights": [
		{"direction": [0, -1, -1], "color": [1, 1, 1], "intensity": 20}
	]
}`

func TestParseSceneJSON(t *testing.T) {
	file, err := ParseSceneJSON(strings.NewReader(sampleScene))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if file.Name != "Two Spheres" {
		t.Errorf("Expected name 'Two Spheres', got %q", file.Name)
	}
	if file.Width != 320 || file.Height != 240 || file.FOV != 90 {
		t.Errorf("Unexpected dimensions %dx%d fov %v", file.Width, file.Height, file.FOV)
	}
	if len(file.Elements) != 2 {
		t.Fatalf("Expected 2 elements, got %d", len(file.Elements))
	}
	if file.Elements[0].Type != "sphere" || *file.Elements[0].Center != [3]float64{0, 0, -5} {
		t.Errorf("Unexpected sphere statement %+v", file.Elements[0])
	}
	if file.Elements[1].Type != "plane" || *file.Elements[1].Normal != [3]float64{0, -1, 0} {
		t.Errorf("Unexpected plane statement %+v", file.Elements[1])
	}
	if len(file.Lights) != 1 || file.Lights[0].Intensity != 20 {
		t.Errorf("Unexpected lights %+v", file.Lights)
	}
}

func TestParseSceneJSON_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"malformed", `{"width": `},
		{"unknown field", `{"width": 10, "samples": 4}`},
		{"unknown element", `{"elements": [{"type": "cube", "color": [1,1,1], "albedo": 1}]}`},
		{"sphere without center", `{"elements": [{"type": "sphere", "radius": 1, "color": [1,1,1], "albedo": 1}]}`},
		{"plane without normal", `{"elements": [{"type": "plane", "origin": [0,0,0], "color": [1,1,1], "albedo": 1}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseSceneJSON(strings.NewReader(tt.input)); err == nil {
				t.Errorf("Expected error for %s input", tt.name)
			}
		})
	}
}

func TestLoadSceneJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.json")
	if err := os.WriteFile(path, []byte(sampleScene), 0644); err != nil {
		t.Fatalf("Failed to write scene file: %v", err)
	}

	file, err := LoadSceneJSON(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(file.Elements) != 2 {
		t.Errorf("Expected 2 elements, got %d", len(file.Elements))
	}

	if _, err := LoadSceneJSON(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("Expected error for missing file")
	}
}

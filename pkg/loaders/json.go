package loaders

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// SceneFile is the on-disk JSON description of a scene
type SceneFile struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Width       int                `json:"width"`
	Height      int                `json:"height"`
	FOV         float64            `json:"fov"`
	Elements    []ElementStatement `json:"elements"`
	Lights      []LightStatement   `json:"lights"`
}

// ElementStatement describes one primitive. Which position fields are
// meaningful depends on Type.
type ElementStatement struct {
	Type   string      `json:"type"` // "sphere" or "plane"
	Center *[3]float64 `json:"center,omitempty"`
	Radius float64     `json:"radius,omitempty"`
	Origin *[3]float64 `json:"origin,omitempty"`
	Normal *[3]float64 `json:"normal,omitempty"`
	Color  [3]float64  `json:"color"`
	Albedo float64     `json:"albedo"`
}

// LightStatement describes one directional light
type LightStatement struct {
	Direction [3]float64 `json:"direction"`
	Color     [3]float64 `json:"color"`
	Intensity float64    `json:"intensity"`
}

// ParseSceneJSON decodes a scene description, rejecting unknown fields
func ParseSceneJSON(reader io.Reader) (*SceneFile, error) {
	decoder := json.NewDecoder(reader)
	decoder.DisallowUnknownFields()

	var file SceneFile
	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to decode scene JSON: %w", err)
	}

	for i, el := range file.Elements {
		if err := el.validate(); err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
	}

	return &file, nil
}

// LoadSceneJSON reads and decodes a scene description file
func LoadSceneJSON(filename string) (*SceneFile, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	return ParseSceneJSON(file)
}

func (el ElementStatement) validate() error {
	switch el.Type {
	case "sphere":
		if el.Center == nil {
			return fmt.Errorf("sphere requires a center")
		}
	case "plane":
		if el.Origin == nil || el.Normal == nil {
			return fmt.Errorf("plane requires an origin and a normal")
		}
	default:
		return fmt.Errorf("unknown element type %q", el.Type)
	}
	return nil
}

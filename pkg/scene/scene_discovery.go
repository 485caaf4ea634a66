package scene

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/df07/go-direct-raytracer/pkg/loaders"
)

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier, accepted by Create
	Name        string `json:"name"`        // Display name
	Description string `json:"description"` // Optional description
	Type        string `json:"type"`        // "builtin" or "json"
	FilePath    string `json:"filePath"`    // Path to JSON file (json type only)
}

// builtins maps scene IDs to their constructors
var builtins = map[string]struct {
	info   SceneInfo
	create func() *Scene
}{
	"default": {
		info:   SceneInfo{ID: "default", Name: "Default Scene", Description: "Three spheres on a ground plane", Type: "builtin"},
		create: NewDefaultScene,
	},
	"single-sphere": {
		info:   SceneInfo{ID: "single-sphere", Name: "Single Sphere", Description: "One sphere straight ahead of the camera", Type: "builtin"},
		create: func() *Scene { return NewSingleSphereScene(400, 400) },
	},
	"spheregrid": {
		info:   SceneInfo{ID: "spheregrid", Name: "Sphere Grid", Description: "Grid of spheres coloured across hue and chroma", Type: "builtin"},
		create: func() *Scene { return NewSphereGridScene(10) },
	},
	"sphere-row": {
		info:   SceneInfo{ID: "sphere-row", Name: "Sphere Row", Description: "Receding row of coloured spheres", Type: "builtin"},
		create: NewSphereRowScene,
	},
}

// ErrUnknownScene is returned when an id matches no built-in or discovered scene
var ErrUnknownScene = errors.New("unknown scene")

// ScenesDir is where JSON scene files are discovered
var ScenesDir = "scenes"

// Create returns the scene identified by id: a built-in scene name, a JSON
// scene name from ScenesDir, or a path to a .json file
func Create(id string) (*Scene, error) {
	if id == "" {
		return nil, fmt.Errorf("scene name must not be empty")
	}

	if b, ok := builtins[id]; ok {
		return b.create(), nil
	}

	if strings.HasSuffix(id, ".json") {
		return NewJSONScene(id)
	}

	return createListed(id)
}

// CreateListed is Create restricted to the scenes ListAllScenes reports:
// built-in names and bare JSON scene names inside ScenesDir. File paths are
// rejected, so it is safe to call with untrusted input.
func CreateListed(id string) (*Scene, error) {
	if id == "" {
		return nil, fmt.Errorf("scene name must not be empty")
	}

	if b, ok := builtins[id]; ok {
		return b.create(), nil
	}

	return createListed(id)
}

func createListed(id string) (*Scene, error) {
	if !isSceneName(id) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, id)
	}

	path := filepath.Join(ScenesDir, id+".json")
	if _, err := os.Stat(path); err == nil {
		return NewJSONScene(path)
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownScene, id)
}

// isSceneName reports whether id names a file directly inside ScenesDir
func isSceneName(id string) bool {
	return id != "." && id != ".." && !strings.ContainsAny(id, `/\`) && filepath.Base(id) == id
}

// ListAllScenes returns built-in scenes followed by JSON scenes, each sorted by name
func ListAllScenes() ([]SceneInfo, error) {
	scenes := make([]SceneInfo, 0, len(builtins))
	for _, b := range builtins {
		scenes = append(scenes, b.info)
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})

	jsonScenes, err := ListJSONScenes()
	if err != nil {
		return nil, err
	}
	return append(scenes, jsonScenes...), nil
}

// ListJSONScenes scans ScenesDir and returns discovered JSON scenes
func ListJSONScenes() ([]SceneInfo, error) {
	if _, err := os.Stat(ScenesDir); err != nil {
		// No scenes directory found, return empty list
		return []SceneInfo{}, nil
	}

	files, err := filepath.Glob(filepath.Join(ScenesDir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	scenes := make([]SceneInfo, 0, len(files))
	for _, path := range files {
		id := strings.TrimSuffix(filepath.Base(path), ".json")
		info := SceneInfo{
			ID:       id,
			Name:     id,
			Type:     "json",
			FilePath: path,
		}

		file, err := loaders.LoadSceneJSON(path)
		if err != nil {
			// Log warning but continue processing other files
			fmt.Printf("Warning: failed to parse metadata for %s: %v\n", path, err)
			continue
		}
		if file.Name != "" {
			info.Name = file.Name
		}
		info.Description = file.Description
		scenes = append(scenes, info)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})
	return scenes, nil
}

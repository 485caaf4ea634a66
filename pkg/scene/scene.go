package scene

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-direct-raytracer/pkg/geometry"
	"github.com/df07/go-direct-raytracer/pkg/lights"
)

// ErrInvalidScene is wrapped by every validation failure
var ErrInvalidScene = errors.New("invalid scene")

// Scene contains all the elements needed for rendering
type Scene struct {
	Width    int                       // Image width in pixels
	Height   int                       // Image height in pixels
	FOV      float64                   // Field of view in degrees
	Elements []geometry.Element        // Objects in the scene
	Lights   []lights.DirectionalLight // Lights in the scene
}

// Entry is a single-object scene description. A list of entries sharing the
// same dimensions describes a multi-object scene.
type Entry struct {
	Width   int
	Height  int
	FOV     float64
	Element geometry.Element
	Light   lights.DirectionalLight
}

// AddElement appends an element to the scene
func (s *Scene) AddElement(e geometry.Element) {
	s.Elements = append(s.Elements, e)
}

// AddLight appends a light to the scene
func (s *Scene) AddLight(l lights.DirectionalLight) {
	s.Lights = append(s.Lights, l)
}

// Validate checks the scene for degenerate input the renderer cannot handle
func (s *Scene) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: dimensions must be positive, got %dx%d", ErrInvalidScene, s.Width, s.Height)
	}
	if !(s.FOV > 0 && s.FOV < 180) {
		return fmt.Errorf("%w: field of view must be in (0, 180) degrees, got %v", ErrInvalidScene, s.FOV)
	}

	for i, e := range s.Elements {
		switch el := e.(type) {
		case *geometry.Sphere:
			if el == nil {
				return fmt.Errorf("%w: element %d is a nil sphere", ErrInvalidScene, i)
			}
			if !(el.Radius > 0) || math.IsInf(el.Radius, 0) {
				return fmt.Errorf("%w: element %d: sphere radius must be positive and finite, got %v", ErrInvalidScene, i, el.Radius)
			}
		case *geometry.Plane:
			if el == nil {
				return fmt.Errorf("%w: element %d is a nil plane", ErrInvalidScene, i)
			}
			if el.Normal.LengthSquared() == 0 || !el.Normal.IsFinite() {
				return fmt.Errorf("%w: element %d: plane normal must be non-zero", ErrInvalidScene, i)
			}
		case nil:
			return fmt.Errorf("%w: element %d is nil", ErrInvalidScene, i)
		}
	}

	for i, l := range s.Lights {
		if l.Direction.LengthSquared() == 0 || !l.Direction.IsFinite() {
			return fmt.Errorf("%w: light %d: direction must be non-zero", ErrInvalidScene, i)
		}
	}

	return nil
}

// Composite merges a list of single-object entries into one scene.
// Dimensions and field of view come from the first entry; every other entry
// must agree with it.
func Composite(entries []Entry) (*Scene, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: no scene entries", ErrInvalidScene)
	}

	first := entries[0]
	s := &Scene{
		Width:  first.Width,
		Height: first.Height,
		FOV:    first.FOV,
	}

	for i, entry := range entries {
		if entry.Width != first.Width || entry.Height != first.Height || entry.FOV != first.FOV {
			return nil, fmt.Errorf("%w: entry %d is %dx%d fov %v, expected %dx%d fov %v",
				ErrInvalidScene, i, entry.Width, entry.Height, entry.FOV, first.Width, first.Height, first.FOV)
		}
		s.AddElement(entry.Element)
		if !containsLight(s.Lights, entry.Light) {
			s.AddLight(entry.Light)
		}
	}

	return s, nil
}

func containsLight(list []lights.DirectionalLight, l lights.DirectionalLight) bool {
	for _, existing := range list {
		if existing == l {
			return true
		}
	}
	return false
}

package scene

import (
	"fmt"

	"github.com/df07/go-direct-raytracer/pkg/core"
	"github.com/df07/go-direct-raytracer/pkg/geometry"
	"github.com/df07/go-direct-raytracer/pkg/lights"
	"github.com/df07/go-direct-raytracer/pkg/loaders"
	"github.com/df07/go-direct-raytracer/pkg/material"
)

// NewJSONScene creates a scene from a JSON scene description file
func NewJSONScene(filepath string) (*Scene, error) {
	file, err := loaders.LoadSceneJSON(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to load scene file: %w", err)
	}
	return FromSceneFile(file)
}

// FromSceneFile converts a decoded scene description and validates the result
func FromSceneFile(file *loaders.SceneFile) (*Scene, error) {
	s := &Scene{
		Width:  file.Width,
		Height: file.Height,
		FOV:    file.FOV,
	}

	for _, stmt := range file.Elements {
		mat := material.NewLambertian(toColor(stmt.Color), stmt.Albedo)
		switch stmt.Type {
		case "sphere":
			s.AddElement(geometry.NewSphere(toPoint(*stmt.Center), stmt.Radius, mat))
		case "plane":
			s.AddElement(geometry.NewPlane(toPoint(*stmt.Origin), toVec3(*stmt.Normal), mat))
		default:
			return nil, fmt.Errorf("%w: unknown element type %q", ErrInvalidScene, stmt.Type)
		}
	}

	for _, stmt := range file.Lights {
		s.AddLight(lights.NewDirectionalLight(toVec3(stmt.Direction), toColor(stmt.Color), stmt.Intensity))
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func toPoint(v [3]float64) core.Point {
	return core.NewPoint(v[0], v[1], v[2])
}

func toVec3(v [3]float64) core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

func toColor(v [3]float64) core.Color {
	return core.NewColor(v[0], v[1], v[2])
}

package renderer

import (
	"math"

	"github.com/df07/go-direct-raytracer/pkg/core"
	"github.com/df07/go-direct-raytracer/pkg/scene"
)

// Camera generates primary rays from the world origin looking down -Z
type Camera struct {
	origin        core.Point
	width         int
	height        int
	aspectRatio   float64
	fovAdjustment float64
}

// NewCamera creates a camera for a width x height image with the given field of view in degrees
func NewCamera(width, height int, fovDegrees float64) *Camera {
	fovRadians := fovDegrees * math.Pi / 180.0
	return &Camera{
		origin:        core.NewPoint(0, 0, 0),
		width:         width,
		height:        height,
		aspectRatio:   float64(width) / float64(height),
		fovAdjustment: math.Tan(fovRadians / 2.0),
	}
}

// PrimaryRay returns the ray through the center of pixel (x, y). Row 0 is the top of the image.
func (c *Camera) PrimaryRay(x, y int) core.Ray {
	// Map pixel centers to [-1, 1] screen space on a sensor one unit in front of the camera
	sensorX := ((float64(x)+0.5)/float64(c.width)*2.0 - 1.0) * c.aspectRatio * c.fovAdjustment
	sensorY := (1.0 - (float64(y)+0.5)/float64(c.height)*2.0) * c.fovAdjustment

	return core.NewRay(c.origin, core.NewVec3(sensorX, sensorY, -1.0))
}

// CreatePrimaryRay returns the primary ray through pixel (x, y) of the scene's image
func CreatePrimaryRay(x, y int, s *scene.Scene) core.Ray {
	return NewCamera(s.Width, s.Height, s.FOV).PrimaryRay(x, y)
}

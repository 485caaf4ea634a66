package integrator

import (
	"github.com/df07/go-direct-raytracer/pkg/core"
	"github.com/df07/go-direct-raytracer/pkg/lights"
	"github.com/df07/go-direct-raytracer/pkg/material"
)

// Integrator computes the light leaving a surface point toward the camera
type Integrator interface {
	Shade(normal core.Vec3, mat material.Lambertian, lightList []lights.DirectionalLight, hitPoint core.Point) core.Color
}

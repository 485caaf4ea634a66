package renderer

import (
	"github.com/df07/go-direct-raytracer/pkg/core"
	"github.com/df07/go-direct-raytracer/pkg/geometry"
)

// Hit describes the nearest surface a ray reached
type Hit struct {
	Distance float64          // Distance along the ray
	Point    core.Point       // World-space hit point
	Element  geometry.Element // Element that was hit
}

// Resolver finds the nearest element along a ray. LinearResolver is the only
// implementation; an acceleration structure can replace it without touching
// shading or compositing.
type Resolver interface {
	Nearest(ray core.Ray) (Hit, bool)
}

// LinearResolver tests every element against every ray
type LinearResolver struct {
	elements []geometry.Element
}

// NewLinearResolver creates a resolver over elements, preserving their order
func NewLinearResolver(elements []geometry.Element) *LinearResolver {
	return &LinearResolver{elements: elements}
}

// Nearest returns the closest non-negative hit. Equal distances keep the
// element that comes first.
func (lr *LinearResolver) Nearest(ray core.Ray) (Hit, bool) {
	var closest geometry.Element
	closestSoFar := 0.0

	for _, element := range lr.elements {
		dist, ok := element.Intersect(ray)
		if !ok || dist < 0 {
			continue
		}
		if closest == nil || dist < closestSoFar {
			closest = element
			closestSoFar = dist
		}
	}

	if closest == nil {
		return Hit{}, false
	}
	return Hit{
		Distance: closestSoFar,
		Point:    ray.At(closestSoFar),
		Element:  closest,
	}, true
}

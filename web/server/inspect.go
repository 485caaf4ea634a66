package server

import (
	"net/http"
	"strconv"

	"github.com/df07/go-direct-raytracer/pkg/core"
	"github.com/df07/go-direct-raytracer/pkg/geometry"
	"github.com/df07/go-direct-raytracer/pkg/renderer"
	"github.com/df07/go-direct-raytracer/pkg/scene"
)

// InspectResponse describes what the primary ray through a pixel hit
type InspectResponse struct {
	Hit        bool                   `json:"hit"`
	Distance   float64                `json:"distance,omitempty"`
	Point      *[3]float64            `json:"point,omitempty"`
	Normal     *[3]float64            `json:"normal,omitempty"`
	Kind       string                 `json:"kind,omitempty"`
	Properties map[string]interface{} `json:"properties,omitempty"`
	Color      [4]uint8               `json:"color"` // Displayed RGBA
}

// inspectPixel casts the primary ray through a pixel and reports the nearest element
func inspectPixel(sceneObj *scene.Scene, pixelX, pixelY int) (InspectResponse, error) {
	raytracer, err := renderer.NewRaytracer(sceneObj, renderer.RenderConfig{NumWorkers: 1}, nil)
	if err != nil {
		return InspectResponse{}, err
	}

	c := raytracer.PixelColor(pixelX, pixelY)
	result := InspectResponse{Color: [4]uint8{c.R, c.G, c.B, c.A}}

	ray := renderer.CreatePrimaryRay(pixelX, pixelY, sceneObj)
	hit, isHit := renderer.NewLinearResolver(sceneObj.Elements).Nearest(ray)
	if !isHit {
		return result, nil
	}

	point := [3]float64{hit.Point.X, hit.Point.Y, hit.Point.Z}
	normal := toArray(hit.Element.SurfaceNormal(hit.Point))
	result.Hit = true
	result.Distance = hit.Distance
	result.Point = &point
	result.Normal = &normal
	result.Kind, result.Properties = extractGeometryInfo(hit.Element)
	return result, nil
}

// extractGeometryInfo extracts detailed geometry and material information
func extractGeometryInfo(element geometry.Element) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	mat := element.Material()
	properties["color"] = [3]float64{mat.Color.R, mat.Color.G, mat.Color.B}
	properties["albedo"] = mat.Albedo

	switch geom := element.(type) {
	case *geometry.Sphere:
		properties["center"] = [3]float64{geom.Center.X, geom.Center.Y, geom.Center.Z}
		properties["radius"] = geom.Radius
	case *geometry.Plane:
		properties["origin"] = [3]float64{geom.Origin.X, geom.Origin.Y, geom.Origin.Z}
		properties["normal"] = toArray(geom.Normal)
	}

	return geometry.Kind(element), properties
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}

	sceneObj, err := s.createScene(req)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	// Parse pixel coordinates
	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}
	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}

	// Validate pixel coordinates
	if pixelX < 0 || pixelX >= sceneObj.Width || pixelY < 0 || pixelY >= sceneObj.Height {
		writeError(w, http.StatusBadRequest, "Pixel coordinates out of bounds")
		return
	}

	result, err := inspectPixel(sceneObj, pixelX, pixelY)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func toArray(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

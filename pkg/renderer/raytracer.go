package renderer

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/df07/go-direct-raytracer/pkg/core"
	"github.com/df07/go-direct-raytracer/pkg/integrator"
	"github.com/df07/go-direct-raytracer/pkg/scene"
)

// Background is written for pixels whose primary ray hits nothing
var Background = color.RGBA{}

// RenderConfig contains configuration for rendering
type RenderConfig struct {
	TileSize   int // Size of each tile in pixels
	NumWorkers int // Number of parallel workers (0 = use CPU count, 1 = single-threaded)
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		TileSize:   64,
		NumWorkers: 0, // Auto-detect CPU count
	}
}

// Raytracer composites a frame: one primary ray per pixel, nearest hit, direct shading
type Raytracer struct {
	scene      *scene.Scene
	camera     *Camera
	resolver   Resolver
	integrator integrator.Integrator
	config     RenderConfig
	logger     core.Logger
}

// NewRaytracer creates a new raytracer for a validated scene. A nil logger discards output.
func NewRaytracer(s *scene.Scene, config RenderConfig, logger core.Logger) (*Raytracer, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if config.NumWorkers <= 0 {
		config.NumWorkers = runtime.NumCPU()
	}
	if config.TileSize <= 0 {
		config.TileSize = DefaultRenderConfig().TileSize
	}
	if logger == nil {
		logger = nopLogger{}
	}

	return &Raytracer{
		scene:      s,
		camera:     NewCamera(s.Width, s.Height, s.FOV),
		resolver:   NewLinearResolver(s.Elements),
		integrator: integrator.NewDirectLighting(),
		config:     config,
		logger:     logger,
	}, nil
}

// SetResolver replaces the intersection strategy
func (rt *Raytracer) SetResolver(r Resolver) {
	rt.resolver = r
}

// PixelColor returns the display color of pixel (x, y). It depends only on
// the immutable scene, so any number of pixels may be evaluated concurrently.
func (rt *Raytracer) PixelColor(x, y int) color.RGBA {
	c, _ := rt.tracePixel(x, y)
	return c
}

func (rt *Raytracer) tracePixel(x, y int) (color.RGBA, bool) {
	ray := rt.camera.PrimaryRay(x, y)

	hit, isHit := rt.resolver.Nearest(ray)
	if !isHit {
		return Background, false
	}

	normal := hit.Element.SurfaceNormal(hit.Point)
	linear := rt.integrator.Shade(normal, hit.Element.Material(), rt.scene.Lights, hit.Point)
	return linear.RGBA(), true
}

// RenderBounds renders the pixels within bounds into img
func (rt *Raytracer) RenderBounds(bounds image.Rectangle, img *image.RGBA) RenderStats {
	stats := RenderStats{
		TotalPixels: bounds.Dx() * bounds.Dy(),
		Tiles:       1,
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c, isHit := rt.tracePixel(x, y)
			if isHit {
				stats.HitPixels++
			}
			img.SetRGBA(x, y, c)
		}
	}

	return stats
}

// Render renders the whole frame. Tiles are spread across NumWorkers
// goroutines; each writes a disjoint region of the image.
func (rt *Raytracer) Render(ctx context.Context) (*image.RGBA, RenderStats, error) {
	startTime := time.Now()
	img := image.NewRGBA(image.Rect(0, 0, rt.scene.Width, rt.scene.Height))
	tiles := NewTileGrid(rt.scene.Width, rt.scene.Height, rt.config.TileSize)

	rt.logger.Printf("Rendering %dx%d, %d elements, %d lights, %d tiles on %d workers\n",
		rt.scene.Width, rt.scene.Height, len(rt.scene.Elements), len(rt.scene.Lights), len(tiles), rt.config.NumWorkers)

	tileStats := make([]RenderStats, len(tiles))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(rt.config.NumWorkers)
	for i, tile := range tiles {
		i, tile := i, tile
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			tileStats[i] = rt.RenderBounds(tile.Bounds, img)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, RenderStats{}, fmt.Errorf("render cancelled: %w", err)
	}

	var stats RenderStats
	for _, ts := range tileStats {
		stats.Merge(ts)
	}
	stats.Elapsed = time.Since(startTime)

	rt.logger.Printf("Render completed in %v (%d/%d pixels hit)\n", stats.Elapsed, stats.HitPixels, stats.TotalPixels)
	return img, stats, nil
}

package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels int           // Total number of pixels rendered
	HitPixels   int           // Pixels whose primary ray hit an element
	Tiles       int           // Number of tiles rendered
	Elapsed     time.Duration // Wall time of the render
}

// Merge adds the pixel counts of other to s
func (s *RenderStats) Merge(other RenderStats) {
	s.TotalPixels += other.TotalPixels
	s.HitPixels += other.HitPixels
	s.Tiles += other.Tiles
}

// Coverage returns the fraction of pixels that hit an element
func (s RenderStats) Coverage() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.HitPixels) / float64(s.TotalPixels)
}

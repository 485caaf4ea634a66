package renderer

import "testing"

func TestRenderStats_MergeAndCoverage(t *testing.T) {
	var stats RenderStats
	if stats.Coverage() != 0 {
		t.Errorf("Expected zero coverage for empty stats, got %f", stats.Coverage())
	}

	stats.Merge(RenderStats{TotalPixels: 100, HitPixels: 10, Tiles: 1})
	stats.Merge(RenderStats{TotalPixels: 100, HitPixels: 40, Tiles: 1})

	if stats.TotalPixels != 200 || stats.HitPixels != 50 || stats.Tiles != 2 {
		t.Errorf("Unexpected merged stats %+v", stats)
	}
	if stats.Coverage() != 0.25 {
		t.Errorf("Expected coverage 0.25, got %f", stats.Coverage())
	}
}

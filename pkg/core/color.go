package core

import (
	"image/color"
	"math"
)

// Gamma is the display gamma applied when converting linear color to 8-bit output
const Gamma = 2.2

// Color is an RGB color in linear light space. Channels are unbounded
// during shading and clamped only on the way to the display.
type Color struct {
	R, G, B float64
}

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Black is the zero color
var Black = Color{}

// Multiply returns the component-wise product (tint) of two colors
func (c Color) Multiply(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Scale returns the color with every channel multiplied by s
func (c Color) Scale(s float64) Color {
	return Color{c.R * s, c.G * s, c.B * s}
}

// Add returns the channel-wise sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Clamp bounds every channel to [0, 1]
func (c Color) Clamp() Color {
	return Color{clamp01(c.R), clamp01(c.G), clamp01(c.B)}
}

// RGBA converts the linear color to a gamma-encoded, fully opaque 8-bit pixel
func (c Color) RGBA() color.RGBA {
	c = c.Clamp()
	return color.RGBA{
		R: toDisplay(c.R),
		G: toDisplay(c.G),
		B: toDisplay(c.B),
		A: 255,
	}
}

func toDisplay(channel float64) uint8 {
	return uint8(math.Pow(channel, 1.0/Gamma) * 255.0)
}

// clamp01 also maps NaN to 0 so degenerate geometry never produces garbage pixels
func clamp01(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

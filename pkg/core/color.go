package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Color is a linear RGB radiance value. Channels are nominally in [0,1]
// but are not clamped until quantization.
type Color struct {
	R, G, B float64
}

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Black returns (0,0,0)
func Black() Color {
	return Color{}
}

// White returns (1,1,1)
func White() Color {
	return Color{1, 1, 1}
}

// Add returns the componentwise sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// MultiplyColor returns the componentwise product of two colors
func (c Color) MultiplyColor(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Multiply returns the color scaled by a scalar
func (c Color) Multiply(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// Accumulate adds other into c in place
func (c *Color) Accumulate(other Color) {
	c.R += other.R
	c.G += other.G
	c.B += other.B
}

// DivideBy divides every channel of c by divisor in place
func (c *Color) DivideBy(divisor float64) {
	c.R /= divisor
	c.G /= divisor
	c.B /= divisor
}

// GammaCorrect applies gamma 2 correction (per-channel square root).
// Negative channels map to 0 rather than NaN.
func (c Color) GammaCorrect() Color {
	return Color{
		R: math.Sqrt(math.Max(0, c.R)),
		G: math.Sqrt(math.Max(0, c.G)),
		B: math.Sqrt(math.Max(0, c.B)),
	}
}

// Clamp returns a color with channels clamped to [lo, hi]
func (c Color) Clamp(lo, hi float64) Color {
	return Color{
		R: mgl64.Clamp(c.R, lo, hi),
		G: mgl64.Clamp(c.G, lo, hi),
		B: mgl64.Clamp(c.B, lo, hi),
	}
}

// Lerp linearly interpolates from c (t=0) to other (t=1)
func (c Color) Lerp(other Color, t float64) Color {
	return c.Multiply(1 - t).Add(other.Multiply(t))
}

// Luminance returns the Rec. 709 luminance of the color
func (c Color) Luminance() float64 {
	return 0.2126*c.R + 0.7152*c.G + 0.0722*c.B
}

package renderer

import (
	"image"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

// RGB is an 8-bit color triple
type RGB struct {
	R, G, B uint8
}

// Image is a dense row-major grid of 8-bit RGB pixels. Row 0 is the top of the image.
// It implements image.Image so it can be handed straight to an encoder.
type Image struct {
	Width  int
	Height int
	Pix    []RGB
}

// NewImage allocates a black image
func NewImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pix:    make([]RGB, width*height),
	}
}

// SetRGB stores the pixel at column x, row y
func (img *Image) SetRGB(x, y int, c RGB) {
	img.Pix[y*img.Width+x] = c
}

// RGBAt returns the pixel at column x, row y
func (img *Image) RGBAt(x, y int) RGB {
	return img.Pix[y*img.Width+x]
}

// ColorModel implements image.Image
func (img *Image) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements image.Image
func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.Width, img.Height)
}

// At implements image.Image
func (img *Image) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}.In(img.Bounds())) {
		return color.RGBA{}
	}
	p := img.RGBAt(x, y)
	return color.RGBA{R: p.R, G: p.G, B: p.B, A: 255}
}

// ColorToRGB gamma-corrects an averaged linear color and quantizes it to 8 bits
func ColorToRGB(c core.Color) RGB {
	c = c.GammaCorrect()
	return RGB{
		R: QuantizeChannel(c.R),
		G: QuantizeChannel(c.G),
		B: QuantizeChannel(c.B),
	}
}

// QuantizeChannel maps a display value to 0..255 as floor(255.999·v), clamping v to [0,1].
// NaN maps to 0.
func QuantizeChannel(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	return uint8(math.Floor(255.999 * mgl64.Clamp(v, 0, 1)))
}

package renderer

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

func TestQuantizeChannel(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected uint8
	}{
		{"zero", 0, 0},
		{"one", 1, 255},
		{"half", 0.5, 127},
		{"just below one", 0.999, 255},
		{"small positive", 1.5 / 255.999, 1},
		{"above one clamps", 2.5, 255},
		{"negative clamps", -0.3, 0},
		{"positive infinity", math.Inf(1), 255},
		{"negative infinity", math.Inf(-1), 0},
		{"NaN", math.NaN(), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := QuantizeChannel(tt.input); got != tt.expected {
				t.Errorf("QuantizeChannel(%v) = %d, want %d", tt.input, got, tt.expected)
			}
		})
	}
}

func TestColorToRGB_AppliesGammaBeforeQuantizing(t *testing.T) {
	got := ColorToRGB(core.NewColor(0.25, 1, 0))
	want := RGB{R: 127, G: 255, B: 0} // sqrt(0.25) = 0.5
	if got != want {
		t.Errorf("ColorToRGB = %+v, want %+v", got, want)
	}

	// Overexposed and negative channels never wrap around
	got = ColorToRGB(core.NewColor(4, -1, math.NaN()))
	want = RGB{R: 255, G: 0, B: 0}
	if got != want {
		t.Errorf("ColorToRGB out of range = %+v, want %+v", got, want)
	}
}

func TestImage_RowMajorLayout(t *testing.T) {
	img := NewImage(3, 2)
	if len(img.Pix) != 6 {
		t.Fatalf("Expected 6 pixels, got %d", len(img.Pix))
	}

	img.SetRGB(2, 1, RGB{R: 10, G: 20, B: 30})
	if img.Pix[5] != (RGB{R: 10, G: 20, B: 30}) {
		t.Errorf("Pixel (2,1) should be stored at index 5, got %+v", img.Pix)
	}
	if img.RGBAt(2, 1) != img.Pix[5] {
		t.Errorf("RGBAt disagrees with Pix layout")
	}
}

func TestImage_ImplementsImage(t *testing.T) {
	var img image.Image = NewImage(4, 3)
	if img.Bounds() != image.Rect(0, 0, 4, 3) {
		t.Errorf("Bounds = %v", img.Bounds())
	}

	raw := img.(*Image)
	raw.SetRGB(1, 2, RGB{R: 255, G: 128, B: 1})

	got := img.At(1, 2)
	want := color.RGBA{R: 255, G: 128, B: 1, A: 255}
	if got != want {
		t.Errorf("At(1,2) = %v, want %v", got, want)
	}

	if img.At(-1, 0) != (color.RGBA{}) || img.At(4, 0) != (color.RGBA{}) {
		t.Errorf("Out-of-bounds At should return transparent black")
	}
}

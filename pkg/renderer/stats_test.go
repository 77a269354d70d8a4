package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

func TestPixelStats_GetColor(t *testing.T) {
	var ps PixelStats
	if got := ps.GetColor(); got != core.Black() {
		t.Errorf("Empty pixel stats should be black, got %v", got)
	}

	ps.AddSample(core.NewColor(1, 0, 0))
	ps.AddSample(core.NewColor(0, 1, 0))
	ps.AddSample(core.NewColor(0.5, 0.5, 3))

	if ps.SampleCount != 3 {
		t.Errorf("Expected 3 samples, got %d", ps.SampleCount)
	}
	want := core.NewColor(0.5, 0.5, 1)
	if !colorsClose(ps.GetColor(), want, 1e-12) {
		t.Errorf("GetColor = %v, want %v", ps.GetColor(), want)
	}
	// Averaging must not disturb the accumulator
	if !colorsClose(ps.ColorAccum, core.NewColor(1.5, 1.5, 3), 1e-12) {
		t.Errorf("ColorAccum modified: %v", ps.ColorAccum)
	}
}

func TestRenderStats_Merge(t *testing.T) {
	stats := RenderStats{}
	stats.Merge(RenderStats{TotalPixels: 4, TotalSamples: 40})
	stats.Merge(RenderStats{TotalPixels: 6, TotalSamples: 60})
	stats.finalize()

	if stats.TotalPixels != 10 || stats.TotalSamples != 100 {
		t.Errorf("Unexpected totals: %+v", stats)
	}
	if stats.AverageSamples != 10 {
		t.Errorf("Expected 10 average samples, got %f", stats.AverageSamples)
	}
}

func TestCalculateAverageLuminance(t *testing.T) {
	tests := []struct {
		name     string
		fill     RGB
		expected float64
	}{
		{"black", RGB{}, 0},
		{"white", RGB{R: 255, G: 255, B: 255}, 1},
		{"pure red", RGB{R: 255}, 0.2126},
		{"pure green", RGB{G: 255}, 0.7152},
		{"pure blue", RGB{B: 255}, 0.0722},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := NewImage(5, 4)
			for i := range img.Pix {
				img.Pix[i] = tt.fill
			}
			got := CalculateAverageLuminance(img)
			if math.Abs(got-tt.expected) > 1e-6 {
				t.Errorf("Expected luminance %f, got %f", tt.expected, got)
			}
		})
	}

	if got := CalculateAverageLuminance(NewImage(0, 0)); got != 0 {
		t.Errorf("Empty image luminance should be 0, got %f", got)
	}
}

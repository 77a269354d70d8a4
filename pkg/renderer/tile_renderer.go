package renderer

import (
	"image"
	"math/rand"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
	"github.com/df07/go-sphere-tracer/pkg/integrator"
)

// TileRenderer handles the actual rendering of individual tiles using an integrator.
// It holds only read-only state and may be shared between workers.
type TileRenderer struct {
	camera          *geometry.Camera
	world           geometry.Shape
	integrator      integrator.Integrator
	width, height   int
	samplesPerPixel int
}

// NewTileRenderer creates a new tile renderer
func NewTileRenderer(camera *geometry.Camera, world geometry.Shape, integratorInst integrator.Integrator, width, height, samplesPerPixel int) *TileRenderer {
	return &TileRenderer{
		camera:          camera,
		world:           world,
		integrator:      integratorInst,
		width:           width,
		height:          height,
		samplesPerPixel: samplesPerPixel,
	}
}

// RenderTileBounds renders pixels within the specified bounds into img
func (tr *TileRenderer) RenderTileBounds(bounds image.Rectangle, img *Image, random *rand.Rand) RenderStats {
	sampler := core.NewRandomSampler(random)
	stats := RenderStats{}

	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			color := tr.SamplePixel(i, j, tr.samplesPerPixel, sampler)
			img.SetRGB(i, j, ColorToRGB(color))
			stats.TotalPixels++
			stats.TotalSamples += tr.samplesPerPixel
		}
	}

	return stats
}

// SamplePixel returns the average linear radiance of samples jittered rays through pixel (i, j).
// Row j counts from the top of the image; the camera's t coordinate counts from the bottom.
func (tr *TileRenderer) SamplePixel(i, j, samples int, sampler core.Sampler) core.Color {
	var ps PixelStats
	row := tr.height - 1 - j

	for sample := 0; sample < samples; sample++ {
		// Convert pixel coordinates to normalized coordinates with jitter
		s := (float64(i) + sampler.Get1D()) / float64(tr.width)
		t := (float64(row) + sampler.Get1D()) / float64(tr.height)

		ray := tr.camera.GetRay(s, t, sampler)
		ps.AddSample(tr.integrator.RayColor(ray, tr.world, sampler))
	}

	return ps.GetColor()
}

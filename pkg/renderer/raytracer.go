package renderer

import (
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
	"github.com/df07/go-sphere-tracer/pkg/integrator"
)

// ErrInvalidConfig is returned for sampling configurations that cannot be rendered
var ErrInvalidConfig = errors.New("invalid sampling configuration")

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width           int   // Image width in pixels
	Height          int   // Image height in pixels
	SamplesPerPixel int   // Number of rays per pixel
	MaxDepth        int   // Maximum ray bounce depth
	Seed            int64 // Base seed for per-tile random generators
	NumWorkers      int   // Number of parallel workers (0 = use CPU count)
	TileSize        int   // Size of each square tile (0 = default)
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 100,
		MaxDepth:        integrator.DefaultMaxDepth,
		Seed:            42,
		NumWorkers:      0,
		TileSize:        32,
	}
}

// Validate reports the first problem with the configuration, if any
func (c SamplingConfig) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: resolution %dx%d must be positive", ErrInvalidConfig, c.Width, c.Height)
	case c.SamplesPerPixel <= 0:
		return fmt.Errorf("%w: samples per pixel %d must be positive", ErrInvalidConfig, c.SamplesPerPixel)
	case c.MaxDepth <= 0:
		return fmt.Errorf("%w: max depth %d must be positive", ErrInvalidConfig, c.MaxDepth)
	case c.NumWorkers < 0:
		return fmt.Errorf("%w: worker count %d must not be negative", ErrInvalidConfig, c.NumWorkers)
	case c.TileSize < 0:
		return fmt.Errorf("%w: tile size %d must not be negative", ErrInvalidConfig, c.TileSize)
	}
	return nil
}

// AspectRatio returns width / height
func (c SamplingConfig) AspectRatio() float64 {
	return float64(c.Width) / float64(c.Height)
}

// Raytracer renders a world through a camera into an 8-bit image
type Raytracer struct {
	camera     *geometry.Camera
	world      geometry.Shape
	config     SamplingConfig
	integrator integrator.Integrator
	logger     core.Logger
}

// NewRaytracer creates a new raytracer. A nil logger writes to stdout.
func NewRaytracer(camera *geometry.Camera, world geometry.Shape, config SamplingConfig, logger core.Logger) (*Raytracer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if camera == nil || world == nil {
		return nil, fmt.Errorf("%w: camera and world are required", ErrInvalidConfig)
	}
	if config.NumWorkers == 0 {
		config.NumWorkers = runtime.NumCPU()
	}
	if config.TileSize == 0 {
		config.TileSize = DefaultSamplingConfig().TileSize
	}
	if logger == nil {
		logger = NewDefaultLogger()
	}

	return &Raytracer{
		camera:     camera,
		world:      world,
		config:     config,
		integrator: integrator.NewPathTracingIntegrator(config.MaxDepth),
		logger:     logger,
	}, nil
}

// Config returns the effective sampling configuration
func (rt *Raytracer) Config() SamplingConfig {
	return rt.config
}

// Render traces every pixel and returns the quantized image.
// Each tile owns its random generator, so the result does not depend on the worker count.
func (rt *Raytracer) Render() (*Image, RenderStats) {
	start := time.Now()

	img := NewImage(rt.config.Width, rt.config.Height)
	tiles := NewTileGrid(rt.config.Width, rt.config.Height, rt.config.TileSize, rt.config.Seed)
	tileRenderer := rt.newTileRenderer()

	pool := NewWorkerPool(tileRenderer, min(rt.config.NumWorkers, len(tiles)), len(tiles))
	rt.logger.Printf("Rendering %dx%d at %d samples per pixel (%d tiles, %d workers)...\n",
		rt.config.Width, rt.config.Height, rt.config.SamplesPerPixel, len(tiles), pool.GetNumWorkers())

	pool.Start()
	for i, tile := range tiles {
		pool.SubmitTask(TileTask{Tile: tile, TaskID: i, Image: img})
	}

	stats := RenderStats{}
	for range tiles {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		stats.Merge(result.Stats)
	}
	pool.Stop()

	stats.Duration = time.Since(start)
	stats.finalize()
	rt.logger.Printf("Render completed in %v (%d samples, average luminance %.3f)\n",
		stats.Duration, stats.TotalSamples, CalculateAverageLuminance(img))

	return img, stats
}

func (rt *Raytracer) newTileRenderer() *TileRenderer {
	return NewTileRenderer(rt.camera, rt.world, rt.integrator, rt.config.Width, rt.config.Height, rt.config.SamplesPerPixel)
}

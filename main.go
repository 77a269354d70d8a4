package main

import (
	"flag"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/loaders"
	"github.com/df07/go-sphere-tracer/pkg/renderer"
	"github.com/df07/go-sphere-tracer/pkg/scene"
)

// renderOptions holds command line overrides; zero values keep the scene's settings
type renderOptions struct {
	width, height int
	samples       int
	depth         int
	seed          int64
	workers       int
}

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "default", "Built-in scene name or path to a .json scene file")
	width := flag.Int("width", 0, "Image width (0 = scene default)")
	height := flag.Int("height", 0, "Image height (0 = scene default)")
	samples := flag.Int("samples", 0, "Samples per pixel (0 = scene default)")
	depth := flag.Int("depth", 0, "Maximum bounce depth (0 = scene default)")
	seed := flag.Int64("seed", 0, "Random seed (0 = scene default)")
	workers := flag.Int("workers", 0, "Number of render workers (0 = CPU count)")
	out := flag.String("out", "", "Output PNG path (default output/<scene>/render_<timestamp>.png)")
	list := flag.Bool("list", false, "List available scenes and exit")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		printHelp()
		return
	}

	if *list {
		if err := printScenes("scenes"); err != nil {
			log.Fatalf("Error listing scenes: %v", err)
		}
		return
	}

	fmt.Println("Starting Sphere Tracer...")

	opts := renderOptions{
		width:   *width,
		height:  *height,
		samples: *samples,
		depth:   *depth,
		seed:    *seed,
		workers: *workers,
	}

	selectedScene, err := createScene(*sceneType, opts.seed)
	if err != nil {
		log.Fatalf("Error creating scene: %v", err)
	}
	if err := applyOptions(selectedScene, opts); err != nil {
		log.Fatalf("Error configuring scene: %v", err)
	}

	filename := *out
	if filename == "" {
		filename = createOutputPath(*sceneType, time.Now())
	}

	if err := render(selectedScene, filename, renderer.NewDefaultLogger()); err != nil {
		log.Fatalf("Error rendering: %v", err)
	}
}

func printHelp() {
	fmt.Println("Sphere Tracer")
	fmt.Println("Usage: sphere-tracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, id := range scene.BuiltinSceneIDs() {
		fmt.Printf("  %s\n", id)
	}
	fmt.Println("  <path>.json - Load a scene file")
	fmt.Println()
	fmt.Println("Output will be saved to output/<scene>/render_<timestamp>.png")
}

func printScenes(dir string) error {
	response, err := scene.ListAllScenes(dir)
	if err != nil {
		return err
	}
	for _, group := range response.Groups {
		fmt.Printf("%s:\n", group.Name)
		for _, s := range group.Scenes {
			id := s.ID
			if s.FilePath != "" {
				id = s.FilePath
			}
			fmt.Printf("  %-24s %s\n", id, s.Description)
		}
	}
	return nil
}

// createScene returns a built-in scene by name or loads a .json scene file
func createScene(sceneType string, seed int64) (*scene.Scene, error) {
	if sceneType == "" {
		return nil, fmt.Errorf("scene name must not be empty")
	}
	return scene.Load(sceneType, seed)
}

// applyOptions overrides the scene's sampling settings with any non-zero options
func applyOptions(s *scene.Scene, opts renderOptions) error {
	if opts.samples != 0 {
		s.SamplingConfig.SamplesPerPixel = opts.samples
	}
	if opts.depth != 0 {
		s.SamplingConfig.MaxDepth = opts.depth
	}
	if opts.seed != 0 {
		s.SamplingConfig.Seed = opts.seed
	}
	if opts.workers != 0 {
		s.SamplingConfig.NumWorkers = opts.workers
	}

	width, height := s.SamplingConfig.Width, s.SamplingConfig.Height
	if opts.width != 0 {
		width = opts.width
	}
	if opts.height != 0 {
		height = opts.height
	}
	return s.SetResolution(width, height)
}

// createOutputPath returns output/<scene>/render_<timestamp>.png; scene files use their base name
func createOutputPath(sceneType string, now time.Time) string {
	base := sceneType
	if strings.HasSuffix(strings.ToLower(sceneType), ".json") {
		base = strings.TrimSuffix(filepath.Base(sceneType), filepath.Ext(sceneType))
	}
	timestamp := now.Format("20060102_150405")
	return filepath.Join("output", base, fmt.Sprintf("render_%s.png", timestamp))
}

// render traces the scene and writes the PNG to filename
func render(s *scene.Scene, filename string, logger core.Logger) error {
	logger.Printf("Using %s scene (%d objects)...\n", s.Name, s.GetPrimitiveCount())

	raytracer, err := s.NewRaytracer(logger)
	if err != nil {
		return fmt.Errorf("failed to create raytracer: %w", err)
	}

	img, stats := raytracer.Render()
	logger.Printf("Samples per pixel: %.1f (%d pixels, %d samples)\n",
		stats.AverageSamples, stats.TotalPixels, stats.TotalSamples)

	if err := loaders.SavePNG(filename, img); err != nil {
		return err
	}
	logger.Printf("Render saved as %s\n", filename)
	return nil
}

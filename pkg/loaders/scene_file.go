package loaders

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	// ErrUnknownMaterial is returned for material types the tracer does not implement
	ErrUnknownMaterial = errors.New("unknown material type")
	// ErrUnknownShape is returned for object types other than spheres
	ErrUnknownShape = errors.New("unknown shape type")
)

// Material types accepted in scene files
const (
	MaterialLambertian = "lambertian"
	MaterialMetal      = "metal"
	MaterialDielectric = "dielectric"
)

// ShapeSphere is the only object type accepted in scene files
const ShapeSphere = "sphere"

// SceneFile is the decoded form of a JSON scene description
type SceneFile struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Group       string       `json:"group"`
	Camera      CameraSpec   `json:"camera"`
	Sampling    SamplingSpec `json:"sampling"`
	Objects     []ObjectSpec `json:"objects"`
}

// CameraSpec mirrors the camera parameters. Zero values mean "use the default".
type CameraSpec struct {
	LookFrom      [3]float64 `json:"lookFrom"`
	LookAt        [3]float64 `json:"lookAt"`
	Up            [3]float64 `json:"up"`
	VFov          float64    `json:"vfov"`
	Aperture      float64    `json:"aperture"`
	FocusDistance float64    `json:"focusDistance"`
}

// SamplingSpec holds render settings. Zero values mean "use the default".
type SamplingSpec struct {
	Width           int   `json:"width"`
	Height          int   `json:"height"`
	SamplesPerPixel int   `json:"samplesPerPixel"`
	MaxDepth        int   `json:"maxDepth"`
	Seed            int64 `json:"seed"`
}

// ObjectSpec describes one object in the scene
type ObjectSpec struct {
	Type     string       `json:"type"`
	Center   [3]float64   `json:"center"`
	Radius   float64      `json:"radius"`
	Material MaterialSpec `json:"material"`
}

// MaterialSpec describes a surface material; which fields apply depends on Type
type MaterialSpec struct {
	Type            string     `json:"type"`
	Albedo          [3]float64 `json:"albedo"`
	Fuzz            float64    `json:"fuzz"`
	RefractiveIndex float64    `json:"refractiveIndex"`
}

// LoadSceneFile loads and validates a JSON scene file
func LoadSceneFile(filename string) (*SceneFile, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	sceneFile, err := ParseSceneFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}
	return sceneFile, nil
}

// ParseSceneFile decodes and validates a JSON scene description from reader.
// Unknown fields are rejected so that misspelled keys do not silently fall back to defaults.
func ParseSceneFile(reader io.Reader) (*SceneFile, error) {
	decoder := json.NewDecoder(reader)
	decoder.DisallowUnknownFields()

	var sceneFile SceneFile
	if err := decoder.Decode(&sceneFile); err != nil {
		return nil, fmt.Errorf("invalid scene JSON: %w", err)
	}

	for i, object := range sceneFile.Objects {
		if err := object.validate(); err != nil {
			return nil, fmt.Errorf("object %d: %w", i, err)
		}
	}

	return &sceneFile, nil
}

func (o ObjectSpec) validate() error {
	if strings.ToLower(o.Type) != ShapeSphere {
		return fmt.Errorf("%w: %q", ErrUnknownShape, o.Type)
	}

	switch strings.ToLower(o.Material.Type) {
	case MaterialLambertian, MaterialMetal:
		return nil
	case MaterialDielectric:
		if !(o.Material.RefractiveIndex > 0) {
			return fmt.Errorf("dielectric refractive index %g must be positive", o.Material.RefractiveIndex)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMaterial, o.Material.Type)
	}
}

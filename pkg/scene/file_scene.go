package scene

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
	"github.com/df07/go-sphere-tracer/pkg/loaders"
	"github.com/df07/go-sphere-tracer/pkg/material"
	"github.com/df07/go-sphere-tracer/pkg/renderer"
)

// Load returns the scene for a built-in name, or loads it from disk when name is a .json path
func Load(name string, seed int64) (*Scene, error) {
	if strings.HasSuffix(strings.ToLower(name), ".json") {
		return NewSceneFromFile(name)
	}
	return Lookup(name, seed)
}

// NewSceneFromFile loads a JSON scene file and builds its camera and objects
func NewSceneFromFile(filename string) (*Scene, error) {
	sceneFile, err := loaders.LoadSceneFile(filename)
	if err != nil {
		return nil, err
	}

	name := sceneFile.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	}
	return NewSceneFromSpec(name, sceneFile)
}

// NewSceneFromSpec converts a decoded scene file into a scene. Zero camera and sampling
// fields fall back to defaults.
func NewSceneFromSpec(name string, sceneFile *loaders.SceneFile) (*Scene, error) {
	cameraConfig := geometry.CameraConfig{
		LookFrom:      toVec3(sceneFile.Camera.LookFrom),
		LookAt:        toVec3(sceneFile.Camera.LookAt),
		Up:            toVec3(sceneFile.Camera.Up),
		VFov:          sceneFile.Camera.VFov,
		Aperture:      sceneFile.Camera.Aperture,
		FocusDistance: sceneFile.Camera.FocusDistance,
	}
	if cameraConfig.Up == (core.Vec3{}) {
		cameraConfig.Up = core.NewVec3(0, 1, 0)
	}
	if cameraConfig.VFov == 0 {
		cameraConfig.VFov = 90
	}
	if cameraConfig.LookFrom == cameraConfig.LookAt && cameraConfig.LookAt == (core.Vec3{}) {
		cameraConfig.LookAt = core.NewVec3(0, 0, -1)
	}

	s, err := NewScene(name, cameraConfig, samplingFromSpec(sceneFile.Sampling))
	if err != nil {
		return nil, err
	}

	for i, object := range sceneFile.Objects {
		mat, err := materialFromSpec(object.Material)
		if err != nil {
			return nil, fmt.Errorf("object %d: %w", i, err)
		}
		if err := s.AddSphere(toVec3(object.Center), object.Radius, mat); err != nil {
			return nil, fmt.Errorf("object %d: %w", i, err)
		}
	}

	return s, nil
}

func samplingFromSpec(spec loaders.SamplingSpec) renderer.SamplingConfig {
	config := renderer.DefaultSamplingConfig()
	if spec.Width != 0 {
		config.Width = spec.Width
	}
	if spec.Height != 0 {
		config.Height = spec.Height
	}
	if spec.SamplesPerPixel != 0 {
		config.SamplesPerPixel = spec.SamplesPerPixel
	}
	if spec.MaxDepth != 0 {
		config.MaxDepth = spec.MaxDepth
	}
	if spec.Seed != 0 {
		config.Seed = spec.Seed
	}
	return config
}

func materialFromSpec(spec loaders.MaterialSpec) (material.Material, error) {
	switch strings.ToLower(spec.Type) {
	case loaders.MaterialLambertian:
		return material.NewLambertian(toColor(spec.Albedo)), nil
	case loaders.MaterialMetal:
		return material.NewMetal(toColor(spec.Albedo), spec.Fuzz), nil
	case loaders.MaterialDielectric:
		return material.NewDielectric(spec.RefractiveIndex), nil
	default:
		return nil, fmt.Errorf("%w: %q", loaders.ErrUnknownMaterial, spec.Type)
	}
}

func toVec3(v [3]float64) core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

func toColor(c [3]float64) core.Color {
	return core.NewColor(c[0], c[1], c[2])
}

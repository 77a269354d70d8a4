package scene

import (
	"fmt"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
	"github.com/df07/go-sphere-tracer/pkg/material"
	"github.com/df07/go-sphere-tracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name           string
	Camera         *geometry.Camera
	World          *geometry.HittableList // Objects in the scene
	SamplingConfig renderer.SamplingConfig
	CameraConfig   geometry.CameraConfig
}

// NewScene creates an empty scene. The camera aspect ratio follows the sampling resolution,
// and a zero focus distance focuses on LookAt.
func NewScene(name string, cameraConfig geometry.CameraConfig, samplingConfig renderer.SamplingConfig) (*Scene, error) {
	s := &Scene{
		Name:           name,
		World:          geometry.NewHittableList(),
		SamplingConfig: samplingConfig,
		CameraConfig:   cameraConfig,
	}
	if err := s.rebuildCamera(); err != nil {
		return nil, err
	}
	return s, nil
}

// AddSphere adds a sphere to the scene
func (s *Scene) AddSphere(center core.Vec3, radius float64, mat material.Material) error {
	sphere, err := geometry.NewSphere(center, radius, mat)
	if err != nil {
		return fmt.Errorf("scene %s: %w", s.Name, err)
	}
	s.World.Add(sphere)
	return nil
}

// SetResolution changes the output size and rebuilds the camera for the new aspect ratio
func (s *Scene) SetResolution(width, height int) error {
	s.SamplingConfig.Width = width
	s.SamplingConfig.Height = height
	return s.rebuildCamera()
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return s.World.Len()
}

// NewRaytracer creates a raytracer for this scene
func (s *Scene) NewRaytracer(logger core.Logger) (*renderer.Raytracer, error) {
	return renderer.NewRaytracer(s.Camera, s.World, s.SamplingConfig, logger)
}

func (s *Scene) rebuildCamera() error {
	if err := s.SamplingConfig.Validate(); err != nil {
		return fmt.Errorf("scene %s: %w", s.Name, err)
	}

	s.CameraConfig.AspectRatio = s.SamplingConfig.AspectRatio()
	if s.CameraConfig.FocusDistance == 0 {
		s.CameraConfig.FocusDistance = s.CameraConfig.LookFrom.Subtract(s.CameraConfig.LookAt).Length()
	}

	camera, err := geometry.NewCamera(s.CameraConfig)
	if err != nil {
		return fmt.Errorf("scene %s: %w", s.Name, err)
	}
	s.Camera = camera
	return nil
}

// MergeCameraConfig returns base with every non-zero field of override applied
func MergeCameraConfig(base, override geometry.CameraConfig) geometry.CameraConfig {
	zero := core.Vec3{}
	if override.LookFrom != zero {
		base.LookFrom = override.LookFrom
	}
	if override.LookAt != zero {
		base.LookAt = override.LookAt
	}
	if override.Up != zero {
		base.Up = override.Up
	}
	if override.VFov != 0 {
		base.VFov = override.VFov
	}
	if override.AspectRatio != 0 {
		base.AspectRatio = override.AspectRatio
	}
	if override.Aperture != 0 {
		base.Aperture = override.Aperture
	}
	if override.FocusDistance != 0 {
		base.FocusDistance = override.FocusDistance
	}
	return base
}

func applyCameraOverrides(base geometry.CameraConfig, overrides []geometry.CameraConfig) geometry.CameraConfig {
	if len(overrides) > 0 {
		return MergeCameraConfig(base, overrides[0])
	}
	return base
}

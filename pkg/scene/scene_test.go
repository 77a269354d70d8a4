package scene

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
	"github.com/df07/go-sphere-tracer/pkg/material"
	"github.com/df07/go-sphere-tracer/pkg/renderer"
)

func testCameraConfig() geometry.CameraConfig {
	return geometry.CameraConfig{
		LookFrom: core.NewVec3(3, 4, 0),
		LookAt:   core.NewVec3(0, 0, 0),
		Up:       core.NewVec3(0, 1, 0),
		VFov:     45,
	}
}

func TestNewScene_DerivesAspectAndFocus(t *testing.T) {
	sampling := renderer.DefaultSamplingConfig()
	sampling.Width = 300
	sampling.Height = 100

	s, err := NewScene("test", testCameraConfig(), sampling)
	if err != nil {
		t.Fatalf("NewScene failed: %v", err)
	}

	if s.CameraConfig.AspectRatio != 3 {
		t.Errorf("Expected aspect ratio 3, got %f", s.CameraConfig.AspectRatio)
	}
	if math.Abs(s.CameraConfig.FocusDistance-5) > 1e-12 {
		t.Errorf("Expected auto focus distance 5, got %f", s.CameraConfig.FocusDistance)
	}
	if s.Camera == nil || s.World == nil || s.GetPrimitiveCount() != 0 {
		t.Errorf("Scene not initialised: %+v", s)
	}
}

func TestNewScene_PropagatesConfigErrors(t *testing.T) {
	badSampling := renderer.DefaultSamplingConfig()
	badSampling.SamplesPerPixel = 0
	if _, err := NewScene("bad", testCameraConfig(), badSampling); !errors.Is(err, renderer.ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}

	badCamera := testCameraConfig()
	badCamera.LookAt = badCamera.LookFrom
	badCamera.FocusDistance = 1
	if _, err := NewScene("bad", badCamera, renderer.DefaultSamplingConfig()); !errors.Is(err, geometry.ErrInvalidCamera) {
		t.Errorf("Expected ErrInvalidCamera, got %v", err)
	}
}

func TestScene_SetResolutionRebuildsCamera(t *testing.T) {
	s, err := NewScene("test", testCameraConfig(), renderer.DefaultSamplingConfig())
	if err != nil {
		t.Fatalf("NewScene failed: %v", err)
	}
	before := s.Camera

	if err := s.SetResolution(200, 200); err != nil {
		t.Fatalf("SetResolution failed: %v", err)
	}
	if s.CameraConfig.AspectRatio != 1 {
		t.Errorf("Expected aspect ratio 1, got %f", s.CameraConfig.AspectRatio)
	}
	if s.Camera == before {
		t.Errorf("Camera should be rebuilt")
	}

	if err := s.SetResolution(0, 10); !errors.Is(err, renderer.ErrInvalidConfig) {
		t.Errorf("Zero width should be rejected, got %v", err)
	}
}

func TestScene_AddSphere(t *testing.T) {
	s, err := NewScene("test", testCameraConfig(), renderer.DefaultSamplingConfig())
	if err != nil {
		t.Fatalf("NewScene failed: %v", err)
	}

	mat := material.NewLambertian(core.NewColor(0.5, 0.5, 0.5))
	if err := s.AddSphere(core.NewVec3(0, 0, 0), 1, mat); err != nil {
		t.Errorf("AddSphere failed: %v", err)
	}
	if err := s.AddSphere(core.NewVec3(0, 0, 0), 0, mat); !errors.Is(err, geometry.ErrZeroRadius) {
		t.Errorf("Expected ErrZeroRadius, got %v", err)
	}
	if s.GetPrimitiveCount() != 1 {
		t.Errorf("Expected 1 primitive, got %d", s.GetPrimitiveCount())
	}
}

func TestMergeCameraConfig(t *testing.T) {
	base := testCameraConfig()
	base.Aperture = 0.2

	merged := MergeCameraConfig(base, geometry.CameraConfig{
		LookFrom: core.NewVec3(1, 1, 1),
		VFov:     30,
	})

	if merged.LookFrom != core.NewVec3(1, 1, 1) {
		t.Errorf("LookFrom not overridden: %v", merged.LookFrom)
	}
	if merged.VFov != 30 {
		t.Errorf("VFov not overridden: %f", merged.VFov)
	}
	if merged.LookAt != base.LookAt || merged.Up != base.Up || merged.Aperture != 0.2 {
		t.Errorf("Zero override fields should keep base values: %+v", merged)
	}
}

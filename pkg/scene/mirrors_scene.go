package scene

import (
	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
	"github.com/df07/go-sphere-tracer/pkg/material"
	"github.com/df07/go-sphere-tracer/pkg/renderer"
)

// NewMirrorsScene places a small diffuse sphere between two large facing mirrors.
// Rays trapped between the mirrors run until the bounce limit.
func NewMirrorsScene(cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	cameraConfig := applyCameraOverrides(geometry.CameraConfig{
		LookFrom:      core.NewVec3(0, 0.4, 2),
		LookAt:        core.NewVec3(0, 0, -1.5),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          60.0,
		Aperture:      0.0,
		FocusDistance: 0.0,
	}, cameraOverrides)

	s, err := NewScene("mirrors", cameraConfig, renderer.DefaultSamplingConfig())
	if err != nil {
		return nil, err
	}

	mirror := material.NewMetal(core.NewColor(0.95, 0.95, 0.95), 0.0)
	spheres := []struct {
		center core.Vec3
		radius float64
		mat    material.Material
	}{
		{core.NewVec3(0, -100.5, -1.5), 100, material.NewLambertian(core.NewColor(0.3, 0.3, 0.35))},
		{core.NewVec3(-2.2, 0.5, -1.5), 1.5, mirror},
		{core.NewVec3(2.2, 0.5, -1.5), 1.5, mirror},
		{core.NewVec3(0, -0.2, -1.5), 0.3, material.NewLambertian(core.NewColor(0.8, 0.2, 0.1))},
		{core.NewVec3(0, 0.35, -1.2), 0.2, material.NewDielectric(1.5)},
	}
	for _, sp := range spheres {
		if err := s.AddSphere(sp.center, sp.radius, sp.mat); err != nil {
			return nil, err
		}
	}

	return s, nil
}

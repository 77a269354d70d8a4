package scene

import (
	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
	"github.com/df07/go-sphere-tracer/pkg/material"
	"github.com/df07/go-sphere-tracer/pkg/renderer"
)

// NewDefaultScene creates three spheres on a large ground sphere: diffuse in the centre,
// hollow glass on the left and polished metal on the right
func NewDefaultScene(cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	cameraConfig := applyCameraOverrides(geometry.CameraConfig{
		LookFrom:      core.NewVec3(0, 0, 0),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          90.0,
		Aperture:      0.0,
		FocusDistance: 0.0, // Auto-calculate focus distance
	}, cameraOverrides)

	samplingConfig := renderer.DefaultSamplingConfig()
	samplingConfig.Width = 400
	samplingConfig.Height = 200

	s, err := NewScene("default", cameraConfig, samplingConfig)
	if err != nil {
		return nil, err
	}

	ground := material.NewLambertian(core.NewColor(0.8, 0.8, 0.0))
	diffuseBlue := material.NewLambertian(core.NewColor(0.1, 0.2, 0.5))
	glass := material.NewDielectric(1.5)
	gold := material.NewMetal(core.NewColor(0.8, 0.6, 0.2), 0.0)

	spheres := []struct {
		center core.Vec3
		radius float64
		mat    material.Material
	}{
		{core.NewVec3(0, -100.5, -1), 100, ground},
		{core.NewVec3(0, 0, -1), 0.5, diffuseBlue},
		{core.NewVec3(-1, 0, -1), 0.5, glass},
		{core.NewVec3(-1, 0, -1), -0.45, glass}, // Inner shell makes the left sphere hollow
		{core.NewVec3(1, 0, -1), 0.5, gold},
	}
	for _, sp := range spheres {
		if err := s.AddSphere(sp.center, sp.radius, sp.mat); err != nil {
			return nil, err
		}
	}

	return s, nil
}

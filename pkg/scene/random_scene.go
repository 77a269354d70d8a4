package scene

import (
	"math/rand"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
	"github.com/df07/go-sphere-tracer/pkg/material"
	"github.com/df07/go-sphere-tracer/pkg/renderer"
)

// NewRandomScene creates a field of small random spheres around three large ones.
// The layout depends only on seed.
func NewRandomScene(seed int64, cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	cameraConfig := applyCameraOverrides(geometry.CameraConfig{
		LookFrom:      core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20.0,
		Aperture:      0.1,
		FocusDistance: 10.0,
	}, cameraOverrides)

	samplingConfig := renderer.DefaultSamplingConfig()
	samplingConfig.Width = 600
	samplingConfig.Height = 400
	samplingConfig.Seed = seed

	s, err := NewScene("random", cameraConfig, samplingConfig)
	if err != nil {
		return nil, err
	}

	if err := s.AddSphere(core.NewVec3(0, -1000, 0), 1000, material.NewLambertian(core.NewColor(0.5, 0.5, 0.5))); err != nil {
		return nil, err
	}

	random := rand.New(rand.NewSource(seed))
	clearing := core.NewVec3(4, 0.2, 0)

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := random.Float64()
			center := core.NewVec3(float64(a)+0.9*random.Float64(), 0.2, float64(b)+0.9*random.Float64())

			// Keep the space around the large metal sphere clear
			if center.Subtract(clearing).Length() <= 0.9 {
				continue
			}

			var mat material.Material
			switch {
			case chooseMat < 0.8:
				albedo := randomColor(random).MultiplyColor(randomColor(random))
				mat = material.NewLambertian(albedo)
			case chooseMat < 0.95:
				albedo := core.NewColor(
					0.5*(1+random.Float64()),
					0.5*(1+random.Float64()),
					0.5*(1+random.Float64()),
				)
				mat = material.NewMetal(albedo, 0.5*random.Float64())
			default:
				mat = material.NewDielectric(1.5)
			}

			if err := s.AddSphere(center, 0.2, mat); err != nil {
				return nil, err
			}
		}
	}

	large := []struct {
		center core.Vec3
		mat    material.Material
	}{
		{core.NewVec3(0, 1, 0), material.NewDielectric(1.5)},
		{core.NewVec3(-4, 1, 0), material.NewLambertian(core.NewColor(0.4, 0.2, 0.1))},
		{core.NewVec3(4, 1, 0), material.NewMetal(core.NewColor(0.7, 0.6, 0.5), 0.0)},
	}
	for _, sp := range large {
		if err := s.AddSphere(sp.center, 1.0, sp.mat); err != nil {
			return nil, err
		}
	}

	return s, nil
}

func randomColor(random *rand.Rand) core.Color {
	return core.NewColor(random.Float64(), random.Float64(), random.Float64())
}

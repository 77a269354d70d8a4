package renderer

import (
	"math"
	"sync/atomic"
	"testing"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
)

// MockIntegrator returns a fixed color for every ray
type MockIntegrator struct {
	returnColor core.Color
	callCount   atomic.Int64
}

func (m *MockIntegrator) RayColor(ray core.Ray, world geometry.Shape, sampler core.Sampler) core.Color {
	m.callCount.Add(1)
	return m.returnColor
}

func newTestCamera(t *testing.T, aspectRatio float64) *geometry.Camera {
	t.Helper()
	camera, err := geometry.NewCamera(geometry.CameraConfig{
		LookFrom:      core.NewVec3(0, 0, 0),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          90,
		AspectRatio:   aspectRatio,
		Aperture:      0,
		FocusDistance: 1,
	})
	if err != nil {
		t.Fatalf("NewCamera failed: %v", err)
	}
	return camera
}

func colorsClose(a, b core.Color, tolerance float64) bool {
	return math.Abs(a.R-b.R) <= tolerance &&
		math.Abs(a.G-b.G) <= tolerance &&
		math.Abs(a.B-b.B) <= tolerance
}

type silentLogger struct{}

func (silentLogger) Printf(format string, args ...interface{}) {}

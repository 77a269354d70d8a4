package integrator

import (
	"math"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
)

const (
	// DefaultMaxDepth is the number of bounces after which a path contributes black
	DefaultMaxDepth = 50

	// HitEpsilon keeps scattered rays from re-hitting the surface they left
	HitEpsilon = 0.001
)

var (
	skyHorizon = core.White()
	skyZenith  = core.NewColor(0.5, 0.7, 1.0)
)

// PathTracingIntegrator implements unidirectional path tracing against a sky gradient
type PathTracingIntegrator struct {
	maxDepth int
}

// NewPathTracingIntegrator creates a new path tracing integrator.
// Paths are cut off after maxDepth bounces; a non-positive value uses DefaultMaxDepth.
func NewPathTracingIntegrator(maxDepth int) *PathTracingIntegrator {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &PathTracingIntegrator{maxDepth: maxDepth}
}

// MaxDepth returns the bounce limit
func (pt *PathTracingIntegrator) MaxDepth() int {
	return pt.maxDepth
}

// RayColor computes the color for a single ray
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Shape, sampler core.Sampler) core.Color {
	color, _ := pt.trace(ray, world, sampler)
	return color
}

// trace follows one path, carrying the product of attenuations instead of recursing.
// It also returns the number of bounces taken before the path ended.
func (pt *PathTracingIntegrator) trace(ray core.Ray, world geometry.Shape, sampler core.Sampler) (core.Color, int) {
	throughput := core.White()

	for depth := 0; ; depth++ {
		// If we've exceeded the ray bounce limit, no more light is gathered
		if depth >= pt.maxDepth {
			return core.Black(), depth
		}

		hit, isHit := world.Hit(ray, HitEpsilon, math.Inf(1))
		if !isHit {
			return throughput.MultiplyColor(SkyGradient(ray.Direction)), depth
		}

		scatter, didScatter := hit.Material.Scatter(ray, hit, sampler)
		if !didScatter {
			// Material absorbed the ray
			return core.Black(), depth
		}

		throughput = throughput.MultiplyColor(scatter.Attenuation)
		ray = scatter.Scattered
	}
}

// SkyGradient returns the background radiance for a ray direction:
// white at the bottom blending to sky blue at the top.
func SkyGradient(direction core.Vec3) core.Color {
	unitDirection := direction.Normalize()

	// Use the y-component to create a gradient (map from -1,1 to 0,1)
	t := 0.5 * (unitDirection.Y + 1.0)
	return skyHorizon.Lerp(skyZenith, t)
}

package core

import (
	"math"
	"math/rand"
)

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
	Get3D() Vec3
}

// RandomSampler wraps a standard Go random generator.
// A RandomSampler is not safe for concurrent use; give each goroutine its own.
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// Get3D returns three random float64 values in [0, 1)
func (r *RandomSampler) Get3D() Vec3 {
	return NewVec3(r.random.Float64(), r.random.Float64(), r.random.Float64())
}

// SampleOnUnitSphere maps a 2D sample to a uniformly distributed point on the unit sphere
func SampleOnUnitSphere(sample Vec2) Vec3 {
	a := 2.0 * math.Pi * sample.X
	z := 1.0 - 2.0*sample.Y // z ∈ (-1, 1]
	r := math.Sqrt(math.Max(0, 1.0-z*z))
	return NewVec3(r*math.Cos(a), r*math.Sin(a), z)
}

// SamplePointInUnitBall returns a uniformly distributed point strictly inside the unit ball.
// Points are drawn in the enclosing cube and rejected until one lands inside.
func SamplePointInUnitBall(sampler Sampler) Vec3 {
	for {
		s := sampler.Get3D()
		p := NewVec3(2*s.X-1, 2*s.Y-1, 2*s.Z-1)
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}

// SamplePointInUnitDisk maps a 2D sample to a uniformly distributed point on the unit disk (z = 0).
// The radius is the square root of the sample so the density is uniform in area.
func SamplePointInUnitDisk(sample Vec2) Vec3 {
	theta := 2.0 * math.Pi * sample.X
	r := math.Sqrt(sample.Y)
	return NewVec3(r*math.Cos(theta), r*math.Sin(theta), 0)
}

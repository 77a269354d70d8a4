package core

import (
	"math"
	"math/rand"
	"testing"
)

// fixedSampler replays a fixed sequence of values, cycling when exhausted
type fixedSampler struct {
	values []float64
	index  int
}

func (f *fixedSampler) next() float64 {
	v := f.values[f.index%len(f.values)]
	f.index++
	return v
}

func (f *fixedSampler) Get1D() float64 { return f.next() }
func (f *fixedSampler) Get2D() Vec2    { return NewVec2(f.next(), f.next()) }
func (f *fixedSampler) Get3D() Vec3    { return NewVec3(f.next(), f.next(), f.next()) }

func TestSampleOnUnitSphere_UnitLength(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))

	for i := 0; i < 1000; i++ {
		p := SampleOnUnitSphere(sampler.Get2D())
		if math.Abs(p.Length()-1.0) > 1e-9 {
			t.Fatalf("Sample %d not on unit sphere: length %f", i, p.Length())
		}
	}
}

func TestSampleOnUnitSphere_Poles(t *testing.T) {
	north := SampleOnUnitSphere(NewVec2(0, 0))
	if north.Subtract(NewVec3(0, 0, 1)).Length() > 1e-12 {
		t.Errorf("Expected north pole, got %v", north)
	}

	// z = 1 - 2u, so u -> 1 approaches the south pole
	south := SampleOnUnitSphere(NewVec2(0.25, 1))
	if south.Subtract(NewVec3(0, 0, -1)).Length() > 1e-12 {
		t.Errorf("Expected south pole, got %v", south)
	}
}

func TestSampleOnUnitSphere_Uniform(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(7)))
	const n = 20000

	var mean Vec3
	for i := 0; i < n; i++ {
		mean = mean.Add(SampleOnUnitSphere(sampler.Get2D()))
	}
	mean = mean.Multiply(1.0 / n)

	// A uniform distribution on the sphere has zero mean
	if mean.Length() > 0.03 {
		t.Errorf("Sphere samples biased: mean %v", mean)
	}
}

func TestSamplePointInUnitBall_Inside(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))

	for i := 0; i < 1000; i++ {
		p := SamplePointInUnitBall(sampler)
		if p.LengthSquared() >= 1.0 {
			t.Fatalf("Sample %d outside unit ball: %v", i, p)
		}
	}
}

func TestSamplePointInUnitBall_Rejection(t *testing.T) {
	// First triple maps to the cube corner (1,1,1)-ish and must be rejected;
	// the second maps to the origin.
	sampler := &fixedSampler{values: []float64{0.99, 0.99, 0.99, 0.5, 0.5, 0.5}}

	p := SamplePointInUnitBall(sampler)
	if p.Length() > 1e-12 {
		t.Errorf("Expected origin after one rejection, got %v", p)
	}
	if sampler.index != 6 {
		t.Errorf("Expected 6 draws, got %d", sampler.index)
	}
}

func TestSamplePointInUnitDisk(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))

	insideHalf := 0
	const n = 10000
	for i := 0; i < n; i++ {
		p := SamplePointInUnitDisk(sampler.Get2D())
		if p.Z != 0 {
			t.Fatalf("Disk sample should have z = 0, got %v", p)
		}
		if p.Length() > 1.0+1e-12 {
			t.Fatalf("Disk sample outside unit disk: %v", p)
		}
		if p.Length() < 0.5 {
			insideHalf++
		}
	}

	// Area-uniform: a quarter of samples fall within radius 0.5
	fraction := float64(insideHalf) / n
	if math.Abs(fraction-0.25) > 0.02 {
		t.Errorf("Expected ~25%% of disk samples within r=0.5, got %.3f", fraction)
	}
}

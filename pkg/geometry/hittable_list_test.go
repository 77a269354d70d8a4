package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/material"
)

// recordingShape reports a fixed hit and remembers the tMax it was queried with
type recordingShape struct {
	t        float64
	lastTMax float64
	calls    int
}

func (r *recordingShape) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	r.calls++
	r.lastTMax = tMax
	if r.t <= tMin || r.t >= tMax {
		return nil, false
	}
	return &material.HitRecord{T: r.t, Point: ray.At(r.t)}, true
}

func TestHittableList_Empty(t *testing.T) {
	list := NewHittableList()
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	if hit, isHit := list.Hit(ray, 0.001, math.Inf(1)); isHit || hit != nil {
		t.Errorf("Empty list should not report a hit, got %v", hit)
	}
}

func TestHittableList_OverlappingSpheresNearestWins(t *testing.T) {
	near := material.NewLambertian(core.NewColor(1, 0, 0))
	far := material.NewLambertian(core.NewColor(0, 0, 1))

	// Intervals along the ray overlap: near spans t∈[2,4], far spans t∈[3,7]
	nearSphere := mustSphere(t, core.NewVec3(0, 0, -3), 1.0, near)
	farSphere := mustSphere(t, core.NewVec3(0, 0, -5), 2.0, far)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	orders := map[string]*HittableList{
		"near first": NewHittableList(nearSphere, farSphere),
		"far first":  NewHittableList(farSphere, nearSphere),
	}

	for name, list := range orders {
		t.Run(name, func(t *testing.T) {
			hit, isHit := list.Hit(ray, 0.001, math.Inf(1))
			if !isHit {
				t.Fatal("Expected hit")
			}
			if math.Abs(hit.T-2.0) > 1e-9 {
				t.Errorf("Expected nearest t=2, got %f", hit.T)
			}
			if hit.Material != near {
				t.Error("Expected material of the nearer sphere")
			}
		})
	}

	// Starting inside both spheres the nearest exit wins
	inside := core.NewRay(core.NewVec3(0, 0, -3.5), core.NewVec3(0, 0, -1))
	hit, isHit := NewHittableList(farSphere, nearSphere).Hit(inside, 0.001, math.Inf(1))
	if !isHit || math.Abs(hit.T-0.5) > 1e-9 {
		t.Errorf("Expected exit of near sphere at t=0.5, got %v", hit)
	}
}

func TestHittableList_ShrinksUpperBound(t *testing.T) {
	first := &recordingShape{t: 5}
	second := &recordingShape{t: 3}
	third := &recordingShape{t: 4}
	list := NewHittableList(first, second, third)

	hit, isHit := list.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0)), 0.001, 100)
	if !isHit || hit.T != 3 {
		t.Fatalf("Expected closest hit t=3, got %v", hit)
	}

	if first.lastTMax != 100 {
		t.Errorf("First shape should see the caller's tMax, got %f", first.lastTMax)
	}
	if second.lastTMax != 5 {
		t.Errorf("Second shape should see tMax narrowed to 5, got %f", second.lastTMax)
	}
	if third.lastTMax != 3 {
		t.Errorf("Third shape should see tMax narrowed to 3, got %f", third.lastTMax)
	}
}

func TestHittableList_HitIndex(t *testing.T) {
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	shell := mustSphere(t, core.NewVec3(0, 0, -3), 1.0, material.NewDielectric(1.5))
	twin := mustSphere(t, core.NewVec3(0, 0, -3), 1.0, material.NewLambertian(core.NewColor(0.5, 0.5, 0.5)))
	behind := mustSphere(t, core.NewVec3(0, 0, -10), 1.0, material.NewLambertian(core.NewColor(0.1, 0.1, 0.1)))

	tests := []struct {
		name      string
		list      *HittableList
		wantIndex int
	}{
		{"nearest is last", NewHittableList(behind, shell), 1},
		{"nearest is first", NewHittableList(shell, behind), 0},
		{"coincident surfaces report the earlier shape", NewHittableList(behind, shell, twin), 1},
		{"coincident surfaces in reverse order", NewHittableList(twin, shell, behind), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, index, isHit := tt.list.HitIndex(ray, 0.001, math.Inf(1))
			if !isHit {
				t.Fatal("Expected hit")
			}
			if index != tt.wantIndex {
				t.Errorf("Expected index %d, got %d", tt.wantIndex, index)
			}
			if hit.Material != tt.list.Shapes[index].(*Sphere).Material {
				t.Error("Hit record material does not belong to the reported shape")
			}
		})
	}

	miss := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))
	if _, index, isHit := NewHittableList(shell).HitIndex(miss, 0.001, math.Inf(1)); isHit || index != -1 {
		t.Errorf("Expected a miss with index -1, got index %d", index)
	}
}

func TestHittableList_Add(t *testing.T) {
	list := NewHittableList()
	list.Add(&recordingShape{t: 1})
	list.Add(&recordingShape{t: 2})
	if list.Len() != 2 {
		t.Errorf("Expected 2 shapes, got %d", list.Len())
	}
}

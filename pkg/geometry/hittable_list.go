package geometry

import (
	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/material"
)

// HittableList is a composite shape that owns an ordered list of shapes.
// Order does not affect results: the nearest hit always wins.
type HittableList struct {
	Shapes []Shape
}

// NewHittableList creates a list containing the given shapes
func NewHittableList(shapes ...Shape) *HittableList {
	return &HittableList{Shapes: append([]Shape(nil), shapes...)}
}

// Add appends a shape to the list
func (l *HittableList) Add(shape Shape) {
	l.Shapes = append(l.Shapes, shape)
}

// Len returns the number of shapes in the list
func (l *HittableList) Len() int {
	return len(l.Shapes)
}

// Hit scans every shape, narrowing tMax to the closest hit so far
func (l *HittableList) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	hit, _, isHit := l.HitIndex(ray, tMin, tMax)
	return hit, isHit
}

// HitIndex is Hit that also returns the index in Shapes of the shape that was hit, or -1.
// A later shape must be strictly closer to win, so on a tie the earlier shape is reported.
func (l *HittableList) HitIndex(ray core.Ray, tMin, tMax float64) (*material.HitRecord, int, bool) {
	var closestHit *material.HitRecord
	closestIndex := -1
	closestSoFar := tMax

	for i, shape := range l.Shapes {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
			closestIndex = i
		}
	}

	return closestHit, closestIndex, closestHit != nil
}

package material

import "github.com/df07/go-sphere-tracer/pkg/core"

// sequenceSampler replays a fixed sequence of values, cycling when exhausted
type sequenceSampler struct {
	values []float64
	index  int
}

func (s *sequenceSampler) next() float64 {
	v := s.values[s.index%len(s.values)]
	s.index++
	return v
}

func (s *sequenceSampler) Get1D() float64  { return s.next() }
func (s *sequenceSampler) Get2D() core.Vec2 { return core.NewVec2(s.next(), s.next()) }
func (s *sequenceSampler) Get3D() core.Vec3 {
	return core.NewVec3(s.next(), s.next(), s.next())
}

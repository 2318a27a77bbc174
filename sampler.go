package montepi

import (
	"math/rand"
	"time"
)

// Sampler produces sample points for the estimator. Implementations must be
// callable an unbounded number of times; each call is independent of prior
// calls.
type Sampler interface {
	Next() Point
}

// UniformSampler draws each coordinate independently and uniformly from the
// closed interval [-1, 1].
type UniformSampler struct {
	rng *rand.Rand
}

// NewUniformSampler creates a UniformSampler seeded from the current time.
func NewUniformSampler() *UniformSampler {
	return NewUniformSamplerSeeded(time.Now().UnixNano())
}

// NewUniformSamplerSeeded creates a UniformSampler with a fixed seed so point
// sequences can be reproduced exactly.
func NewUniformSamplerSeeded(seed int64) *UniformSampler {
	return &UniformSampler{rng: rand.New(rand.NewSource(seed))}
}

// Next returns the next uniformly distributed point in [-1,1]×[-1,1].
func (s *UniformSampler) Next() Point {
	return Point{
		X: s.rng.Float64()*2 - 1,
		Y: s.rng.Float64()*2 - 1,
	}
}

// SequenceSampler replays a fixed list of points, cycling when exhausted.
// Used for deterministic tests and scripted demos.
type SequenceSampler struct {
	points []Point
	cursor int
}

// NewSequenceSampler creates a SequenceSampler over the given points.
// The slice is copied; points must be non-empty.
func NewSequenceSampler(points []Point) *SequenceSampler {
	if len(points) == 0 {
		panic("montepi: SequenceSampler requires at least one point")
	}
	cp := make([]Point, len(points))
	copy(cp, points)
	return &SequenceSampler{points: cp}
}

// Next returns the next point in the sequence, wrapping around at the end.
func (s *SequenceSampler) Next() Point {
	p := s.points[s.cursor]
	s.cursor = (s.cursor + 1) % len(s.points)
	return p
}

package wind

import (
	"time"

	"github.com/MichaelTJones/pcg"
)

const (
	DEFAULT_COMPONENT_LIMIT = 5.0

	pcgSequence = 0xda3e39cb94b95bdb
)

// Source produces wind samples for new arrivals.
type Source interface {
	Sample() Vector
}

// UniformSource draws each component independently and uniformly from
// [-Limit, Limit]. Two sources with the same seed produce the same
// sequence.
type UniformSource struct {
	Limit float64
	r     *pcg.PCG32
}

func NewUniformSource(limit float64, seed int64) *UniformSource {
	s := &UniformSource{Limit: limit, r: pcg.NewPCG32()}
	s.Seed(seed)
	return s
}

// NewTimeSeededSource is what the interactive adapters use when the config
// leaves the seed at zero.
func NewTimeSeededSource(limit float64) *UniformSource {
	return NewUniformSource(limit, time.Now().UnixNano())
}

func (s *UniformSource) Seed(seed int64) {
	s.r.Seed(uint64(seed), pcgSequence)
}

func (s *UniformSource) float64() float64 {
	return float64(s.r.Random()) / (1 << 32)
}

func (s *UniformSource) uniform(minF, maxF float64) float64 {
	return minF + s.float64()*(maxF-minF)
}

func (s *UniformSource) Sample() Vector {
	x := s.uniform(-s.Limit, s.Limit)
	y := s.uniform(-s.Limit, s.Limit)
	return NewVector(x, y)
}

// FixedSource replays a list of samples, then repeats calm wind.
type FixedSource struct {
	Samples []Vector
	next    int
}

func (s *FixedSource) Sample() Vector {
	if s.next >= len(s.Samples) {
		return Vector{}
	}
	v := s.Samples[s.next]
	s.next++
	return v
}

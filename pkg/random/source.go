package random

import (
	"math/rand/v2"
	"sync"
	"time"
)

// IntSource supplies uniformly distributed integers from inclusive ranges.
type IntSource interface {
	// Int32 returns a value in [min, max]. When max < min it returns min.
	Int32(min, max int32) int32
	// Uint64 returns a value in [min, max]. When max < min it returns min.
	Uint64(min, max uint64) uint64
}

// Source is an IntSource backed by a PCG generator. It is safe for concurrent use.
type Source struct {
	mu  sync.Mutex
	rng *rand.Rand
}

var _ IntSource = (*Source)(nil)

// NewSource creates a Source. A zero seed picks one from the clock.
func NewSource(seed uint64) *Source {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Source{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Int32 implements IntSource.
func (s *Source) Int32(min, max int32) int32 {
	if max <= min {
		return min
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	span := uint64(int64(max) - int64(min) + 1)
	return int32(int64(min) + int64(s.rng.Uint64N(span)))
}

// Uint64 implements IntSource.
func (s *Source) Uint64(min, max uint64) uint64 {
	if max <= min {
		return min
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	span := max - min
	if span == ^uint64(0) {
		return s.rng.Uint64()
	}
	return min + s.rng.Uint64N(span+1)
}

// Sequence replays a fixed list of values, cycling when exhausted. Values are clamped into the
// requested range. Tests use it to force specific draws.
type Sequence struct {
	mu     sync.Mutex
	values []uint64
	next   int
}

var _ IntSource = (*Sequence)(nil)

// NewSequence creates a Sequence over values.
func NewSequence(values ...uint64) *Sequence {
	return &Sequence{values: values}
}

func (s *Sequence) pop() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

// Int32 implements IntSource. The stored value is returned unclamped so tests can simulate a
// misbehaving source.
func (s *Sequence) Int32(min, max int32) int32 {
	return int32(s.pop())
}

// Uint64 implements IntSource. The stored value is clamped to max.
func (s *Sequence) Uint64(min, max uint64) uint64 {
	v := s.pop()
	if v > max {
		return max
	}
	if v < min {
		return min
	}
	return v
}

package random

import (
	"math/rand"
	"sync"
	"time"
)

// Source wraps a math/rand generator behind the three draw primitives the
// simulation core uses. Seeded sources give reproducible traces as long as
// callers keep their draw order stable.
type Source struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New returns a time-seeded source.
func New() *Source {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a deterministic source for tests and replays.
func NewSeeded(seed int64) *Source {
	return &Source{rng: rand.New(rand.NewSource(seed))}
}

// Uniform draws from [lo, hi).
func (s *Source) Uniform(lo, hi float64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return lo + s.rng.Float64()*(hi-lo)
}

// Gauss draws from a normal distribution with the given mean and stddev.
func (s *Source) Gauss(mean, sigma float64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.NormFloat64()*sigma + mean
}

// Int draws an integer from [lo, hi] inclusive.
func (s *Source) Int(lo, hi int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return lo + s.rng.Intn(hi-lo+1)
}

// Float64 draws from [0, 1).
func (s *Source) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

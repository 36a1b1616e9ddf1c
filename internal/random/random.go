package random

import (
	"math/rand"
	"time"
)

// Source abstracts the randomness behind gambling outcomes so tests can
// supply deterministic sequences and verify exact outcome selection and
// payout math.
type Source interface {
	// Float64 returns a uniform value in [0.0, 1.0)
	Float64() float64
	// IntN returns a uniform value in [0, n)
	IntN(n int) int
}

type mathSource struct {
	rnd *rand.Rand
}

// NewSource returns a Source backed by math/rand with the given seed
func NewSource(seed int64) Source {
	return &mathSource{rnd: rand.New(rand.NewSource(seed))} //nolint:gosec // Game logic randomness, not security critical
}

// NewTimeSeededSource returns a Source seeded from the current time
func NewTimeSeededSource() Source {
	return NewSource(time.Now().UnixNano())
}

func (s *mathSource) Float64() float64 {
	return s.rnd.Float64()
}

func (s *mathSource) IntN(n int) int {
	return s.rnd.Intn(n)
}

// FixedSource is a deterministic Source for tests. It replays the given
// float sequence and returns IntN draws scaled from the same sequence.
type FixedSource struct {
	Values []float64
	next   int
}

func (s *FixedSource) Float64() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.next%len(s.Values)]
	s.next++
	return v
}

func (s *FixedSource) IntN(n int) int {
	return int(s.Float64() * float64(n))
}

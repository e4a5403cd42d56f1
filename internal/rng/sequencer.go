// Package rng provides the deterministic random sequence consumed by room placement.
package rng

import (
	"math"
	"math/rand/v2"

	"github.com/cespare/xxhash/v2"
)

// pcgIncrement is mixed into the second PCG word so that both halves of the
// generator state depend on the seed string.
const pcgIncrement = 0x9e3779b97f4a7c15

// Sequencer produces a reproducible stream of draws from a seed string.
// It is not safe for concurrent use; draws must be strictly ordered.
type Sequencer struct {
	seed  string
	rng   *rand.Rand
	draws int
}

// New returns a sequencer for the given seed. The underlying generator is
// created lazily on the first draw.
func New(seed string) *Sequencer {
	return &Sequencer{seed: seed}
}

// Init seeds the generator. Only the first call has any effect; later calls
// and draws keep advancing the original stream.
func (s *Sequencer) Init(seed string) {
	if s.rng != nil {
		return
	}
	s.seed = seed
	h := xxhash.Sum64String(seed)
	s.rng = rand.New(rand.NewPCG(h, h^pcgIncrement))
}

// Seed returns the seed string the stream was (or will be) created from.
func (s *Sequencer) Seed() string {
	return s.seed
}

// Draws returns how many values have been drawn so far.
func (s *Sequencer) Draws() int {
	return s.draws
}

// NextReal returns the next value of the stream in [0,1).
func (s *Sequencer) NextReal() float64 {
	s.Init(s.seed)
	s.draws++
	return s.rng.Float64()
}

// NextInt returns an integer in [min, max] inclusive.
func (s *Sequencer) NextInt(min, max int) int {
	r := s.NextReal()
	return int(math.Floor(r*float64(max-min+1) + float64(min)))
}

// NextBool returns a fair coin flip.
func (s *Sequencer) NextBool() bool {
	return s.NextInt(0, 1) == 1
}

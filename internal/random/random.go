// Package random provides the injectable random sources used by the
// combat engine and the weighted selectors.
//
// Engines never touch a global generator: callers pass a Source, so a fixed
// seed reproduces every draw.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// Source yields uniform floats in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// New returns a deterministic source for a seed
func New(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// Sequence replays a fixed list of draws, cycling when exhausted.
// Tests use it to force a specific outcome.
type Sequence struct {
	values []float64
	next   int
}

// NewSequence creates a source that returns values in order
func NewSequence(values ...float64) *Sequence {
	return &Sequence{values: values}
}

// Float64 returns the next value of the sequence (0 when empty)
func (s *Sequence) Float64() float64 {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

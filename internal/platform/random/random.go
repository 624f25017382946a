// Package random provides the injected randomness source used by the sampler
// and narrative composers. Injecting a Source lets tests substitute a fixed
// seed for reproducible output.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"sync"
	"time"
)

// Source yields uniform random numbers.
type Source interface {
	// Intn returns a uniform int in [0, n). Panics if n <= 0, matching math/rand.
	Intn(n int) int
	// Float64 returns a uniform float64 in [0, 1).
	Float64() float64
}

// locked serializes access to a rand.Rand so one Source can be shared across
// request handlers.
type locked struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (l *locked) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Intn(n)
}

func (l *locked) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}

// New returns a Source seeded from crypto/rand.
func New() Source {
	return NewSeeded(newSeed())
}

// NewSeeded returns a Source with a fixed seed, for deterministic tests.
func NewSeeded(seed int64) Source {
	return &locked{r: rand.New(rand.NewSource(seed))}
}

// newSeed generates a high-entropy seed, falling back to the clock if the
// system entropy source is unavailable.
func newSeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}

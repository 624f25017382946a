// Package shuffle draws randomized card pools and binds them to sessions.
package shuffle

import "arcana/internal/platform/random"

// Sampler draws fixed-size unique index subsets from the catalog.
type Sampler struct {
	rng random.Source
}

func NewSampler(rng random.Source) *Sampler {
	return &Sampler{rng: rng}
}

// Sample returns min(count, total) distinct indices in [0, total), chosen
// uniformly without replacement. No ordering is guaranteed.
func (s *Sampler) Sample(total, count int) []int {
	if total <= 0 || count <= 0 {
		return []int{}
	}
	if count > total {
		count = total
	}

	// Partial Fisher-Yates: only the first count positions need settling.
	indices := make([]int, total)
	for i := range indices {
		indices[i] = i
	}
	for i := 0; i < count; i++ {
		j := i + s.rng.Intn(total-i)
		indices[i], indices[j] = indices[j], indices[i]
	}
	return indices[:count]
}

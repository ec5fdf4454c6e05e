package selector

import (
	"github.com/napolitain/idle-empire/internal/random"
)

// Weighted is a pool entry with a spawn weight
type Weighted interface {
	Weight() float64
}

// Select draws one entry from the pool with probability proportional to its
// weight, considering only entries accepted by eligible (nil accepts all) and
// with a positive weight. It returns false when no entry qualifies.
//
// The draw is cumulative: r = rng.Float64() * total, then weights are
// subtracted in pool order until r <= 0. Floating-point leftovers fall back
// to the last eligible entry.
func Select[T Weighted](pool []T, eligible func(T) bool, rng random.Source) (T, bool) {
	var zero T

	candidates := make([]T, 0, len(pool))
	total := 0.0
	for _, entry := range pool {
		if eligible != nil && !eligible(entry) {
			continue
		}
		w := entry.Weight()
		if w <= 0 {
			continue
		}
		candidates = append(candidates, entry)
		total += w
	}

	if len(candidates) == 0 {
		return zero, false
	}

	r := rng.Float64() * total
	for _, entry := range candidates {
		r -= entry.Weight()
		if r <= 0 {
			return entry, true
		}
	}

	return candidates[len(candidates)-1], true
}

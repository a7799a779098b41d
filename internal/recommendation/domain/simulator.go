package domain

import (
	"math"
	"math/rand"
	"sync"
)

// Simulator post-processes a ranked list so that only a configured
// fraction of the output is guaranteed top-ranked; the remainder is
// sampled at random from the lower-ranked pool. This is deliberate
// product behavior: the recommender must be demonstrably imperfect.
type Simulator struct {
	rate float64

	mu  sync.Mutex // rand.Rand is not safe for concurrent use
	rng *rand.Rand
}

// NewSimulator creates a simulator with the given accuracy rate and
// random source. The source is injectable so tests can pin outputs.
func NewSimulator(rate float64, rng *rand.Rand) *Simulator {
	return &Simulator{rate: rate, rng: rng}
}

// Apply returns up to limit items: floor(limit*rate) top-ranked entries
// in order, then randomly sampled lower-ranked ones. Lists shorter than
// limit are returned whole.
func (s *Simulator) Apply(ranked []ScoredProduct, limit int) []ScoredProduct {
	if limit <= 0 || len(ranked) == 0 {
		return nil
	}

	accurateCount := int(math.Floor(float64(limit) * s.rate))
	if accurateCount > len(ranked) {
		accurateCount = len(ranked)
	}

	result := make([]ScoredProduct, 0, limit)
	result = append(result, ranked[:accurateCount]...)

	pool := ranked[accurateCount:]
	randomCount := limit - accurateCount
	if randomCount > len(pool) {
		randomCount = len(pool)
	}

	s.mu.Lock()
	order := s.rng.Perm(len(pool))
	s.mu.Unlock()

	for _, i := range order[:randomCount] {
		result = append(result, pool[i])
	}

	if len(result) > limit {
		result = result[:limit]
	}
	return result
}

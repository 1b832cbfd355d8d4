package trivia

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Selector draws quiz questions uniformly from the part of a pool not yet asked.
// It keeps no quiz history; callers pass the asked ids on every call.
type Selector struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSelector wraps src. The source is only touched under the selector's lock.
func NewSelector(src rand.Source) *Selector {
	return &Selector{rng: rand.New(src)}
}

// NewSeededSelector returns a reproducible selector; seed 0 seeds from the clock.
func NewSeededSelector(seed uint64) *Selector {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return NewSelector(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Next picks a question from pool whose id is not in asked. It reports false once
// every pool question has been asked, which ends the quiz round.
func (s *Selector) Next(pool []Question, asked []int64) (Question, bool) {
	seen := make(map[int64]struct{}, len(asked))
	for _, id := range asked {
		seen[id] = struct{}{}
	}

	unseen := make([]Question, 0, len(pool))
	for _, q := range pool {
		if _, ok := seen[q.ID]; !ok {
			unseen = append(unseen, q)
		}
	}
	if len(unseen) == 0 {
		return Question{}, false
	}

	s.mu.Lock()
	i := s.rng.IntN(len(unseen))
	s.mu.Unlock()
	return unseen[i], true
}

package hint

import (
	"github.com/wordcrumble/wordcrumble-go/internal/dependencies/random"
	"github.com/wordcrumble/wordcrumble-go/internal/model"
)

// Candidate is a playable word together with the path that spells it
// and the score it would earn against the board's current wear state.
type Candidate struct {
	Word  string
	Path  model.Path
	Score int
}

// Strategy defines how a hint is chosen from the playable candidates.
// Candidates arrive sorted by descending score.
type Strategy interface {
	Choose(candidates []Candidate) (Candidate, bool)
}

// GreedyStrategy picks the highest-scoring candidate
type GreedyStrategy struct{}

// NewGreedyStrategy creates a new GreedyStrategy
func NewGreedyStrategy() *GreedyStrategy {
	return &GreedyStrategy{}
}

// Choose returns the top-scoring candidate
func (s *GreedyStrategy) Choose(candidates []Candidate) (Candidate, bool) {
	if len(candidates) == 0 {
		return Candidate{}, false
	}
	return candidates[0], true
}

// RandomStrategy picks a uniformly random candidate
type RandomStrategy struct {
	random random.Random
}

// NewRandomStrategy creates a new RandomStrategy
func NewRandomStrategy(rnd random.Random) *RandomStrategy {
	return &RandomStrategy{random: rnd}
}

// Choose returns a random candidate
func (s *RandomStrategy) Choose(candidates []Candidate) (Candidate, bool) {
	if len(candidates) == 0 {
		return Candidate{}, false
	}
	return candidates[s.random.Intn(len(candidates))], true
}

package hint_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/wordcrumble/wordcrumble-go/internal/dependencies/mocks"
	"github.com/wordcrumble/wordcrumble-go/internal/services/hint"
)

type StrategySuite struct {
	suite.Suite
	candidates []hint.Candidate
}

func TestStrategySuite(t *testing.T) {
	suite.Run(t, new(StrategySuite))
}

func (s *StrategySuite) SetupTest() {
	// Sorted by descending score, as Candidates produces them
	s.candidates = []hint.Candidate{
		{Word: "rate", Score: 500},
		{Word: "cat", Score: 350},
		{Word: "tea", Score: 200},
	}
}

func (s *StrategySuite) TestGreedyPicksFirst() {
	chosen, ok := hint.NewGreedyStrategy().Choose(s.candidates)
	s.True(ok)
	s.Equal("rate", chosen.Word)
}

func (s *StrategySuite) TestGreedyWithNoCandidates() {
	_, ok := hint.NewGreedyStrategy().Choose(nil)
	s.False(ok)
}

func (s *StrategySuite) TestRandomPicksByIndex() {
	mockRandom := mocks.NewMockRandom()
	strategy := hint.NewRandomStrategy(mockRandom)

	mockRandom.QueueIntn(2)
	chosen, ok := strategy.Choose(s.candidates)
	s.True(ok)
	s.Equal("tea", chosen.Word)

	mockRandom.QueueIntn(0)
	chosen, ok = strategy.Choose(s.candidates)
	s.True(ok)
	s.Equal("rate", chosen.Word)
}

func (s *StrategySuite) TestRandomWithNoCandidates() {
	mockRandom := mocks.NewMockRandom()
	_, ok := hint.NewRandomStrategy(mockRandom).Choose(nil)
	s.False(ok)
}

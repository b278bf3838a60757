package scoring

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/wordcrumble/wordcrumble-go/internal/model"
)

type ServiceSuite struct {
	suite.Suite
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.service = NewDefault()
}

func path(n int) model.Path {
	p := make(model.Path, n)
	for i := range p {
		p[i] = model.Position{Row: 0, Col: i}
	}
	return p
}

func levels(level, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = level
	}
	return out
}

func (s *ServiceSuite) TestFreshThreeLetterWord() {
	// base(3)=100, stress bonus 3*0, no depth, no letter bonus,
	// neutral multiplier: 100 rounds to 100
	score := s.service.Score("cat", path(3), levels(model.StressFresh, 3), levels(0, 3))
	s.Equal(100, score)
}

func (s *ServiceSuite) TestScoreIsDeterministic() {
	p := path(4)
	stress := []int{2, 1, 0, 2}
	regens := []int{0, 1, 0, 2}

	first := s.service.Score("word", p, stress, regens)
	for i := 0; i < 10; i++ {
		s.Equal(first, s.service.Score("word", p, stress, regens))
	}
}

func (s *ServiceSuite) TestScoreIsMultipleOfRoundingUnit() {
	words := []string{"cat", "word", "quiz", "crumble", "ox"}
	for i, w := range words {
		p := path(len(w))
		score := s.service.Score(w, p, levels(i%3, len(w)), levels(i%4, len(w)))
		s.GreaterOrEqual(score, 0)
		s.Zero(score%25, "score %d for %q is not a multiple of 25", score, w)
	}
}

func (s *ServiceSuite) TestStressBonusRewardsWornTiles() {
	fresh := s.service.Score("cat", path(3), levels(model.StressFresh, 3), levels(0, 3))
	worn := s.service.Score("cat", path(3), []int{1, 2, 2}, levels(0, 3))
	s.Greater(worn, fresh)
}

func (s *ServiceSuite) TestAllRedBeatsMixed() {
	mixed := s.service.Score("cat", path(3), []int{0, 1, 0}, levels(0, 3))
	allRed := s.service.Score("cat", path(3), levels(model.StressRed, 3), levels(0, 3))
	s.Greater(allRed, mixed)
}

func (s *ServiceSuite) TestAllRedMultiplier() {
	// base(3)=100 + 3*100 stress = 400, doubled = 800
	score := s.service.Score("cat", path(3), levels(model.StressRed, 3), levels(0, 3))
	s.Equal(800, score)
}

func (s *ServiceSuite) TestAllSameWornMultiplier() {
	// base(3)=100 + 3*50 = 250, *1.5 = 375
	score := s.service.Score("cat", path(3), levels(model.StressWorn, 3), levels(0, 3))
	s.Equal(375, score)
}

func (s *ServiceSuite) TestAllFreshIsNeutral() {
	// A fresh board is the default state, not a combo
	score := s.service.Score("cat", path(3), levels(model.StressFresh, 3), levels(0, 3))
	s.Equal(100, score)
}

func (s *ServiceSuite) TestDepthBonus() {
	// base 100 + depth 0+50+100 = 250
	score := s.service.Score("cat", path(3), levels(model.StressFresh, 3), []int{0, 1, 2})
	s.Equal(250, score)
}

func (s *ServiceSuite) TestDepthBonusFallbackBeyondTable() {
	// regeneration count 9 is past the table: fallback 200 per cell
	score := s.service.Score("cat", path(3), levels(model.StressFresh, 3), []int{9, 9, 9})
	s.Equal(700, score)
}

func (s *ServiceSuite) TestLetterBonusForRareLetters() {
	plain := s.service.Score("tin", path(3), levels(model.StressFresh, 3), levels(0, 3))
	rare := s.service.Score("zax", path(3), levels(model.StressFresh, 3), levels(0, 3))
	s.Greater(rare, plain)
}

func (s *ServiceSuite) TestBaseScoreGrowsWithLength() {
	three := s.service.Score("cat", path(3), levels(model.StressFresh, 3), levels(0, 3))
	five := s.service.Score("crams", path(5), levels(model.StressFresh, 5), levels(0, 5))
	s.Greater(five, three)
}

func (s *ServiceSuite) TestLengthBeyondTableUsesLongestEntry() {
	word := "extraordinarily" // 15 letters, past the table
	p := path(len(word))
	score := s.service.Score(word, p, levels(model.StressFresh, len(word)), levels(0, len(word)))

	tables := s.service.Tables()
	s.GreaterOrEqual(score, tables.Base[12])
}

func (s *ServiceSuite) TestTooShortLengthScoresZeroBase() {
	// Length gates live upstream; the table itself yields 0 for
	// unknown short lengths.
	s.Equal(0, s.service.Tables().baseFor(2))
	s.Equal(0, s.service.Tables().baseFor(0))
}

func (s *ServiceSuite) TestRoundingHalfUp() {
	// 12.5 quotient rounds up: raw 312.5 -> 325
	s.Equal(325, roundToMultiple(312.5, 25))
	s.Equal(300, roundToMultiple(312.4, 25))
	s.Equal(0, roundToMultiple(12.4, 25))
	s.Equal(25, roundToMultiple(12.5, 25))
}

func (s *ServiceSuite) TestScoreFreshMatchesManualFreshScore() {
	p := path(4)
	manual := s.service.Score("word", p, levels(model.StressFresh, 4), levels(0, 4))
	s.Equal(manual, s.service.ScoreFresh("word", p))
}

func (s *ServiceSuite) TestIsLetterOnly() {
	s.True(IsLetterOnly("cat"))
	s.True(IsLetterOnly("CAT"))
	s.False(IsLetterOnly(""))
	s.False(IsLetterOnly("c4t"))
	s.False(IsLetterOnly("café"))
}

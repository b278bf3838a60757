package hint

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/wordcrumble/wordcrumble-go/internal/dependencies/random"
	"github.com/wordcrumble/wordcrumble-go/internal/model"
	"github.com/wordcrumble/wordcrumble-go/internal/services/dictionary"
	"github.com/wordcrumble/wordcrumble-go/internal/services/scoring"
)

// Strategy names accepted by Hint
const (
	StrategyGreedy = "greedy"
	StrategyRandom = "random"
)

// Service finds playable words on the current board and suggests one.
type Service struct {
	dict       dictionary.ServiceInterface
	scorer     scoring.ServiceInterface
	strategies map[string]Strategy
	logger     *slog.Logger
}

// NewService creates a new hint Service
func NewService(
	dict dictionary.ServiceInterface,
	scorer scoring.ServiceInterface,
	rnd random.Random,
	logger *slog.Logger,
) *Service {
	return &Service{
		dict:   dict,
		scorer: scorer,
		strategies: map[string]Strategy{
			StrategyGreedy: NewGreedyStrategy(),
			StrategyRandom: NewRandomStrategy(rnd),
		},
		logger: logger.With(slog.String("service", "hint")),
	}
}

// Hint suggests a playable word for the active session. An empty
// strategy name means greedy.
func (s *Service) Hint(session *model.Session, strategyName string) (*Candidate, error) {
	if session == nil || session.Board == nil {
		return nil, model.ErrMissingBoardData
	}
	if !session.Active {
		return nil, model.ErrNoActiveGame
	}
	if !s.dict.IsLoaded() {
		return nil, model.ErrDictionaryNotLoaded
	}

	if strategyName == "" {
		strategyName = StrategyGreedy
	}
	strategy, ok := s.strategies[strategyName]
	if !ok {
		return nil, fmt.Errorf("unknown hint strategy %q", strategyName)
	}

	candidates := s.Candidates(session.Board, session.HasUsed)
	chosen, ok := strategy.Choose(candidates)
	if !ok {
		return nil, model.ErrNoHintAvailable
	}

	s.logger.Debug("hint chosen",
		slog.String("word", chosen.Word),
		slog.Int("score", chosen.Score),
		slog.String("strategy", strategyName),
		slog.Int("candidates", len(candidates)))

	return &chosen, nil
}

// Candidates enumerates every dictionary word playable on the board
// that the used filter does not exclude, best path per word, sorted by
// descending score then alphabetically.
func (s *Service) Candidates(b *model.Board, used func(string) bool) []Candidate {
	byWord := make(map[string]Candidate)

	var walk func(pos model.Position, path model.Path, prefix string)
	walk = func(pos model.Position, path model.Path, prefix string) {
		prefix += strings.ToLower(string(b.Letter(pos)))
		if !s.dict.HasPrefix(prefix) {
			return
		}
		path = append(path, pos)

		if len(prefix) >= dictionary.MinWordLength && s.dict.Contains(prefix) {
			if used == nil || !used(prefix) {
				score := s.scorer.Score(prefix, path, stressAlong(b, path), regensAlong(b, path))
				if prev, ok := byWord[prefix]; !ok || score > prev.Score {
					byWord[prefix] = Candidate{Word: prefix, Path: path.Clone(), Score: score}
				}
			}
		}

		for _, next := range pos.Neighbors(b.Size) {
			if !path.Contains(next) {
				walk(next, path, prefix)
			}
		}
	}

	for row := 0; row < b.Size; row++ {
		for col := 0; col < b.Size; col++ {
			walk(model.Position{Row: row, Col: col}, nil, "")
		}
	}

	candidates := make([]Candidate, 0, len(byWord))
	for _, c := range byWord {
		candidates = append(candidates, c)
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return candidates[i].Word < candidates[j].Word
	})
	return candidates
}

func stressAlong(b *model.Board, path model.Path) []int {
	stress := make([]int, len(path))
	for i, pos := range path {
		stress[i] = b.StressAt(pos)
	}
	return stress
}

func regensAlong(b *model.Board, path model.Path) []int {
	regens := make([]int, len(path))
	for i, pos := range path {
		regens[i] = b.RegenAt(pos)
	}
	return regens
}

// ServiceInterface defines the hint service contract
type ServiceInterface interface {
	Hint(session *model.Session, strategyName string) (*Candidate, error)
	Candidates(b *model.Board, used func(string) bool) []Candidate
}

var _ ServiceInterface = (*Service)(nil)

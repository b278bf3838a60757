package board

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"strings"

	"github.com/wordcrumble/wordcrumble-go/internal/model"
	"github.com/wordcrumble/wordcrumble-go/internal/services/dictionary"
	"github.com/wordcrumble/wordcrumble-go/internal/services/scoring"
	"github.com/wordcrumble/wordcrumble-go/internal/storage"
)

// Service produces game boards and validates moves against them.
// Seeded boards are cached in storage so every request for the same
// seed sees an identical grid.
type Service struct {
	storage   storage.Storage
	dict      dictionary.ServiceInterface
	scorer    scoring.ServiceInterface
	generator *Generator
	logger    *slog.Logger
}

// NewService creates a board service
func NewService(store storage.Storage, dict dictionary.ServiceInterface, scorer scoring.ServiceInterface, logger *slog.Logger) *Service {
	return &Service{
		storage:   store,
		dict:      dict,
		scorer:    scorer,
		generator: NewGenerator(dict),
		logger:    logger,
	}
}

// Generate returns the board for the given seed, generating and
// caching it on first request.
func (s *Service) Generate(ctx context.Context, req GenerationRequest, seed int64) (*model.GeneratedBoard, error) {
	if !s.dict.IsLoaded() {
		return nil, model.ErrDictionaryNotLoaded
	}

	cached, err := s.storage.GetGeneratedBoard(ctx, seed)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, model.ErrBoardNotFound) {
		return nil, err
	}

	rng := rand.New(rand.NewSource(seed))
	generated := s.generator.Generate(req, rng)

	if err := s.storage.SaveGeneratedBoard(ctx, seed, generated); err != nil {
		// A stale cache only costs regeneration next time
		s.logger.Warn("failed to cache generated board",
			slog.Int64("seed", seed),
			slog.String("error", err.Error()),
		)
	}

	s.logger.Info("board generated",
		slog.Int64("seed", seed),
		slog.Int("size", req.Size),
		slog.Int("words", len(generated.Words)),
		slog.Float64("richness", generated.Richness),
	)
	return generated, nil
}

// GenerateFromWords builds an uncached board constrained to the given
// word list.
func (s *Service) GenerateFromWords(size int, words []string, seed int64) (*model.GeneratedBoard, error) {
	rng := rand.New(rand.NewSource(seed))
	generated := s.generator.GenerateFromWords(size, words, dictionary.MinWordLength, rng)
	if generated == nil {
		return nil, model.ErrUnplaceableWords
	}
	return generated, nil
}

// FindWords lists every dictionary word traceable on the grid
func (s *Service) FindWords(grid [][]rune) ([]string, error) {
	if !s.dict.IsLoaded() {
		return nil, model.ErrDictionaryNotLoaded
	}
	return s.generator.FindWords(grid, dictionary.MinWordLength), nil
}

// MoveValidation is the outcome of checking a path against a grid
type MoveValidation struct {
	Word   string             `json:"word"`
	Valid  bool               `json:"valid"`
	Reason model.RejectReason `json:"reason,omitempty"`
	Score  int                `json:"score,omitempty"`
}

// ValidateMove checks a candidate path against a grid. Structural
// problems (out of bounds, repeated cells, non-adjacent steps) return
// ErrInvalidPath; word-level rejections come back in the result. A
// valid move carries its fresh-board score.
func (s *Service) ValidateMove(grid [][]rune, path model.Path) (MoveValidation, error) {
	if !s.dict.IsLoaded() {
		return MoveValidation{}, model.ErrDictionaryNotLoaded
	}

	b := model.NewBoard(grid, 0)
	if !path.Valid(b) {
		return MoveValidation{}, model.ErrInvalidPath
	}

	word := strings.ToLower(b.Word(path))
	result := MoveValidation{Word: word}

	switch {
	case len(word) < dictionary.MinWordLength:
		result.Reason = model.RejectTooShort
	case !s.dict.Contains(word):
		result.Reason = model.RejectNotAWord
	default:
		result.Valid = true
		result.Score = s.scorer.ScoreFresh(word, path)
	}
	return result, nil
}

// Interface for dependency injection
type ServiceInterface interface {
	Generate(ctx context.Context, req GenerationRequest, seed int64) (*model.GeneratedBoard, error)
	GenerateFromWords(size int, words []string, seed int64) (*model.GeneratedBoard, error)
	FindWords(grid [][]rune) ([]string, error)
	ValidateMove(grid [][]rune, path model.Path) (MoveValidation, error)
}

var _ ServiceInterface = (*Service)(nil)

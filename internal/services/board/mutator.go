package board

import (
	"log/slog"

	"github.com/wordcrumble/wordcrumble-go/internal/dependencies/random"
	"github.com/wordcrumble/wordcrumble-go/internal/model"
)

// Mutator applies the wear-and-crumble rule to a board after each
// accepted word.
type Mutator struct {
	random random.Random
	logger *slog.Logger
}

// NewMutator creates a board mutator
func NewMutator(rnd random.Random, logger *slog.Logger) *Mutator {
	return &Mutator{random: rnd, logger: logger}
}

// Regeneration describes one crumbled cell that received a new letter
type Regeneration struct {
	Cell      model.Position
	OldLetter rune
	NewLetter rune
	Count     int
}

// ApplyWord wears down every cell of an accepted word's path. Cells
// already at stress 0 before this word crumble: their regeneration
// counter increments, the letter is replaced deterministically from
// the board seed, and their stress resets to fresh. Returns the
// regenerations in path order.
func (m *Mutator) ApplyWord(board *model.Board, path model.Path) []Regeneration {
	var regens []Regeneration

	for _, pos := range path {
		level := board.Stress[pos.Row][pos.Col]

		if level > model.StressRed {
			board.Stress[pos.Row][pos.Col] = level - 1
			continue
		}

		// Reusing a maximally stressed cell crumbles it
		count := board.Regens[pos.Row][pos.Col] + 1
		board.Regens[pos.Row][pos.Col] = count

		old := board.Cells[pos.Row][pos.Col]
		replacement := m.replacement(board, pos, count, old)
		board.Cells[pos.Row][pos.Col] = replacement
		board.Stress[pos.Row][pos.Col] = model.StressFresh

		regens = append(regens, Regeneration{
			Cell:      pos,
			OldLetter: old,
			NewLetter: replacement,
			Count:     count,
		})

		m.logger.Debug("cell regenerated",
			slog.Int("row", pos.Row),
			slog.Int("col", pos.Col),
			slog.Int("count", count),
			slog.String("old", string(old)),
			slog.String("new", string(replacement)),
		)
	}

	return regens
}

func (m *Mutator) replacement(board *model.Board, pos model.Position, count int, original rune) rune {
	if board.Seed != 0 {
		return ReplacementLetter(board.Seed, pos.Row, pos.Col, count, original)
	}
	// Degenerate path: board arrived without a seed
	return FallbackLetter(m.random, original)
}

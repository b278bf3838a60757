package scoring

import (
	"strings"
	"unicode"

	"github.com/wordcrumble/wordcrumble-go/internal/model"
)

// Service computes word scores. Score is a pure function of its
// inputs; the service only carries the constant tables.
type Service struct {
	tables Tables
}

// New creates a scoring service with the given tables
func New(tables Tables) *Service {
	return &Service{tables: tables}
}

// NewDefault creates a scoring service with the standard constants
func NewDefault() *Service {
	return New(DefaultTables())
}

// Tables returns the constants in use
func (s *Service) Tables() Tables {
	return s.tables
}

// Score computes the score for a word traced along path. stress and
// regens give each path cell's stress level and regeneration count at
// scoring time (parallel to path). The result is a non-negative
// multiple of the rounding unit.
//
//	raw = (base + stressBonus + depthBonus + letterBonus) * multiplier
//
// rounded half-up to the nearest multiple of Tables.RoundTo.
func (s *Service) Score(word string, path model.Path, stress []int, regens []int) int {
	base := s.tables.baseFor(len(word))

	stressBonus := 0
	for _, level := range stress {
		if level >= 0 && level < len(s.tables.StressBonus) {
			stressBonus += s.tables.StressBonus[level]
		}
	}

	depthBonus := 0
	for _, count := range regens {
		depthBonus += s.tables.depthFor(count)
	}

	letterBonus := 0
	for _, ch := range strings.ToUpper(word) {
		letterBonus += s.tables.LetterBonus[ch]
	}

	multiplier := s.multiplierFor(stress)
	raw := float64(base+stressBonus+depthBonus+letterBonus) * multiplier

	return roundToMultiple(raw, s.tables.RoundTo)
}

// ScoreFresh scores a word on an untouched board: every cell fresh,
// no regenerations. Used by move validation, where no session state
// exists.
func (s *Service) ScoreFresh(word string, path model.Path) int {
	stress := make([]int, len(path))
	regens := make([]int, len(path))
	for i := range stress {
		stress[i] = model.StressFresh
	}
	return s.Score(word, path, stress, regens)
}

// multiplierFor picks the combo multiplier: AllRed when every cell is
// maximally stressed, AllSame when all cells share another worn
// level. Mixed levels and all-fresh paths get the neutral multiplier;
// fresh tiles are the default state, not a combo.
func (s *Service) multiplierFor(stress []int) float64 {
	if len(stress) == 0 {
		return s.tables.MixedMultiplier
	}
	shared := stress[0]
	for _, level := range stress[1:] {
		if level != shared {
			return s.tables.MixedMultiplier
		}
	}
	switch shared {
	case model.StressRed:
		return s.tables.AllRedMultiplier
	case model.StressFresh:
		return s.tables.MixedMultiplier
	default:
		return s.tables.AllSameMultiplier
	}
}

// roundToMultiple rounds raw to the nearest multiple of unit,
// half-up on the quotient.
func roundToMultiple(raw float64, unit int) int {
	if unit <= 0 {
		return int(raw)
	}
	quotient := raw / float64(unit)
	return int(quotient+0.5) * unit
}

// IsLetterOnly reports whether word is entirely ASCII letters.
func IsLetterOnly(word string) bool {
	if word == "" {
		return false
	}
	for _, ch := range word {
		if ch > unicode.MaxASCII || !unicode.IsLetter(ch) {
			return false
		}
	}
	return true
}

// Interface for dependency injection
type ServiceInterface interface {
	Score(word string, path model.Path, stress []int, regens []int) int
	ScoreFresh(word string, path model.Path) int
	Tables() Tables
}

var _ ServiceInterface = (*Service)(nil)

package model

import "time"

// SessionID uniquely identifies a game session
type SessionID string

// Session is one timed play-through of a daily board. All state is
// owned by the single logical game loop; nothing here is shared across
// goroutines.
type Session struct {
	ID    SessionID
	Day   string
	Board *Board

	// Active gates the acceptance pipeline. It flips to false when the
	// timer reaches zero or the session ends.
	Active bool

	// RemainingSeconds counts down one per timer tick.
	RemainingSeconds int

	// UsedWords holds every word accepted this session, lowercase.
	UsedWords map[string]struct{}

	// Words are the accepted words in play order.
	Words []WordResult

	TotalScore int
	StartedAt  time.Time
	UpdatedAt  time.Time
}

// HasUsed reports whether word (lowercase) was already accepted.
func (s *Session) HasUsed(word string) bool {
	_, ok := s.UsedWords[word]
	return ok
}

// MaxWordScore returns the highest single-word score so far.
func (s *Session) MaxWordScore() int {
	max := 0
	for _, w := range s.Words {
		if w.Score > max {
			max = w.Score
		}
	}
	return max
}

// WordResult records one accepted word with the stress levels the
// path cells had at scoring time.
type WordResult struct {
	Word   string `json:"word"`
	Score  int    `json:"score"`
	Stress []int  `json:"stress"`
}

// RejectReason tags why a submitted word was not accepted.
type RejectReason string

const (
	RejectTooShort    RejectReason = "too_short"
	RejectNotAWord    RejectReason = "not_a_word"
	RejectAlreadyUsed RejectReason = "already_used"
)

// DayResult is the persisted outcome of a finished session, keyed by
// the day identifier.
type DayResult struct {
	ID         string       `json:"id"`
	Day        string       `json:"day"`
	Words      []WordResult `json:"words"`
	MaxScore   int          `json:"max_score"`
	TotalScore int          `json:"total_score"`
	WordCount  int          `json:"word_count"`
	FinishedAt time.Time    `json:"finished_at"`
}

// DailyBoard is the value supplied by the board service for one day.
type DailyBoard struct {
	Grid          [][]rune `json:"grid"`
	Seed          int64    `json:"seed"`
	Day           string   `json:"day"`
	TimerDuration int      `json:"timer_duration"`
}

// GeneratedBoard is a generated grid with its analysis, cached by seed.
type GeneratedBoard struct {
	Grid     [][]rune `json:"grid"`
	Richness float64  `json:"richness"`
	Words    []string `json:"words"`
}

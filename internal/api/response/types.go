package response

import (
	"time"

	"github.com/wordcrumble/wordcrumble-go/internal/model"
	"github.com/wordcrumble/wordcrumble-go/internal/services/daily"
	"github.com/wordcrumble/wordcrumble-go/internal/services/hint"
)

// DailyBoard is today's board as served to clients
type DailyBoard struct {
	Grid          []string `json:"grid"`
	Seed          int64    `json:"seed"`
	Day           string   `json:"day"`
	TimerDuration int      `json:"timer_duration"`
}

// DailyBoardFrom builds the daily board response
func DailyBoardFrom(info daily.DayInfo, grid [][]rune) DailyBoard {
	return DailyBoard{
		Grid:          gridRows(grid),
		Seed:          info.Seed,
		Day:           info.Day,
		TimerDuration: info.TimerDuration,
	}
}

// GeneratedBoard is a generated grid with its analysis
type GeneratedBoard struct {
	Grid     []string `json:"grid"`
	Richness float64  `json:"richness"`
	Words    []string `json:"words"`
}

// GeneratedBoardFromModel converts model.GeneratedBoard
func GeneratedBoardFromModel(b *model.GeneratedBoard) GeneratedBoard {
	return GeneratedBoard{
		Grid:     gridRows(b.Grid),
		Richness: b.Richness,
		Words:    b.Words,
	}
}

// Dictionary is the versioned word list
type Dictionary struct {
	Version int      `json:"version"`
	Words   []string `json:"words"`
}

// DictionaryVersion carries just the version number, for cheap polls
type DictionaryVersion struct {
	Version int `json:"version"`
}

// WordResult is one accepted word
type WordResult struct {
	Word   string `json:"word"`
	Score  int    `json:"score"`
	Stress []int  `json:"stress"`
}

// WordResultFromModel converts model.WordResult
func WordResultFromModel(w model.WordResult) WordResult {
	return WordResult{Word: w.Word, Score: w.Score, Stress: w.Stress}
}

// GameState is the session as seen by the client
type GameState struct {
	ID               string       `json:"id"`
	Day              string       `json:"day"`
	Active           bool         `json:"active"`
	RemainingSeconds int          `json:"remaining_seconds"`
	Board            []string     `json:"board"`
	Stress           [][]int      `json:"stress"`
	Regens           [][]int      `json:"regens"`
	TotalScore       int          `json:"total_score"`
	Words            []WordResult `json:"words"`
}

// GameStateFromModel converts a session to its client view
func GameStateFromModel(s *model.Session) GameState {
	words := make([]WordResult, len(s.Words))
	for i, w := range s.Words {
		words[i] = WordResultFromModel(w)
	}
	return GameState{
		ID:               string(s.ID),
		Day:              s.Day,
		Active:           s.Active,
		RemainingSeconds: s.RemainingSeconds,
		Board:            s.Board.Rows(),
		Stress:           s.Board.Stress,
		Regens:           s.Board.Regens,
		TotalScore:       s.TotalScore,
		Words:            words,
	}
}

// DayResult is a finished day's outcome
type DayResult struct {
	ID         string       `json:"id"`
	Day        string       `json:"day"`
	Words      []WordResult `json:"words"`
	MaxScore   int          `json:"max_score"`
	TotalScore int          `json:"total_score"`
	WordCount  int          `json:"word_count"`
	FinishedAt time.Time    `json:"finished_at"`
}

// DayResultFromModel converts model.DayResult
func DayResultFromModel(r *model.DayResult) DayResult {
	words := make([]WordResult, len(r.Words))
	for i, w := range r.Words {
		words[i] = WordResultFromModel(w)
	}
	return DayResult{
		ID:         r.ID,
		Day:        r.Day,
		Words:      words,
		MaxScore:   r.MaxScore,
		TotalScore: r.TotalScore,
		WordCount:  r.WordCount,
		FinishedAt: r.FinishedAt,
	}
}

// Cell is one grid coordinate
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Hint is a suggested move
type Hint struct {
	Word  string `json:"word"`
	Path  []Cell `json:"path"`
	Score int    `json:"score"`
}

// HintFromCandidate converts a hint candidate
func HintFromCandidate(c *hint.Candidate) Hint {
	path := make([]Cell, len(c.Path))
	for i, pos := range c.Path {
		path[i] = Cell{Row: pos.Row, Col: pos.Col}
	}
	return Hint{Word: c.Word, Path: path, Score: c.Score}
}

func gridRows(grid [][]rune) []string {
	rows := make([]string, len(grid))
	for i, row := range grid {
		rows[i] = string(row)
	}
	return rows
}

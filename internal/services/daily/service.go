package daily

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"time"

	"github.com/wordcrumble/wordcrumble-go/internal/dependencies/clock"
)

// dayFormat is the canonical day identifier, e.g. "2026-08-25"
const dayFormat = "2006-01-02"

// rolloverHour is when the game day flips to the next date. An
// evening reset suits play better than midnight.
const rolloverHour = 20

// Config controls the daily schedule. Fridays get their own board
// size and timer.
type Config struct {
	Salt           string
	BoardSize      int
	TargetRichness float64
	TimerDuration  int

	FridayBoardSize     int
	FridayTimerDuration int

	// DayOffsetDays shifts the game date, for previewing future boards
	DayOffsetDays int
}

// DefaultConfig returns the standard daily schedule
func DefaultConfig() Config {
	return Config{
		Salt:                "local-salt",
		BoardSize:           4,
		TargetRichness:      0.9,
		TimerDuration:       90,
		FridayBoardSize:     4,
		FridayTimerDuration: 90,
	}
}

// DayInfo is everything the daily schedule determines for one day
type DayInfo struct {
	Day           string `json:"day"`
	Seed          int64  `json:"seed"`
	BoardSize     int    `json:"board_size"`
	TimerDuration int    `json:"timer_duration"`
}

// Service derives the current game day, its board seed, and its
// per-day configuration.
type Service struct {
	config Config
	clock  clock.Clock
}

// New creates a daily schedule service
func New(config Config, clk clock.Clock) *Service {
	return &Service{config: config, clock: clk}
}

// Today resolves the current game day
func (s *Service) Today() DayInfo {
	return s.ForDate(s.GameDate())
}

// ForDate resolves the schedule for an explicit game date
func (s *Service) ForDate(date time.Time) DayInfo {
	day := date.Format(dayFormat)
	return DayInfo{
		Day:           day,
		Seed:          SeedForDay(day, s.config.Salt),
		BoardSize:     s.boardSizeFor(date),
		TimerDuration: s.timerFor(date),
	}
}

// GameDate returns the date of the current game day. Before the
// rollover hour the game day is today; from the rollover hour on it is
// tomorrow. The configured offset is applied last.
func (s *Service) GameDate() time.Time {
	now := s.clock.Now()
	date := now
	if now.Hour() >= rolloverHour {
		date = date.AddDate(0, 0, 1)
	}
	date = date.AddDate(0, 0, s.config.DayOffsetDays)
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location())
}

// TargetRichness returns the configured richness target
func (s *Service) TargetRichness() float64 {
	return s.config.TargetRichness
}

func (s *Service) boardSizeFor(date time.Time) int {
	if date.Weekday() == time.Friday {
		return s.config.FridayBoardSize
	}
	return s.config.BoardSize
}

func (s *Service) timerFor(date time.Time) int {
	if date.Weekday() == time.Friday {
		return s.config.FridayTimerDuration
	}
	return s.config.TimerDuration
}

// SeedForDay derives the deterministic board seed for a day: the
// first 8 hex digits of SHA-256("day|salt") read as an integer. The
// salt keeps seeds unpredictable without it.
func SeedForDay(day, salt string) int64 {
	sum := sha256.Sum256([]byte(day + "|" + salt))
	digest := hex.EncodeToString(sum[:])

	seed, err := strconv.ParseInt(digest[:8], 16, 64)
	if err != nil {
		// Unreachable: the input is always 8 hex digits
		return 0
	}
	return seed
}

// Interface for dependency injection
type ServiceInterface interface {
	Today() DayInfo
	ForDate(date time.Time) DayInfo
	GameDate() time.Time
	TargetRichness() float64
}

var _ ServiceInterface = (*Service)(nil)

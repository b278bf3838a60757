package model

import "time"

// EventType identifies the type of event
type EventType string

const (
	EventGameStarted       EventType = "game_started"
	EventGameOver          EventType = "game_over"
	EventSelectionChanged  EventType = "selection_changed"
	EventWordAccepted      EventType = "word_accepted"
	EventWordRejected      EventType = "word_rejected"
	EventLetterRegenerated EventType = "letter_regenerated"
)

// Event is the base structure for all events emitted to the
// presentation layer.
type Event struct {
	Type      EventType
	Timestamp time.Time
	SessionID SessionID
	Payload   any
}

// EventSink receives events. Delivery is synchronous on the game loop.
type EventSink func(Event)

// GameStartedPayload contains data for game started events
type GameStartedPayload struct {
	Day           string
	GridSize      int
	TimerDuration int
}

// GameOverPayload contains data for game over events
type GameOverPayload struct {
	TotalScore int
	WordCount  int
	MaxScore   int
}

// SelectionChangedPayload carries the current in-progress path
type SelectionChangedPayload struct {
	Path Path
}

// WordAcceptedPayload contains data for word accepted events
type WordAcceptedPayload struct {
	Word   string
	Score  int
	Stress []int // per path cell, at scoring time
}

// WordRejectedPayload contains data for word rejected events
type WordRejectedPayload struct {
	Word   string
	Reason RejectReason
}

// LetterRegeneratedPayload contains data for cell regeneration events
type LetterRegeneratedPayload struct {
	Cell      Position
	OldLetter rune
	NewLetter rune
	Count     int
}

package model

import "errors"

// Common errors used across the application
var (
	// Word rejection errors, in pipeline precedence order
	ErrMissingBoardData = errors.New("no board is loaded")
	ErrNoActiveGame     = errors.New("no active game")
	ErrWordTooShort     = errors.New("word is too short")
	ErrNotAWord         = errors.New("not a word")
	ErrWordAlreadyUsed  = errors.New("word already used")

	// Session errors
	ErrSessionNotFound  = errors.New("session not found")
	ErrDayAlreadyPlayed = errors.New("day has already been played")
	ErrGameStillActive  = errors.New("game is still active")

	// Board errors
	ErrBoardNotFound     = errors.New("board not found")
	ErrInvalidPath       = errors.New("invalid path")
	ErrInvalidGridSize   = errors.New("invalid grid size")
	ErrUnplaceableWords  = errors.New("words cannot be placed on a grid of that size")

	// Dictionary errors
	ErrDictionaryNotLoaded = errors.New("dictionary not loaded")

	// Hint errors
	ErrNoHintAvailable = errors.New("no playable word available")

	// Result errors
	ErrResultNotFound = errors.New("result not found")
)

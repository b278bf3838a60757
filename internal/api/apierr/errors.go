package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/wordcrumble/wordcrumble-go/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest      = "INVALID_REQUEST"
	CodeInvalidPath         = "INVALID_PATH"
	CodeInvalidGridSize     = "INVALID_GRID_SIZE"
	CodeUnplaceableWords    = "UNPLACEABLE_WORDS"
	CodeWordTooShort        = "WORD_TOO_SHORT"
	CodeNotAWord            = "NOT_A_WORD"
	CodeWordAlreadyUsed     = "WORD_ALREADY_USED"
	CodeNoActiveGame        = "NO_ACTIVE_GAME"
	CodeNoBoardLoaded       = "NO_BOARD_LOADED"
	CodeGameStillActive     = "GAME_STILL_ACTIVE"
	CodeDayAlreadyPlayed    = "DAY_ALREADY_PLAYED"
	CodeSessionNotFound     = "SESSION_NOT_FOUND"
	CodeBoardNotFound       = "BOARD_NOT_FOUND"
	CodeResultNotFound      = "RESULT_NOT_FOUND"
	CodeDictionaryNotLoaded = "DICTIONARY_NOT_LOADED"
	CodeNoHintAvailable     = "NO_HINT_AVAILABLE"
	CodeInternalError       = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrWordTooShort):
		return &httpError{http.StatusBadRequest, APIError{CodeWordTooShort, "Words need at least 3 letters"}}
	case errors.Is(err, model.ErrNotAWord):
		return &httpError{http.StatusBadRequest, APIError{CodeNotAWord, "Not a dictionary word"}}
	case errors.Is(err, model.ErrWordAlreadyUsed):
		return &httpError{http.StatusConflict, APIError{CodeWordAlreadyUsed, "Word already used this game"}}
	case errors.Is(err, model.ErrNoActiveGame):
		return &httpError{http.StatusConflict, APIError{CodeNoActiveGame, "No game in progress"}}
	case errors.Is(err, model.ErrMissingBoardData):
		return &httpError{http.StatusConflict, APIError{CodeNoBoardLoaded, "No board is loaded"}}
	case errors.Is(err, model.ErrGameStillActive):
		return &httpError{http.StatusConflict, APIError{CodeGameStillActive, "A game is still in progress"}}
	case errors.Is(err, model.ErrDayAlreadyPlayed):
		return &httpError{http.StatusConflict, APIError{CodeDayAlreadyPlayed, "Today's board has already been played"}}
	case errors.Is(err, model.ErrSessionNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeSessionNotFound, "Session not found"}}
	case errors.Is(err, model.ErrBoardNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeBoardNotFound, "Board not found"}}
	case errors.Is(err, model.ErrResultNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeResultNotFound, "No result recorded for that day"}}
	case errors.Is(err, model.ErrInvalidPath):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidPath, "Path must visit distinct adjacent cells"}}
	case errors.Is(err, model.ErrInvalidGridSize):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidGridSize, "Grid must be square, size 4 or 5"}}
	case errors.Is(err, model.ErrUnplaceableWords):
		return &httpError{http.StatusUnprocessableEntity, APIError{CodeUnplaceableWords, "Could not place the requested words on the grid"}}
	case errors.Is(err, model.ErrDictionaryNotLoaded):
		return &httpError{http.StatusServiceUnavailable, APIError{CodeDictionaryNotLoaded, "Dictionary is not loaded yet"}}
	case errors.Is(err, model.ErrNoHintAvailable):
		return &httpError{http.StatusNotFound, APIError{CodeNoHintAvailable, "No playable word left on the board"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}

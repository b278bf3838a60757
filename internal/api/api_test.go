package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wordcrumble/wordcrumble-go/internal/api"
	"github.com/wordcrumble/wordcrumble-go/internal/api/response"
	"github.com/wordcrumble/wordcrumble-go/internal/factory"
	"github.com/wordcrumble/wordcrumble-go/internal/model"
	"github.com/wordcrumble/wordcrumble-go/internal/testutil"
)

// testServer wires the router over a test app
type testServer struct {
	handler http.Handler
	app     *factory.TestApp
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	app := factory.NewTestApp()
	app.LoadTestDictionary()

	router := api.NewRouter(api.RouterConfig{
		Logger:         testutil.NopLogger(),
		DailyService:   app.DailyService,
		BoardService:   app.BoardService,
		Dictionary:     app.DictionaryService,
		GameController: app.GameController,
		HintService:    app.HintService,
	})

	return &testServer{handler: router, app: app}
}

func (ts *testServer) request(method, path string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

// startPinnedGame starts a game and pins the board so paths spell
// known words.
func (ts *testServer) startPinnedGame(t *testing.T) response.GameState {
	t.Helper()

	rr := ts.request(http.MethodPost, "/api/v1/game", nil)
	require.Equal(t, http.StatusCreated, rr.Code)

	var state response.GameState
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &state))

	ts.app.GameController.Session().Board = model.NewBoardFromStrings(42,
		"CATS", "AREA", "TEST", "SLED")
	return state
}

var catBody = map[string]any{
	"path": []map[string]int{
		{"row": 0, "col": 0}, {"row": 0, "col": 1}, {"row": 0, "col": 2},
	},
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
}

func TestGetDailyBoard(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/board", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var board response.DailyBoard
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &board))

	assert.Equal(t, "2026-08-25", board.Day)
	assert.NotZero(t, board.Seed)
	assert.Equal(t, 90, board.TimerDuration)
	require.Len(t, board.Grid, 4)
	for _, row := range board.Grid {
		assert.Len(t, row, 4)
	}

	// The same day serves the same board
	rr2 := ts.request(http.MethodGet, "/api/v1/board", nil)
	require.Equal(t, http.StatusOK, rr2.Code)
	var board2 response.DailyBoard
	require.NoError(t, json.Unmarshal(rr2.Body.Bytes(), &board2))
	assert.Equal(t, board.Grid, board2.Grid)
}

func TestGetDictionary(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/dictionary", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var dict response.Dictionary
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &dict))
	assert.Equal(t, 1, dict.Version)
	assert.Contains(t, dict.Words, "cat")
}

func TestGetDictionaryVersion(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/dictionary/version", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var version response.DictionaryVersion
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &version))
	assert.Equal(t, 1, version.Version)
}

func TestValidateMove(t *testing.T) {
	ts := newTestServer(t)

	body := map[string]any{
		"grid": []string{"CATS", "AREA", "TEST", "SLED"},
		"path": catBody["path"],
	}
	rr := ts.request(http.MethodPost, "/api/v1/board/validate", body)
	require.Equal(t, http.StatusOK, rr.Code)

	var result struct {
		Word  string `json:"word"`
		Valid bool   `json:"valid"`
		Score int    `json:"score"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.True(t, result.Valid)
	assert.Equal(t, "cat", result.Word)
	assert.Greater(t, result.Score, 0)
}

func TestValidateMoveRejectsBrokenPath(t *testing.T) {
	ts := newTestServer(t)

	body := map[string]any{
		"grid": []string{"CATS", "AREA", "TEST", "SLED"},
		"path": []map[string]int{{"row": 0, "col": 0}, {"row": 0, "col": 3}},
	}
	rr := ts.request(http.MethodPost, "/api/v1/board/validate", body)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "INVALID_PATH")
}

func TestValidateMoveRejectsRaggedGrid(t *testing.T) {
	ts := newTestServer(t)

	body := map[string]any{
		"grid": []string{"CATS", "AREA", "TE"},
		"path": catBody["path"],
	}
	rr := ts.request(http.MethodPost, "/api/v1/board/validate", body)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "INVALID_GRID_SIZE")
}

func TestGameLifecycle(t *testing.T) {
	ts := newTestServer(t)

	// No session yet
	rr := ts.request(http.MethodGet, "/api/v1/game", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	state := ts.startPinnedGame(t)
	assert.True(t, state.Active)
	assert.Equal(t, 90, state.RemainingSeconds)
	assert.Equal(t, "2026-08-25", state.Day)

	// Starting again while active conflicts
	rr = ts.request(http.MethodPost, "/api/v1/game", nil)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "GAME_STILL_ACTIVE")

	// Submit a word
	rr = ts.request(http.MethodPost, "/api/v1/game/words", catBody)
	require.Equal(t, http.StatusOK, rr.Code)

	var word response.WordResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &word))
	assert.Equal(t, "cat", word.Word)
	assert.Greater(t, word.Score, 0)

	// The same word again is rejected
	rr = ts.request(http.MethodPost, "/api/v1/game/words", catBody)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "WORD_ALREADY_USED")

	// Finish and read back the result
	rr = ts.request(http.MethodDelete, "/api/v1/game", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var finished response.GameState
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &finished))
	assert.False(t, finished.Active)
	assert.Equal(t, word.Score, finished.TotalScore)

	rr = ts.request(http.MethodGet, "/api/v1/results/2026-08-25", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var result response.DayResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.Equal(t, 1, result.WordCount)
	assert.Equal(t, word.Score, result.TotalScore)

	rr = ts.request(http.MethodGet, "/api/v1/results/2026-08-25/played", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "true")

	// The day cannot be replayed
	rr = ts.request(http.MethodPost, "/api/v1/game", nil)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "DAY_ALREADY_PLAYED")
}

func TestSubmitRejectsShortAndUnknownWords(t *testing.T) {
	ts := newTestServer(t)
	ts.startPinnedGame(t)

	short := map[string]any{
		"path": []map[string]int{{"row": 0, "col": 0}, {"row": 0, "col": 1}},
	}
	rr := ts.request(http.MethodPost, "/api/v1/game/words", short)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "WORD_TOO_SHORT")

	unknown := map[string]any{
		"path": []map[string]int{
			{"row": 3, "col": 0}, {"row": 3, "col": 1}, {"row": 3, "col": 2},
		},
	}
	rr = ts.request(http.MethodPost, "/api/v1/game/words", unknown)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "NOT_A_WORD")
}

func TestSubmitWithoutGameConflicts(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/game/words", catBody)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "NO_BOARD_LOADED")
}

func TestHintSuggestsPlayableWord(t *testing.T) {
	ts := newTestServer(t)

	// No game yet
	rr := ts.request(http.MethodGet, "/api/v1/game/hint", nil)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "NO_BOARD_LOADED")

	ts.startPinnedGame(t)

	rr = ts.request(http.MethodGet, "/api/v1/game/hint", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var hint response.Hint
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &hint))
	assert.NotEmpty(t, hint.Word)
	assert.Len(t, hint.Path, len(hint.Word))
	assert.Greater(t, hint.Score, 0)

	// The suggested path is accepted by the game
	body := map[string]any{"path": hint.Path}
	rr = ts.request(http.MethodPost, "/api/v1/game/words", body)
	require.Equal(t, http.StatusOK, rr.Code)

	var word response.WordResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &word))
	assert.Equal(t, hint.Word, word.Word)

	rr = ts.request(http.MethodGet, "/api/v1/game/hint?strategy=psychic", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCustomBoardFromWordList(t *testing.T) {
	ts := newTestServer(t)

	body := map[string]any{
		"size":  5,
		"words": []string{"cat", "rate"},
		"seed":  7,
	}
	rr := ts.request(http.MethodPost, "/api/v1/board/custom", body)
	require.Equal(t, http.StatusOK, rr.Code)

	var board response.GeneratedBoard
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &board))
	assert.Len(t, board.Grid, 5)
}

func TestResultNotFound(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/results/1999-01-01", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "RESULT_NOT_FOUND")
}

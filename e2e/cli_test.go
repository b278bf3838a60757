package e2e_test

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wordcrumble/wordcrumble-go/internal/api"
	"github.com/wordcrumble/wordcrumble-go/internal/factory"
	"github.com/wordcrumble/wordcrumble-go/internal/testutil"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	serverURL  string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(projectRoot, "bin", "wcrumble-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/wcrumble")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	return &cliRunner{
		binaryPath: binaryPath,
		serverURL:  serverURL,
	}
}

func (r *cliRunner) run(args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		require.NotEqual(t, dir, parent, "go.mod not found")
		dir = parent
	}
}

// startServer brings up an in-process API server backed by memory
// storage with the real word list loaded.
func startServer(t *testing.T) *httptest.Server {
	t.Helper()

	app, err := factory.New(factory.Config{Logger: testutil.NopLogger()})
	require.NoError(t, err)

	wordsPath := filepath.Join(findProjectRoot(t), "data", "words.txt")
	require.NoError(t, app.DictionaryService.LoadFromFile(context.Background(), wordsPath))

	router := api.NewRouter(api.RouterConfig{
		Logger:         testutil.NopLogger(),
		DailyService:   app.DailyService,
		BoardService:   app.BoardService,
		Dictionary:     app.DictionaryService,
		GameController: app.GameController,
		HintService:    app.HintService,
		EventHub:       app.EventHub,
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func TestCLIHealth(t *testing.T) {
	server := startServer(t)
	runner := newCLIRunner(t, server.URL)

	output, err := runner.run("health")
	require.NoError(t, err, output)

	var health struct {
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &health))
	assert.Equal(t, "ok", health.Status)
}

func TestCLIDictionaryVersion(t *testing.T) {
	server := startServer(t)
	runner := newCLIRunner(t, server.URL)

	output, err := runner.run("dictionary", "version")
	require.NoError(t, err, output)

	var version struct {
		Version int `json:"version"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &version))
	assert.Equal(t, 1, version.Version)
}

func TestCLIDailyBoard(t *testing.T) {
	server := startServer(t)
	runner := newCLIRunner(t, server.URL)

	output, err := runner.run("board", "daily")
	require.NoError(t, err, output)

	var board struct {
		Grid          []string `json:"grid"`
		Day           string   `json:"day"`
		TimerDuration int      `json:"timer_duration"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &board))
	assert.Len(t, board.Grid, 4)
	assert.NotEmpty(t, board.Day)
	assert.Greater(t, board.TimerDuration, 0)
}

func TestCLIValidateMove(t *testing.T) {
	server := startServer(t)
	runner := newCLIRunner(t, server.URL)

	output, err := runner.run("board", "validate",
		"--grid", "CATS", "--grid", "AREA", "--grid", "TEST", "--grid", "SLED",
		"0,0", "0,1", "0,2")
	require.NoError(t, err, output)

	var result struct {
		Word  string `json:"word"`
		Valid bool   `json:"valid"`
		Score int    `json:"score"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &result))
	assert.True(t, result.Valid)
	assert.Equal(t, "cat", result.Word)
	assert.Greater(t, result.Score, 0)

	// A non-adjacent path is rejected outright
	output, err = runner.run("board", "validate",
		"--grid", "CATS", "--grid", "AREA", "--grid", "TEST", "--grid", "SLED",
		"0,0", "0,3")
	assert.Error(t, err, output)
	assert.Contains(t, output, "INVALID_PATH")
}

func TestCLIGameLifecycle(t *testing.T) {
	server := startServer(t)
	runner := newCLIRunner(t, server.URL)

	output, err := runner.run("game", "start")
	require.NoError(t, err, output)

	var state struct {
		ID     string `json:"id"`
		Day    string `json:"day"`
		Active bool   `json:"active"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &state))
	assert.True(t, state.Active)
	assert.NotEmpty(t, state.ID)

	// The state endpoint serves the same session
	output, err = runner.run("game", "get")
	require.NoError(t, err, output)

	var fetched struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &fetched))
	assert.Equal(t, state.ID, fetched.ID)

	// Finish early and confirm the day is recorded
	output, err = runner.run("game", "finish")
	require.NoError(t, err, output)

	var finished struct {
		Active bool `json:"active"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &finished))
	assert.False(t, finished.Active)

	output, err = runner.run("result", "played", state.Day)
	require.NoError(t, err, output)

	var played struct {
		Day    string `json:"day"`
		Played bool   `json:"played"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &played))
	assert.True(t, played.Played)

	output, err = runner.run("result", "get", state.Day)
	require.NoError(t, err, output)

	var result struct {
		Day       string `json:"day"`
		WordCount int    `json:"word_count"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &result))
	assert.Equal(t, state.Day, result.Day)
	assert.Equal(t, 0, result.WordCount)
}

func TestCLIUnplayedDay(t *testing.T) {
	server := startServer(t)
	runner := newCLIRunner(t, server.URL)

	output, err := runner.run("result", "played", "1999-01-01")
	require.NoError(t, err, output)

	var played struct {
		Played bool `json:"played"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &played))
	assert.False(t, played.Played)
}

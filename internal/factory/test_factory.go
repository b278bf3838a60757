package factory

import (
	"time"

	"github.com/wordcrumble/wordcrumble-go/internal/dependencies/mocks"
	"github.com/wordcrumble/wordcrumble-go/internal/model"
	"github.com/wordcrumble/wordcrumble-go/internal/services/daily"
	"github.com/wordcrumble/wordcrumble-go/internal/storage/memory"
	"github.com/wordcrumble/wordcrumble-go/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom

	// Events collects everything the game controller emitted
	Events []model.Event
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	testApp := &TestApp{
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
	sink := func(e model.Event) { testApp.Events = append(testApp.Events, e) }

	testApp.App = newWithDependencies(
		store, mockClock, mockRandom, daily.DefaultConfig(), sink, testutil.NopLogger(),
	)
	return testApp
}

// LoadTestDictionary indexes a small word list for testing
func (t *TestApp) LoadTestDictionary() {
	words := []string{
		"ace", "act", "air", "ant", "are", "ark", "arm", "art", "ate",
		"bat", "cab", "can", "cap", "car", "cat", "cop", "cow", "cup",
		"ear", "eat", "era", "nap", "net", "nor", "not", "oar", "one",
		"ore", "pan", "pat", "pea", "pen", "pet", "pin", "pit", "ran",
		"rat", "raw", "ray", "rob", "rot", "sat", "sea", "set", "sit",
		"son", "tab", "tan", "tap", "tar", "tea", "ten", "tie", "tin",
		"toe", "ton", "top",
		"acre", "ante", "area", "care", "cart", "case", "cast", "cats",
		"earn", "east", "neat", "nest", "note", "race", "rate", "rats",
		"rent", "rest", "sane", "scan", "scar", "seat", "sent", "star",
		"tare", "tarn", "tars", "tear", "tens", "tone", "tore", "torn",
		"carts", "caste", "crate", "earns", "notes", "races", "rates",
		"scare", "stare", "stone", "tears", "trace",
	}
	t.DictionaryService.Rebuild(1, words)
}

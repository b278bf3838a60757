package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/wordcrumble/wordcrumble-go/internal/api/sse"
	"github.com/wordcrumble/wordcrumble-go/internal/dependencies/clock"
	"github.com/wordcrumble/wordcrumble-go/internal/dependencies/random"
	"github.com/wordcrumble/wordcrumble-go/internal/model"
	"github.com/wordcrumble/wordcrumble-go/internal/services/board"
	"github.com/wordcrumble/wordcrumble-go/internal/services/daily"
	"github.com/wordcrumble/wordcrumble-go/internal/services/dictionary"
	"github.com/wordcrumble/wordcrumble-go/internal/services/game"
	"github.com/wordcrumble/wordcrumble-go/internal/services/hint"
	"github.com/wordcrumble/wordcrumble-go/internal/services/scoring"
	"github.com/wordcrumble/wordcrumble-go/internal/storage"
	"github.com/wordcrumble/wordcrumble-go/internal/storage/memory"
	redisstorage "github.com/wordcrumble/wordcrumble-go/internal/storage/redis"
	sqlitestorage "github.com/wordcrumble/wordcrumble-go/internal/storage/sqlite"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
	StorageTypeSQLite = "sqlite"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	DictionaryService *dictionary.Service
	ScoringService    *scoring.Service
	BoardService      *board.Service
	BoardMutator      *board.Mutator
	DailyService      *daily.Service
	GameController    *game.Controller
	HintService       *hint.Service

	// EventHub streams game events to SSE clients. Its Run loop is
	// already started.
	EventHub *sse.Hub
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory", "redis" or "sqlite")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// SQLitePath is the database file path (required if StorageType is "sqlite")
	SQLitePath string
	// DailyConfig overrides the daily schedule (optional)
	DailyConfig *daily.Config
	// EventSink receives game events (optional)
	EventSink model.EventSink
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	case StorageTypeSQLite:
		if cfg.SQLitePath == "" {
			return nil, errors.New("SQLitePath required when StorageType is sqlite")
		}
		sqliteStore, err := sqlitestorage.New(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		store = sqliteStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory', 'redis' or 'sqlite'")
	}

	dailyCfg := daily.DefaultConfig()
	if cfg.DailyConfig != nil {
		dailyCfg = *cfg.DailyConfig
	}

	return newWithDependencies(store, clock.New(), random.New(), dailyCfg, cfg.EventSink, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	clk clock.Clock,
	rnd random.Random,
	dailyCfg daily.Config,
	sink model.EventSink,
	logger *slog.Logger,
) *App {
	dictService := dictionary.New(store, logger)
	scoringService := scoring.NewDefault()
	boardService := board.NewService(store, dictService, scoringService, logger)
	mutator := board.NewMutator(rnd, logger)
	dailyService := daily.New(dailyCfg, clk)
	hintService := hint.NewService(dictService, scoringService, rnd, logger)

	// All game events reach the SSE hub; an external sink sees them too
	hub := sse.NewHub(logger)
	go hub.Run()
	broadcast := sse.NewBroadcaster(hub, logger).Sink()
	combined := func(e model.Event) {
		broadcast(e)
		if sink != nil {
			sink(e)
		}
	}

	gameController := game.NewController(
		dailyService, boardService, dictService, scoringService,
		mutator, store, clk, logger, combined,
	)

	return &App{
		Storage:           store,
		Clock:             clk,
		Random:            rnd,
		DictionaryService: dictService,
		ScoringService:    scoringService,
		BoardService:      boardService,
		BoardMutator:      mutator,
		DailyService:      dailyService,
		GameController:    gameController,
		HintService:       hintService,
		EventHub:          hub,
	}
}

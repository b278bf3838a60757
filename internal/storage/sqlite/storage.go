package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/wordcrumble/wordcrumble-go/internal/model"
	"github.com/wordcrumble/wordcrumble-go/internal/storage"
)

// Storage is a SQLite-backed implementation of the storage interface.
// It is the durable option for single-host deployments; values are
// stored as JSON blobs keyed by their natural key.
type Storage struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS day_results (
	day         TEXT PRIMARY KEY,
	data        TEXT NOT NULL,
	finished_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE IF NOT EXISTS dictionary (
	id      INTEGER PRIMARY KEY CHECK (id = 1),
	version INTEGER NOT NULL,
	words   TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS boards (
	seed TEXT PRIMARY KEY,
	data TEXT NOT NULL
);
`

// New opens (and if necessary initialises) a SQLite database at path.
// Use ":memory:" for an ephemeral database.
func New(path string) (*Storage, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	// The sqlite driver does not support concurrent writers
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialise schema: %w", err)
	}

	return &Storage{db: db}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	return s.db.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Day result operations

func (s *Storage) SaveDayResult(ctx context.Context, result *model.DayResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO day_results(day, data, finished_at) VALUES(?, ?, ?)
		 ON CONFLICT(day) DO UPDATE SET data = excluded.data, finished_at = excluded.finished_at`,
		result.Day, string(data), result.FinishedAt,
	)
	return err
}

func (s *Storage) GetDayResult(ctx context.Context, day string) (*model.DayResult, error) {
	var data string
	err := s.db.QueryRowContext(ctx,
		"SELECT data FROM day_results WHERE day = ?", day,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrResultNotFound
	}
	if err != nil {
		return nil, err
	}

	var result model.DayResult
	if err := json.Unmarshal([]byte(data), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *Storage) HasPlayed(ctx context.Context, day string) (bool, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM day_results WHERE day = ?", day,
	).Scan(&count)
	return count > 0, err
}

// Dictionary operations

func (s *Storage) SaveDictionary(ctx context.Context, version int, words []string) error {
	data, err := json.Marshal(words)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO dictionary(id, version, words) VALUES(1, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET version = excluded.version, words = excluded.words`,
		version, string(data),
	)
	return err
}

func (s *Storage) GetDictionary(ctx context.Context) (int, []string, error) {
	var version int
	var data string
	err := s.db.QueryRowContext(ctx,
		"SELECT version, words FROM dictionary WHERE id = 1",
	).Scan(&version, &data)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil, model.ErrDictionaryNotLoaded
	}
	if err != nil {
		return 0, nil, err
	}

	var words []string
	if err := json.Unmarshal([]byte(data), &words); err != nil {
		return 0, nil, err
	}
	return version, words, nil
}

func (s *Storage) GetDictionaryVersion(ctx context.Context) (int, error) {
	var version int
	err := s.db.QueryRowContext(ctx,
		"SELECT version FROM dictionary WHERE id = 1",
	).Scan(&version)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, model.ErrDictionaryNotLoaded
	}
	return version, err
}

// Generated board cache

func (s *Storage) SaveGeneratedBoard(ctx context.Context, seed int64, board *model.GeneratedBoard) error {
	data, err := json.Marshal(board)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO boards(seed, data) VALUES(?, ?)
		 ON CONFLICT(seed) DO UPDATE SET data = excluded.data`,
		fmt.Sprintf("%d", seed), string(data),
	)
	return err
}

func (s *Storage) GetGeneratedBoard(ctx context.Context, seed int64) (*model.GeneratedBoard, error) {
	var data string
	err := s.db.QueryRowContext(ctx,
		"SELECT data FROM boards WHERE seed = ?", fmt.Sprintf("%d", seed),
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrBoardNotFound
	}
	if err != nil {
		return nil, err
	}

	var board model.GeneratedBoard
	if err := json.Unmarshal([]byte(data), &board); err != nil {
		return nil, err
	}
	return &board, nil
}

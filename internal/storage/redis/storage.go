package redis

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/wordcrumble/wordcrumble-go/internal/model"
	"github.com/wordcrumble/wordcrumble-go/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Day result operations

func (s *Storage) SaveDayResult(ctx context.Context, result *model.DayResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, resultKey(result.Day), data, s.cfg.ResultTTL).Err()
}

func (s *Storage) GetDayResult(ctx context.Context, day string) (*model.DayResult, error) {
	data, err := s.client.Get(ctx, resultKey(day)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrResultNotFound
		}
		return nil, err
	}

	var result model.DayResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *Storage) HasPlayed(ctx context.Context, day string) (bool, error) {
	exists, err := s.client.Exists(ctx, resultKey(day)).Result()
	if err != nil {
		return false, err
	}
	return exists > 0, nil
}

// Dictionary operations

func (s *Storage) SaveDictionary(ctx context.Context, version int, words []string) error {
	data, err := json.Marshal(words)
	if err != nil {
		return err
	}

	// Pipeline keeps version and word list in step
	pipe := s.client.Pipeline()
	pipe.Set(ctx, dictionaryKey(), data, 0)
	pipe.Set(ctx, dictionaryVersionKey(), strconv.Itoa(version), 0)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetDictionary(ctx context.Context) (int, []string, error) {
	version, err := s.GetDictionaryVersion(ctx)
	if err != nil {
		return 0, nil, err
	}

	data, err := s.client.Get(ctx, dictionaryKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil, model.ErrDictionaryNotLoaded
		}
		return 0, nil, err
	}

	var words []string
	if err := json.Unmarshal(data, &words); err != nil {
		return 0, nil, err
	}
	return version, words, nil
}

func (s *Storage) GetDictionaryVersion(ctx context.Context) (int, error) {
	value, err := s.client.Get(ctx, dictionaryVersionKey()).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, model.ErrDictionaryNotLoaded
		}
		return 0, err
	}
	return strconv.Atoi(value)
}

// Generated board cache

func (s *Storage) SaveGeneratedBoard(ctx context.Context, seed int64, board *model.GeneratedBoard) error {
	data, err := json.Marshal(board)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, boardKey(seed), data, s.cfg.BoardTTL).Err()
}

func (s *Storage) GetGeneratedBoard(ctx context.Context, seed int64) (*model.GeneratedBoard, error) {
	data, err := s.client.Get(ctx, boardKey(seed)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrBoardNotFound
		}
		return nil, err
	}

	var board model.GeneratedBoard
	if err := json.Unmarshal(data, &board); err != nil {
		return nil, err
	}
	return &board, nil
}

package memory

import (
	"context"
	"sync"

	"github.com/wordcrumble/wordcrumble-go/internal/model"
	"github.com/wordcrumble/wordcrumble-go/internal/storage"
)

// maxCachedBoards bounds the generated-board cache; the oldest entry
// is evicted first.
const maxCachedBoards = 30

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	results           map[string]*model.DayResult
	dictionaryVersion int
	dictionaryWords   []string
	dictionaryLoaded  bool

	boards     map[int64]*model.GeneratedBoard
	boardOrder []int64 // LRU order, least recently used first
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		results: make(map[string]*model.DayResult),
		boards:  make(map[int64]*model.GeneratedBoard),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Day result operations

func (s *Storage) SaveDayResult(ctx context.Context, result *model.DayResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[result.Day] = result
	return nil
}

func (s *Storage) GetDayResult(ctx context.Context, day string) (*model.DayResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result, ok := s.results[day]
	if !ok {
		return nil, model.ErrResultNotFound
	}
	return result, nil
}

func (s *Storage) HasPlayed(ctx context.Context, day string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.results[day]
	return ok, nil
}

// Dictionary operations

func (s *Storage) SaveDictionary(ctx context.Context, version int, words []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dictionaryVersion = version
	s.dictionaryWords = make([]string, len(words))
	copy(s.dictionaryWords, words)
	s.dictionaryLoaded = true
	return nil
}

func (s *Storage) GetDictionary(ctx context.Context) (int, []string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.dictionaryLoaded {
		return 0, nil, model.ErrDictionaryNotLoaded
	}
	words := make([]string, len(s.dictionaryWords))
	copy(words, s.dictionaryWords)
	return s.dictionaryVersion, words, nil
}

func (s *Storage) GetDictionaryVersion(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.dictionaryLoaded {
		return 0, model.ErrDictionaryNotLoaded
	}
	return s.dictionaryVersion, nil
}

// Generated board cache

func (s *Storage) SaveGeneratedBoard(ctx context.Context, seed int64, board *model.GeneratedBoard) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.boards[seed]; exists {
		s.touch(seed)
	} else {
		s.boardOrder = append(s.boardOrder, seed)
	}
	s.boards[seed] = board

	for len(s.boards) > maxCachedBoards {
		oldest := s.boardOrder[0]
		s.boardOrder = s.boardOrder[1:]
		delete(s.boards, oldest)
	}
	return nil
}

func (s *Storage) GetGeneratedBoard(ctx context.Context, seed int64) (*model.GeneratedBoard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	board, ok := s.boards[seed]
	if !ok {
		return nil, model.ErrBoardNotFound
	}
	s.touch(seed)
	return board, nil
}

// touch moves seed to the most-recently-used end of the order slice
func (s *Storage) touch(seed int64) {
	for i, existing := range s.boardOrder {
		if existing == seed {
			s.boardOrder = append(s.boardOrder[:i], s.boardOrder[i+1:]...)
			s.boardOrder = append(s.boardOrder, seed)
			return
		}
	}
}

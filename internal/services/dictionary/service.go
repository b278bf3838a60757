package dictionary

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/wordcrumble/wordcrumble-go/internal/model"
	"github.com/wordcrumble/wordcrumble-go/internal/storage"
)

// MinWordLength is the shortest word the game accepts. Shorter lines
// in the word list are dropped at load time.
const MinWordLength = 3

// Service provides word validation and prefix queries over a
// versioned word list. The index is rebuilt whenever the loaded
// version changes; rebuilding is idempotent and the previous index is
// discarded (or served from the version-keyed cache).
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
	cache   *IndexCache

	mu      sync.RWMutex
	trie    *Trie
	version int
	loaded  bool
}

// New creates a new DictionaryService
func New(store storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: store,
		logger:  logger,
		cache:   NewIndexCache(),
	}
}

// LoadFromStorage loads the versioned word list from storage
func (s *Service) LoadFromStorage(ctx context.Context) error {
	version, words, err := s.storage.GetDictionary(ctx)
	if err != nil {
		return err
	}
	s.Rebuild(version, words)
	return nil
}

// LoadFromFile loads a word list file. The first line carries the
// version ("version: 3"); every following non-empty line is a word.
// The list is saved to storage for other consumers.
func (s *Service) LoadFromFile(ctx context.Context, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	if !scanner.Scan() {
		return fmt.Errorf("word list %s is empty", path)
	}

	version, err := parseVersionHeader(scanner.Text())
	if err != nil {
		return fmt.Errorf("word list %s: %w", path, err)
	}

	var words []string
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if len(word) >= MinWordLength {
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	if err := s.storage.SaveDictionary(ctx, version, words); err != nil {
		return err
	}

	s.Rebuild(version, words)
	return nil
}

// Rebuild replaces the index with one for the given version and word
// list. A version already in the cache is reused without rebuilding.
func (s *Service) Rebuild(version int, words []string) {
	trie, cached := s.cache.Get(version)
	if !cached {
		trie = BuildTrie(words)
		s.cache.Put(version, trie)
	}

	s.mu.Lock()
	s.trie = trie
	s.version = version
	s.loaded = true
	s.mu.Unlock()

	s.logger.Info("dictionary index ready",
		slog.Int("version", version),
		slog.Int("words", trie.Len()),
		slog.Bool("from_cache", cached),
	)
}

// IsLoaded returns whether an index is available
func (s *Service) IsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Version returns the loaded dictionary version
func (s *Service) Version() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// WordCount returns the number of indexed words
func (s *Service) WordCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return 0
	}
	return s.trie.Len()
}

// Contains reports whether word is in the dictionary
func (s *Service) Contains(word string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded && s.trie.Contains(word)
}

// HasPrefix reports whether any dictionary word starts with prefix
func (s *Service) HasPrefix(prefix string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded && s.trie.HasPrefix(prefix)
}

// WordsWithPrefix returns the dictionary words starting with prefix
func (s *Service) WordsWithPrefix(prefix string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return nil
	}
	return s.trie.WordsWithPrefix(prefix)
}

// NextCharacters returns the letters that extend prefix toward a word
func (s *Service) NextCharacters(prefix string) map[rune]struct{} {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return nil
	}
	return s.trie.NextCharacters(prefix)
}

// Words returns the full indexed word list, sorted
func (s *Service) Words() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return nil
	}
	return s.trie.WordsWithPrefix("")
}

func parseVersionHeader(line string) (int, error) {
	_, value, found := strings.Cut(line, ":")
	if !found {
		return 0, fmt.Errorf("missing version header")
	}
	version, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("bad version header: %w", err)
	}
	return version, nil
}

// Interface for dependency injection
type ServiceInterface interface {
	LoadFromStorage(ctx context.Context) error
	LoadFromFile(ctx context.Context, path string) error
	Rebuild(version int, words []string)
	IsLoaded() bool
	Version() int
	WordCount() int
	Contains(word string) bool
	HasPrefix(prefix string) bool
	WordsWithPrefix(prefix string) []string
	NextCharacters(prefix string) map[rune]struct{}
	Words() []string
}

var _ ServiceInterface = (*Service)(nil)

// ErrDictionaryNotLoaded is returned when operations are attempted before loading
var ErrDictionaryNotLoaded = model.ErrDictionaryNotLoaded

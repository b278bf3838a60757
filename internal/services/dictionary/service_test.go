package dictionary

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/wordcrumble/wordcrumble-go/internal/model"
	"github.com/wordcrumble/wordcrumble-go/internal/storage/memory"
	"github.com/wordcrumble/wordcrumble-go/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.service = New(s.storage, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) TestIsNotLoadedByDefault() {
	s.False(s.service.IsLoaded())
	s.Equal(0, s.service.WordCount())
	s.False(s.service.Contains("cat"))
	s.False(s.service.HasPrefix("c"))
}

func (s *ServiceSuite) TestRebuild() {
	s.service.Rebuild(1, []string{"cat", "dog", "bird"})

	s.True(s.service.IsLoaded())
	s.Equal(1, s.service.Version())
	s.Equal(3, s.service.WordCount())
	s.True(s.service.Contains("cat"))
	s.True(s.service.Contains("CAT"))
	s.False(s.service.Contains("emu"))
}

func (s *ServiceSuite) TestRebuildReplacesIndex() {
	s.service.Rebuild(1, []string{"cat"})
	s.service.Rebuild(2, []string{"dog"})

	s.Equal(2, s.service.Version())
	s.True(s.service.Contains("dog"))
	s.False(s.service.Contains("cat"))
}

func (s *ServiceSuite) TestRebuildReusesCachedVersion() {
	s.service.Rebuild(1, []string{"cat"})

	// Same version with a different list: the cached index wins,
	// making rebuilds for a known version idempotent.
	s.service.Rebuild(1, []string{"dog"})
	s.True(s.service.Contains("cat"))
	s.False(s.service.Contains("dog"))

	s.service.cache.Invalidate()
	s.service.Rebuild(1, []string{"dog"})
	s.True(s.service.Contains("dog"))
}

func (s *ServiceSuite) TestLoadFromStorage() {
	err := s.storage.SaveDictionary(s.ctx, 9, []string{"test", "word"})
	s.Require().NoError(err)

	err = s.service.LoadFromStorage(s.ctx)
	s.Require().NoError(err)

	s.Equal(9, s.service.Version())
	s.True(s.service.Contains("test"))
}

func (s *ServiceSuite) TestLoadFromStorageWhenEmpty() {
	err := s.service.LoadFromStorage(s.ctx)
	s.ErrorIs(err, model.ErrDictionaryNotLoaded)
}

func (s *ServiceSuite) TestLoadFromFile() {
	path := filepath.Join(s.T().TempDir(), "words.txt")
	content := "version: 7\ncat\nDOG\nat\n\nbird\n"
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o644))

	err := s.service.LoadFromFile(s.ctx, path)
	s.Require().NoError(err)

	s.Equal(7, s.service.Version())
	s.True(s.service.Contains("cat"))
	s.True(s.service.Contains("dog"))
	s.True(s.service.Contains("bird"))
	// "at" is below the minimum length and is dropped at load
	s.False(s.service.Contains("at"))

	// The list lands in storage for other consumers
	version, words, err := s.storage.GetDictionary(s.ctx)
	s.Require().NoError(err)
	s.Equal(7, version)
	s.Len(words, 3)
}

func (s *ServiceSuite) TestLoadFromFileBadHeader() {
	path := filepath.Join(s.T().TempDir(), "words.txt")
	s.Require().NoError(os.WriteFile(path, []byte("cat\ndog\n"), 0o644))

	err := s.service.LoadFromFile(s.ctx, path)
	s.Error(err)
}

func (s *ServiceSuite) TestPrefixQueries() {
	s.service.Rebuild(1, []string{"cat", "cats", "car"})

	s.True(s.service.HasPrefix("ca"))
	s.False(s.service.HasPrefix("cu"))
	s.Equal([]string{"cat", "cats"}, s.service.WordsWithPrefix("cat"))

	next := s.service.NextCharacters("ca")
	s.Contains(next, 't')
	s.Contains(next, 'r')
}

func (s *ServiceSuite) TestWords() {
	s.service.Rebuild(1, []string{"dog", "cat"})
	s.Equal([]string{"cat", "dog"}, s.service.Words())
}

package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/wordcrumble/wordcrumble-go/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func (s *StorageSuite) TestSaveAndGetDayResult() {
	result := &model.DayResult{
		ID:         "result-1",
		Day:        "2026-08-25",
		Words:      []model.WordResult{{Word: "cat", Score: 150, Stress: []int{2, 2, 2}}},
		MaxScore:   150,
		TotalScore: 150,
		WordCount:  1,
		FinishedAt: time.Now(),
	}

	err := s.storage.SaveDayResult(s.ctx, result)
	s.Require().NoError(err)

	got, err := s.storage.GetDayResult(s.ctx, "2026-08-25")
	s.Require().NoError(err)
	s.Equal(result, got)
}

func (s *StorageSuite) TestGetDayResultNotFound() {
	_, err := s.storage.GetDayResult(s.ctx, "2026-08-25")
	s.ErrorIs(err, model.ErrResultNotFound)
}

func (s *StorageSuite) TestHasPlayed() {
	played, err := s.storage.HasPlayed(s.ctx, "2026-08-25")
	s.Require().NoError(err)
	s.False(played)

	err = s.storage.SaveDayResult(s.ctx, &model.DayResult{ID: "r", Day: "2026-08-25"})
	s.Require().NoError(err)

	played, err = s.storage.HasPlayed(s.ctx, "2026-08-25")
	s.Require().NoError(err)
	s.True(played)
}

func (s *StorageSuite) TestDictionaryNotLoaded() {
	_, _, err := s.storage.GetDictionary(s.ctx)
	s.ErrorIs(err, model.ErrDictionaryNotLoaded)

	_, err = s.storage.GetDictionaryVersion(s.ctx)
	s.ErrorIs(err, model.ErrDictionaryNotLoaded)
}

func (s *StorageSuite) TestSaveAndGetDictionary() {
	err := s.storage.SaveDictionary(s.ctx, 3, []string{"cat", "dog"})
	s.Require().NoError(err)

	version, words, err := s.storage.GetDictionary(s.ctx)
	s.Require().NoError(err)
	s.Equal(3, version)
	s.Equal([]string{"cat", "dog"}, words)

	version, err = s.storage.GetDictionaryVersion(s.ctx)
	s.Require().NoError(err)
	s.Equal(3, version)
}

func (s *StorageSuite) TestBoardCacheRoundTrip() {
	board := &model.GeneratedBoard{
		Grid:     [][]rune{{'A', 'B'}, {'C', 'D'}},
		Richness: 0.7,
		Words:    []string{"cab"},
	}

	err := s.storage.SaveGeneratedBoard(s.ctx, 42, board)
	s.Require().NoError(err)

	got, err := s.storage.GetGeneratedBoard(s.ctx, 42)
	s.Require().NoError(err)
	s.Equal(board, got)
}

func (s *StorageSuite) TestBoardCacheMiss() {
	_, err := s.storage.GetGeneratedBoard(s.ctx, 99)
	s.ErrorIs(err, model.ErrBoardNotFound)
}

func (s *StorageSuite) TestBoardCacheEvictsOldest() {
	for i := 0; i < maxCachedBoards+1; i++ {
		err := s.storage.SaveGeneratedBoard(s.ctx, int64(i), &model.GeneratedBoard{
			Words: []string{fmt.Sprintf("word-%d", i)},
		})
		s.Require().NoError(err)
	}

	_, err := s.storage.GetGeneratedBoard(s.ctx, 0)
	s.ErrorIs(err, model.ErrBoardNotFound)

	_, err = s.storage.GetGeneratedBoard(s.ctx, 1)
	s.NoError(err)
}

func (s *StorageSuite) TestBoardCacheGetRefreshesRecency() {
	for i := 0; i < maxCachedBoards; i++ {
		err := s.storage.SaveGeneratedBoard(s.ctx, int64(i), &model.GeneratedBoard{})
		s.Require().NoError(err)
	}

	// Touch seed 0 so seed 1 becomes the eviction candidate
	_, err := s.storage.GetGeneratedBoard(s.ctx, 0)
	s.Require().NoError(err)

	err = s.storage.SaveGeneratedBoard(s.ctx, 1000, &model.GeneratedBoard{})
	s.Require().NoError(err)

	_, err = s.storage.GetGeneratedBoard(s.ctx, 0)
	s.NoError(err)
	_, err = s.storage.GetGeneratedBoard(s.ctx, 1)
	s.ErrorIs(err, model.ErrBoardNotFound)
}

package sqlite

import (
	"context"
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
	storage, err := New(":memory:")
	s.Require().NoError(err)
	s.storage = storage
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
}

func (s *StorageSuite) TestSaveAndGetDayResult() {
	result := &model.DayResult{
		ID:         "result-1",
		Day:        "2026-08-25",
		Words:      []model.WordResult{{Word: "crumble", Score: 1850, Stress: []int{2, 2, 1, 1, 0, 0, 2}}},
		MaxScore:   1850,
		TotalScore: 1850,
		WordCount:  1,
		FinishedAt: time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC),
	}

	err := s.storage.SaveDayResult(s.ctx, result)
	s.Require().NoError(err)

	got, err := s.storage.GetDayResult(s.ctx, "2026-08-25")
	s.Require().NoError(err)
	s.Equal(result.ID, got.ID)
	s.Equal(result.Words, got.Words)
	s.Equal(result.MaxScore, got.MaxScore)
}

func (s *StorageSuite) TestSaveDayResultOverwrites() {
	err := s.storage.SaveDayResult(s.ctx, &model.DayResult{ID: "a", Day: "2026-08-25", TotalScore: 100})
	s.Require().NoError(err)
	err = s.storage.SaveDayResult(s.ctx, &model.DayResult{ID: "b", Day: "2026-08-25", TotalScore: 200})
	s.Require().NoError(err)

	got, err := s.storage.GetDayResult(s.ctx, "2026-08-25")
	s.Require().NoError(err)
	s.Equal("b", got.ID)
	s.Equal(200, got.TotalScore)
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

func (s *StorageSuite) TestDictionaryRoundTrip() {
	_, _, err := s.storage.GetDictionary(s.ctx)
	s.ErrorIs(err, model.ErrDictionaryNotLoaded)

	err = s.storage.SaveDictionary(s.ctx, 4, []string{"cat", "dog"})
	s.Require().NoError(err)

	version, words, err := s.storage.GetDictionary(s.ctx)
	s.Require().NoError(err)
	s.Equal(4, version)
	s.Equal([]string{"cat", "dog"}, words)

	// Version bump replaces the single row
	err = s.storage.SaveDictionary(s.ctx, 5, []string{"cat", "dog", "emu"})
	s.Require().NoError(err)

	version, err = s.storage.GetDictionaryVersion(s.ctx)
	s.Require().NoError(err)
	s.Equal(5, version)
}

func (s *StorageSuite) TestBoardCacheRoundTrip() {
	board := &model.GeneratedBoard{
		Grid:     [][]rune{{'A', 'B'}, {'C', 'D'}},
		Richness: 0.5,
		Words:    []string{"bad"},
	}

	err := s.storage.SaveGeneratedBoard(s.ctx, -12345, board)
	s.Require().NoError(err)

	got, err := s.storage.GetGeneratedBoard(s.ctx, -12345)
	s.Require().NoError(err)
	s.Equal(board, got)

	_, err = s.storage.GetGeneratedBoard(s.ctx, 777)
	s.ErrorIs(err, model.ErrBoardNotFound)
}

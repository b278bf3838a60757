package storage

import (
	"context"

	"github.com/wordcrumble/wordcrumble-go/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Day result operations. A saved result also marks the day as played.
	SaveDayResult(ctx context.Context, result *model.DayResult) error
	GetDayResult(ctx context.Context, day string) (*model.DayResult, error)
	HasPlayed(ctx context.Context, day string) (bool, error)

	// Dictionary operations. The word list is stored together with its
	// version; consumers rebuild their index when the version changes.
	SaveDictionary(ctx context.Context, version int, words []string) error
	GetDictionary(ctx context.Context) (int, []string, error)
	GetDictionaryVersion(ctx context.Context) (int, error)

	// Generated board cache, keyed by board seed
	SaveGeneratedBoard(ctx context.Context, seed int64, board *model.GeneratedBoard) error
	GetGeneratedBoard(ctx context.Context, seed int64) (*model.GeneratedBoard, error)
}

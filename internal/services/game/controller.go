package game

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/wordcrumble/wordcrumble-go/internal/dependencies/clock"
	"github.com/wordcrumble/wordcrumble-go/internal/model"
	"github.com/wordcrumble/wordcrumble-go/internal/services/board"
	"github.com/wordcrumble/wordcrumble-go/internal/services/daily"
	"github.com/wordcrumble/wordcrumble-go/internal/services/dictionary"
	"github.com/wordcrumble/wordcrumble-go/internal/services/scoring"
	"github.com/wordcrumble/wordcrumble-go/internal/storage"
)

// Controller owns the single game session: starting a day's game,
// running the acceptance pipeline for submitted paths, counting the
// timer down, and persisting the result when the game ends.
//
// All session state is guarded by one mutex; event delivery happens
// inside the critical section so observers see transitions in order.
type Controller struct {
	daily   daily.ServiceInterface
	boards  board.ServiceInterface
	dict    dictionary.ServiceInterface
	scorer  scoring.ServiceInterface
	mutator *board.Mutator
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
	sink    model.EventSink

	mu      sync.Mutex
	session *model.Session
}

// NewController creates a game controller. sink may be nil.
func NewController(
	dailyService daily.ServiceInterface,
	boards board.ServiceInterface,
	dict dictionary.ServiceInterface,
	scorer scoring.ServiceInterface,
	mutator *board.Mutator,
	store storage.Storage,
	clk clock.Clock,
	logger *slog.Logger,
	sink model.EventSink,
) *Controller {
	return &Controller{
		daily:   dailyService,
		boards:  boards,
		dict:    dict,
		scorer:  scorer,
		mutator: mutator,
		storage: store,
		clock:   clk,
		logger:  logger,
		sink:    sink,
	}
}

// Start begins today's game. A day can only be played once; a session
// already in progress must finish first.
func (c *Controller) Start(ctx context.Context) (*model.Session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session != nil && c.session.Active {
		return nil, model.ErrGameStillActive
	}

	info := c.daily.Today()

	played, err := c.storage.HasPlayed(ctx, info.Day)
	if err != nil {
		return nil, err
	}
	if played {
		return nil, model.ErrDayAlreadyPlayed
	}

	req := board.DefaultGenerationRequest(info.BoardSize)
	req.TargetRichness = c.daily.TargetRichness()
	generated, err := c.boards.Generate(ctx, req, info.Seed)
	if err != nil {
		return nil, err
	}

	now := c.clock.Now()
	c.session = &model.Session{
		ID:               model.SessionID(uuid.NewString()),
		Day:              info.Day,
		Board:            model.NewBoard(generated.Grid, info.Seed),
		Active:           true,
		RemainingSeconds: info.TimerDuration,
		UsedWords:        make(map[string]struct{}),
		StartedAt:        now,
		UpdatedAt:        now,
	}

	c.logger.Info("game started",
		slog.String("session_id", string(c.session.ID)),
		slog.String("day", info.Day),
		slog.Int64("seed", info.Seed),
		slog.Int("size", info.BoardSize),
		slog.Int("timer", info.TimerDuration),
	)
	c.emit(model.EventGameStarted, model.GameStartedPayload{
		Day:           info.Day,
		GridSize:      info.BoardSize,
		TimerDuration: info.TimerDuration,
	})

	return c.session, nil
}

// Submit runs the acceptance pipeline for a completed path. Rejections
// come back as the sentinel errors, checked in a fixed order: missing
// board, inactive game, too short, not a word, already used. Accepted
// words return their result after the board has been worn down.
func (c *Controller) Submit(ctx context.Context, path model.Path) (*model.WordResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session == nil || c.session.Board == nil {
		return nil, model.ErrMissingBoardData
	}
	if !c.session.Active {
		return nil, model.ErrNoActiveGame
	}

	b := c.session.Board
	if !path.Valid(b) {
		return nil, model.ErrInvalidPath
	}
	word := b.Word(path)

	if len(word) < dictionary.MinWordLength {
		return nil, c.reject(word, model.RejectTooShort, model.ErrWordTooShort)
	}
	if !c.dict.Contains(word) {
		return nil, c.reject(word, model.RejectNotAWord, model.ErrNotAWord)
	}
	if c.session.HasUsed(word) {
		return nil, c.reject(word, model.RejectAlreadyUsed, model.ErrWordAlreadyUsed)
	}

	// Stress and depth are read before the board wears down
	stress := make([]int, len(path))
	regens := make([]int, len(path))
	for i, pos := range path {
		stress[i] = b.StressAt(pos)
		regens[i] = b.RegenAt(pos)
	}
	score := c.scorer.Score(word, path, stress, regens)

	result := model.WordResult{Word: word, Score: score, Stress: stress}
	c.session.UsedWords[word] = struct{}{}
	c.session.Words = append(c.session.Words, result)
	c.session.TotalScore += score
	c.session.UpdatedAt = c.clock.Now()

	regenerated := c.mutator.ApplyWord(b, path)

	c.logger.Info("word accepted",
		slog.String("session_id", string(c.session.ID)),
		slog.String("word", word),
		slog.Int("score", score),
		slog.Int("total", c.session.TotalScore),
		slog.Int("regenerated", len(regenerated)),
	)
	c.emit(model.EventWordAccepted, model.WordAcceptedPayload{
		Word:   word,
		Score:  score,
		Stress: stress,
	})
	for _, r := range regenerated {
		c.emit(model.EventLetterRegenerated, model.LetterRegeneratedPayload{
			Cell:      r.Cell,
			OldLetter: r.OldLetter,
			NewLetter: r.NewLetter,
			Count:     r.Count,
		})
	}

	return &result, nil
}

func (c *Controller) reject(word string, reason model.RejectReason, err error) error {
	c.logger.Debug("word rejected",
		slog.String("session_id", string(c.session.ID)),
		slog.String("word", word),
		slog.String("reason", string(reason)),
	)
	c.emit(model.EventWordRejected, model.WordRejectedPayload{Word: word, Reason: reason})
	return err
}

// Tick counts one second off the timer, ending the game at zero.
func (c *Controller) Tick(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session == nil || !c.session.Active {
		return
	}

	c.session.RemainingSeconds--
	if c.session.RemainingSeconds <= 0 {
		c.session.RemainingSeconds = 0
		c.finish(ctx)
	}
}

// RunTimer drives Tick from the clock until ctx is cancelled.
func (c *Controller) RunTimer(ctx context.Context) {
	ticks := c.clock.Tick(time.Second)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticks:
			c.Tick(ctx)
		}
	}
}

// Finish ends the session early and records the result.
func (c *Controller) Finish(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session == nil || !c.session.Active {
		return model.ErrNoActiveGame
	}
	c.finish(ctx)
	return nil
}

// finish deactivates the session, persists its result, and emits the
// game-over event. Callers hold the mutex.
func (c *Controller) finish(ctx context.Context) {
	s := c.session
	s.Active = false

	result := &model.DayResult{
		ID:         uuid.NewString(),
		Day:        s.Day,
		Words:      s.Words,
		MaxScore:   s.MaxWordScore(),
		TotalScore: s.TotalScore,
		WordCount:  len(s.Words),
		FinishedAt: c.clock.Now(),
	}
	if err := c.storage.SaveDayResult(ctx, result); err != nil {
		// The session outcome is still reported; only history is lost
		c.logger.Error("failed to persist day result",
			slog.String("day", s.Day),
			slog.String("error", err.Error()),
		)
	}

	c.logger.Info("game over",
		slog.String("session_id", string(s.ID)),
		slog.String("day", s.Day),
		slog.Int("total", s.TotalScore),
		slog.Int("words", len(s.Words)),
	)
	c.emit(model.EventGameOver, model.GameOverPayload{
		TotalScore: s.TotalScore,
		WordCount:  len(s.Words),
		MaxScore:   s.MaxWordScore(),
	})
}

// Session returns the current session, or nil before the first start.
func (c *Controller) Session() *model.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

// Result fetches the persisted outcome for a day.
func (c *Controller) Result(ctx context.Context, day string) (*model.DayResult, error) {
	return c.storage.GetDayResult(ctx, day)
}

// HasPlayed reports whether a day already has a recorded result.
func (c *Controller) HasPlayed(ctx context.Context, day string) (bool, error) {
	return c.storage.HasPlayed(ctx, day)
}

func (c *Controller) emit(eventType model.EventType, payload any) {
	if c.sink == nil {
		return
	}
	var id model.SessionID
	if c.session != nil {
		id = c.session.ID
	}
	c.sink(model.Event{
		Type:      eventType,
		Timestamp: c.clock.Now(),
		SessionID: id,
		Payload:   payload,
	})
}

// Interface for dependency injection
type ControllerInterface interface {
	Start(ctx context.Context) (*model.Session, error)
	Submit(ctx context.Context, path model.Path) (*model.WordResult, error)
	Tick(ctx context.Context)
	Finish(ctx context.Context) error
	Session() *model.Session
	Result(ctx context.Context, day string) (*model.DayResult, error)
	HasPlayed(ctx context.Context, day string) (bool, error)
}

var _ ControllerInterface = (*Controller)(nil)

package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/wordcrumble/wordcrumble-go/internal/api/handler"
	apimiddleware "github.com/wordcrumble/wordcrumble-go/internal/api/middleware"
	"github.com/wordcrumble/wordcrumble-go/internal/api/sse"
	"github.com/wordcrumble/wordcrumble-go/internal/middleware"
	"github.com/wordcrumble/wordcrumble-go/internal/services/board"
	"github.com/wordcrumble/wordcrumble-go/internal/services/daily"
	"github.com/wordcrumble/wordcrumble-go/internal/services/dictionary"
	"github.com/wordcrumble/wordcrumble-go/internal/services/game"
	"github.com/wordcrumble/wordcrumble-go/internal/services/hint"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	DailyService   daily.ServiceInterface
	BoardService   board.ServiceInterface
	Dictionary     dictionary.ServiceInterface
	GameController game.ControllerInterface

	// HintService enables GET /game/hint when set
	HintService hint.ServiceInterface
	// EventHub enables the SSE event stream when set
	EventHub *sse.Hub
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	boardHandler := handler.NewBoardHandler(cfg.DailyService, cfg.BoardService)
	gameHandler := handler.NewGameHandler(cfg.GameController)
	dictionaryHandler := handler.NewDictionaryHandler(cfg.Dictionary)
	resultHandler := handler.NewResultHandler(cfg.GameController)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(apimiddleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	// Board routes
	api.HandleFunc("/board", boardHandler.Daily).Methods(http.MethodGet)
	api.HandleFunc("/board/validate", boardHandler.Validate).Methods(http.MethodPost)
	api.HandleFunc("/board/custom", boardHandler.Generate).Methods(http.MethodPost)

	// Dictionary routes
	api.HandleFunc("/dictionary", dictionaryHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/dictionary/version", dictionaryHandler.Version).Methods(http.MethodGet)

	// Game session routes
	api.HandleFunc("/game", gameHandler.Start).Methods(http.MethodPost)
	api.HandleFunc("/game", gameHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/game", gameHandler.Finish).Methods(http.MethodDelete)
	api.HandleFunc("/game/words", gameHandler.Submit).Methods(http.MethodPost)

	if cfg.HintService != nil {
		hintHandler := handler.NewHintHandler(cfg.GameController, cfg.HintService)
		api.HandleFunc("/game/hint", hintHandler.Get).Methods(http.MethodGet)
	}

	// Event stream
	if cfg.EventHub != nil {
		api.HandleFunc("/events", func(w http.ResponseWriter, r *http.Request) {
			sse.ServeSSE(w, r, cfg.EventHub)
		}).Methods(http.MethodGet)
	}

	// Result routes
	api.HandleFunc("/results/{day}", resultHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/results/{day}/played", resultHandler.Played).Methods(http.MethodGet)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

package handler

import (
	"encoding/json"
	"net/http"

	"github.com/wordcrumble/wordcrumble-go/internal/api/request"
	"github.com/wordcrumble/wordcrumble-go/internal/api/response"
	"github.com/wordcrumble/wordcrumble-go/internal/model"
	"github.com/wordcrumble/wordcrumble-go/internal/services/game"
)

// GameHandler handles game session endpoints
type GameHandler struct {
	controller game.ControllerInterface
}

// NewGameHandler creates a new game handler
func NewGameHandler(controller game.ControllerInterface) *GameHandler {
	return &GameHandler{controller: controller}
}

// Start handles POST /api/v1/game
func (h *GameHandler) Start(w http.ResponseWriter, r *http.Request) {
	session, err := h.controller.Start(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.GameStateFromModel(session))
}

// Get handles GET /api/v1/game
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	session := h.controller.Session()
	if session == nil {
		WriteError(w, model.ErrSessionNotFound)
		return
	}

	response.JSON(w, http.StatusOK, response.GameStateFromModel(session))
}

// Submit handles POST /api/v1/game/words
func (h *GameHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req request.SubmitWordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	result, err := h.controller.Submit(r.Context(), request.PathToModel(req.Path))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.WordResultFromModel(*result))
}

// Finish handles DELETE /api/v1/game
func (h *GameHandler) Finish(w http.ResponseWriter, r *http.Request) {
	if err := h.controller.Finish(r.Context()); err != nil {
		WriteError(w, err)
		return
	}

	session := h.controller.Session()
	response.JSON(w, http.StatusOK, response.GameStateFromModel(session))
}

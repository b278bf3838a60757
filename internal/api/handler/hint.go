package handler

import (
	"net/http"

	"github.com/wordcrumble/wordcrumble-go/internal/api/response"
	"github.com/wordcrumble/wordcrumble-go/internal/services/game"
	"github.com/wordcrumble/wordcrumble-go/internal/services/hint"
)

// HintHandler suggests playable words for the active game
type HintHandler struct {
	controller game.ControllerInterface
	hints      hint.ServiceInterface
}

// NewHintHandler creates a new hint handler
func NewHintHandler(controller game.ControllerInterface, hints hint.ServiceInterface) *HintHandler {
	return &HintHandler{controller: controller, hints: hints}
}

// Get handles GET /api/v1/game/hint
func (h *HintHandler) Get(w http.ResponseWriter, r *http.Request) {
	strategy := r.URL.Query().Get("strategy")
	if strategy != "" && strategy != hint.StrategyGreedy && strategy != hint.StrategyRandom {
		WriteError(w, NewInvalidRequestError("unknown hint strategy"))
		return
	}

	candidate, err := h.hints.Hint(h.controller.Session(), strategy)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.HintFromCandidate(candidate))
}

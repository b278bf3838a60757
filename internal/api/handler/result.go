package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/wordcrumble/wordcrumble-go/internal/api/response"
	"github.com/wordcrumble/wordcrumble-go/internal/services/game"
)

// ResultHandler handles per-day result endpoints
type ResultHandler struct {
	controller game.ControllerInterface
}

// NewResultHandler creates a new result handler
func NewResultHandler(controller game.ControllerInterface) *ResultHandler {
	return &ResultHandler{controller: controller}
}

// Get handles GET /api/v1/results/{day}
func (h *ResultHandler) Get(w http.ResponseWriter, r *http.Request) {
	day := mux.Vars(r)["day"]

	result, err := h.controller.Result(r.Context(), day)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.DayResultFromModel(result))
}

// Played handles GET /api/v1/results/{day}/played
func (h *ResultHandler) Played(w http.ResponseWriter, r *http.Request) {
	day := mux.Vars(r)["day"]

	played, err := h.controller.HasPlayed(r.Context(), day)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]any{"day": day, "played": played})
}

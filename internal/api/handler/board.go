package handler

import (
	"encoding/json"
	"net/http"

	"github.com/wordcrumble/wordcrumble-go/internal/api/request"
	"github.com/wordcrumble/wordcrumble-go/internal/api/response"
	"github.com/wordcrumble/wordcrumble-go/internal/model"
	"github.com/wordcrumble/wordcrumble-go/internal/services/board"
	"github.com/wordcrumble/wordcrumble-go/internal/services/daily"
)

// BoardHandler handles board-related endpoints
type BoardHandler struct {
	daily  daily.ServiceInterface
	boards board.ServiceInterface
}

// NewBoardHandler creates a new board handler
func NewBoardHandler(dailyService daily.ServiceInterface, boards board.ServiceInterface) *BoardHandler {
	return &BoardHandler{daily: dailyService, boards: boards}
}

// Daily handles GET /api/v1/board
func (h *BoardHandler) Daily(w http.ResponseWriter, r *http.Request) {
	info := h.daily.Today()

	req := board.DefaultGenerationRequest(info.BoardSize)
	req.TargetRichness = h.daily.TargetRichness()

	generated, err := h.boards.Generate(r.Context(), req, info.Seed)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.DailyBoardFrom(info, generated.Grid))
}

// Validate handles POST /api/v1/board/validate
func (h *BoardHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var req request.ValidateMoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	grid, ok := request.GridToModel(req.Grid)
	if !ok {
		WriteError(w, model.ErrInvalidGridSize)
		return
	}

	result, err := h.boards.ValidateMove(grid, request.PathToModel(req.Path))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, result)
}

// Generate handles POST /api/v1/board/custom
func (h *BoardHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req request.GenerateBoardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Size < 3 || req.Size > 8 {
		WriteError(w, model.ErrInvalidGridSize)
		return
	}
	if len(req.Words) == 0 {
		WriteError(w, NewInvalidRequestError("word list is required"))
		return
	}

	seed := req.Seed
	if seed == 0 {
		seed = h.daily.Today().Seed
	}

	generated, err := h.boards.GenerateFromWords(req.Size, req.Words, seed)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GeneratedBoardFromModel(generated))
}

package request

import (
	"strings"

	"github.com/wordcrumble/wordcrumble-go/internal/model"
)

// Cell is one path step in a request body
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// PathToModel converts request cells to a model path
func PathToModel(cells []Cell) model.Path {
	path := make(model.Path, len(cells))
	for i, c := range cells {
		path[i] = model.Position{Row: c.Row, Col: c.Col}
	}
	return path
}

// GridToModel converts row strings ("CATS", ...) to a letter grid.
// Returns false when the grid is not square.
func GridToModel(rows []string) ([][]rune, bool) {
	size := len(rows)
	if size == 0 {
		return nil, false
	}
	grid := make([][]rune, size)
	for i, row := range rows {
		letters := []rune(strings.ToUpper(row))
		if len(letters) != size {
			return nil, false
		}
		grid[i] = letters
	}
	return grid, true
}

// SubmitWordRequest is the request body for submitting a traced path
type SubmitWordRequest struct {
	Path []Cell `json:"path"`
}

// ValidateMoveRequest is the request body for checking a move against
// an arbitrary grid, outside any session.
type ValidateMoveRequest struct {
	Grid []string `json:"grid"`
	Path []Cell   `json:"path"`
}

// GenerateBoardRequest is the request body for building a custom board
// from a fixed word list.
type GenerateBoardRequest struct {
	Size  int      `json:"size"`
	Words []string `json:"words"`
	Seed  int64    `json:"seed,omitempty"`
}

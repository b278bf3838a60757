package model

import "strings"

// Stress levels for a cell. A fresh cell starts at StressFresh and is
// worn down one level each time it is used in an accepted word.
const (
	StressRed   = 0 // maximally stressed, next reuse regenerates the letter
	StressWorn  = 1
	StressFresh = 2
)

// Board is a square letter grid together with the per-cell wear state
// that accumulates over a game session. Cell letters are uppercase A-Z.
type Board struct {
	Size  int      `json:"size"`
	Cells [][]rune `json:"cells"`

	// Seed is the board seed supplied with the daily board. It is the
	// sole source of determinism for letter regeneration; 0 means no
	// seed is available.
	Seed int64 `json:"seed"`

	// Stress holds the stress level of each cell, Stress[row][col],
	// initialised to StressFresh on load.
	Stress [][]int `json:"stress"`

	// Regens counts how many times each cell's letter has been
	// replaced since the board loaded.
	Regens [][]int `json:"regens"`
}

// NewBoard builds a board from a grid of letters, with every cell
// fresh and no regenerations.
func NewBoard(grid [][]rune, seed int64) *Board {
	size := len(grid)
	cells := make([][]rune, size)
	stress := make([][]int, size)
	regens := make([][]int, size)
	for i := 0; i < size; i++ {
		cells[i] = make([]rune, size)
		copy(cells[i], grid[i])
		stress[i] = make([]int, size)
		regens[i] = make([]int, size)
		for j := 0; j < size; j++ {
			stress[i][j] = StressFresh
		}
	}
	return &Board{
		Size:   size,
		Cells:  cells,
		Seed:   seed,
		Stress: stress,
		Regens: regens,
	}
}

// NewBoardFromStrings builds a board from one string per row, e.g.
// NewBoardFromStrings(0, "CATS", "AREA", "TEST", "SLED").
func NewBoardFromStrings(seed int64, rows ...string) *Board {
	grid := make([][]rune, len(rows))
	for i, row := range rows {
		grid[i] = []rune(strings.ToUpper(row))
	}
	return NewBoard(grid, seed)
}

// Letter returns the current letter at pos, or 0 if out of bounds.
func (b *Board) Letter(pos Position) rune {
	if !b.InBounds(pos) {
		return 0
	}
	return b.Cells[pos.Row][pos.Col]
}

// SetLetter replaces the letter at pos.
func (b *Board) SetLetter(pos Position, letter rune) {
	if b.InBounds(pos) {
		b.Cells[pos.Row][pos.Col] = letter
	}
}

// StressAt returns the stress level at pos, or StressFresh if out of bounds.
func (b *Board) StressAt(pos Position) int {
	if !b.InBounds(pos) {
		return StressFresh
	}
	return b.Stress[pos.Row][pos.Col]
}

// RegenAt returns the regeneration count at pos.
func (b *Board) RegenAt(pos Position) int {
	if !b.InBounds(pos) {
		return 0
	}
	return b.Regens[pos.Row][pos.Col]
}

// InBounds reports whether pos is within the grid.
func (b *Board) InBounds(pos Position) bool {
	return pos.Row >= 0 && pos.Row < b.Size && pos.Col >= 0 && pos.Col < b.Size
}

// Word spells out the current letters along path as a lowercase string.
func (b *Board) Word(path Path) string {
	var sb strings.Builder
	for _, pos := range path {
		sb.WriteRune(b.Letter(pos))
	}
	return strings.ToLower(sb.String())
}

// Rows renders the grid as one string per row, for logging and the CLI.
func (b *Board) Rows() []string {
	rows := make([]string, b.Size)
	for i := 0; i < b.Size; i++ {
		rows[i] = string(b.Cells[i])
	}
	return rows
}

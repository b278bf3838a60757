package model

// Position identifies a cell on the board
type Position struct {
	Row int `json:"row"` // 0-indexed from top
	Col int `json:"col"` // 0-indexed from left
}

// IsAdjacent reports whether other is one of the up-to-8 neighbouring
// cells of p. A cell is never adjacent to itself.
func (p Position) IsAdjacent(other Position) bool {
	if p == other {
		return false
	}
	dr := p.Row - other.Row
	dc := p.Col - other.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr <= 1 && dc <= 1
}

// Neighbors returns the positions adjacent to p that fall within a
// size x size grid. Cells at an edge or corner have fewer than 8.
func (p Position) Neighbors(size int) []Position {
	result := make([]Position, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			n := Position{Row: p.Row + dr, Col: p.Col + dc}
			if n.Row >= 0 && n.Row < size && n.Col >= 0 && n.Col < size {
				result = append(result, n)
			}
		}
	}
	return result
}

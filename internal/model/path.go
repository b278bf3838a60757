package model

// Path is an ordered trace of distinct cells. Consecutive entries are
// always 8-adjacent; the selection engine maintains both invariants.
type Path []Position

// Last returns the final cell of the path; ok is false when empty.
func (p Path) Last() (Position, bool) {
	if len(p) == 0 {
		return Position{}, false
	}
	return p[len(p)-1], true
}

// IndexOf returns the index of pos in the path, or -1.
func (p Path) IndexOf(pos Position) int {
	for i, existing := range p {
		if existing == pos {
			return i
		}
	}
	return -1
}

// Contains reports whether pos is anywhere in the path.
func (p Path) Contains(pos Position) bool {
	return p.IndexOf(pos) >= 0
}

// TruncateTo shortens the path so that it ends at index i, keeping
// elements [0, i]. Out-of-range indices leave the path unchanged.
func (p Path) TruncateTo(i int) Path {
	if i < 0 || i >= len(p) {
		return p
	}
	return p[:i+1]
}

// Valid checks the path invariants against a board: in bounds,
// pairwise distinct, consecutive entries adjacent.
func (p Path) Valid(board *Board) bool {
	seen := make(map[Position]struct{}, len(p))
	for i, pos := range p {
		if !board.InBounds(pos) {
			return false
		}
		if _, dup := seen[pos]; dup {
			return false
		}
		seen[pos] = struct{}{}
		if i > 0 && !p[i-1].IsAdjacent(pos) {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the path.
func (p Path) Clone() Path {
	out := make(Path, len(p))
	copy(out, p)
	return out
}

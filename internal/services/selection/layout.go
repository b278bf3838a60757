package selection

import (
	"math"

	"github.com/wordcrumble/wordcrumble-go/internal/model"
)

// Layout maps pointer coordinates onto grid cells. The engine never
// assumes a particular geometry; any resolver that can answer these
// three questions works.
type Layout interface {
	// CellAt resolves a pointer position to the cell under it
	CellAt(x, y float64) (model.Position, bool)
	// CellCenter returns the visual center of a cell
	CellCenter(pos model.Position) (x, y float64)
	// CellSize returns the edge length of one cell
	CellSize() float64
}

// GridLayout is a uniform square grid: size x size cells of equal
// span, anchored at an origin.
type GridLayout struct {
	size    int
	originX float64
	originY float64
	span    float64
}

// NewGridLayout creates a uniform grid layout
func NewGridLayout(size int, originX, originY, span float64) *GridLayout {
	return &GridLayout{size: size, originX: originX, originY: originY, span: span}
}

var _ Layout = (*GridLayout)(nil)

func (l *GridLayout) CellAt(x, y float64) (model.Position, bool) {
	relX := x - l.originX
	relY := y - l.originY
	if relX < 0 || relY < 0 {
		return model.Position{}, false
	}

	col := int(relX / l.span)
	row := int(relY / l.span)
	if row >= l.size || col >= l.size {
		return model.Position{}, false
	}
	return model.Position{Row: row, Col: col}, true
}

func (l *GridLayout) CellCenter(pos model.Position) (float64, float64) {
	x := l.originX + (float64(pos.Col)+0.5)*l.span
	y := l.originY + (float64(pos.Row)+0.5)*l.span
	return x, y
}

func (l *GridLayout) CellSize() float64 {
	return l.span
}

func distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

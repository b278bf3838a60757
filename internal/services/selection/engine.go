package selection

import (
	"github.com/wordcrumble/wordcrumble-go/internal/model"
)

// State is the engine's interaction state. The control mode for one
// move is fixed the moment the state leaves ModeUndetermined; a move
// that resolved to clicking never retroactively becomes a drag.
type State int

const (
	// StateIdle means no move is in progress
	StateIdle State = iota
	// StateModeUndetermined covers the window between the first
	// pointer-down and the point where the move resolves to dragging
	// or clicking.
	StateModeUndetermined
	// StateDraggingSelect builds the path from continuous pointer motion
	StateDraggingSelect
	// StateClickSelecting builds the path from discrete taps
	StateClickSelecting
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateModeUndetermined:
		return "mode_undetermined"
	case StateDraggingSelect:
		return "dragging"
	case StateClickSelecting:
		return "clicking"
	default:
		return "unknown"
	}
}

const (
	// dragThresholdPx is how far the pointer must travel from its down
	// position before the move resolves to dragging.
	dragThresholdPx = 8.0

	// proximityFraction gates drag selection: the pointer must be
	// within this fraction of a cell span from the cell center. Keeps
	// a drag skimming a cell corner from selecting it.
	proximityFraction = 0.40
)

// Completed is a finalized selection handed to the acceptance pipeline
type Completed struct {
	Word string
	Path model.Path
}

// Engine turns pointer and key events into an ordered path of grid
// cells and, on finalize, a completed word. All processing is
// synchronous; the engine owns no goroutines and expects events from a
// single caller.
type Engine struct {
	layout Layout
	board  *model.Board

	state State
	path  model.Path

	downX, downY float64
	lastHover    model.Position
	hasHover     bool

	// OnChange, when set, fires after every path mutation
	OnChange func(path model.Path)
}

// NewEngine creates a selection engine over the given layout
func NewEngine(layout Layout) *Engine {
	return &Engine{layout: layout}
}

// SetBoard attaches the board whose letters finalized paths spell.
// Any in-progress selection is discarded.
func (e *Engine) SetBoard(board *model.Board) {
	e.board = board
	e.reset()
}

// State returns the current interaction state
func (e *Engine) State() State {
	return e.state
}

// Path returns a copy of the in-progress path
func (e *Engine) Path() model.Path {
	return e.path.Clone()
}

// PointerDown starts a move, or in click mode processes a tap.
func (e *Engine) PointerDown(x, y float64) {
	switch e.state {
	case StateIdle:
		cell, ok := e.layout.CellAt(x, y)
		if !ok {
			return
		}
		e.state = StateModeUndetermined
		e.downX, e.downY = x, y
		e.lastHover = cell
		e.hasHover = true
		e.appendCell(cell)

	case StateClickSelecting:
		cell, ok := e.layout.CellAt(x, y)
		if !ok {
			return
		}
		e.clickSelect(cell)
	}
}

// PointerMove resolves the control mode on the first sufficient
// movement and, while dragging, feeds the selection rule.
func (e *Engine) PointerMove(x, y float64) {
	switch e.state {
	case StateModeUndetermined:
		if distance(e.downX, e.downY, x, y) <= dragThresholdPx {
			return
		}
		e.state = StateDraggingSelect
		e.dragSelect(x, y)

	case StateDraggingSelect:
		e.dragSelect(x, y)
	}
}

// PointerUp finalizes a drag, or resolves an undetermined move to
// click mode. Returns the completed selection for drags, nil otherwise.
func (e *Engine) PointerUp(x, y float64) *Completed {
	switch e.state {
	case StateModeUndetermined:
		// The threshold was never crossed: this move is click-driven
		// and the first tap's cell stays selected.
		e.state = StateClickSelecting
		return nil

	case StateDraggingSelect:
		return e.finalize()
	}
	return nil
}

// Submit finalizes a click-mode selection. Drag selections finalize on
// pointer-up instead.
func (e *Engine) Submit() *Completed {
	if e.state != StateClickSelecting {
		return nil
	}
	return e.finalize()
}

// Clear abandons the in-progress selection with no word emitted.
func (e *Engine) Clear() {
	if e.state == StateIdle && len(e.path) == 0 {
		return
	}
	e.reset()
	e.notify()
}

// dragSelect applies the selection rule to the cell under the pointer.
// Events far from any cell center are ignored; re-hovering the cell
// just processed is idempotent.
func (e *Engine) dragSelect(x, y float64) {
	cell, ok := e.layout.CellAt(x, y)
	if !ok {
		return
	}

	cx, cy := e.layout.CellCenter(cell)
	if distance(x, y, cx, cy) > proximityFraction*e.layout.CellSize() {
		return
	}

	if e.hasHover && cell == e.lastHover {
		return
	}
	e.lastHover = cell
	e.hasHover = true

	if idx := e.path.IndexOf(cell); idx >= 0 {
		if idx == len(e.path)-1 {
			return
		}
		// Revisiting an interior cell backtracks the path to it
		e.path = e.path.TruncateTo(idx)
		e.notify()
		return
	}

	e.appendIfAdjacent(cell)
}

// clickSelect applies the click-mode selection rule: re-tapping the
// last cell removes it, interior cells are untouchable, new cells
// must extend the tail.
func (e *Engine) clickSelect(cell model.Position) {
	if idx := e.path.IndexOf(cell); idx >= 0 {
		if idx != len(e.path)-1 {
			return
		}
		e.path = e.path[:idx]
		if len(e.path) == 0 {
			e.state = StateIdle
		}
		e.notify()
		return
	}

	e.appendIfAdjacent(cell)
}

func (e *Engine) appendIfAdjacent(cell model.Position) {
	if last, ok := e.path.Last(); ok && !last.IsAdjacent(cell) {
		return
	}
	e.appendCell(cell)
}

func (e *Engine) appendCell(cell model.Position) {
	e.path = append(e.path, cell)
	e.notify()
}

// finalize emits the completed word and resets for the next move. A
// single-letter path still emits; length gates live downstream.
func (e *Engine) finalize() *Completed {
	completed := &Completed{Path: e.path.Clone()}
	if e.board != nil {
		completed.Word = e.board.Word(completed.Path)
	}
	e.reset()
	e.notify()
	return completed
}

func (e *Engine) reset() {
	e.state = StateIdle
	e.path = nil
	e.hasHover = false
}

func (e *Engine) notify() {
	if e.OnChange != nil {
		e.OnChange(e.path.Clone())
	}
}

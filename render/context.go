package render

import (
	"time"

	"github.com/lixenwraith/plinko/board"
	"github.com/lixenwraith/plinko/constants"
	"github.com/lixenwraith/plinko/game"
)

// RenderContext is the read-only snapshot handed to every layer
type RenderContext struct {
	Session      *game.Session
	Bet          *game.BetField
	Viewport     Viewport
	Muted        bool
	Message      string    // transient status line text, empty shows help
	Error        bool      // Message is an error
	MessageUntil time.Time // Message is shown while Now is before this
	Now          time.Time
}

// Viewport maps board coordinates onto terminal cells below the HUD
type Viewport struct {
	Cols, Rows   int // terminal size
	BoardW       float64
	BoardH       float64
	Top          int // first board row
	BoardRowsLen int // rows available to the board, label row excluded
}

// NewViewport fits b into a cols x rows terminal. The last row is kept for
// bin labels.
func NewViewport(b *board.Board, cols, rows int) Viewport {
	avail := rows - constants.HUDRows - 1
	if avail < 1 {
		avail = 1
	}
	return Viewport{
		Cols:         cols,
		Rows:         rows,
		BoardW:       b.Width(),
		BoardH:       b.Height(),
		Top:          constants.HUDRows,
		BoardRowsLen: avail,
	}
}

// ToCell converts a board point; ok is false when it falls off screen
func (v Viewport) ToCell(x, y float64) (col, row int, ok bool) {
	if v.BoardW <= 0 || v.BoardH <= 0 || v.Cols <= 0 {
		return 0, 0, false
	}
	col = v.Col(x)
	row = v.Top + int(y/v.BoardH*float64(v.BoardRowsLen))
	if x < 0 || y < 0 || col >= v.Cols || row >= v.Top+v.BoardRowsLen {
		return col, row, false
	}
	return col, row, true
}

// Col converts a board x to a column without bounds checks
func (v Viewport) Col(x float64) int {
	return int(x / v.BoardW * float64(v.Cols))
}

// LabelRow is the terminal row for bin multipliers
func (v Viewport) LabelRow() int {
	return v.Top + v.BoardRowsLen
}

package render

import (
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/plinko/constants"
	"github.com/lixenwraith/plinko/vmath"
)

// BackgroundRenderer paints the board color under everything
type BackgroundRenderer struct{}

func (r *BackgroundRenderer) Render(ctx RenderContext, screen tcell.Screen) {
	screen.Fill(' ', styleBackground)
}

// PegRenderer draws the lattice
type PegRenderer struct{}

func (r *PegRenderer) Render(ctx RenderContext, screen tcell.Screen) {
	b := ctx.Session.Board()
	for i, n := 0, b.PegCount(); i < n; i++ {
		peg := b.Peg(i)
		if col, row, ok := ctx.Viewport.ToCell(peg.X, peg.Y); ok {
			screen.SetContent(col, row, constants.PegGlyph, nil, stylePeg)
		}
	}
}

// BinRenderer draws bin floors, separators and multiplier labels. The bin of
// the last accepted payout is highlighted while the ball rests in it.
type BinRenderer struct{}

func (r *BinRenderer) Render(ctx RenderContext, screen tcell.Screen) {
	s := ctx.Session
	b := s.Board()
	vp := ctx.Viewport

	_, lineRow, _ := vp.ToCell(0, b.BinLine())
	floorRow := vp.LabelRow() - 1

	hit := -1
	if ball := s.Projectile(); ball.Settled() {
		hit = ball.BinIndex()
	}

	for i, n := 0, b.BinCount(); i < n; i++ {
		bin := b.Bin(i)
		left := vp.Col(bin.Left)
		right := vp.Col(bin.Right)
		right = vmath.ClampInt(right, left, vp.Cols)

		for row := lineRow; row <= floorRow; row++ {
			screen.SetContent(left, row, constants.WallGlyph, nil, styleBin)
		}
		for col := left + 1; col < right; col++ {
			screen.SetContent(col, floorRow, constants.BinGlyph, nil, styleBin)
		}

		style := styleBinLabel
		if i == hit {
			style = styleBinHit
		}
		label := FormatMultiplier(bin.Multiplier)
		width := right - left
		if len(label) > width {
			label = label[:max(width, 0)]
		}
		drawText(screen, left+(width-len(label))/2, vp.LabelRow(), label, style)
	}
}

// BallRenderer draws the projectile when it is on screen
type BallRenderer struct{}

func (r *BallRenderer) Render(ctx RenderContext, screen tcell.Screen) {
	x, y := ctx.Session.Projectile().Position()
	if col, row, ok := ctx.Viewport.ToCell(x, y); ok {
		screen.SetContent(col, row, constants.BallGlyph, nil, styleBall)
	}
}

// StatusBarRenderer draws bet, winnings and session totals on the top row
// and help or a message on the second row
type StatusBarRenderer struct{}

func (r *StatusBarRenderer) Render(ctx RenderContext, screen tcell.Screen) {
	s := ctx.Session

	col := 0
	if ctx.Bet != nil && ctx.Bet.Active() {
		col = drawText(screen, col, 0, "Bet: $"+ctx.Bet.Text()+"_", styleEditing)
	} else {
		col = drawText(screen, col, 0, "Bet: $"+s.Wager().StringFixed(2), styleHUD)
	}
	col = drawText(screen, col+3, 0, "Winnings: $"+s.LastPayout().StringFixed(2), styleWinnings)

	ledger := s.Ledger()
	stats := fmt.Sprintf("Rounds: %d  RTP: %s%%", ledger.Rounds(), ledger.RTP().Shift(2).StringFixed(1))
	col = drawText(screen, col+3, 0, stats, styleHUD)
	if ctx.Muted {
		drawText(screen, col+3, 0, "[muted]", styleHelp)
	}

	showMessage := ctx.Message != "" && ctx.Now.Before(ctx.MessageUntil)
	switch {
	case showMessage && ctx.Error:
		drawText(screen, 0, 1, ctx.Message, styleError)
	case showMessage:
		drawText(screen, 0, 1, ctx.Message, styleHUD)
	default:
		drawText(screen, 0, 1, helpText(ctx), styleHelp)
	}
}

func helpText(ctx RenderContext) string {
	if ctx.Bet != nil && ctx.Bet.Active() {
		return "type amount  ENTER confirm  ESC cancel"
	}
	if ctx.Session.Projectile().Settled() {
		return "SPACE drop  b/click bet  m mute  q quit"
	}
	return "b/click bet  m mute  q quit"
}

// drawText writes s from col and returns the column after the last rune
func drawText(screen tcell.Screen, col, row int, s string, style tcell.Style) int {
	for _, r := range s {
		screen.SetContent(col, row, r, nil, style)
		col++
	}
	return col
}

// FormatMultiplier renders 0.5 as "0.5x" and 1000 as "1000x"
func FormatMultiplier(m float64) string {
	return strconv.FormatFloat(m, 'f', -1, 64) + "x"
}

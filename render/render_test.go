package render

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/shopspring/decimal"

	"github.com/lixenwraith/plinko/board"
	"github.com/lixenwraith/plinko/constants"
	"github.com/lixenwraith/plinko/game"
	"github.com/lixenwraith/plinko/physics"
	"github.com/lixenwraith/plinko/vmath"
)

func newSimScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	screen.SetSize(cols, rows)
	t.Cleanup(screen.Fini)
	return screen
}

func newContext(t *testing.T, cols, rows int) RenderContext {
	t.Helper()
	b, err := board.New(board.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	s := game.NewSession(b, &physics.DefaultProfile, vmath.NewFastRand(3), decimal.RequireFromString("10"), nil)
	return RenderContext{
		Session:  s,
		Bet:      &game.BetField{},
		Viewport: NewViewport(b, cols, rows),
		Now:      time.Now(),
	}
}

func rowText(screen tcell.SimulationScreen, row, cols int) string {
	var sb strings.Builder
	for col := 0; col < cols; col++ {
		r, _, _, _ := screen.GetContent(col, row)
		sb.WriteRune(r)
	}
	return sb.String()
}

func TestViewportToCell(t *testing.T) {
	b, err := board.New(board.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	vp := NewViewport(b, 80, 33)

	if col, row, ok := vp.ToCell(0, 0); !ok || col != 0 || row != constants.HUDRows {
		t.Errorf("origin: got (%d,%d,%v)", col, row, ok)
	}
	if col, _, ok := vp.ToCell(400, 300); !ok || col != 40 {
		t.Errorf("center: got col %d ok=%v", col, ok)
	}
	for _, p := range [][2]float64{{-1, 10}, {10, -1}, {800, 10}, {10, 600}} {
		if _, _, ok := vp.ToCell(p[0], p[1]); ok {
			t.Errorf("point %v should be off screen", p)
		}
	}
	if vp.LabelRow() != 32 {
		t.Errorf("label row: got %d", vp.LabelRow())
	}
}

func TestRenderFrameDrawsLayers(t *testing.T) {
	const cols, rows = 80, 33
	screen := newSimScreen(t, cols, rows)
	ctx := newContext(t, cols, rows)

	o := NewRenderOrchestrator(screen)
	o.RegisterDefaults()
	o.RenderFrame(ctx)

	hud := rowText(screen, 0, cols)
	if !strings.Contains(hud, "Bet: $10.00") || !strings.Contains(hud, "Winnings: $0.00") {
		t.Errorf("HUD missing bet or winnings: %q", hud)
	}

	x, y := ctx.Session.Projectile().Position()
	col, row, ok := ctx.Viewport.ToCell(x, y)
	if !ok {
		t.Fatal("spawned ball should be on screen")
	}
	if r, _, _, _ := screen.GetContent(col, row); r != constants.BallGlyph {
		t.Errorf("ball cell (%d,%d): got %q", col, row, r)
	}

	apex := ctx.Session.Board().Peg(0)
	pc, pr, _ := ctx.Viewport.ToCell(apex.X, apex.Y)
	if r, _, _, _ := screen.GetContent(pc, pr); r != constants.PegGlyph {
		t.Errorf("apex peg cell (%d,%d): got %q", pc, pr, r)
	}

	labels := rowText(screen, ctx.Viewport.LabelRow(), cols)
	if !strings.Contains(labels, "1000x") || !strings.Contains(labels, "0.5x") {
		t.Errorf("bin labels missing: %q", labels)
	}
}

func TestStatusBarShowsBetEditing(t *testing.T) {
	const cols, rows = 80, 33
	screen := newSimScreen(t, cols, rows)
	ctx := newContext(t, cols, rows)
	ctx.Bet.Begin()
	ctx.Bet.Insert('2')
	ctx.Bet.Insert('5')

	(&StatusBarRenderer{}).Render(ctx, screen)
	if hud := rowText(screen, 0, cols); !strings.HasPrefix(hud, "Bet: $25_") {
		t.Errorf("editing HUD: %q", hud)
	}

	ctx.Message = "bad bet"
	ctx.Error = true
	ctx.MessageUntil = ctx.Now.Add(time.Second)
	(&StatusBarRenderer{}).Render(ctx, screen)
	if line := rowText(screen, 1, cols); !strings.HasPrefix(line, "bad bet") {
		t.Errorf("message line: %q", line)
	}

	ctx.Now = ctx.MessageUntil
	screen.Clear()
	(&StatusBarRenderer{}).Render(ctx, screen)
	if line := rowText(screen, 1, cols); strings.HasPrefix(line, "bad bet") {
		t.Errorf("expired message still shown: %q", line)
	}
}

type recordingRenderer struct {
	name    string
	log     *[]string
	visible bool
}

func (r *recordingRenderer) Render(ctx RenderContext, screen tcell.Screen) {
	*r.log = append(*r.log, r.name)
}

func (r *recordingRenderer) IsVisible() bool { return r.visible }

func TestOrchestratorOrder(t *testing.T) {
	screen := newSimScreen(t, 10, 10)
	var log []string
	o := NewRenderOrchestrator(screen)
	o.Register(&recordingRenderer{name: "ui", log: &log, visible: true}, PriorityUI)
	o.Register(&recordingRenderer{name: "pegs", log: &log, visible: true}, PriorityPegs)
	o.Register(&recordingRenderer{name: "hidden", log: &log, visible: false}, PriorityBall)
	o.Register(&recordingRenderer{name: "pegs2", log: &log, visible: true}, PriorityPegs)

	o.RenderFrame(RenderContext{})

	want := []string{"pegs", "pegs2", "ui"}
	if strings.Join(log, ",") != strings.Join(want, ",") {
		t.Errorf("render order: got %v, want %v", log, want)
	}
}

func TestFormatMultiplier(t *testing.T) {
	tests := map[float64]string{0.5: "0.5x", 1: "1x", 1000: "1000x", 2.25: "2.25x"}
	for in, want := range tests {
		if got := FormatMultiplier(in); got != want {
			t.Errorf("FormatMultiplier(%v) = %q, want %q", in, got, want)
		}
	}
}

package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/lixenwraith/plinko/audio"
	"github.com/lixenwraith/plinko/board"
	"github.com/lixenwraith/plinko/game"
	"github.com/lixenwraith/plinko/physics"
	"github.com/lixenwraith/plinko/vmath"
)

type fakeSound struct {
	played  []audio.SoundType
	settled []float64
	muted   bool
}

func (f *fakeSound) Play(st audio.SoundType)    { f.played = append(f.played, st) }
func (f *fakeSound) PlaySettle(mult float64)    { f.settled = append(f.settled, mult) }
func (f *fakeSound) ToggleMute() bool           { f.muted = !f.muted; return f.muted }
func (f *fakeSound) Muted() bool                { return f.muted }

func newTestApp(t *testing.T) (*App, *fakeSound) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	screen.SetSize(80, 33)
	t.Cleanup(screen.Fini)

	b, err := board.New(board.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	session := game.NewSession(b, &physics.DefaultProfile, vmath.NewFastRand(8), decimal.NewFromInt(10), nil)
	sound := &fakeSound{}
	return NewApp(screen, session, sound, zap.NewNop()), sound
}

func key(k tcell.Key, r rune) *tcell.EventKey {
	return tcell.NewEventKey(k, r, tcell.ModNone)
}

func settle(t *testing.T, a *App) {
	t.Helper()
	now := time.Now()
	for i := 0; i < 20000 && !a.session.Projectile().Settled(); i++ {
		a.tick(now)
	}
	if !a.session.Projectile().Settled() {
		t.Fatal("ball never settled")
	}
}

func TestAppQuitKeys(t *testing.T) {
	a, _ := newTestApp(t)
	now := time.Now()
	if a.handleEvent(key(tcell.KeyRune, 'q'), now) {
		t.Error("q should quit")
	}
	if a.handleEvent(key(tcell.KeyCtrlC, 0), now) {
		t.Error("ctrl-c should quit")
	}
	if !a.handleEvent(key(tcell.KeyRune, 'x'), now) {
		t.Error("unbound key should not quit")
	}
}

func TestAppSpaceRespawnsOnlyWhenSettled(t *testing.T) {
	a, sound := newTestApp(t)
	now := time.Now()
	first := a.session.Projectile()

	a.handleEvent(key(tcell.KeyRune, ' '), now)
	if a.session.Projectile() != first {
		t.Fatal("space must not replace a falling ball")
	}

	settle(t, a)
	if len(sound.settled) != 1 {
		t.Errorf("settle sound: got %d plays", len(sound.settled))
	}
	if a.message == "" {
		t.Error("settle should flash a result message")
	}

	a.handleEvent(key(tcell.KeyRune, ' '), now)
	if a.session.Projectile() == first {
		t.Error("space after settle should respawn")
	}
}

func TestAppBetEditing(t *testing.T) {
	a, sound := newTestApp(t)
	now := time.Now()

	a.handleEvent(key(tcell.KeyRune, 'b'), now)
	for _, r := range "2.5" {
		a.handleEvent(key(tcell.KeyRune, r), now)
	}
	if a.handleEvent(key(tcell.KeyRune, 'q'), now) == false {
		t.Fatal("q while editing is input, not quit")
	}
	a.handleEvent(key(tcell.KeyBackspace2, 0), now)
	a.handleEvent(key(tcell.KeyEnter, 0), now)

	if !a.session.Wager().Equal(decimal.RequireFromString("2.5")) {
		t.Errorf("wager: got %s", a.session.Wager())
	}

	a.handleEvent(key(tcell.KeyRune, 'b'), now)
	for _, r := range "abc" {
		a.handleEvent(key(tcell.KeyRune, r), now)
	}
	a.handleEvent(key(tcell.KeyEnter, 0), now)
	if !a.session.Wager().Equal(decimal.RequireFromString("2.5")) {
		t.Errorf("rejected bet changed wager to %s", a.session.Wager())
	}
	if !a.messageError {
		t.Error("rejected bet should flash an error")
	}
	if n := len(sound.played); n == 0 || sound.played[n-1] != audio.SoundReject {
		t.Errorf("rejected bet should play reject sound, got %v", sound.played)
	}
}

func TestAppMouseOpensBetField(t *testing.T) {
	a, _ := newTestApp(t)
	a.handleEvent(tcell.NewEventMouse(10, 10, tcell.Button1, tcell.ModNone), time.Now())
	if !a.bet.Active() {
		t.Error("click should open the bet field")
	}
	a.handleEvent(key(tcell.KeyEscape, 0), time.Now())
	if a.bet.Active() {
		t.Error("escape should cancel editing")
	}
}

func TestAppMuteAndDraw(t *testing.T) {
	a, sound := newTestApp(t)
	a.handleEvent(key(tcell.KeyRune, 'm'), time.Now())
	if !sound.muted {
		t.Error("m should toggle mute")
	}

	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("draw panicked: %v", r)
		}
	}()
	a.draw(time.Now())
}

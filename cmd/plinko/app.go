package main

import (
	"errors"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/plinko/audio"
	"github.com/lixenwraith/plinko/constants"
	"github.com/lixenwraith/plinko/game"
	"github.com/lixenwraith/plinko/render"
	"github.com/lixenwraith/plinko/scoring"
)

// player is the subset of audio.SoundManager the loop uses
type player interface {
	Play(audio.SoundType)
	PlaySettle(multiplier float64)
	ToggleMute() bool
	Muted() bool
}

// App wires the session to the terminal: one goroutine owns everything
// here, input arrives over a channel
type App struct {
	screen       tcell.Screen
	session      *game.Session
	bet          game.BetField
	orchestrator *render.RenderOrchestrator
	sound        player
	logger       *zap.Logger

	message      string
	messageError bool
	messageUntil time.Time
}

func NewApp(screen tcell.Screen, session *game.Session, sound player, logger *zap.Logger) *App {
	o := render.NewRenderOrchestrator(screen)
	o.RegisterDefaults()
	return &App{
		screen:       screen,
		session:      session,
		orchestrator: o,
		sound:        sound,
		logger:       logger,
	}
}

// tick advances the simulation and reacts to bounces and settling
func (a *App) tick(now time.Time) {
	res, err := a.session.Tick()
	if res.Hits > 0 {
		a.sound.Play(audio.SoundPeg)
	}
	if !res.Settled {
		return
	}

	if err != nil {
		var iw *scoring.InvalidWagerError
		if errors.As(err, &iw) {
			a.flash(now, "payout rejected: "+iw.Error(), true, constants.ResultFlashTimeout)
			a.sound.Play(audio.SoundReject)
			return
		}
		a.logger.Error("settle failed", zap.Error(err))
		return
	}

	bin := a.session.LastBin()
	mult := a.session.Board().Multiplier(bin)
	a.sound.PlaySettle(mult)
	a.flash(now, "landed "+render.FormatMultiplier(mult)+"  won $"+a.session.LastPayout().StringFixed(2), false, constants.ResultFlashTimeout)
}

// handleEvent returns false when the player quits
func (a *App) handleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev, now)
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 != 0 && !a.bet.Active() {
			a.bet.Begin()
		}
	case *tcell.EventResize:
		a.orchestrator.Resize()
	}
	return true
}

func (a *App) handleKey(ev *tcell.EventKey, now time.Time) bool {
	if ev.Key() == tcell.KeyCtrlC {
		return false
	}

	if a.bet.Active() {
		switch ev.Key() {
		case tcell.KeyEnter:
			a.commitBet(now)
		case tcell.KeyEscape:
			a.bet.Cancel()
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			a.bet.Backspace()
		case tcell.KeyRune:
			a.bet.Insert(ev.Rune())
		}
		return true
	}

	switch ev.Key() {
	case tcell.KeyEscape:
		return false
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case ' ':
			if err := a.session.Respawn(); err != nil {
				a.logger.Debug("respawn ignored", zap.Error(err))
			}
		case 'b':
			a.bet.Begin()
		case 'm':
			a.sound.ToggleMute()
		}
	}
	return true
}

// commitBet applies the typed bet; a rejected bet keeps the previous one
func (a *App) commitBet(now time.Time) {
	w, err := a.bet.Commit()
	if err != nil {
		a.flash(now, err.Error(), true, constants.ErrorFlashTimeout)
		a.sound.Play(audio.SoundReject)
		return
	}
	a.session.SetWager(w)
	a.logger.Info("wager changed", zap.String("wager", w.StringFixed(2)))
}

func (a *App) flash(now time.Time, msg string, isErr bool, d time.Duration) {
	a.message = msg
	a.messageError = isErr
	a.messageUntil = now.Add(d)
}

func (a *App) draw(now time.Time) {
	cols, rows := a.screen.Size()
	a.orchestrator.RenderFrame(render.RenderContext{
		Session:      a.session,
		Bet:          &a.bet,
		Viewport:     render.NewViewport(a.session.Board(), cols, rows),
		Muted:        a.sound.Muted(),
		Message:      a.message,
		Error:        a.messageError,
		MessageUntil: a.messageUntil,
		Now:          now,
	})
}

// Run drives ticks at the fixed tick rate until the player quits
func (a *App) Run() {
	ticker := time.NewTicker(constants.TickInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-quit:
				return
			}
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !a.handleEvent(ev, time.Now()) {
				return
			}
		case now := <-ticker.C:
			a.tick(now)
			a.draw(now)
		}
	}
}

// Package game owns the state of a play session: the active ball, the
// current wager and the last displayed payout.
package game

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/lixenwraith/plinko/board"
	"github.com/lixenwraith/plinko/physics"
	"github.com/lixenwraith/plinko/scoring"
	"github.com/lixenwraith/plinko/vmath"
)

// ErrBallInFlight is returned by Respawn while the current ball is falling
var ErrBallInFlight = errors.New("ball still in flight")

// Session is the caller-owned replacement for global bet/winnings state.
// Not safe for concurrent use; the game loop goroutine owns it.
type Session struct {
	board   *board.Board
	profile *physics.Profile
	rng     *vmath.FastRand
	logger  *zap.Logger

	ball       *physics.Projectile
	wager      decimal.Decimal
	lastPayout decimal.Decimal
	lastBin    int
	ledger     *scoring.Ledger
}

// NewSession spawns the first ball. A nil logger is replaced by a no-op
// logger.
func NewSession(b *board.Board, profile *physics.Profile, rng *vmath.FastRand, wager decimal.Decimal, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Session{
		board:   b,
		profile: profile,
		rng:     rng,
		logger:  logger,
		lastBin: -1,
		ledger:  scoring.NewLedger(b.BinCount()),
		wager:   wager,
	}
	s.ball = physics.Spawn(b, profile, rng)
	return s
}

// Tick advances the active ball by one simulation tick. On the settling tick
// the payout is recorded; if the wager is rejected the last payout is kept
// and the error is returned for display.
func (s *Session) Tick() (physics.StepResult, error) {
	wager, _ := s.wager.Float64()
	res, err := s.ball.Step(s.board, wager)
	if !res.Settled {
		return res, err
	}

	bin := s.ball.BinIndex()
	if err != nil {
		s.logger.Warn("settle rejected",
			zap.Int("bin", bin),
			zap.String("wager", s.wager.String()),
			zap.Error(err),
		)
		return res, fmt.Errorf("settle in bin %d: %w", bin, err)
	}

	payout, _ := s.ball.Payout()
	s.lastPayout = decimal.NewFromFloat(payout)
	s.lastBin = bin
	s.ledger.Record(bin, s.wager, s.lastPayout)

	s.logger.Info("ball settled",
		zap.Int("bin", bin),
		zap.Float64("multiplier", s.board.Multiplier(bin)),
		zap.String("wager", s.wager.String()),
		zap.String("payout", s.lastPayout.StringFixed(2)),
		zap.Int("ticks", s.ball.Ticks()),
	)
	return res, nil
}

// Respawn replaces a settled ball with a fresh one
func (s *Session) Respawn() error {
	if !s.ball.Settled() {
		return ErrBallInFlight
	}
	s.ball = physics.Spawn(s.board, s.profile, s.rng)
	s.logger.Debug("ball respawned")
	return nil
}

// SetWager replaces the wager read at the next settle. It is validated only
// when the payout is computed.
func (s *Session) SetWager(w decimal.Decimal) {
	s.wager = w
}

func (s *Session) Board() *board.Board { return s.board }

func (s *Session) Projectile() *physics.Projectile { return s.ball }

func (s *Session) Wager() decimal.Decimal { return s.wager }

// LastPayout is the most recent accepted payout, zero before the first settle
func (s *Session) LastPayout() decimal.Decimal { return s.lastPayout }

// LastBin is the bin of the most recent accepted payout, -1 before any
func (s *Session) LastBin() int { return s.lastBin }

func (s *Session) Ledger() *scoring.Ledger { return s.ledger }

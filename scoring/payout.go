// Package scoring resolves settled balls into payouts and keeps running
// totals across rounds.
package scoring

import (
	"fmt"

	"github.com/lixenwraith/plinko/board"
	"github.com/lixenwraith/plinko/vmath"
)

// ValidateWager returns *InvalidWagerError unless w is finite and >= 0
func ValidateWager(w float64) error {
	if !vmath.IsFinite(w) || w < 0 {
		return &InvalidWagerError{Wager: w}
	}
	return nil
}

// Payout returns wager * multiplier of bin binIndex. Pure; no side effects.
func Payout(wager float64, binIndex int, b *board.Board) (float64, error) {
	if err := ValidateWager(wager); err != nil {
		return 0, err
	}
	if binIndex < 0 || binIndex >= b.BinCount() {
		return 0, fmt.Errorf("payout for bin %d of %d: %w", binIndex, b.BinCount(), ErrBinOutOfRange)
	}
	return wager * b.Multiplier(binIndex), nil
}

package scoring

import (
	"github.com/shopspring/decimal"
)

// Ledger accumulates money totals over many rounds. Amounts are decimal so
// long sessions and simulations do not drift.
type Ledger struct {
	rounds  int64
	wagered decimal.Decimal
	paid    decimal.Decimal
	binHits []int64
}

func NewLedger(binCount int) *Ledger {
	return &Ledger{binHits: make([]int64, binCount)}
}

// Record adds one settled round. Out of range bins count toward totals only.
func (l *Ledger) Record(binIndex int, wager, payout decimal.Decimal) {
	l.rounds++
	l.wagered = l.wagered.Add(wager)
	l.paid = l.paid.Add(payout)
	if binIndex >= 0 && binIndex < len(l.binHits) {
		l.binHits[binIndex]++
	}
}

// Merge folds other into l; both must describe the same bin table
func (l *Ledger) Merge(other *Ledger) {
	l.rounds += other.rounds
	l.wagered = l.wagered.Add(other.wagered)
	l.paid = l.paid.Add(other.paid)
	for i := range l.binHits {
		if i < len(other.binHits) {
			l.binHits[i] += other.binHits[i]
		}
	}
}

func (l *Ledger) Rounds() int64 { return l.rounds }

func (l *Ledger) Wagered() decimal.Decimal { return l.wagered }

func (l *Ledger) Paid() decimal.Decimal { return l.paid }

// Net is paid minus wagered from the player's side
func (l *Ledger) Net() decimal.Decimal { return l.paid.Sub(l.wagered) }

// BinHits returns a copy of per-bin settle counts
func (l *Ledger) BinHits() []int64 {
	out := make([]int64, len(l.binHits))
	copy(out, l.binHits)
	return out
}

// RTP is paid/wagered, zero before anything was wagered
func (l *Ledger) RTP() decimal.Decimal {
	if l.wagered.IsZero() {
		return decimal.Zero
	}
	return l.paid.DivRound(l.wagered, 6)
}

package scoring

import (
	"errors"
	"fmt"
)

// ErrBinOutOfRange is returned when a payout is requested for a bin the
// board does not have
var ErrBinOutOfRange = errors.New("bin index out of range")

// InvalidWagerError rejects a wager that is negative, NaN or infinite.
// Callers recover by keeping their previous payout display.
type InvalidWagerError struct {
	Wager float64
}

func (e *InvalidWagerError) Error() string {
	return fmt.Sprintf("invalid wager %v: must be a non-negative finite number", e.Wager)
}

package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/lixenwraith/plinko/constants"
)

// ErrBetFormat is returned by Commit for text that is not a plain decimal
var ErrBetFormat = errors.New("bet must be digits with at most one decimal point and two decimal places")

// BetField is the editable bet text shown in the HUD. Editing starts empty,
// and a rejected commit leaves the previous bet in force.
type BetField struct {
	text   []rune
	active bool
}

// Begin starts editing with an empty buffer
func (f *BetField) Begin() {
	f.text = f.text[:0]
	f.active = true
}

// Insert appends r while editing; anything other than digits and '.' is
// kept so Commit can reject it, matching what the player typed
func (f *BetField) Insert(r rune) {
	if !f.active || len(f.text) >= constants.BetFieldMaxLen {
		return
	}
	f.text = append(f.text, r)
}

func (f *BetField) Backspace() {
	if !f.active || len(f.text) == 0 {
		return
	}
	f.text = f.text[:len(f.text)-1]
}

// Cancel stops editing without committing
func (f *BetField) Cancel() {
	f.active = false
}

// Commit stops editing and parses the buffer. Amounts finer than cents are
// rejected, not rounded.
func (f *BetField) Commit() (decimal.Decimal, error) {
	f.active = false
	s := string(f.text)
	if !isPlainDecimal(s) {
		return decimal.Zero, fmt.Errorf("bet %q: %w", s, ErrBetFormat)
	}
	if strings.HasPrefix(s, ".") {
		s = "0" + s
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("bet %q: %w", s, err)
	}
	return d, nil
}

func (f *BetField) Active() bool { return f.active }

func (f *BetField) Text() string { return string(f.text) }

func isPlainDecimal(s string) bool {
	if s == "" || s == "." || strings.Count(s, ".") > 1 {
		return false
	}
	if dot := strings.IndexByte(s, '.'); dot >= 0 && len(s)-dot-1 > constants.BetDecimalPlaces {
		return false
	}
	for _, r := range s {
		if r != '.' && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}

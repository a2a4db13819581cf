package constants

import "time"

// UI Layout Constants
const (
	// HUDRows is the number of terminal rows reserved above the board
	HUDRows = 2

	// BetFieldMaxLen caps bet field input
	BetFieldMaxLen = 12
	// BetDecimalPlaces is the finest bet the field accepts, cents
	BetDecimalPlaces = 2

	PegGlyph  = '•'
	BallGlyph = '●'
	BinGlyph  = '▁'
	WallGlyph = '│'
)

// UI Timing Constants
const (
	// ResultFlashTimeout is how long a settled bin stays highlighted
	ResultFlashTimeout = 1500 * time.Millisecond

	// ErrorFlashTimeout is how long the bet field shows a rejected value
	ErrorFlashTimeout = 600 * time.Millisecond
)

package constants

// Board Geometry Constants
// Units are abstract board units; the renderer scales them to terminal cells.
const (
	BoardWidth  = 800.0
	BoardHeight = 600.0

	PegRows     = 12
	PegRadius   = 5.0
	PegSpacingX = 60.0
	PegSpacingY = 60.0

	// Apex of the lattice, horizontally centered
	PegOriginX = BoardWidth / 2
	PegOriginY = 100.0

	BinCount  = 12
	BinHeight = 100.0
)

// BinMultipliers is the default payout table, low center with a jackpot edge
var BinMultipliers = [BinCount]float64{10, 5, 2, 1, 0.5, 0.5, 0.5, 0.5, 1, 2, 5, 1000}

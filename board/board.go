// Package board holds the static peg lattice and scoring bins of a drop
// board. A Board is built once and is read-only afterwards, so a single
// instance can be shared by any number of projectiles or goroutines.
package board

import (
	"math"

	"github.com/lixenwraith/plinko/constants"
	"github.com/lixenwraith/plinko/vmath"
)

// Peg is a fixed circular obstacle. Radius is board-wide, see Board.PegRadius.
type Peg struct {
	X, Y float64
}

// Bin is a scoring region on the bottom edge covering [Left, Right)
type Bin struct {
	Index      int
	Left       float64
	Right      float64
	Center     float64
	Multiplier float64
}

// Config describes board geometry and the payout table
type Config struct {
	Rows     int
	SpacingX float64
	SpacingY float64
	// OriginX, OriginY is the apex peg of the lattice
	OriginX float64
	OriginY float64

	BinCount  int
	BinWidth  float64
	BinHeight float64
	// Height is the full board height; the bin line sits at Height-BinHeight
	Height    float64
	PegRadius float64

	Multipliers []float64
}

// DefaultConfig returns the stock 12-row, 12-bin layout
func DefaultConfig() Config {
	mult := make([]float64, len(constants.BinMultipliers))
	copy(mult, constants.BinMultipliers[:])
	return Config{
		Rows:        constants.PegRows,
		SpacingX:    constants.PegSpacingX,
		SpacingY:    constants.PegSpacingY,
		OriginX:     constants.PegOriginX,
		OriginY:     constants.PegOriginY,
		BinCount:    constants.BinCount,
		BinWidth:    constants.BoardWidth / constants.BinCount,
		BinHeight:   constants.BinHeight,
		Height:      constants.BoardHeight,
		PegRadius:   constants.PegRadius,
		Multipliers: mult,
	}
}

// Board is an immutable peg lattice plus bin table
type Board struct {
	rows      int
	pegs      []Peg
	bins      []Bin
	binWidth  float64
	binHeight float64
	height    float64
	pegRadius float64
}

// New validates cfg and lays out pegs and bins
func New(cfg Config) (*Board, error) {
	if err := validate(cfg); err != nil {
		return nil, err
	}

	b := &Board{
		rows:      cfg.Rows,
		pegs:      make([]Peg, 0, cfg.Rows*(cfg.Rows+1)/2),
		bins:      make([]Bin, cfg.BinCount),
		binWidth:  cfg.BinWidth,
		binHeight: cfg.BinHeight,
		height:    cfg.Height,
		pegRadius: cfg.PegRadius,
	}

	// Row r holds r+1 pegs centered on OriginX
	for r := 0; r < cfg.Rows; r++ {
		half := float64(r) / 2
		y := cfg.OriginY + float64(r)*cfg.SpacingY
		for c := 0; c <= r; c++ {
			b.pegs = append(b.pegs, Peg{
				X: cfg.OriginX + (float64(c)-half)*cfg.SpacingX,
				Y: y,
			})
		}
	}

	for i := range b.bins {
		left := float64(i) * cfg.BinWidth
		b.bins[i] = Bin{
			Index:      i,
			Left:       left,
			Right:      float64(i+1) * cfg.BinWidth,
			Center:     left + cfg.BinWidth/2,
			Multiplier: cfg.Multipliers[i],
		}
	}

	return b, nil
}

func validate(cfg Config) error {
	switch {
	case cfg.Rows <= 0:
		return configErr("rows", "must be positive, got %d", cfg.Rows)
	case cfg.BinCount <= 0:
		return configErr("bin_count", "must be positive, got %d", cfg.BinCount)
	case len(cfg.Multipliers) != cfg.BinCount:
		return configErr("multipliers", "have %d entries for %d bins", len(cfg.Multipliers), cfg.BinCount)
	case !(cfg.BinWidth > 0) || math.IsInf(cfg.BinWidth, 0):
		return configErr("bin_width", "must be positive and finite, got %v", cfg.BinWidth)
	case !(cfg.BinHeight >= 0) || math.IsInf(cfg.BinHeight, 0):
		return configErr("bin_height", "must be non-negative and finite, got %v", cfg.BinHeight)
	case !vmath.IsFinite(cfg.Height) || !(cfg.Height > cfg.BinHeight):
		return configErr("height", "must be finite and exceed bin height %v, got %v", cfg.BinHeight, cfg.Height)
	case !(cfg.PegRadius >= 0) || math.IsInf(cfg.PegRadius, 0):
		return configErr("peg_radius", "must be non-negative and finite, got %v", cfg.PegRadius)
	case !vmath.IsFinite(cfg.SpacingX):
		return configErr("spacing_x", "must be finite, got %v", cfg.SpacingX)
	case !vmath.IsFinite(cfg.SpacingY):
		return configErr("spacing_y", "must be finite, got %v", cfg.SpacingY)
	case !vmath.IsFinite(cfg.OriginX):
		return configErr("origin_x", "must be finite, got %v", cfg.OriginX)
	case !vmath.IsFinite(cfg.OriginY):
		return configErr("origin_y", "must be finite, got %v", cfg.OriginY)
	}
	for i, m := range cfg.Multipliers {
		if !(m >= 0) || !vmath.IsFinite(m) {
			return configErr("multipliers", "entry %d must be non-negative and finite, got %v", i, m)
		}
	}
	return nil
}

// BinIndexFor returns the bin whose center is nearest x. Ties resolve to the
// lower index. Defined for every x: values beyond either edge map to the edge
// bin and NaN maps to bin 0.
func (b *Board) BinIndexFor(x float64) int {
	if math.IsInf(x, 1) {
		return len(b.bins) - 1
	}
	best := 0
	bestDist := math.Abs(x - b.bins[0].Center)
	for i := 1; i < len(b.bins); i++ {
		d := math.Abs(x - b.bins[i].Center)
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// Multiplier returns the payout multiplier of bin i, 0 when i is out of range
func (b *Board) Multiplier(i int) float64 {
	if i < 0 || i >= len(b.bins) {
		return 0
	}
	return b.bins[i].Multiplier
}

// Pegs returns a copy of the lattice in row-major order
func (b *Board) Pegs() []Peg {
	out := make([]Peg, len(b.pegs))
	copy(out, b.pegs)
	return out
}

// Peg returns the i-th peg in row-major order; i must be in [0, PegCount)
func (b *Board) Peg(i int) Peg { return b.pegs[i] }

func (b *Board) PegCount() int { return len(b.pegs) }

// Bins returns a copy of the bin table, index equals bin id
func (b *Board) Bins() []Bin {
	out := make([]Bin, len(b.bins))
	copy(out, b.bins)
	return out
}

// Bin returns bin i; i must be in [0, BinCount)
func (b *Board) Bin(i int) Bin { return b.bins[i] }

func (b *Board) BinCount() int { return len(b.bins) }

func (b *Board) Rows() int { return b.rows }

func (b *Board) PegRadius() float64 { return b.pegRadius }

func (b *Board) BinWidth() float64 { return b.binWidth }

func (b *Board) BinHeight() float64 { return b.binHeight }

// Width is the span covered by the bins
func (b *Board) Width() float64 { return float64(len(b.bins)) * b.binWidth }

func (b *Board) Height() float64 { return b.height }

// BinLine is the y coordinate at which a falling ball settles
func (b *Board) BinLine() float64 { return b.height - b.binHeight }
